// SPDX-License-Identifier: MIT

package errchan

import (
	"sort"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Registry maps owner keys to Channels.
// Go has no goroutine-local storage; a goroutine that wants its own slot picks a
// stable key (worker name, job ID) and asks the Registry for it.
// Use NewRegistry; the zero value is not usable.
type Registry struct {
	slots cmap.ConcurrentMap[string, *Channel]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{slots: cmap.New[*Channel]()}
}

// For returns the Channel of owner, creating it on first use.
// Concurrent calls with the same key observe the same Channel.
func (r *Registry) For(owner string) *Channel {
	return r.slots.Upsert(owner, nil, func(exist bool, inMap, _ *Channel) *Channel {
		if exist {
			return inMap
		}

		return new(Channel)
	})
}

// Drop forgets owner's Channel. Channels already handed out keep working.
func (r *Registry) Drop(owner string) {
	r.slots.Remove(owner)
}

// Owners returns the registered owner keys in ascending order.
func (r *Registry) Owners() []string {
	keys := r.slots.Keys()
	sort.Strings(keys)

	return keys
}

// Snapshot returns the current last code of every registered owner.
func (r *Registry) Snapshot() map[string]Code {
	out := make(map[string]Code, r.slots.Count())
	for owner, ch := range r.slots.Items() {
		out[owner] = ch.Last()
	}

	return out
}
