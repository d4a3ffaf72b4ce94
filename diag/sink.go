// SPDX-License-Identifier: MIT

package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a trace line.
type Level int

const (
	// LevelDebug is for detailed allocation/formatting traces.
	LevelDebug Level = iota
	// LevelError is for failed operations.
	LevelError
)

// String returns the tag written between brackets.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Config configures a Sink.
type Config struct {
	// Debug enables LevelDebug lines.
	Debug bool
	// Error enables LevelError lines.
	Error bool
	// Output is where lines are written. Defaults to os.Stderr.
	Output io.Writer
	// Clock returns the timestamp of a line. Defaults to time.Now.
	Clock func() time.Time
}

// Sink writes trace lines. All methods are safe for concurrent use and on a
// nil *Sink (which discards everything).
type Sink struct {
	mu    sync.Mutex
	debug bool
	error bool
	out   io.Writer
	clock func() time.Time
}

// New creates a Sink from cfg.
func New(cfg Config) *Sink {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &Sink{
		debug: cfg.Debug,
		error: cfg.Error,
		out:   cfg.Output,
		clock: cfg.Clock,
	}
}

// Discard drops every line. Use it to silence a component explicitly.
var Discard = New(Config{Output: io.Discard})

var (
	defaultSink     *Sink
	defaultSinkOnce sync.Once
)

// Default returns the process-wide Sink (both switches off, os.Stderr).
// Flip its switches with SetDebug/SetError to trace every component that
// was not configured with its own Sink.
func Default() *Sink {
	defaultSinkOnce.Do(func() {
		defaultSink = New(Config{})
	})

	return defaultSink
}

// SetDebug turns LevelDebug lines on or off.
func (s *Sink) SetDebug(on bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug = on
}

// SetError turns LevelError lines on or off.
func (s *Sink) SetError(on bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.error = on
}

// SetOutput replaces the destination; nil restores os.Stderr.
func (s *Sink) SetOutput(w io.Writer) {
	if s == nil {
		return
	}
	if w == nil {
		w = os.Stderr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = w
}

// Enabled reports whether lines of the given level would be written.
func (s *Sink) Enabled(level Level) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enabled(level)
}

func (s *Sink) enabled(level Level) bool {
	switch level {
	case LevelDebug:
		return s.debug
	case LevelError:
		return s.error
	default:
		return false
	}
}

// Debugf writes a LevelDebug line attributed to its caller.
func (s *Sink) Debugf(format string, args ...any) {
	if !s.Enabled(LevelDebug) {
		return
	}
	s.Output(2, LevelDebug, fmt.Sprintf(format, args...))
}

// Errorf writes a LevelError line attributed to its caller.
func (s *Sink) Errorf(format string, args ...any) {
	if !s.Enabled(LevelError) {
		return
	}
	s.Output(2, LevelError, fmt.Sprintf(format, args...))
}

// Output writes msg at level. calldepth counts the frames to skip when
// resolving the source location; 1 names the caller of Output.
func (s *Sink) Output(calldepth int, level Level, msg string) {
	if s == nil {
		return
	}
	file, line, fn := "???", 0, "???"
	if pc, f, l, ok := runtime.Caller(calldepth); ok {
		file, line = filepath.Base(f), l
		if rf := runtime.FuncForPC(pc); rf != nil {
			fn = shortFuncName(rf.Name())
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled(level) {
		return
	}
	now := s.clock()
	_, _ = fmt.Fprintf(s.out, "(%s.%09d) %s:%d: %s: [%s] %s\n",
		now.Format("15:04:05"), now.Nanosecond(), file, line, fn, level, msg)
}

// shortFuncName strips the import path: ".../lvmat/matrix.(*Matrix).At" -> "matrix.(*Matrix).At".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}

	return name
}
