// Package lvmat is a lightweight dense matrix buffer with C-style ergonomics:
// explicit release, per-call error signaling and a text table printer.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/  - Matrix storage, typed ingestion, 1-based accessors, table printer
//	errchan/ - failure codes, descriptions and last-failure channels
//	diag/    - optional debug/error trace sink
//
// Quick example:
//
//	m, _ := matrix.FromRows(2, 2, [][]int{{1, 20}, {3, 4}})
//	matrix.Print(m)
//
//	+--------+
//	| 1 | 20 |
//	|---+----|
//	| 3 |  4 |
//	+--------+
//
//	go get github.com/katalvlaran/lvmat
package lvmat
