// Package profile provides optional runtime profiling for json2kdl.
//
// Profiling uses [github.com/pkg/profile] and is compiled in only with the
// pprof build tag:
//
//	go build -tags pprof
//
// Without the tag, [Profiler.Start] always returns a no-op [Stopper] and
// [Modes] is empty.
//
// # Modes
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles"}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode (e.g.
// cpu.pprof, mem.pprof). The json2kdl command exposes the same settings as
// --pprof-mode and --pprof-dir, defaulting to a pprof directory under the
// user cache directory:
//
//	json2kdl --pprof-mode=cpu big.json big.kdl
//	go tool pprof -http=: ~/.cache/json2kdl/pprof/cpu.pprof
package profile
