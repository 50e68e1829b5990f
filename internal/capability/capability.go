// Package capability reports which word-parallel / vector-width CPU
// features are available on the current host.
//
// Dynamic dispatch to a SIMD variant based on these features is explicitly
// out of scope for this library's algorithmic core — this package does not
// select an algorithm variant based on what it reports. It exists purely so
// a future SIMD specialization has somewhere idiomatic to query capability
// from, following the same golang.org/x/sys/cpu capability-detection shim
// used elsewhere in this codebase's lineage to pick an assembly kernel.
// Today Report is consulted only by the benchmarks in bench_test.go
// (BenchmarkIndex, BenchmarkLastIndex, BenchmarkHash, BenchmarkSort,
// BenchmarkLevenshtein), to annotate which tier of hardware a result came
// from.
package capability

import "golang.org/x/sys/cpu"

// Report describes the word-parallel features available on this host.
type Report struct {
	AVX2  bool
	SSE42 bool
	ASIMD bool
}

// Detect returns the capability report for the running process's CPU.
func Detect() Report {
	return Report{
		AVX2:  cpu.X86.HasAVX2,
		SSE42: cpu.X86.HasSSE42,
		ASIMD: cpu.ARM64.HasASIMD,
	}
}

// String summarizes the report for benchmark output, e.g. "avx2,sse4.2".
func (r Report) String() string {
	s := ""
	add := func(name string, has bool) {
		if !has {
			return
		}
		if s != "" {
			s += ","
		}
		s += name
	}
	add("avx2", r.AVX2)
	add("sse4.2", r.SSE42)
	add("asimd", r.ASIMD)
	if s == "" {
		return "scalar"
	}
	return s
}
