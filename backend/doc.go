// Package backend turns ambient compute policy into explicit configuration.
//
// What:
//
//   - Config carries the worker count and a vector-lane hint for numeric
//     kernels; it is plain data, passed by value at initialization.
//   - Detect() builds a Config from the running CPU (physical cores,
//     AVX2/AVX-512 feature flags via klauspost/cpuid).
//   - Sequential() returns the deterministic single-worker configuration.
//   - ForEachChunk dispatches a half-open index range across workers in
//     contiguous chunks and blocks until all chunks complete.
//
// Why:
//
//   - Numeric frameworks often select a compute backend through environment
//     variables and hidden global state. Here the policy is an explicit value:
//     the caller decides once and threads it through the kernels that honor it.
//
// Errors:
//
//   - None. Config constructors clamp nonsensical values instead of failing;
//     ForEachChunk on an empty range is a no-op.
package backend
