// SPDX-License-Identifier: MIT

package backend

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// Vector-lane hints for float64 kernels (no magic numbers).
const (
	// scalarLanes is the lane hint when no wide vector unit is detected.
	scalarLanes = 1
	// avx2Lanes is the float64 lane count of a 256-bit register.
	avx2Lanes = 4
	// avx512Lanes is the float64 lane count of a 512-bit register.
	avx512Lanes = 8

	// minWorkers is the lower bound enforced by normalization.
	minWorkers = 1
)

// Config is an explicit compute policy for numeric kernels.
// Zero value is usable: it normalizes to one worker, scalar lanes.
type Config struct {
	// Workers bounds the number of goroutines a kernel may spawn.
	Workers int
	// VectorLanes hints how many float64 values the CPU processes per
	// vector instruction; kernels may use it to pick chunk granularity.
	VectorLanes int
}

// Detect builds a Config from the running CPU: physical core count and the
// widest available vector extension. Deterministic for a given machine.
func Detect() Config {
	lanes := scalarLanes
	if cpuid.CPU.Supports(cpuid.AVX2) {
		lanes = avx2Lanes
	}
	if cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ) {
		lanes = avx512Lanes
	}
	workers := cpuid.CPU.PhysicalCores
	if workers < minWorkers {
		// Virtualized environments may not report topology; fall back to Go's view.
		workers = runtime.NumCPU()
	}

	return Config{Workers: workers, VectorLanes: lanes}.normalized()
}

// Sequential returns the single-worker configuration. Kernels run in the
// calling goroutine with a stable iteration order; use it when bitwise
// reproducibility across runs matters more than throughput.
func Sequential() Config {
	return Config{Workers: minWorkers, VectorLanes: scalarLanes}
}

// normalized clamps nonsensical field values to safe minimums.
func (c Config) normalized() Config {
	if c.Workers < minWorkers {
		c.Workers = minWorkers
	}
	if c.VectorLanes < scalarLanes {
		c.VectorLanes = scalarLanes
	}

	return c
}
