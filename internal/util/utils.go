package util

import (
	"runtime"
	"sort"
	"time"

	"github.com/shirou/gopsutil/cpu"
)

// Clamp01 limits a value to the [0, 1] range
func Clamp01(value float32) float32 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// Quantize maps a linear color channel to a byte, clamping to [0, 1] first
func Quantize(value float32) uint8 {
	return uint8(Clamp01(value) * 255)
}

// ProcessorCount returns the number of logical CPUs
func ProcessorCount() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// CPUModel returns a human readable name of the host CPU, or "unknown"
func CPUModel() string {
	info, err := cpu.Info()
	if err != nil || len(info) == 0 || info[0].ModelName == "" {
		return "unknown"
	}
	return info[0].ModelName
}

// FrameTimes collects per-frame durations
type FrameTimes struct {
	samples []time.Duration
}

// NewFrameTimes creates a collector with room for n samples
func NewFrameTimes(n int) *FrameTimes {
	return &FrameTimes{samples: make([]time.Duration, 0, n)}
}

// Track records the time elapsed since start
func (f *FrameTimes) Track(start time.Time) {
	f.Add(time.Since(start))
}

// Add records one frame duration
func (f *FrameTimes) Add(d time.Duration) {
	f.samples = append(f.samples, d)
}

// Count returns the number of recorded frames
func (f *FrameTimes) Count() int {
	return len(f.samples)
}

// Reset drops every recorded sample
func (f *FrameTimes) Reset() {
	f.samples = f.samples[:0]
}

// Average returns the mean frame time
func (f *FrameTimes) Average() time.Duration {
	if len(f.samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, s := range f.samples {
		total += s
	}
	return total / time.Duration(len(f.samples))
}

// Median returns the median frame time
func (f *FrameTimes) Median() time.Duration {
	if len(f.samples) == 0 {
		return 0
	}

	sorted := make([]time.Duration, len(f.samples))
	copy(sorted, f.samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// MinMax returns the fastest and slowest frame times
func (f *FrameTimes) MinMax() (time.Duration, time.Duration) {
	if len(f.samples) == 0 {
		return 0, 0
	}
	lo, hi := f.samples[0], f.samples[0]
	for _, s := range f.samples[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return lo, hi
}

// Milliseconds converts a duration to fractional milliseconds
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
