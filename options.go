// Copyright 2026, The polarfec Authors, see LICENSE for details.

package polar

import "github.com/klauspost/cpuid/v2"

// options control which kernel variants Encode may select.
type options struct {
	useSSSE3   bool
	vectorized bool
}

var baseOptions = options{vectorized: true}

func init() {
	// Detect CPU capabilities.
	baseOptions.useSSSE3 = cpuid.CPU.Has(cpuid.SSSE3)
}

func defaultOptions() options {
	return baseOptions
}

// Option allows to override kernel selection parameters.
type Option func(*options)

// WithSSSE3 allows to enable/disable the SSSE3 assembly kernel.
// It is enabled by default when the CPU supports it.
// Mainly used for testing and benchmarking.
func WithSSSE3(enabled bool) Option {
	return func(o *options) {
		o.useSSSE3 = enabled
	}
}

// WithVectorized allows to disable all vectorized kernels, forcing the
// scalar reference implementation.
// Mainly used for testing and benchmarking.
func WithVectorized(enabled bool) Option {
	return func(o *options) {
		o.vectorized = enabled
	}
}
