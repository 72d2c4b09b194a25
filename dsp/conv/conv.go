// Package conv implements linear convolution for impulse-response
// rendering. Short kernels run directly in the time domain; longer ones
// go through FFT-based overlap-add blocks.
package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// directThreshold is the kernel length above which Convolve switches to
// the FFT path.
const directThreshold = 64

// Direct performs time-domain linear convolution of signal and kernel.
// The result has length len(signal) + len(kernel) - 1.
//
// This is an O(N*M) algorithm suitable for short kernels. For longer
// kernels use OverlapAdd.
func Direct(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	out := make([]float64, len(signal)+len(kernel)-1)
	DirectTo(out, signal, kernel)

	return out, nil
}

// DirectTo performs direct convolution into a pre-allocated destination.
// dst must have length len(signal) + len(kernel) - 1.
func DirectTo(dst, signal, kernel []float64) {
	for i := range dst {
		dst[i] = 0
	}

	// Vectorized path for kernels >= 4 samples.
	const simdThreshold = 4
	if len(kernel) < simdThreshold {
		for i, s := range signal {
			for j, k := range kernel {
				dst[i+j] += s * k
			}
		}

		return
	}

	m := len(kernel)
	temp := make([]float64, m)
	for i, s := range signal {
		vecmath.ScaleBlock(temp, kernel, s)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Convolve performs linear convolution with automatic algorithm
// selection. The shorter operand is treated as the kernel; short kernels
// run directly, longer ones through overlap-add.
func Convolve(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(kernel) > len(signal) {
		signal, kernel = kernel, signal
	}

	if len(kernel) <= directThreshold {
		return Direct(signal, kernel)
	}

	return OverlapAddConvolve(signal, kernel)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
