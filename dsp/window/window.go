// Package window provides the analysis/synthesis window generators used
// by the spectral effects.
package window

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

var errMismatchedLength = errors.New("window: samples and coefficients differ in length")

// Hann returns symmetric Hann coefficients of the given size.
// Size 1 is degenerate and rejected; windows start at two samples.
func Hann(size int) ([]float64, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size-1)))
	}

	return out, nil
}

// Hamming returns symmetric Hamming coefficients of the given size.
func Hamming(size int) ([]float64, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(size-1))
	}

	return out, nil
}

// Apply multiplies samples with coefficients and returns a new slice.
func Apply(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyInPlace multiplies samples with coefficients in place.
func ApplyInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

func validateSize(size int) error {
	if size < 2 {
		return fmt.Errorf("window size must be >= 2: %d", size)
	}

	return nil
}
