// Package resample provides sample-rate conversion for mono sample
// slices.
package resample

import "math"

// Linear converts input from one sample rate to another by blending each
// pair of neighboring source samples. Output positions that map past the
// final input sample clamp to it. Equal rates return a plain copy.
//
// Quality is adequate for effect pipelines operating on already
// band-limited material; there is no anti-aliasing filter.
func Linear(input []float64, fromRate, toRate float64) []float64 {
	if fromRate <= 0 || toRate <= 0 {
		panic("resample: sample rates must be positive")
	}

	if fromRate == toRate {
		out := make([]float64, len(input))
		copy(out, input)
		return out
	}

	ratio := fromRate / toRate
	outLen := int(math.Round(float64(len(input)) / ratio))
	out := make([]float64, outLen)
	if len(input) == 0 {
		return out
	}

	for i := range out {
		pos := float64(i) * ratio
		i0 := int(pos)
		i1 := i0 + 1
		if i1 >= len(input) {
			out[i] = input[len(input)-1]
			continue
		}

		frac := pos - float64(i0)
		out[i] = input[i0]*(1-frac) + input[i1]*frac
	}

	return out
}
