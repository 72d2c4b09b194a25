package spectral

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/ed-devane/soniphorm-sub000/dsp/window"
)

// Accumulated window energy below this is treated as silence during
// normalization.
const negligibleEnergy = 1e-8

// FrameFunc mutates one spectral frame in place. re and im hold the
// frequency-domain coefficients of the current analysis frame.
type FrameFunc func(re, im []float64, frame int)

// OverlapAdd runs the windowed analysis/resynthesis loop: slice the input
// into Hann-windowed frames every hopIn samples, transform each, hand the
// spectrum to fn, inverse-transform, window again, and accumulate the
// result every hopOut samples. The accumulated window energy is divided
// out afterwards so overlapping regions come back at unit gain.
//
// Inputs shorter than one frame produce an empty slice. frameSize must be
// a power of two >= 2 and both hops must be positive; violations are
// engine bugs and panic.
func OverlapAdd(input []float64, frameSize, hopIn, hopOut int, fn FrameFunc) []float64 {
	if frameSize < 2 || !isPow2(frameSize) {
		panic("spectral: frame size must be a power of two >= 2")
	}
	if hopIn < 1 || hopOut < 1 {
		panic("spectral: hop sizes must be positive")
	}

	if len(input) < frameSize {
		return []float64{}
	}

	numFrames := (len(input)-frameSize)/hopIn + 1
	outLen := (numFrames-1)*hopOut + frameSize
	out := make([]float64, outLen)
	norm := make([]float64, outLen)
	win := mustHann(frameSize)

	re := make([]float64, frameSize)
	im := make([]float64, frameSize)

	for frame := range numFrames {
		offset := frame * hopIn
		for i := range frameSize {
			if offset+i < len(input) {
				re[i] = input[offset+i]
			} else {
				re[i] = 0
			}
			im[i] = 0
		}
		vecmath.MulBlockInPlace(re, win)

		Forward(re, im)
		if fn != nil {
			fn(re, im, frame)
		}
		Inverse(re, im)

		vecmath.MulBlockInPlace(re, win)

		outOffset := frame * hopOut
		for i := range frameSize {
			out[outOffset+i] += re[i]
			norm[outOffset+i] += win[i] * win[i]
		}
	}

	normalizeByWindowEnergy(out, norm)

	return out
}

// normalizeByWindowEnergy divides the accumulated signal by the accumulated
// squared-window weight. Edge samples covered by fewer frames carry less
// energy than the steady state; those below half the peak energy are faded
// by energy/threshold instead of fully boosted, and near-silent samples are
// zeroed outright.
func normalizeByWindowEnergy(out, norm []float64) {
	maxEnergy := 0.0
	for _, e := range norm {
		if e > maxEnergy {
			maxEnergy = e
		}
	}
	if maxEnergy <= 0 {
		return
	}

	threshold := 0.5 * maxEnergy
	for i, energy := range norm {
		if energy < negligibleEnergy {
			out[i] = 0
			continue
		}

		out[i] /= energy
		if energy < threshold {
			out[i] *= energy / threshold
		}
	}
}

func mustHann(size int) []float64 {
	coeffs, err := window.Hann(size)
	if err != nil {
		panic("spectral: " + err.Error())
	}

	return coeffs
}
