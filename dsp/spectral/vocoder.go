package spectral

import "math"

// VocoderState tracks per-bin phase across analysis frames so spectra can
// be resynthesized at a different hop without smearing transients. One
// state belongs to exactly one overlap-add run; reuse across runs requires
// Reset.
type VocoderState struct {
	frameSize  int
	prevPhase  []float64
	phaseAccum []float64
	primed     bool
}

// NewVocoderState returns phase-tracking state for frames of the given
// power-of-two size.
func NewVocoderState(frameSize int) *VocoderState {
	if frameSize < 2 || !isPow2(frameSize) {
		panic("spectral: frame size must be a power of two >= 2")
	}

	bins := frameSize/2 + 1

	return &VocoderState{
		frameSize:  frameSize,
		prevPhase:  make([]float64, bins),
		phaseAccum: make([]float64, bins),
	}
}

// Step rewrites the frame in place with phase-corrected bins for the given
// analysis/synthesis hop pair. For every bin of the lower spectrum the
// deviation of the measured phase advance from the expected advance at the
// bin's center frequency is wrapped to [-pi, pi], the corrected frequency
// is integrated into the accumulator scaled by hopOut/hopIn, and the bin
// is rebuilt from its magnitude at the accumulated phase. The upper bins
// are mirrored as conjugates so the inverse transform stays real-valued.
//
// The first frame seeds the accumulator with the measured phase.
func (s *VocoderState) Step(re, im []float64, hopIn, hopOut int) {
	n := s.frameSize
	if len(re) != n || len(im) != n {
		panic("spectral: frame length does not match vocoder state")
	}

	half := n / 2
	for k := 0; k <= half; k++ {
		magnitude := math.Hypot(re[k], im[k])
		phase := math.Atan2(im[k], re[k])

		if !s.primed {
			s.phaseAccum[k] = phase
		} else {
			expected := float64(k) * 2 * math.Pi * float64(hopIn) / float64(n)
			deviation := wrapPhase(phase - s.prevPhase[k] - expected)
			trueFreq := expected + deviation
			s.phaseAccum[k] += trueFreq * float64(hopOut) / float64(hopIn)
		}
		s.prevPhase[k] = phase

		re[k] = magnitude * math.Cos(s.phaseAccum[k])
		im[k] = magnitude * math.Sin(s.phaseAccum[k])
	}

	for k := half; k < n; k++ {
		src := n - k
		re[k] = re[src]
		im[k] = -im[src]
	}

	s.primed = true
}

// Reset clears the accumulated phase so the state can drive a fresh run.
func (s *VocoderState) Reset() {
	for i := range s.phaseAccum {
		s.prevPhase[i] = 0
		s.phaseAccum[i] = 0
	}
	s.primed = false
}

// wrapPhase maps x into [-pi, pi].
func wrapPhase(x float64) float64 {
	x = math.Mod(x+math.Pi, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}

	return x - math.Pi
}
