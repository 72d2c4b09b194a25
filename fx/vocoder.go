package fx

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/ed-devane/soniphorm-sub000/dsp/spectral"
	"github.com/ed-devane/soniphorm-sub000/dsp/window"
)

// Frame geometry for the vocoder.
const (
	vocoderFrameSize = 1024
	vocoderHop       = 256
)

// vocoderEpsilon guards the magnitude rescale against division by a
// near-silent carrier bin.
const vocoderEpsilon = 1e-10

// Vocoder imposes a modulator buffer's spectral envelope onto the
// region: per analysis frame, every carrier bin's magnitude is rescaled
// to the modulator's magnitude at that bin while the carrier's phase is
// kept. The modulator is read time-aligned with the carrier, wrapping
// by modulo when shorter.
type Vocoder struct{}

// NewVocoder returns the vocoder effect.
func NewVocoder() *Vocoder {
	return &Vocoder{}
}

// Label implements Effect.
func (*Vocoder) Label() string { return "Vocoder" }

// Parameters implements Effect.
func (*Vocoder) Parameters() []ParameterSpec { return nil }

// Process implements Effect; the vocoder always needs a source buffer.
func (*Vocoder) Process(*Buffer, int, int, Values) (*Buffer, error) {
	return nil, ErrNoSource
}

// ProcessWithSource implements SourceEffect. Near-silent carrier bins
// keep their own magnitude so the rescale never divides by zero. The
// output is normalized to 0.9 peak.
func (*Vocoder) ProcessWithSource(buf, source *Buffer, start, end int, _ Values) (*Buffer, error) {
	if source == nil || source.Len() == 0 {
		return nil, ErrNoSource
	}

	win, err := window.Hann(vocoderFrameSize)
	if err != nil {
		return nil, err
	}

	modRe := make([]float64, vocoderFrameSize)
	modIm := make([]float64, vocoderFrameSize)

	region := make([][]float64, buf.NumChannels())
	for ch, data := range buf.Channels {
		mod := source.Channels[ch%source.NumChannels()]
		modLen := len(mod)

		region[ch] = spectral.OverlapAdd(data[start:end], vocoderFrameSize, vocoderHop, vocoderHop, func(re, im []float64, frame int) {
			offset := frame * vocoderHop
			for i := range modRe {
				modRe[i] = mod[(offset+i)%modLen]
				modIm[i] = 0
			}
			vecmath.MulBlockInPlace(modRe, win)
			spectral.Forward(modRe, modIm)

			for k := range re {
				carrierMag := math.Hypot(re[k], im[k])
				if carrierMag < vocoderEpsilon {
					continue
				}
				scale := math.Hypot(modRe[k], modIm[k]) / carrierMag
				re[k] *= scale
				im[k] *= scale
			}
		})
	}

	if peak := peakOf(region); peak > 0 {
		scaleChannels(region, sourcePeakTarget/peak)
	}

	return Splice(buf, region, start, end), nil
}
