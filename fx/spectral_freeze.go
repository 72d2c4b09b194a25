package fx

import (
	"math"
	"math/rand"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/ed-devane/soniphorm-sub000/dsp/spectral"
	"github.com/ed-devane/soniphorm-sub000/dsp/window"
)

// Frame geometry for the spectral freeze.
const (
	freezeFrameSize = 2048
	freezeHop       = 512
)

// SpectralFreeze holds one magnitude spectrum captured at the freeze
// point and resynthesizes the whole region from it. Per frame, each
// bin's phase drifts toward a fresh random target at rate 1-smoothing:
// smoothing near 1 keeps the texture almost static, smoothing near 0
// re-randomizes every frame into a shimmering blur.
type SpectralFreeze struct {
	rng *rand.Rand
}

// NewSpectralFreeze returns the spectral freeze effect seeded with the
// given seed.
func NewSpectralFreeze(seed int64) *SpectralFreeze {
	return &SpectralFreeze{rng: newRand(seed)}
}

// SetRandomSeed reseeds the effect's random stream.
func (s *SpectralFreeze) SetRandomSeed(seed int64) {
	s.rng.Seed(seed)
}

// Label implements Effect.
func (*SpectralFreeze) Label() string { return "Spectral Freeze" }

// Parameters implements Effect.
func (*SpectralFreeze) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "smoothing", Label: "Smoothing", Min: 0, Max: 1, Step: 0.01, Default: 0.8},
		{Key: "position", Label: "Position", Min: 0, Max: 1, Step: 0.01, Default: 0},
	}
}

// Process implements Effect. The overlap-add pass analyzes the region
// frame by frame but discards each analysis spectrum, substituting the
// frozen magnitudes at the drifting phases. The result is scaled down
// if its peak exceeds 1.
func (s *SpectralFreeze) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	p := Resolve(s.Parameters(), values)
	smoothing := p.Num("smoothing")
	position := p.Num("position")

	regionLen := end - start
	maxOffset := regionLen - freezeFrameSize
	if maxOffset < 0 {
		maxOffset = 0
	}
	freezeOffset := int(position * float64(maxOffset))

	region := make([][]float64, buf.NumChannels())
	for ch, data := range buf.Channels {
		src := data[start:end]
		magnitude, phase := s.captureSpectrum(src, freezeOffset)

		region[ch] = spectral.OverlapAdd(src, freezeFrameSize, freezeHop, freezeHop, func(re, im []float64, _ int) {
			for k := range re {
				target := s.rng.Float64() * 2 * math.Pi
				phase[k] += (target - phase[k]) * (1 - smoothing)
				re[k] = magnitude[k] * math.Cos(phase[k])
				im[k] = magnitude[k] * math.Sin(phase[k])
			}
		})
	}

	if peak := peakOf(region); peak > 1 {
		scaleChannels(region, 1/peak)
	}

	return Splice(buf, region, start, end), nil
}

// captureSpectrum windows and transforms one frame at the freeze
// offset, zero-extending past the region end.
func (s *SpectralFreeze) captureSpectrum(src []float64, offset int) (magnitude, phase []float64) {
	re := make([]float64, freezeFrameSize)
	im := make([]float64, freezeFrameSize)
	for i := range re {
		if offset+i < len(src) {
			re[i] = src[offset+i]
		}
	}

	coeffs, err := window.Hann(freezeFrameSize)
	if err != nil {
		panic("fx: " + err.Error())
	}
	vecmath.MulBlockInPlace(re, coeffs)

	spectral.Forward(re, im)

	magnitude = make([]float64, freezeFrameSize)
	phase = make([]float64, freezeFrameSize)
	for k := range re {
		magnitude[k] = math.Hypot(re[k], im[k])
		phase[k] = math.Atan2(im[k], re[k])
	}

	return magnitude, phase
}
