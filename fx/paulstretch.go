package fx

import (
	"math"
	"math/rand"

	"github.com/ed-devane/soniphorm-sub000/dsp/spectral"
)

// PaulStretch performs extreme time stretching: every analysis frame's
// phase is replaced with fresh uniform noise while magnitudes are kept,
// which smears transients into a continuous wash. Stretch factors far
// beyond the phase vocoder's useful range stay artifact-free.
type PaulStretch struct {
	rng *rand.Rand
}

// NewPaulStretch returns the paulstretch effect seeded with the given
// seed.
func NewPaulStretch(seed int64) *PaulStretch {
	return &PaulStretch{rng: newRand(seed)}
}

// SetRandomSeed reseeds the effect's random stream.
func (p *PaulStretch) SetRandomSeed(seed int64) {
	p.rng.Seed(seed)
}

// Label implements Effect.
func (*PaulStretch) Label() string { return "Paulstretch" }

// Parameters implements Effect.
func (*PaulStretch) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "stretch", Label: "Stretch", Min: 1, Max: 50, Step: 0.5, Default: 8},
		{Key: "window", Label: "Window", Unit: "s", Min: 0.05, Max: 1, Step: 0.05, Default: 0.25},
	}
}

// Process implements Effect. The window size rounds up to a power of
// two; analysis advances by windowSize/stretch while synthesis always
// overlaps at half the window, so the output grows by roughly
// stretch/2. The final buffer is scaled down if its peak exceeds 1.
func (p *PaulStretch) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	params := Resolve(p.Parameters(), values)
	stretch := params.Num("stretch")
	windowSeconds := params.Num("window")

	frameSize := spectral.NextPow2(int(math.Round(windowSeconds * buf.SampleRate)))
	if frameSize < 2 {
		frameSize = 2
	}
	hopIn := int(math.Round(float64(frameSize) / stretch))
	if hopIn < 1 {
		hopIn = 1
	}
	hopOut := frameSize / 2

	region := make([][]float64, buf.NumChannels())
	for ch, data := range buf.Channels {
		region[ch] = spectral.OverlapAdd(data[start:end], frameSize, hopIn, hopOut, func(re, im []float64, _ int) {
			for k := range re {
				magnitude := math.Hypot(re[k], im[k])
				phase := p.rng.Float64() * 2 * math.Pi
				re[k] = magnitude * math.Cos(phase)
				im[k] = magnitude * math.Sin(phase)
			}
		})
	}

	if peak := peakOf(region); peak > 1 {
		scaleChannels(region, 1/peak)
	}

	return Splice(buf, region, start, end), nil
}
