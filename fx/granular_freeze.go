package fx

import (
	"math"
	"math/rand"

	"github.com/ed-devane/soniphorm-sub000/dsp/window"
)

// GranularFreeze rebuilds the region out of short Hann-windowed grains
// all sourced from a narrow neighborhood around one freeze point, so a
// single instant of the region is smeared across its whole length.
// Grain placements are drawn once and shared across channels.
type GranularFreeze struct {
	rng *rand.Rand
}

// NewGranularFreeze returns the granular freeze effect seeded with the
// given seed.
func NewGranularFreeze(seed int64) *GranularFreeze {
	return &GranularFreeze{rng: newRand(seed)}
}

// SetRandomSeed reseeds the effect's random stream.
func (g *GranularFreeze) SetRandomSeed(seed int64) {
	g.rng.Seed(seed)
}

// Label implements Effect.
func (*GranularFreeze) Label() string { return "Granular Freeze" }

// Parameters implements Effect.
func (*GranularFreeze) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "grain", Label: "Grain", Unit: "ms", Min: 20, Max: 500, Step: 1, Default: 120},
		{Key: "density", Label: "Density", Min: 0.5, Max: 8, Step: 0.1, Default: 2},
		{Key: "position", Label: "Position", Min: 0, Max: 1, Step: 0.01, Default: 0.5},
	}
}

// Process implements Effect. Source reads that fall outside the region
// are skipped sample by sample rather than zero-filled; destination
// writes past the region end are clipped. The result is scaled down if
// accumulation pushes its peak above 1.
func (g *GranularFreeze) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	p := Resolve(g.Parameters(), values)
	grainSamples := int(math.Round(p.Num("grain") / 1000 * buf.SampleRate))
	if grainSamples < 2 {
		grainSamples = 2
	}
	density := p.Num("density")
	position := p.Num("position")

	regionLen := end - start
	freezePoint := int(position * float64(regionLen))

	win, err := window.Hann(grainSamples)
	if err != nil {
		return nil, err
	}

	numGrains := int(density * math.Ceil(float64(regionLen)/float64(grainSamples)))

	type grain struct {
		srcStart, dstStart int
	}
	grains := make([]grain, numGrains)
	for i := range grains {
		jitter := int(math.Round((g.rng.Float64()*2 - 1) * float64(grainSamples) / 2))
		grains[i] = grain{
			srcStart: freezePoint + jitter,
			dstStart: g.rng.Intn(regionLen),
		}
	}

	region := make([][]float64, buf.NumChannels())
	for ch, data := range buf.Channels {
		src := data[start:end]
		out := make([]float64, regionLen)

		for _, gr := range grains {
			for j := 0; j < grainSamples; j++ {
				srcIdx := gr.srcStart + j
				if srcIdx < 0 || srcIdx >= regionLen {
					continue
				}
				dstIdx := gr.dstStart + j
				if dstIdx >= regionLen {
					break
				}
				out[dstIdx] += src[srcIdx] * win[j]
			}
		}
		region[ch] = out
	}

	if peak := peakOf(region); peak > 1 {
		scaleChannels(region, 1/peak)
	}

	return Splice(buf, region, start, end), nil
}
