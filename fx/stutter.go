package fx

import (
	"math"
	"math/rand"
)

// Stutter rebuilds the region out of repeated slices: each source slice
// is written, then repeated, with the read position advancing at
// 1/repeats of the write position. Scatter randomly drops individual
// repeats, leaving silent gaps. Skip decisions are drawn once and
// shared across channels so stereo material stays coherent.
type Stutter struct {
	rng *rand.Rand
}

// NewStutter returns the stutter effect seeded with the given seed.
func NewStutter(seed int64) *Stutter {
	return &Stutter{rng: newRand(seed)}
}

// SetRandomSeed reseeds the effect's random stream.
func (s *Stutter) SetRandomSeed(seed int64) {
	s.rng.Seed(seed)
}

// Label implements Effect.
func (*Stutter) Label() string { return "Stutter" }

// Parameters implements Effect.
func (*Stutter) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "slice", Label: "Slice", Unit: "ms", Min: 10, Max: 500, Step: 1, Default: 80},
		{Key: "repeats", Label: "Repeats", Min: 1, Max: 8, Step: 1, Default: 3},
		{Key: "scatter", Label: "Scatter", Min: 0, Max: 1, Step: 0.01, Default: 0.2},
	}
}

// Process implements Effect. The output region keeps its length: writes
// stop at the region end, so later source slices fall away as repeats
// climb. The first write of every slice is never scattered.
func (s *Stutter) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	p := Resolve(s.Parameters(), values)
	sliceSamples := int(math.Round(p.Num("slice") / 1000 * buf.SampleRate))
	if sliceSamples < 1 {
		sliceSamples = 1
	}
	repeats := int(math.Round(p.Num("repeats")))
	if repeats < 1 {
		repeats = 1
	}
	scatter := p.Num("scatter")

	regionLen := end - start

	// Plan the writes first so every channel shares one skip pattern.
	type write struct {
		srcStart, dstStart, length int
		skip                       bool
	}
	var writes []write

	dst := 0
	for src := 0; src < regionLen && dst < regionLen; src += sliceSamples {
		length := min(sliceSamples, regionLen-src)

		for r := 0; r < repeats && dst < regionLen; r++ {
			skip := r > 0 && s.rng.Float64() < scatter
			writes = append(writes, write{
				srcStart: src,
				dstStart: dst,
				length:   min(length, regionLen-dst),
				skip:     skip,
			})
			dst += length
		}
	}

	out := buf.Clone()
	for _, ch := range out.Channels {
		region := ch[start:end]
		scratch := make([]float64, regionLen)

		for _, w := range writes {
			if w.skip {
				continue
			}
			copy(scratch[w.dstStart:w.dstStart+w.length], region[w.srcStart:w.srcStart+w.length])
		}

		copy(region, scratch)
	}

	return out, nil
}
