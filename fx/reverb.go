package fx

import (
	"fmt"
	"math"
	"math/rand"
)

// Reverb convolves the region with a synthetic exponentially decaying
// noise impulse response. Each channel gets its own noise so the tail
// decorrelates across the stereo field. The actual convolution runs in
// the rendering facility.
type Reverb struct {
	renderer Renderer
	rng      *rand.Rand
}

// NewReverb returns the reverb effect. renderer may be nil, in which
// case Process fails with ErrNoRenderer.
func NewReverb(renderer Renderer, seed int64) *Reverb {
	return &Reverb{renderer: renderer, rng: newRand(seed)}
}

// SetRandomSeed reseeds the effect's random stream.
func (r *Reverb) SetRandomSeed(seed int64) {
	r.rng.Seed(seed)
}

// Label implements Effect.
func (*Reverb) Label() string { return "Reverb" }

// Parameters implements Effect.
func (*Reverb) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "decay", Label: "Decay", Unit: "s", Min: 0.1, Max: 8, Step: 0.1, Default: 2},
		{Key: "mix", Label: "Mix", Min: 0, Max: 1, Step: 0.01, Default: 0.35},
	}
}

// Process implements Effect.
func (r *Reverb) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	if r.renderer == nil {
		return nil, ErrNoRenderer
	}

	p := Resolve(r.Parameters(), values)
	decay := p.Num("decay")
	mix := p.Num("mix")

	irLen := int(buf.SampleRate * decay)
	if irLen < 1 {
		irLen = 1
	}

	ir := &Buffer{Channels: make([][]float64, buf.NumChannels()), SampleRate: buf.SampleRate}
	for ch := range ir.Channels {
		ir.Channels[ch] = r.impulseResponse(irLen)
	}

	dry := regionBuffer(buf, start, end)
	wet, err := r.renderer.RenderIR(dry, ir)
	if err != nil {
		return nil, fmt.Errorf("%w: reverb: %w", ErrRendering, err)
	}

	out := buf.Clone()
	for ch, data := range out.Channels {
		region := data[start:end]
		for i := range region {
			region[i] = region[i]*(1-mix) + wet.Channels[ch][i]*mix
		}
	}

	return out, nil
}

// impulseResponse generates decaying white noise reaching -26 dB at the
// tail (e^-3).
func (r *Reverb) impulseResponse(length int) []float64 {
	ir := make([]float64, length)
	for i := range ir {
		ir[i] = (r.rng.Float64()*2 - 1) * math.Exp(-3*float64(i)/float64(length))
	}

	return ir
}
