package fx

import "math"

// RingMod multiplies the region by a sine carrier, blended with the dry
// signal by mix. The carrier phase restarts at the region start.
type RingMod struct{}

// NewRingMod returns the ring modulator effect.
func NewRingMod() *RingMod {
	return &RingMod{}
}

// Label implements Effect.
func (*RingMod) Label() string { return "Ring Mod" }

// Parameters implements Effect.
func (*RingMod) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "frequency", Label: "Frequency", Unit: "Hz", Min: 20, Max: 5000, Step: 1, Default: 440, Scale: ScaleLog},
		{Key: "mix", Label: "Mix", Min: 0, Max: 1, Step: 0.01, Default: 1},
	}
}

// Process implements Effect.
func (r *RingMod) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	p := Resolve(r.Parameters(), values)
	freq := p.Num("frequency")
	mix := p.Num("mix")

	step := 2 * math.Pi * freq / buf.SampleRate

	out := buf.Clone()
	for _, ch := range out.Channels {
		region := ch[start:end]
		for i, dry := range region {
			carrier := math.Sin(step * float64(i))
			region[i] = dry*(1-mix) + dry*carrier*mix
		}
	}

	return out, nil
}
