package fx

import "math"

// Delay runs a feedback delay line over the region. The line is sized
// to the region, so echoes die at the region boundary instead of
// spilling into the rest of the buffer.
type Delay struct{}

// NewDelay returns the delay effect.
func NewDelay() *Delay {
	return &Delay{}
}

// Label implements Effect.
func (*Delay) Label() string { return "Delay" }

// Parameters implements Effect.
func (*Delay) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "time", Label: "Time", Unit: "s", Min: 0.01, Max: 2, Step: 0.01, Default: 0.35},
		{Key: "feedback", Label: "Feedback", Min: 0, Max: 0.95, Step: 0.01, Default: 0.4},
		{Key: "mix", Label: "Mix", Min: 0, Max: 1, Step: 0.01, Default: 0.5},
	}
}

// Process implements Effect. Each channel gets its own delay line:
// reads before the line start stay silent, and every tap is written
// back with feedback so repeats decay geometrically. A delay time
// longer than the region leaves the region dry apart from the mix
// attenuation.
func (d *Delay) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	p := Resolve(d.Parameters(), values)
	delaySamples := int(math.Round(p.Num("time") * buf.SampleRate))
	feedback := p.Num("feedback")
	mix := p.Num("mix")

	out := buf.Clone()
	for _, ch := range out.Channels {
		region := ch[start:end]
		line := make([]float64, len(region))

		for i, dry := range region {
			delayed := 0.0
			if i-delaySamples >= 0 {
				delayed = line[i-delaySamples]
			}
			line[i] = dry + delayed*feedback
			region[i] = dry*(1-mix) + delayed*mix
		}
	}

	return out, nil
}
