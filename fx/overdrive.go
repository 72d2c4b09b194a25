package fx

import "math"

// Overdrive range of the tone control's one-pole lowpass cutoff.
const (
	overdriveToneMin = 200.0
	overdriveToneMax = 20000.0
)

// Overdrive shapes the region through tanh saturation followed by a
// one-pole lowpass whose cutoff is swept by the tone control.
type Overdrive struct{}

// NewOverdrive returns the overdrive effect.
func NewOverdrive() *Overdrive {
	return &Overdrive{}
}

// Label implements Effect.
func (*Overdrive) Label() string { return "Overdrive" }

// Parameters implements Effect.
func (*Overdrive) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "drive", Label: "Drive", Min: 0, Max: 40, Step: 0.1, Default: 10},
		{Key: "tone", Label: "Tone", Min: 0, Max: 1, Step: 0.01, Default: 0.5},
	}
}

// Process implements Effect. tone sweeps the cutoff logarithmically
// from 200 Hz to 20 kHz; drive 0 collapses to silence through the tanh.
func (o *Overdrive) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	p := Resolve(o.Parameters(), values)
	drive := p.Num("drive")
	tone := p.Num("tone")

	cutoff := overdriveToneMin * math.Pow(overdriveToneMax/overdriveToneMin, tone)
	rc := 1 / (2 * math.Pi * cutoff)
	dt := 1 / buf.SampleRate
	alpha := dt / (rc + dt)

	out := buf.Clone()
	for _, ch := range out.Channels {
		region := ch[start:end]

		last := 0.0
		for i, dry := range region {
			shaped := math.Tanh(dry * drive)
			last += alpha * (shaped - last)
			region[i] = last
		}
	}

	return out, nil
}
