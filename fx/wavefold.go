package fx

import "github.com/ed-devane/soniphorm-sub000/dsp/core"

// WaveFold drives the region into a fold-back waveshaper: samples are
// amplified, then reflected around the threshold until they fit inside
// it, then clamped to [-1, 1].
type WaveFold struct{}

// NewWaveFold returns the wavefolder effect.
func NewWaveFold() *WaveFold {
	return &WaveFold{}
}

// Label implements Effect.
func (*WaveFold) Label() string { return "Wavefold" }

// Parameters implements Effect.
func (*WaveFold) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "gain", Label: "Gain", Min: 1, Max: 20, Step: 0.1, Default: 4},
		{Key: "threshold", Label: "Threshold", Min: 0.1, Max: 1, Step: 0.01, Default: 0.6},
	}
}

// Process implements Effect. High gain values need several reflections
// per sample before the value settles inside the threshold.
func (w *WaveFold) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	p := Resolve(w.Parameters(), values)
	gain := p.Num("gain")
	threshold := p.Num("threshold")

	out := buf.Clone()
	for _, ch := range out.Channels {
		region := ch[start:end]
		for i, dry := range region {
			v := dry * gain
			for v > threshold || v < -threshold {
				if v > threshold {
					v = 2*threshold - v
				} else {
					v = -2*threshold - v
				}
			}
			region[i] = core.Clamp(v, -1, 1)
		}
	}

	return out, nil
}
