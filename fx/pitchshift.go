package fx

import (
	"math"

	"github.com/ed-devane/soniphorm-sub000/dsp/resample"
)

// PitchShift moves the region by a number of semitones while keeping
// its duration: stretch by the pitch ratio, resample back down, then
// pin the result to the original region length.
type PitchShift struct{}

// NewPitchShift returns the pitch-shift effect.
func NewPitchShift() *PitchShift {
	return &PitchShift{}
}

// Label implements Effect.
func (*PitchShift) Label() string { return "Pitch Shift" }

// Parameters implements Effect.
func (*PitchShift) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "semitones", Label: "Semitones", Unit: "st", Min: -24, Max: 24, Step: 1, Default: 0},
	}
}

// Process implements Effect. The stretched channel is a factor of
// pitchRatio longer; reading it back at pitchRatio times the rate
// restores the duration and transposes the content.
func (ps *PitchShift) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	p := Resolve(ps.Parameters(), values)
	semitones := math.Round(p.Num("semitones"))
	pitchRatio := math.Pow(2, semitones/12)

	regionLen := end - start
	region := make([][]float64, buf.NumChannels())
	for ch, data := range buf.Channels {
		stretched := stretchChannel(data[start:end], pitchRatio)
		shifted := resample.Linear(stretched, buf.SampleRate*pitchRatio, buf.SampleRate)
		region[ch] = fitLength(shifted, regionLen)
	}

	return Splice(buf, region, start, end), nil
}
