package fx

import (
	"math"

	"github.com/ed-devane/soniphorm-sub000/dsp/spectral"
)

// Frame geometry shared by the phase-vocoder effects.
const (
	stretchFrameSize = 2048
	stretchHopIn     = 512
)

// stretchChannel time-stretches one channel by factor: analysis hops
// advance by stretchHopIn, synthesis hops by round(stretchHopIn*factor),
// with phase-vocoder correction keeping bins coherent. Inputs shorter
// than one frame come back empty.
func stretchChannel(samples []float64, factor float64) []float64 {
	hopOut := int(math.Round(stretchHopIn * factor))
	if hopOut < 1 {
		hopOut = 1
	}

	state := spectral.NewVocoderState(stretchFrameSize)

	return spectral.OverlapAdd(samples, stretchFrameSize, stretchHopIn, hopOut, func(re, im []float64, _ int) {
		state.Step(re, im, stretchHopIn, hopOut)
	})
}

// fitLength trims or zero-pads samples to exactly n.
func fitLength(samples []float64, n int) []float64 {
	if len(samples) >= n {
		return samples[:n]
	}

	return append(samples, make([]float64, n-len(samples))...)
}

// TimeStretch changes the region's duration without changing its pitch.
// rate is the duration multiplier: 2 doubles the region length, 0.5
// halves it.
type TimeStretch struct{}

// NewTimeStretch returns the time-stretch effect.
func NewTimeStretch() *TimeStretch {
	return &TimeStretch{}
}

// Label implements Effect.
func (*TimeStretch) Label() string { return "Timestretch" }

// Parameters implements Effect.
func (*TimeStretch) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "rate", Label: "Rate", Min: 0.25, Max: 4, Step: 0.01, Default: 1, Scale: ScaleLog},
	}
}

// Process implements Effect.
func (t *TimeStretch) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	p := Resolve(t.Parameters(), values)
	rate := p.Num("rate")

	region := make([][]float64, buf.NumChannels())
	for ch, data := range buf.Channels {
		region[ch] = stretchChannel(data[start:end], rate)
	}

	return Splice(buf, region, start, end), nil
}
