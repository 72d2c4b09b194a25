// Package render implements the offline rendering facility consumed by
// the effect catalog: impulse-response convolution and biquad filtering
// over whole buffers. Results always match the input length, and inputs
// are never mutated.
package render

import (
	"errors"
	"fmt"

	"github.com/ed-devane/soniphorm-sub000/dsp/conv"
	"github.com/ed-devane/soniphorm-sub000/dsp/filter/biquad"
	"github.com/ed-devane/soniphorm-sub000/fx"
)

// Engine renders buffers offline. The zero value is ready to use.
type Engine struct{}

// New returns a rendering engine.
func New() *Engine {
	return &Engine{}
}

// RenderIR convolves buf with ir channel by channel and returns a
// buffer of exactly buf's length; the convolution tail beyond that is
// dropped. When the IR has fewer channels than buf, IR channels wrap
// around by modulo.
func (e *Engine) RenderIR(buf, ir *fx.Buffer) (*fx.Buffer, error) {
	if buf == nil || buf.NumChannels() == 0 || buf.Len() == 0 {
		return nil, errors.New("render: empty input buffer")
	}
	if ir == nil || ir.NumChannels() == 0 || ir.Len() == 0 {
		return nil, errors.New("render: empty impulse response")
	}

	out := make([][]float64, buf.NumChannels())
	for ch, data := range buf.Channels {
		kernel := ir.Channels[ch%ir.NumChannels()]

		full, err := conv.Convolve(data, kernel)
		if err != nil {
			return nil, fmt.Errorf("render: convolution failed: %w", err)
		}
		out[ch] = full[:len(data)]
	}

	return &fx.Buffer{Channels: out, SampleRate: buf.SampleRate}, nil
}

// RenderFilter runs the designed biquad over a copy of every channel.
func (e *Engine) RenderFilter(buf *fx.Buffer, spec fx.FilterSpec) (*fx.Buffer, error) {
	if buf == nil || buf.NumChannels() == 0 || buf.Len() == 0 {
		return nil, errors.New("render: empty input buffer")
	}

	coeffs, err := design(spec, buf.SampleRate)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, buf.NumChannels())
	for ch, data := range buf.Channels {
		section := biquad.NewSection(coeffs)
		out[ch] = append([]float64(nil), data...)
		section.ProcessBlock(out[ch])
	}

	return &fx.Buffer{Channels: out, SampleRate: buf.SampleRate}, nil
}

// design maps a FilterSpec onto RBJ coefficients. Frequencies outside
// (0, Nyquist) and unknown types are rejected rather than rendered as
// silence.
func design(spec fx.FilterSpec, sampleRate float64) (biquad.Coefficients, error) {
	if !(spec.Frequency > 0 && spec.Frequency < sampleRate/2) {
		return biquad.Coefficients{}, fmt.Errorf("render: filter frequency %g out of range for sample rate %g", spec.Frequency, sampleRate)
	}

	switch spec.Type {
	case fx.FilterLowpass:
		return biquad.Lowpass(spec.Frequency, spec.Q, sampleRate), nil
	case fx.FilterHighpass:
		return biquad.Highpass(spec.Frequency, spec.Q, sampleRate), nil
	case fx.FilterBandpass:
		return biquad.Bandpass(spec.Frequency, spec.Q, sampleRate), nil
	case fx.FilterNotch:
		return biquad.Notch(spec.Frequency, spec.Q, sampleRate), nil
	default:
		return biquad.Coefficients{}, fmt.Errorf("render: unknown filter type %q", spec.Type)
	}
}
