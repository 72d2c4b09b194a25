package fx

import "fmt"

const (
	// convolveMaxIRSeconds caps how much of the source buffer is used
	// as an impulse response.
	convolveMaxIRSeconds = 3.0

	// sourcePeakTarget is the peak the cross-buffer effects normalize
	// their output to.
	sourcePeakTarget = 0.9
)

// Convolve uses a second buffer as an impulse response for the region.
// Long sources are truncated to three seconds before rendering, and
// the result is normalized to 0.9 peak because arbitrary IRs can swing
// the level wildly in both directions.
type Convolve struct {
	renderer Renderer
}

// NewConvolve returns the convolve effect. renderer may be nil, in
// which case processing fails with ErrNoRenderer.
func NewConvolve(renderer Renderer) *Convolve {
	return &Convolve{renderer: renderer}
}

// Label implements Effect.
func (*Convolve) Label() string { return "Convolve" }

// Parameters implements Effect.
func (*Convolve) Parameters() []ParameterSpec { return nil }

// Process implements Effect; convolve always needs a source buffer.
func (*Convolve) Process(*Buffer, int, int, Values) (*Buffer, error) {
	return nil, ErrNoSource
}

// ProcessWithSource implements SourceEffect.
func (c *Convolve) ProcessWithSource(buf, source *Buffer, start, end int, _ Values) (*Buffer, error) {
	if source == nil || source.Len() == 0 {
		return nil, ErrNoSource
	}
	if c.renderer == nil {
		return nil, ErrNoRenderer
	}

	maxIR := int(convolveMaxIRSeconds * buf.SampleRate)
	ir := &Buffer{Channels: make([][]float64, source.NumChannels()), SampleRate: source.SampleRate}
	for ch, data := range source.Channels {
		n := min(len(data), maxIR)
		ir.Channels[ch] = append([]float64(nil), data[:n]...)
	}

	dry := regionBuffer(buf, start, end)
	wet, err := c.renderer.RenderIR(dry, ir)
	if err != nil {
		return nil, fmt.Errorf("%w: convolve: %w", ErrRendering, err)
	}

	if peak := peakOf(wet.Channels); peak > 0 {
		scaleChannels(wet.Channels, sourcePeakTarget/peak)
	}

	out := buf.Clone()
	for ch, data := range out.Channels {
		copy(data[start:end], wet.Channels[ch])
	}

	return out, nil
}
