package fx

import "fmt"

// Filter replaces the region with a biquad-filtered rendering. The
// filter itself runs in the rendering facility; this effect just
// translates parameters into a FilterSpec.
type Filter struct {
	renderer Renderer
}

// NewFilter returns the filter effect. renderer may be nil, in which
// case Process fails with ErrNoRenderer.
func NewFilter(renderer Renderer) *Filter {
	return &Filter{renderer: renderer}
}

// Label implements Effect.
func (*Filter) Label() string { return "Filter" }

// Parameters implements Effect.
func (*Filter) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{
			Key:           "type",
			Label:         "Type",
			Options:       []string{"lowpass", "highpass", "bandpass", "notch"},
			DefaultOption: "lowpass",
		},
		{Key: "frequency", Label: "Frequency", Unit: "Hz", Min: 20, Max: 20000, Step: 1, Default: 1000, Scale: ScaleLog},
		{Key: "q", Label: "Q", Min: 0.1, Max: 20, Step: 0.1, Default: 0.707},
	}
}

// Process implements Effect. The rendered result replaces the region
// one-to-one; there is no dry/wet blend.
func (f *Filter) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	if f.renderer == nil {
		return nil, ErrNoRenderer
	}

	p := Resolve(f.Parameters(), values)
	spec := FilterSpec{
		Type:      FilterType(p.Str("type")),
		Frequency: p.Num("frequency"),
		Q:         p.Num("q"),
	}

	dry := regionBuffer(buf, start, end)
	wet, err := f.renderer.RenderFilter(dry, spec)
	if err != nil {
		return nil, fmt.Errorf("%w: filter: %w", ErrRendering, err)
	}

	out := buf.Clone()
	for ch, data := range out.Channels {
		copy(data[start:end], wet.Channels[ch])
	}

	return out, nil
}
