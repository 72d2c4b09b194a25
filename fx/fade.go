package fx

// FadeIn ramps the region linearly from zero to full level. Sample i of
// the region is scaled by i/regionLen, so the first sample is always
// silent and the last approaches unity.
type FadeIn struct{}

// NewFadeIn returns the fade-in effect.
func NewFadeIn() *FadeIn {
	return &FadeIn{}
}

// Label implements Effect.
func (*FadeIn) Label() string { return "Fade In" }

// Parameters implements Effect.
func (*FadeIn) Parameters() []ParameterSpec { return nil }

// Process implements Effect.
func (*FadeIn) Process(buf *Buffer, start, end int, _ Values) (*Buffer, error) {
	out := buf.Clone()
	regionLen := float64(end - start)
	for _, ch := range out.Channels {
		region := ch[start:end]
		for i := range region {
			region[i] *= float64(i) / regionLen
		}
	}

	return out, nil
}

// FadeOut ramps the region linearly from full level down to zero.
// Sample i of the region is scaled by (regionLen-i)/regionLen.
type FadeOut struct{}

// NewFadeOut returns the fade-out effect.
func NewFadeOut() *FadeOut {
	return &FadeOut{}
}

// Label implements Effect.
func (*FadeOut) Label() string { return "Fade Out" }

// Parameters implements Effect.
func (*FadeOut) Parameters() []ParameterSpec { return nil }

// Process implements Effect.
func (*FadeOut) Process(buf *Buffer, start, end int, _ Values) (*Buffer, error) {
	out := buf.Clone()
	regionLen := float64(end - start)
	for _, ch := range out.Channels {
		region := ch[start:end]
		for i := range region {
			region[i] *= (regionLen - float64(i)) / regionLen
		}
	}

	return out, nil
}
