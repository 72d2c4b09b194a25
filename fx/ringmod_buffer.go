package fx

// RingModBuffer multiplies the region sample-by-sample with a second
// buffer, wrapping the modulator by modulo when it is shorter than the
// region. Modulator channels wrap the same way when the source has
// fewer channels than the target.
type RingModBuffer struct{}

// NewRingModBuffer returns the buffer ring modulator.
func NewRingModBuffer() *RingModBuffer {
	return &RingModBuffer{}
}

// Label implements Effect.
func (*RingModBuffer) Label() string { return "Ring Mod (Buffer)" }

// Parameters implements Effect.
func (*RingModBuffer) Parameters() []ParameterSpec { return nil }

// Process implements Effect; ring modulation by buffer always needs a
// source.
func (*RingModBuffer) Process(*Buffer, int, int, Values) (*Buffer, error) {
	return nil, ErrNoSource
}

// ProcessWithSource implements SourceEffect.
func (*RingModBuffer) ProcessWithSource(buf, source *Buffer, start, end int, _ Values) (*Buffer, error) {
	if source == nil || source.Len() == 0 {
		return nil, ErrNoSource
	}

	modLen := source.Len()

	out := buf.Clone()
	for ch, data := range out.Channels {
		mod := source.Channels[ch%source.NumChannels()]
		region := data[start:end]
		for i := range region {
			region[i] *= mod[i%modLen]
		}
	}

	return out, nil
}
