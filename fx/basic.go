package fx

// Bounce copies the region unchanged. Applying it commits a region
// as-is, which is useful for flattening preview state destructively.
type Bounce struct{}

// NewBounce returns the identity effect.
func NewBounce() *Bounce {
	return &Bounce{}
}

// Label implements Effect.
func (*Bounce) Label() string { return "Bounce" }

// Parameters implements Effect.
func (*Bounce) Parameters() []ParameterSpec { return nil }

// Process implements Effect.
func (*Bounce) Process(buf *Buffer, start, end int, _ Values) (*Buffer, error) {
	return buf.Clone(), nil
}

// Silence zeroes the region.
type Silence struct{}

// NewSilence returns the silence effect.
func NewSilence() *Silence {
	return &Silence{}
}

// Label implements Effect.
func (*Silence) Label() string { return "Silence" }

// Parameters implements Effect.
func (*Silence) Parameters() []ParameterSpec { return nil }

// Process implements Effect.
func (*Silence) Process(buf *Buffer, start, end int, _ Values) (*Buffer, error) {
	out := buf.Clone()
	for _, ch := range out.Channels {
		region := ch[start:end]
		for i := range region {
			region[i] = 0
		}
	}

	return out, nil
}

// Reverse flips the region back to front.
type Reverse struct{}

// NewReverse returns the reverse effect.
func NewReverse() *Reverse {
	return &Reverse{}
}

// Label implements Effect.
func (*Reverse) Label() string { return "Reverse" }

// Parameters implements Effect.
func (*Reverse) Parameters() []ParameterSpec { return nil }

// Process implements Effect.
func (*Reverse) Process(buf *Buffer, start, end int, _ Values) (*Buffer, error) {
	out := buf.Clone()
	for _, ch := range out.Channels {
		region := ch[start:end]
		for i, j := 0, len(region)-1; i < j; i, j = i+1, j-1 {
			region[i], region[j] = region[j], region[i]
		}
	}

	return out, nil
}

// Trim discards everything outside the region; the result contains only
// [start, end). It is the one effect whose output intentionally ignores
// the splice protocol.
type Trim struct{}

// NewTrim returns the trim effect.
func NewTrim() *Trim {
	return &Trim{}
}

// Label implements Effect.
func (*Trim) Label() string { return "Trim" }

// Parameters implements Effect.
func (*Trim) Parameters() []ParameterSpec { return nil }

// Process implements Effect.
func (*Trim) Process(buf *Buffer, start, end int, _ Values) (*Buffer, error) {
	return &Buffer{Channels: copyRegion(buf, start, end), SampleRate: buf.SampleRate}, nil
}
