package fx

import "math"

// Bitcrush quantizes the region to a reduced bit depth and holds each
// quantized value across several output positions for a sample-rate
// reduction flavor.
type Bitcrush struct{}

// NewBitcrush returns the bitcrush effect.
func NewBitcrush() *Bitcrush {
	return &Bitcrush{}
}

// Label implements Effect.
func (*Bitcrush) Label() string { return "Bitcrush" }

// Parameters implements Effect.
func (*Bitcrush) Parameters() []ParameterSpec {
	return []ParameterSpec{
		{Key: "bits", Label: "Bits", Min: 1, Max: 16, Step: 1, Default: 8},
		{Key: "downsample", Label: "Downsample", Min: 1, Max: 50, Step: 1, Default: 4},
	}
}

// Process implements Effect. bits=16 with downsample=1 is a near
// identity.
func (b *Bitcrush) Process(buf *Buffer, start, end int, values Values) (*Buffer, error) {
	p := Resolve(b.Parameters(), values)
	bits := math.Round(p.Num("bits"))
	downsample := int(math.Round(p.Num("downsample")))
	if downsample < 1 {
		downsample = 1
	}

	// 2^bits levels across [-1, 1].
	scale := math.Pow(2, bits-1)

	out := buf.Clone()
	for _, ch := range out.Channels {
		region := ch[start:end]

		held := 0.0
		for i, dry := range region {
			if i%downsample == 0 {
				held = math.Round(dry*scale) / scale
			}
			region[i] = held
		}
	}

	return out, nil
}
