// Package wavio loads and saves multi-channel WAV files as effect
// buffers. Decoding normalizes integer PCM to [-1, 1] by the source bit
// depth; encoding writes 16- or 24-bit PCM with samples clamped into
// range.
package wavio

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ed-devane/soniphorm-sub000/dsp/core"
	"github.com/ed-devane/soniphorm-sub000/fx"
)

// Load decodes a WAV file into a deinterleaved buffer.
func Load(path string) (*fx.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("wavio: not a valid WAV file: %s", path)
	}
	if err := decoder.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("wavio: seeking PCM data in %s: %w", path, err)
	}

	format := decoder.Format()
	bitDepth := int(decoder.SampleBitDepth())
	if bitDepth == 0 {
		return nil, fmt.Errorf("wavio: unknown bit depth in %s", path)
	}

	bytesPerSample := (bitDepth-1)/8 + 1
	numSamples := int(decoder.PCMLen()) / bytesPerSample
	numChannels := format.NumChannels
	if numChannels < 1 {
		return nil, fmt.Errorf("wavio: no channels in %s", path)
	}
	numFrames := numSamples / numChannels

	intBuf := &audio.IntBuffer{
		Format:         format,
		Data:           make([]int, numSamples),
		SourceBitDepth: bitDepth,
	}
	if _, err := decoder.PCMBuffer(intBuf); err != nil {
		return nil, fmt.Errorf("wavio: decoding PCM in %s: %w", path, err)
	}

	scale := math.Pow(2, float64(bitDepth-1))
	channels := make([][]float64, numChannels)
	for ch := range channels {
		channels[ch] = make([]float64, numFrames)
	}
	for frame := 0; frame < numFrames; frame++ {
		for ch := 0; ch < numChannels; ch++ {
			channels[ch][frame] = float64(intBuf.Data[frame*numChannels+ch]) / scale
		}
	}

	return fx.FromChannels(float64(format.SampleRate), channels)
}

// Save encodes a buffer as PCM at the given bit depth, either 16 or 24.
// Samples outside [-1, 1] are clamped rather than wrapped.
func Save(path string, buf *fx.Buffer, bitDepth int) error {
	if buf == nil || buf.NumChannels() == 0 {
		return fmt.Errorf("wavio: nothing to save to %s", path)
	}
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("wavio: unsupported bit depth %d, want 16 or 24", bitDepth)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sampleRate := int(math.Round(buf.SampleRate))
	numChannels := buf.NumChannels()
	numFrames := buf.Len()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, numChannels, 1)

	scale := math.Pow(2, float64(bitDepth-1)) - 1
	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, numFrames*numChannels),
		SourceBitDepth: bitDepth,
	}
	for frame := 0; frame < numFrames; frame++ {
		for ch := 0; ch < numChannels; ch++ {
			v := core.Clamp(buf.Channels[ch][frame], -1, 1)
			intBuf.Data[frame*numChannels+ch] = int(math.Round(v * scale))
		}
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("wavio: writing PCM to %s: %w", path, err)
	}

	return enc.Close()
}
