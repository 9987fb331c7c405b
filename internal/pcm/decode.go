package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrChannelLayout reports input that is not exactly two channels.
	ErrChannelLayout = errors.New("unsupported channel layout")
	// ErrSampleWidth reports a sample width outside {2, 4} bytes.
	ErrSampleWidth = errors.New("unsupported sample width")
)

// floatMagnitudeLimit is the largest absolute value a correctly normalized
// float signal can plausibly reach. 32-bit payloads decoding beyond it are
// reinterpreted as integer PCM.
const floatMagnitudeLimit = 10.0

const (
	int16Scale = 32768.0
	int32Scale = 2147483648.0
)

// Format describes the sample layout of a raw PCM payload as reported by
// the container.
type Format struct {
	Channels    int
	SampleRate  int
	SampleBytes int
	// Float records that the container asserted IEEE float samples. When
	// set, the 32-bit decode path trusts it and skips the magnitude
	// heuristic.
	Float bool
}

// Stereo holds the decoded channel buffers. Left and Right are always the
// same length and are not mutated after decoding.
type Stereo struct {
	SampleRate int
	Left       []float64
	Right      []float64
}

// Frames returns the per-channel sample count.
func (s *Stereo) Frames() int {
	return len(s.Left)
}

// Duration returns the capture length in seconds.
func (s *Stereo) Duration() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Left)) / float64(s.SampleRate)
}

// DecodeStereo interprets payload according to format and de-interleaves it
// into normalized left/right buffers. Trailing bytes that do not form a
// complete frame are dropped.
func DecodeStereo(format Format, payload []byte) (*Stereo, error) {
	if format.Channels != 2 {
		return nil, fmt.Errorf("%w: got %d channels, want stereo", ErrChannelLayout, format.Channels)
	}

	var values []float64
	switch format.SampleBytes {
	case 2:
		values = decodeInt16(payload)
	case 4:
		values = decode32(payload, format.Float)
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrSampleWidth, format.SampleBytes)
	}

	left, right := deinterleave(values)
	return &Stereo{SampleRate: format.SampleRate, Left: left, Right: right}, nil
}

func decodeInt16(payload []byte) []float64 {
	count := len(payload) / 2
	values := make([]float64, count)
	for i := 0; i < count; i++ {
		raw := int16(binary.LittleEndian.Uint16(payload[i*2:]))
		values[i] = float64(raw) / int16Scale
	}
	return values
}

// decode32 interprets a 4-byte-width payload. Floats are tried first; when
// the container did not assert floats and the decoded magnitudes are
// impossible for a normalized signal, the same bytes are reread as signed
// 32-bit integers.
func decode32(payload []byte, declaredFloat bool) []float64 {
	count := len(payload) / 4
	values := make([]float64, count)
	var maxAbs float64
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint32(payload[i*4:])
		v := float64(math.Float32frombits(bits))
		values[i] = v
		if abs := math.Abs(v); abs > maxAbs {
			maxAbs = abs
		}
	}
	if declaredFloat || maxAbs <= floatMagnitudeLimit {
		return values
	}
	for i := 0; i < count; i++ {
		raw := int32(binary.LittleEndian.Uint32(payload[i*4:]))
		values[i] = float64(raw) / int32Scale
	}
	return values
}

func deinterleave(values []float64) (left, right []float64) {
	frames := len(values) / 2
	left = make([]float64, frames)
	right = make([]float64, frames)
	for i := 0; i < frames; i++ {
		left[i] = values[i*2]
		right[i] = values[i*2+1]
	}
	return left, right
}
