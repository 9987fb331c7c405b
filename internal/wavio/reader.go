package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"

	"earshot/internal/pcm"
)

// wavFormatIEEEFloat is the WAV fmt tag for IEEE-754 float samples.
const wavFormatIEEEFloat = 3

// Capture is the container-level view of a WAV file: its format descriptor
// and the raw sample payload, undecoded.
type Capture struct {
	Path    string
	Format  pcm.Format
	Payload []byte
}

// ReadFile opens a WAV file and extracts its format descriptor and raw
// data-chunk bytes. The payload of a truncated file is returned as far as
// it goes; no sample decoding or channel validation happens here.
func ReadFile(path string) (*Capture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("read capture %s: not a valid WAV file", path)
	}

	if err := decoder.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("locate data chunk: %w", err)
	}
	chunk := decoder.PCMChunk
	if chunk == nil {
		return nil, fmt.Errorf("read capture %s: missing data chunk", path)
	}

	payload := make([]byte, chunk.Size)
	n, err := io.ReadFull(chunk, payload)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read data chunk: %w", err)
	}

	return &Capture{
		Path: path,
		Format: pcm.Format{
			Channels:    int(decoder.NumChans),
			SampleRate:  int(decoder.SampleRate),
			SampleBytes: int(decoder.BitDepth) / 8,
			Float:       decoder.WavAudioFormat == wavFormatIEEEFloat,
		},
		Payload: payload[:n],
	}, nil
}
