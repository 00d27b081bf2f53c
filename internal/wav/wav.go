// Package wav reads 16-bit mono PCM WAV files for offline analysis.
package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"

	"github.com/eleven-am/voice-confidence/internal/spectral"
)

const headerSize = 44

var (
	ErrInvalidHeader   = errors.New("invalid WAV header format")
	ErrUnsupportedFile = errors.New("unsupported WAV encoding (expect 16-bit mono PCM)")
)

type header struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

// File is a decoded mono recording with samples normalized to [-1,1].
type File struct {
	SampleRate int
	Samples    []float64
	Duration   float64
}

func Decode(data []byte) (*File, error) {
	if len(data) < headerSize {
		return nil, ErrInvalidHeader
	}

	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if string(h.ChunkID[:]) != "RIFF" || string(h.Format[:]) != "WAVE" {
		return nil, ErrInvalidHeader
	}
	if h.AudioFormat != 1 || h.NumChannels != 1 || h.BitsPerSample != 16 {
		return nil, ErrUnsupportedFile
	}

	samples := spectral.Int16ToFloat64(spectral.PCMBytesToInt16(data[headerSize:]))

	return &File{
		SampleRate: int(h.SampleRate),
		Samples:    samples,
		Duration:   float64(len(samples)) / float64(h.SampleRate),
	}, nil
}

func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
