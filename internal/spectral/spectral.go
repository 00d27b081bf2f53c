// Package spectral turns PCM audio into the magnitude-spectrum frames the
// analysis engine consumes. Offline sources (WAV files) go through the same
// frame format a live capture client would deliver: fftSize/2 bins scaled to
// the 0-255 byte-frequency range.
package spectral

import (
	"encoding/binary"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// HannWindow returns the Hann window coefficients for the given size.
func HannWindow(size int) []float64 {
	window := make([]float64, size)
	for i := range window {
		window[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(size-1))
	}
	return window
}

// Magnitudes computes the byte-scaled magnitude spectrum of one windowed
// sample frame. The result has len(frame)/2 bins. A full-scale sine lands at
// 255 in its bin; everything is clamped to [0,255].
func Magnitudes(frame, window []float64) []float64 {
	windowed := make([]float64, len(frame))
	for i := range frame {
		windowed[i] = frame[i] * window[i]
	}

	spectrum := fft.FFTReal(windowed)

	// A Hann-windowed full-scale sine peaks at N/4 in its bin.
	fullScale := float64(len(frame)) / 4

	magnitudes := make([]float64, len(spectrum)/2)
	for i := range magnitudes {
		scaled := cmplx.Abs(spectrum[i]) / fullScale * 255
		if scaled > 255 {
			scaled = 255
		}
		magnitudes[i] = scaled
	}
	return magnitudes
}

// Frames slices samples into hop-aligned windows and returns one magnitude
// frame per hop. Samples are expected in [-1,1].
func Frames(samples []float64, fftSize, hopSize int) [][]float64 {
	if fftSize <= 0 || hopSize <= 0 || len(samples) < fftSize {
		return nil
	}

	window := HannWindow(fftSize)
	frames := make([][]float64, 0, (len(samples)-fftSize)/hopSize+1)
	for start := 0; start+fftSize <= len(samples); start += hopSize {
		frames = append(frames, Magnitudes(samples[start:start+fftSize], window))
	}
	return frames
}

// PCMBytesToInt16 decodes little-endian S16LE PCM bytes.
func PCMBytesToInt16(pcm []byte) []int16 {
	samples := make([]int16, len(pcm)/2)
	for i := 0; i < len(samples); i++ {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	return samples
}

// Int16ToFloat64 normalizes 16-bit samples into [-1,1].
func Int16ToFloat64(samples []int16) []float64 {
	result := make([]float64, len(samples))
	for i, s := range samples {
		result[i] = float64(s) / 32768.0
	}
	return result
}
