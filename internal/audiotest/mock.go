// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds waveforms and encoded fixtures for tests.
// It does not import the audio package so that package's own tests can
// use it.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Generate builds n values from fn.
func Generate(n int, fn func(i int) float32) []float32 {
	w := make([]float32, n)
	for i := range w {
		w[i] = fn(i)
	}
	return w
}

// Ramp returns 0, step, 2*step, ...
func Ramp(n int, step float32) []float32 {
	return Generate(n, func(i int) float32 { return float32(i) * step })
}

// Constant returns n copies of value.
func Constant(n int, value float32) []float32 {
	return Generate(n, func(int) float32 { return value })
}

// Sine returns n values of a sine at frequency Hz.
func Sine(sampleRate, n int, frequency float64, amplitude float32) []float32 {
	return Generate(n, func(i int) float32 {
		t := float64(i) / float64(sampleRate)
		return float32(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	})
}

// Shift places w at offset inside a zeroed buffer of length n.
func Shift(w []float32, offset, n int) []float32 {
	out := make([]float32, n)
	copy(out[offset:], w)
	return out
}

// Sum adds buffers of equal length element-wise.
func Sum(bufs ...[]float32) []float32 {
	if len(bufs) == 0 {
		return nil
	}
	out := make([]float32, len(bufs[0]))
	for _, b := range bufs {
		for i, v := range b {
			out[i] += v
		}
	}
	return out
}

// Interleave16 interleaves per-channel int16 data frame by frame.
func Interleave16(channels ...[]int16) []int16 {
	if len(channels) == 0 {
		return nil
	}
	out := make([]int16, 0, len(channels)*len(channels[0]))
	for i := range channels[0] {
		for _, ch := range channels {
			out = append(out, ch[i])
		}
	}
	return out
}

// PCM16WAV returns a canonical 44-byte-header WAV file holding interleaved
// 16-bit samples.
func PCM16WAV(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(16)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
