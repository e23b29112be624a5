package archive

import "encoding/binary"
import "math"

import "github.com/x448/float16"

// PackSamples packs a sample vector into half-precision little-endian
// bytes, halving the payload archived for audio snapshots. Samples
// outside [-1, 1] are clamped.
func PackSamples(vec []float64) []byte {
	out := make([]byte, 2*len(vec))
	for i, v := range vec {
		v = math.Max(-1, math.Min(1, v))
		binary.LittleEndian.PutUint16(out[2*i:], float16.Fromfloat32(float32(v)).Bits())
	}
	return out
}

// UnpackSamples is the inverse of PackSamples.
func UnpackSamples(data []byte) []float64 {
	vec := make([]float64, len(data)/2)
	for i := range vec {
		bits := binary.LittleEndian.Uint16(data[2*i:])
		vec[i] = float64(float16.Frombits(bits).Float32())
	}
	return vec
}
