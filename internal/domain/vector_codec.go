package domain

import (
	"encoding/binary"
	"fmt"
	"math"
)

const bytesPerFloat32 = 4

// EncodeVector converts an embedding to its cached binary representation.
// Values are stored as little-endian float32, which is lossy but well within
// the comparison tolerance of cosine ranking.
func EncodeVector(vec []float64) []byte {
	buf := make([]byte, len(vec)*bytesPerFloat32)
	for i, f := range vec {
		binary.LittleEndian.PutUint32(buf[i*bytesPerFloat32:], math.Float32bits(float32(f)))
	}
	return buf
}

// DecodeVector restores an embedding from its cached binary representation.
func DecodeVector(data []byte) ([]float64, error) {
	if len(data)%bytesPerFloat32 != 0 {
		return nil, fmt.Errorf("invalid vector payload length %d", len(data))
	}

	vec := make([]float64, len(data)/bytesPerFloat32)
	for i := range vec {
		bits := binary.LittleEndian.Uint32(data[i*bytesPerFloat32:])
		vec[i] = float64(math.Float32frombits(bits))
	}
	return vec, nil
}
