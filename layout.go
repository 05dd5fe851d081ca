package gmath

import (
	"encoding/binary"
	"math"
)

// GPU buffers expect tightly packed little-endian IEEE-754 values.
// Every type here has a fixed field order and no hidden padding, so
// the encodings below are exactly the in-memory layout: vectors and
// quaternions in field order, matrices in column-major element order.
// Callers are responsible for any std140/std430 alignment between
// consecutive values.

// Sizes in bytes of the encoded forms.
const (
	SizeOfVector3    = 12
	SizeOfVector4    = 16
	SizeOfQuaternion = 16
	SizeOfMatrix3    = 36
	SizeOfMatrix4    = 64
)

// Put encodes v into buf, which must be at least [SizeOfVector3]
// bytes.
func (v Vector3) Put(buf []byte) {
	putf32(buf, 0, v.X)
	putf32(buf, 4, v.Y)
	putf32(buf, 8, v.Z)
}

// GetVector3 decodes a vector from buf, which must be at least
// [SizeOfVector3] bytes.
func GetVector3(buf []byte) Vector3 {
	return Vector3{
		X: getf32(buf, 0),
		Y: getf32(buf, 4),
		Z: getf32(buf, 8),
	}
}

// Put encodes v into buf, which must be at least [SizeOfVector4]
// bytes.
func (v Vector4) Put(buf []byte) {
	putf32(buf, 0, v.X)
	putf32(buf, 4, v.Y)
	putf32(buf, 8, v.Z)
	putf32(buf, 12, v.W)
}

// GetVector4 decodes a vector from buf, which must be at least
// [SizeOfVector4] bytes.
func GetVector4(buf []byte) Vector4 {
	return Vector4{
		X: getf32(buf, 0),
		Y: getf32(buf, 4),
		Z: getf32(buf, 8),
		W: getf32(buf, 12),
	}
}

// Put encodes q into buf in x, y, z, w order. buf must be at least
// [SizeOfQuaternion] bytes.
func (q Quaternion) Put(buf []byte) {
	putf32(buf, 0, q.X)
	putf32(buf, 4, q.Y)
	putf32(buf, 8, q.Z)
	putf32(buf, 12, q.W)
}

// GetQuaternion decodes a quaternion from buf, which must be at least
// [SizeOfQuaternion] bytes.
func GetQuaternion(buf []byte) Quaternion {
	return Quaternion{
		X: getf32(buf, 0),
		Y: getf32(buf, 4),
		Z: getf32(buf, 8),
		W: getf32(buf, 12),
	}
}

// Put encodes m into buf in column-major order. buf must be at least
// [SizeOfMatrix3] bytes.
func (m Matrix3) Put(buf []byte) {
	for i, e := range m {
		putf32(buf, i*4, e)
	}
}

// GetMatrix3 decodes a matrix from buf, which must be at least
// [SizeOfMatrix3] bytes.
func GetMatrix3(buf []byte) Matrix3 {
	var m Matrix3
	for i := range m {
		m[i] = getf32(buf, i*4)
	}
	return m
}

// Put encodes m into buf in column-major order. buf must be at least
// [SizeOfMatrix4] bytes.
func (m Matrix4) Put(buf []byte) {
	for i, e := range m {
		putf32(buf, i*4, e)
	}
}

// GetMatrix4 decodes a matrix from buf, which must be at least
// [SizeOfMatrix4] bytes.
func GetMatrix4(buf []byte) Matrix4 {
	var m Matrix4
	for i := range m {
		m[i] = getf32(buf, i*4)
	}
	return m
}

func putf32(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
}

func getf32(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}
