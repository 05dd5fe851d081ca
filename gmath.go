// Package gmath provides WebGPU-friendly 3D graphics math primitives:
// vectors, matrices, Euler angles, quaternions, and colors.
//
// All types are plain value types. Every operation returns a new value
// and leaves its operands untouched, so values may be freely shared
// between goroutines.
//
// # Conventions
//
// Matrices are stored in column-major order, while the M3 and M4
// constructors take their elements in row-major order for readability.
// Vectors are column vectors, so a matrix product A.Mul(B) applies B
// first and A second: (A*B)*v == A*(B*v).
//
// The coordinate system is right-handed: V3(1, 0, 0).Cross(V3(0, 1, 0))
// is V3(0, 0, 1). Projection matrices target the WebGPU clip space,
// with x and y in [-1, 1] and depth in [0, 1].
//
// Every type has a fixed field order and no hidden padding, so values
// can be written to GPU buffers byte-for-byte. See [Vector3.Put] and
// friends for an explicit little-endian encoding.
package gmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Lerp linearly interpolates between a and b by t. The parameter is
// not clamped, so values of t outside [0, 1] extrapolate.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Saturate clamps v to the range [0, 1].
func Saturate[T constraints.Float](v T) T {
	return Clamp(v, 0, 1)
}

// Radians converts degrees to radians.
func Radians[T constraints.Float](deg T) T {
	return deg * (math.Pi / 180)
}

// Degrees converts radians to degrees.
func Degrees[T constraints.Float](rad T) T {
	return rad * (180 / math.Pi)
}

func sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }
func sin(x float32) float32  { return float32(math.Sin(float64(x))) }
func cos(x float32) float32  { return float32(math.Cos(float64(x))) }
func tan(x float32) float32  { return float32(math.Tan(float64(x))) }
func asin(x float32) float32 { return float32(math.Asin(float64(x))) }
func acos(x float32) float32 { return float32(math.Acos(float64(x))) }
func abs(x float32) float32  { return float32(math.Abs(float64(x))) }
func atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}
