package gmath

// Vector4 is a 4D vector, most often a [Vector3] in homogeneous
// coordinates with w == 1 for points and w == 0 for directions.
type Vector4 struct {
	X, Y, Z, W float32
}

// V4 returns the vector (x, y, z, w).
func V4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4FromVector3 extends v into homogeneous coordinates with the
// given w component.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// XYZ returns the first three components of v, dropping w.
func (v Vector4) XYZ() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Add returns the element-wise sum of v and o.
func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the element-wise difference of v and o.
func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Mul returns the element-wise product of v and o.
func (v Vector4) Mul(o Vector4) Vector4 {
	return Vector4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// MulScalar returns v scaled by s.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// DivScalar returns v divided by s.
func (v Vector4) DivScalar(s float32) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Neg returns v with every element negated.
func (v Vector4) Neg() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product of v and o.
func (v Vector4) Dot(o Vector4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Length returns the Euclidean length of v.
func (v Vector4) Length() float32 {
	return sqrt(v.Dot(v))
}

// LengthSquared returns the squared length of v.
func (v Vector4) LengthSquared() float32 {
	return v.Dot(v)
}

// Normalized returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vector4) Normalized() Vector4 {
	l := v.Length()
	if l == 0 {
		return Vector4{}
	}
	return v.DivScalar(l)
}

// Lerp linearly interpolates between v and o by t. The parameter is
// not clamped.
func (v Vector4) Lerp(o Vector4, t float32) Vector4 {
	return Vector4{
		X: Lerp(v.X, o.X, t),
		Y: Lerp(v.Y, o.Y, t),
		Z: Lerp(v.Z, o.Z, t),
		W: Lerp(v.W, o.W, t),
	}
}
