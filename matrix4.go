package gmath

// Matrix4 is a 4x4 matrix, commonly used to encode transformations
// such as translation, rotation, and scale. Its elements are stored in
// column-major order: the element at row r and column c is m[c*4+r].
type Matrix4 [16]float32

// M4 returns the matrix with the given elements in row-major order.
// They are stored internally in column-major order.
func M4(
	n11, n12, n13, n14,
	n21, n22, n23, n24,
	n31, n32, n33, n34,
	n41, n42, n43, n44 float32,
) Matrix4 {
	return Matrix4{
		n11, n21, n31, n41,
		n12, n22, n32, n42,
		n13, n23, n33, n43,
		n14, n24, n34, n44,
	}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Zero4 returns the 4x4 zero matrix.
func Zero4() Matrix4 {
	return Matrix4{}
}

// Translation returns the translation matrix for the given
// displacement vector.
func Translation(v Vector3) Matrix4 {
	return M4(
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	)
}

// Scaling returns the transformation matrix for the given scale
// factors.
func Scaling(v Vector3) Matrix4 {
	return M4(
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	)
}

// RotationX returns the rotation matrix around the X axis by the given
// angle in radians.
func RotationX(theta float32) Matrix4 {
	c, s := cos(theta), sin(theta)
	return M4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY returns the rotation matrix around the Y axis by the given
// angle in radians.
func RotationY(theta float32) Matrix4 {
	c, s := cos(theta), sin(theta)
	return M4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ returns the rotation matrix around the Z axis by the given
// angle in radians.
func RotationZ(theta float32) Matrix4 {
	c, s := cos(theta), sin(theta)
	return M4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// RotationAxis returns the rotation matrix around the given axis by
// the given angle in radians. The axis does not need to be normalized.
func RotationAxis(axis Vector3, angle float32) Matrix4 {
	return Matrix4FromQuaternion(QuaternionFromAxisAngle(axis.Normalized(), angle))
}

// Matrix4FromEuler returns the rotation matrix for the given Euler
// angles.
//
// The implementation is based on the formulae on
// https://en.wikipedia.org/wiki/Euler_angles#Rotation_matrix.
func Matrix4FromEuler(e Euler) Matrix4 {
	m := Identity4()

	a, b := cos(e.X), sin(e.X)
	c, d := cos(e.Y), sin(e.Y)
	f, g := cos(e.Z), sin(e.Z)

	switch e.Order {
	case OrderXYZ:
		af := a * f
		ag := a * g
		bf := b * f
		bg := b * g

		m[0] = c * f
		m[4] = -c * g
		m[8] = d

		m[1] = ag + bf*d
		m[5] = af - bg*d
		m[9] = -b * c

		m[2] = bg - af*d
		m[6] = bf + ag*d
		m[10] = a * c
	case OrderXZY:
		ac := a * c
		ad := a * d
		bc := b * c
		bd := b * d

		m[0] = c * f
		m[4] = -g
		m[8] = d * f

		m[1] = ac*g + bd
		m[5] = a * f
		m[9] = ad*g - bc

		m[2] = bc*g - ad
		m[6] = b * f
		m[10] = bd*g + ac
	case OrderYXZ:
		cf := c * f
		cg := c * g
		df := d * f
		dg := d * g

		m[0] = cf + dg*b
		m[4] = df*b - cg
		m[8] = a * d

		m[1] = a * g
		m[5] = a * f
		m[9] = -b

		m[2] = cg*b - df
		m[6] = dg + cf*b
		m[10] = a * c
	case OrderYZX:
		ac := a * c
		ad := a * d
		bc := b * c
		bd := b * d

		m[0] = c * f
		m[4] = bd - ac*g
		m[8] = bc*g + ad

		m[1] = g
		m[5] = a * f
		m[9] = -b * f

		m[2] = -d * f
		m[6] = ad*g + bc
		m[10] = ac - bd*g
	case OrderZXY:
		cf := c * f
		cg := c * g
		df := d * f
		dg := d * g

		m[0] = cf - dg*b
		m[4] = -a * g
		m[8] = df + cg*b

		m[1] = cg + df*b
		m[5] = a * f
		m[9] = dg - cf*b

		m[2] = -a * d
		m[6] = b
		m[10] = a * c
	case OrderZYX:
		af := a * f
		ag := a * g
		bf := b * f
		bg := b * g

		m[0] = c * f
		m[4] = bf*d - ag
		m[8] = af*d + bg

		m[1] = c * g
		m[5] = bg*d + af
		m[9] = ag*d - bf

		m[2] = -d
		m[6] = b * c
		m[10] = a * c
	}

	return m
}

// Matrix4FromQuaternion returns the rotation matrix for the given
// rotation quaternion.
//
// The implementation is based on the formulae on
// https://en.wikipedia.org/wiki/Rotation_matrix#Quaternion.
func Matrix4FromQuaternion(q Quaternion) Matrix4 {
	return Compose(Vector3{}, q, V3(1, 1, 1))
}

// Compose returns the matrix for the transformation composed of the
// given translation, rotation, and scale. It uses TRS ordering: scale
// first, then rotation, then translation.
func Compose(translation Vector3, rotation Quaternion, scale Vector3) Matrix4 {
	x, y, z, w := rotation.X, rotation.Y, rotation.Z, rotation.W

	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	var m Matrix4

	m[0] = (1 - (yy + zz)) * scale.X
	m[1] = (xy + wz) * scale.X
	m[2] = (xz - wy) * scale.X

	m[4] = (xy - wz) * scale.Y
	m[5] = (1 - (xx + zz)) * scale.Y
	m[6] = (yz + wx) * scale.Y

	m[8] = (xz + wy) * scale.Z
	m[9] = (yz - wx) * scale.Z
	m[10] = (1 - (xx + yy)) * scale.Z

	m[12] = translation.X
	m[13] = translation.Y
	m[14] = translation.Z
	m[15] = 1

	return m
}

// LookAt returns a rotation matrix looking from eye towards target,
// oriented by the up vector. The result carries no translation; use
// [Compose] or [Translation] to place the viewer.
func LookAt(eye, target, up Vector3) Matrix4 {
	z := eye.Sub(target).Normalized()
	x := up.Cross(z).Normalized()
	y := z.Cross(x).Normalized()

	return Matrix4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a right-handed perspective projection matrix for
// the given vertical field of view in radians, aspect ratio, and near
// and far plane distances. It maps to the WebGPU clip space, with
// depth in [0, 1]: points on the near plane map to depth 0 and points
// on the far plane to depth 1.
func Perspective(fovy, aspect, near, far float32) Matrix4 {
	f := 1 / tan(fovy/2)
	nf := 1 / (near - far)
	return M4(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far*nf, near*far*nf,
		0, 0, -1, 0,
	)
}

// Orthographic returns a right-handed orthographic projection matrix
// for the given view volume bounds. It maps to the WebGPU clip space,
// with depth in [0, 1].
func Orthographic(left, right, bottom, top, near, far float32) Matrix4 {
	return M4(
		2/(right-left), 0, 0, -(right+left)/(right-left),
		0, 2/(top-bottom), 0, -(top+bottom)/(top-bottom),
		0, 0, 1/(near-far), near/(near-far),
		0, 0, 0, 1,
	)
}

// Mul returns the matrix product of m and o. Vectors are column
// vectors, so the product applies o first and m second:
// m.Mul(o).MulVector4(v) equals m.MulVector4(o.MulVector4(v)).
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var out Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = m[0*4+row]*o[col*4+0] +
				m[1*4+row]*o[col*4+1] +
				m[2*4+row]*o[col*4+2] +
				m[3*4+row]*o[col*4+3]
		}
	}
	return out
}

// MulVector4 returns the matrix-vector product of m and v.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalar returns m with every element divided by s.
func (m Matrix4) DivScalar(s float32) Matrix4 {
	for i := range m {
		m[i] /= s
	}
	return m
}

// TransformPoint applies m to the point v, extending it to
// homogeneous coordinates with w == 1 and dividing the result by its w
// component when it is nonzero.
func (m Matrix4) TransformPoint(v Vector3) Vector3 {
	h := m.MulVector4(Vector4FromVector3(v, 1))
	if h.W != 0 && h.W != 1 {
		return h.XYZ().DivScalar(h.W)
	}
	return h.XYZ()
}

// TransformDirection applies m to the direction v, extending it to
// homogeneous coordinates with w == 0 so that translation has no
// effect.
func (m Matrix4) TransformDirection(v Vector3) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 0)).XYZ()
}

// Translation returns the translation component of m.
func (m Matrix4) Translation() Vector3 {
	return Vector3{X: m[12], Y: m[13], Z: m[14]}
}

// Translated returns m translated by the given vector.
func (m Matrix4) Translated(v Vector3) Matrix4 {
	return m.Mul(Translation(v))
}

// Rotated returns m rotated by the given rotation quaternion.
//
// If you have Euler angles, convert them with [QuaternionFromEuler].
func (m Matrix4) Rotated(q Quaternion) Matrix4 {
	return m.Mul(Matrix4FromQuaternion(q))
}

// Scaled returns m scaled by the given scale factors.
func (m Matrix4) Scaled(v Vector3) Matrix4 {
	return m.Mul(Scaling(v))
}

// Transpose returns the transpose of m.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Determinant returns the determinant of m.
//
// The algorithm can be found at
// http://www.euclideanspace.com/maths/algebra/matrix/functions/determinant/fourD/index.htm.
func (m Matrix4) Determinant() float32 {
	n11, n21, n31, n41 := m[0], m[1], m[2], m[3]
	n12, n22, n32, n42 := m[4], m[5], m[6], m[7]
	n13, n23, n33, n43 := m[8], m[9], m[10], m[11]
	n14, n24, n34, n44 := m[12], m[13], m[14], m[15]

	return n14*n23*n32*n41 - n13*n24*n32*n41 - n14*n22*n33*n41 +
		n12*n24*n33*n41 +
		n13*n22*n34*n41 -
		n12*n23*n34*n41 -
		n14*n23*n31*n42 +
		n13*n24*n31*n42 +
		n14*n21*n33*n42 -
		n11*n24*n33*n42 -
		n13*n21*n34*n42 +
		n11*n23*n34*n42 +
		n14*n22*n31*n43 -
		n12*n24*n31*n43 -
		n14*n21*n32*n43 +
		n11*n24*n32*n43 +
		n12*n21*n34*n43 -
		n11*n22*n34*n43 -
		n13*n22*n31*n44 +
		n12*n23*n31*n44 +
		n13*n21*n32*n44 -
		n11*n23*n32*n44 -
		n12*n21*n33*n44 +
		n11*n22*n33*n44
}

// Adjugate returns the adjugate of m.
func (m Matrix4) Adjugate() Matrix4 {
	n11, n21, n31, n41 := m[0], m[1], m[2], m[3]
	n12, n22, n32, n42 := m[4], m[5], m[6], m[7]
	n13, n23, n33, n43 := m[8], m[9], m[10], m[11]
	n14, n24, n34, n44 := m[12], m[13], m[14], m[15]

	return M4(
		n23*n34*n42-n24*n33*n42+n24*n32*n43-n22*n34*n43-n23*n32*n44+n22*n33*n44,
		n14*n33*n42-n13*n34*n42-n14*n32*n43+n12*n34*n43+n13*n32*n44-n12*n33*n44,
		n13*n24*n42-n14*n23*n42+n14*n22*n43-n12*n24*n43-n13*n22*n44+n12*n23*n44,
		n14*n23*n32-n13*n24*n32-n14*n22*n33+n12*n24*n33+n13*n22*n34-n12*n23*n34,
		n24*n33*n41-n23*n34*n41-n24*n31*n43+n21*n34*n43+n23*n31*n44-n21*n33*n44,
		n13*n34*n41-n14*n33*n41+n14*n31*n43-n11*n34*n43-n13*n31*n44+n11*n33*n44,
		n14*n23*n41-n13*n24*n41-n14*n21*n43+n11*n24*n43+n13*n21*n44-n11*n23*n44,
		n13*n24*n31-n14*n23*n31+n14*n21*n33-n11*n24*n33-n13*n21*n34+n11*n23*n34,
		n22*n34*n41-n24*n32*n41+n24*n31*n42-n21*n34*n42-n22*n31*n44+n21*n32*n44,
		n14*n32*n41-n12*n34*n41-n14*n31*n42+n11*n34*n42+n12*n31*n44-n11*n32*n44,
		n12*n24*n41-n14*n22*n41+n14*n21*n42-n11*n24*n42-n12*n21*n44+n11*n22*n44,
		n14*n22*n31-n12*n24*n31-n14*n21*n32+n11*n24*n32+n12*n21*n34-n11*n22*n34,
		n23*n32*n41-n22*n33*n41-n23*n31*n42+n21*n33*n42+n22*n31*n43-n21*n32*n43,
		n12*n33*n41-n13*n32*n41+n13*n31*n42-n11*n33*n42-n12*n31*n43+n11*n32*n43,
		n13*n22*n41-n12*n23*n41-n13*n21*n42+n11*n23*n42+n12*n21*n43-n11*n22*n43,
		n12*n23*n31-n13*n22*n31+n13*n21*n32-n11*n23*n32-n12*n21*n33+n11*n22*n33,
	)
}

// Inverse returns the inverse of m, calculated in terms of its
// [Matrix4.Adjugate]. If m has no inverse, i.e. its determinant is
// zero, the 4x4 zero matrix is returned instead.
func (m Matrix4) Inverse() Matrix4 {
	det := m.Determinant()
	if det == 0 {
		return Zero4()
	}
	return m.Adjugate().DivScalar(det)
}
