package gmath

// Quaternion represents a rotation around an arbitrary axis.
//
// A rotation by angle α around the unit axis β has components
//
//	x = β.x * sin(α/2)
//	y = β.y * sin(α/2)
//	z = β.z * sin(α/2)
//	w = cos(α/2)
//
// Rotation quaternions must be unit quaternions; the constructors in
// this package produce them, and [Quaternion.Normalized] restores the
// invariant after raw arithmetic. To combine rotations, multiply:
// a.Mul(b) is the rotation obtained by first applying b and then a.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionIdentity returns the identity quaternion, i.e. no
// rotation.
func QuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle returns the quaternion for the rotation by
// the given angle in radians around the given axis. The axis must be
// normalized.
func QuaternionFromAxisAngle(axis Vector3, angle float32) Quaternion {
	s := sin(angle / 2)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: cos(angle / 2),
	}
}

// QuaternionFromEuler converts the given Euler angles to a rotation
// quaternion.
func QuaternionFromEuler(e Euler) Quaternion {
	c1, s1 := cos(e.X/2), sin(e.X/2)
	c2, s2 := cos(e.Y/2), sin(e.Y/2)
	c3, s3 := cos(e.Z/2), sin(e.Z/2)

	switch e.Order {
	case OrderXYZ:
		return Quaternion{
			X: s1*c2*c3 + c1*s2*s3,
			Y: c1*s2*c3 - s1*c2*s3,
			Z: c1*c2*s3 + s1*s2*c3,
			W: c1*c2*c3 - s1*s2*s3,
		}
	case OrderXZY:
		return Quaternion{
			X: s1*c2*c3 - c1*s2*s3,
			Y: c1*s2*c3 - s1*c2*s3,
			Z: c1*c2*s3 + s1*s2*c3,
			W: c1*c2*c3 + s1*s2*s3,
		}
	case OrderYXZ:
		return Quaternion{
			X: s1*c2*c3 + c1*s2*s3,
			Y: c1*s2*c3 - s1*c2*s3,
			Z: c1*c2*s3 - s1*s2*c3,
			W: c1*c2*c3 + s1*s2*s3,
		}
	case OrderYZX:
		return Quaternion{
			X: s1*c2*c3 + c1*s2*s3,
			Y: c1*s2*c3 + s1*c2*s3,
			Z: c1*c2*s3 - s1*s2*c3,
			W: c1*c2*c3 - s1*s2*s3,
		}
	case OrderZXY:
		return Quaternion{
			X: s1*c2*c3 - c1*s2*s3,
			Y: c1*s2*c3 + s1*c2*s3,
			Z: c1*c2*s3 + s1*s2*c3,
			W: c1*c2*c3 - s1*s2*s3,
		}
	case OrderZYX:
		return Quaternion{
			X: s1*c2*c3 - c1*s2*s3,
			Y: c1*s2*c3 + s1*c2*s3,
			Z: c1*c2*s3 - s1*s2*c3,
			W: c1*c2*c3 + s1*s2*s3,
		}
	}
	return QuaternionIdentity()
}

// QuaternionFromMatrix3 returns the rotation quaternion for the given
// rotation matrix, which must be a pure rotation. The extraction picks
// the numerically largest component first to stay stable near 180
// degree rotations.
func QuaternionFromMatrix3(m Matrix3) Quaternion {
	m11, m21, m31 := m[0], m[1], m[2]
	m12, m22, m32 := m[3], m[4], m[5]
	m13, m23, m33 := m[6], m[7], m[8]

	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := 0.5 / sqrt(trace+1)
		return Quaternion{
			X: (m32 - m23) * s,
			Y: (m13 - m31) * s,
			Z: (m21 - m12) * s,
			W: 0.25 / s,
		}
	case m11 > m22 && m11 > m33:
		s := 2 * sqrt(1+m11-m22-m33)
		return Quaternion{
			X: 0.25 * s,
			Y: (m12 + m21) / s,
			Z: (m13 + m31) / s,
			W: (m32 - m23) / s,
		}
	case m22 > m33:
		s := 2 * sqrt(1+m22-m11-m33)
		return Quaternion{
			X: (m12 + m21) / s,
			Y: 0.25 * s,
			Z: (m23 + m32) / s,
			W: (m13 - m31) / s,
		}
	default:
		s := 2 * sqrt(1+m33-m11-m22)
		return Quaternion{
			X: (m13 + m31) / s,
			Y: (m23 + m32) / s,
			Z: 0.25 * s,
			W: (m21 - m12) / s,
		}
	}
}

// QuaternionFromMatrix4 returns the rotation quaternion for the
// top-left 3x3 of m, which must be a pure rotation.
func QuaternionFromMatrix4(m Matrix4) Quaternion {
	return QuaternionFromMatrix3(Matrix3FromMatrix4(m))
}

// Mul returns the Hamilton product of q and o. The product is the
// combined rotation that applies o first and q second.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Conjugate returns the conjugate of q, which represents the same
// rotation in the opposite direction.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the inverse of q, calculated as the conjugate. For
// unit quaternions the two are the same; the result effectively
// reverses the rotation.
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate()
}

// Norm returns the norm of q. The norm has no inherent geometric
// meaning, but all rotation quaternions must have a norm of 1.
func (q Quaternion) Norm() float32 {
	return sqrt(q.Dot(q))
}

// Dot returns the four-dimensional dot product of q and o.
func (q Quaternion) Dot(o Quaternion) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Normalized returns q scaled to unit norm. A quaternion with norm
// zero has no direction, so the identity quaternion is returned
// instead.
func (q Quaternion) Normalized() Quaternion {
	n := q.Norm()
	if n == 0 {
		return QuaternionIdentity()
	}
	return q.scale(1 / n)
}

// Rotate applies the rotation represented by q to v. q must be a unit
// quaternion.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	axis := V3(q.X, q.Y, q.Z)
	t := axis.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(axis.Cross(t))
}

// Rotations closer than this in the four-dimensional dot product
// interpolate linearly, since the great-circle formula divides by a
// vanishing angle there.
const slerpLerpThreshold = 0.9995

// Slerp spherically interpolates between q and o by t along the
// shortest great-circle arc: when the two rotations lie in opposite
// hemispheres, o is negated so the interpolation takes the short way
// around. Near-parallel inputs fall back to normalized linear
// interpolation. The result is always a unit quaternion.
func (q Quaternion) Slerp(o Quaternion, t float32) Quaternion {
	a := q.Normalized()
	b := o.Normalized()

	dot := a.Dot(b)
	if dot < 0 {
		b = b.scale(-1)
		dot = -dot
	}

	if dot > slerpLerpThreshold {
		return a.add(b.sub(a).scale(t)).Normalized()
	}

	theta0 := acos(Clamp(dot, -1, 1))
	theta := theta0 * t

	// Orthonormal basis of the plane spanned by a and b.
	rel := b.sub(a.scale(dot)).Normalized()

	return a.scale(cos(theta)).add(rel.scale(sin(theta)))
}

func (q Quaternion) add(o Quaternion) Quaternion {
	return Quaternion{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

func (q Quaternion) sub(o Quaternion) Quaternion {
	return Quaternion{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W}
}

func (q Quaternion) scale(s float32) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}
