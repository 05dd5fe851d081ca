package gmath

// EulerOrder is the order that Euler rotations are applied in.
//
// For example, the XYZ order means the rotation around the local X
// axis is applied first, then Y, then Z.
type EulerOrder int

const (
	OrderXYZ EulerOrder = iota
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
)

// String returns the name of the order, e.g. "XYZ".
func (o EulerOrder) String() string {
	switch o {
	case OrderXYZ:
		return "XYZ"
	case OrderXZY:
		return "XZY"
	case OrderYXZ:
		return "YXZ"
	case OrderYZX:
		return "YZX"
	case OrderZXY:
		return "ZXY"
	case OrderZYX:
		return "ZYX"
	}
	return "unknown"
}

// Euler describes a rotation as chained rotations around the local X,
// Y, and Z axes, in the order given by Order. The zero value is no
// rotation in XYZ order.
//
// Euler angles are intuitive to use but suffer from gimbal lock. For a
// better representation of rotations, use [Quaternion], which
// represents a rotation around an arbitrary axis.
type Euler struct {
	// X, Y, and Z are the rotation angles around the respective
	// local axes, in radians.
	X, Y, Z float32

	// Order is the order that the rotations are applied in.
	Order EulerOrder
}

// Angle extraction becomes ambiguous when the middle rotation
// approaches a straight angle and the outer axes align. Past this
// threshold one of the coupled angles is pinned to zero.
const gimbalLockThreshold = 0.9999999

// EulerFromMatrix3 extracts Euler angles in the given order from the
// rotation matrix m. The matrix must be a pure rotation.
//
// At gimbal lock the two coupled angles cannot be separated; the one
// listed below is set to zero and the remaining rotation is assigned
// to the other.
func EulerFromMatrix3(m Matrix3, order EulerOrder) Euler {
	m11, m21, m31 := m[0], m[1], m[2]
	m12, m22, m32 := m[3], m[4], m[5]
	m13, m23, m33 := m[6], m[7], m[8]

	e := Euler{Order: order}

	switch order {
	case OrderXYZ:
		e.Y = asin(Clamp(m13, -1, 1))
		if abs(m13) < gimbalLockThreshold {
			e.X = atan2(-m23, m33)
			e.Z = atan2(-m12, m11)
		} else {
			e.X = atan2(m32, m22)
			e.Z = 0
		}
	case OrderXZY:
		e.Z = -asin(Clamp(m12, -1, 1))
		if abs(m12) < gimbalLockThreshold {
			e.X = atan2(m32, m22)
			e.Y = atan2(m13, m11)
		} else {
			e.X = atan2(-m23, m33)
			e.Y = 0
		}
	case OrderYXZ:
		e.X = -asin(Clamp(m23, -1, 1))
		if abs(m23) < gimbalLockThreshold {
			e.Y = atan2(m13, m33)
			e.Z = atan2(m21, m22)
		} else {
			e.Y = atan2(-m31, m11)
			e.Z = 0
		}
	case OrderYZX:
		e.Z = asin(Clamp(m21, -1, 1))
		if abs(m21) < gimbalLockThreshold {
			e.X = atan2(-m23, m22)
			e.Y = atan2(-m31, m11)
		} else {
			e.X = 0
			e.Y = atan2(m13, m33)
		}
	case OrderZXY:
		e.X = asin(Clamp(m32, -1, 1))
		if abs(m32) < gimbalLockThreshold {
			e.Y = atan2(-m31, m33)
			e.Z = atan2(-m12, m22)
		} else {
			e.Y = 0
			e.Z = atan2(m21, m11)
		}
	case OrderZYX:
		e.Y = -asin(Clamp(m31, -1, 1))
		if abs(m31) < gimbalLockThreshold {
			e.X = atan2(m32, m33)
			e.Z = atan2(m21, m11)
		} else {
			e.X = 0
			e.Z = atan2(-m12, m22)
		}
	}

	return e
}

// EulerFromMatrix4 extracts Euler angles in the given order from the
// top-left 3x3 of m, which must be a pure rotation. See
// [EulerFromMatrix3] for the gimbal lock behavior.
func EulerFromMatrix4(m Matrix4, order EulerOrder) Euler {
	return EulerFromMatrix3(Matrix3FromMatrix4(m), order)
}

// EulerFromQuaternion extracts Euler angles in the given order from
// the rotation quaternion q.
func EulerFromQuaternion(q Quaternion, order EulerOrder) Euler {
	return EulerFromMatrix4(Matrix4FromQuaternion(q), order)
}
