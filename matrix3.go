package gmath

// Matrix3 is a 3x3 matrix with its elements stored in column-major
// order: the element at row r and column c is m[c*3+r].
type Matrix3 [9]float32

// M3 returns the matrix with the given elements in row-major order.
// They are stored internally in column-major order.
func M3(
	n11, n12, n13,
	n21, n22, n23,
	n31, n32, n33 float32,
) Matrix3 {
	return Matrix3{
		n11, n21, n31,
		n12, n22, n32,
		n13, n23, n33,
	}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Zero3 returns the 3x3 zero matrix.
func Zero3() Matrix3 {
	return Matrix3{}
}

// Matrix3FromMatrix4 returns the top-left 3x3 of m.
func Matrix3FromMatrix4(m Matrix4) Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Matrix3FromEuler returns the rotation matrix for the given Euler
// angles.
func Matrix3FromEuler(e Euler) Matrix3 {
	return Matrix3FromMatrix4(Matrix4FromEuler(e))
}

// Matrix3FromQuaternion returns the rotation matrix for the given
// rotation quaternion.
func Matrix3FromQuaternion(q Quaternion) Matrix3 {
	return Matrix3FromMatrix4(Matrix4FromQuaternion(q))
}

// NormalMatrix returns the normal matrix for the given transformation
// matrix, which is multiplied with normal vectors to correct for
// deforms such as scaling and skewing.
//
// The normal matrix is calculated as the adjugate of the upper-left
// 3x3 of the transformation matrix, not the inverse transpose. See
// https://github.com/graphitemaster/normals_revisited.
func NormalMatrix(m Matrix4) Matrix3 {
	return Matrix3FromMatrix4(m).Adjugate()
}

// Mul returns the matrix product of m and o. Vectors are column
// vectors, so the product applies o first and m second.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var out Matrix3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out[col*3+row] = m[0*3+row]*o[col*3+0] +
				m[1*3+row]*o[col*3+1] +
				m[2*3+row]*o[col*3+2]
		}
	}
	return out
}

// MulVector3 returns the matrix-vector product of m and v.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalar returns m with every element divided by s.
func (m Matrix3) DivScalar(s float32) Matrix3 {
	for i := range m {
		m[i] /= s
	}
	return m
}

// Transpose returns the transpose of m.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of m.
func (m Matrix3) Determinant() float32 {
	n11, n21, n31 := m[0], m[1], m[2]
	n12, n22, n32 := m[3], m[4], m[5]
	n13, n23, n33 := m[6], m[7], m[8]

	return n11*n22*n33 + n12*n23*n31 + n13*n21*n32 -
		n11*n23*n32 - n12*n21*n33 - n13*n22*n31
}

// Adjugate returns the adjugate of m, also known as the classical
// adjoint.
func (m Matrix3) Adjugate() Matrix3 {
	n11, n21, n31 := m[0], m[1], m[2]
	n12, n22, n32 := m[3], m[4], m[5]
	n13, n23, n33 := m[6], m[7], m[8]

	return Matrix3{
		n22*n33 - n23*n32,
		n23*n31 - n21*n33,
		n21*n32 - n22*n31,
		n13*n32 - n12*n33,
		n11*n33 - n13*n31,
		n12*n31 - n11*n32,
		n12*n23 - n13*n22,
		n13*n21 - n11*n23,
		n11*n22 - n12*n21,
	}
}

// Inverse returns the inverse of m, calculated in terms of its
// [Matrix3.Adjugate]. If m has no inverse, i.e. its determinant is
// zero, the 3x3 zero matrix is returned instead.
func (m Matrix3) Inverse() Matrix3 {
	det := m.Determinant()
	if det == 0 {
		return Zero3()
	}
	return m.Adjugate().DivScalar(det)
}
