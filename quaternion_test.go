package gmath_test

import (
	"math"
	"testing"

	"deedles.dev/gmath"
	"github.com/stretchr/testify/require"
)

func TestQuaternionIdentity(t *testing.T) {
	q := gmath.QuaternionIdentity()
	require.Equal(t, gmath.Quaternion{W: 1}, q)
	requireVector3InDelta(t, gmath.V3(1, 2, 3), q.Rotate(gmath.V3(1, 2, 3)))
}

func TestQuaternionFromAxisAngle(t *testing.T) {
	identity := gmath.QuaternionIdentity()

	for _, axis := range []gmath.Vector3{
		gmath.V3(1, 0, 0),
		gmath.V3(0, 1, 0),
		gmath.V3(0, 0, 1),
	} {
		require.Equal(t, identity, gmath.QuaternionFromAxisAngle(axis, 0))
	}

	// Opposite half turns around the same axis cancel out.
	b1 := gmath.QuaternionFromAxisAngle(gmath.V3(1, 0, 0), math.Pi)
	b2 := gmath.QuaternionFromAxisAngle(gmath.V3(1, 0, 0), -math.Pi)
	require.NotEqual(t, identity, b1)
	require.NotEqual(t, identity, b2)
	requireQuaternionInDelta(t, identity, b1.Mul(b2))
}

func TestQuaternionNorm(t *testing.T) {
	q := gmath.Quaternion{X: 1, Y: 2, Z: 3, W: 4}
	require.NotEqual(t, float32(1), q.Norm())

	n := q.Normalized()
	require.InDelta(t, 1, n.Norm(), delta)

	// Constructors produce unit quaternions.
	require.InDelta(t, 1, gmath.QuaternionFromAxisAngle(gmath.V3(0, 1, 0), 2.1).Norm(), delta)
	require.InDelta(t, 1, gmath.QuaternionFromEuler(gmath.Euler{X: 0.5, Y: 1, Z: -2}).Norm(), delta)

	// The zero quaternion has no direction.
	require.Equal(t, gmath.QuaternionIdentity(), gmath.Quaternion{}.Normalized())
}

func TestQuaternionConjugate(t *testing.T) {
	q := gmath.Quaternion{X: 1, Y: 2, Z: 3, W: 4}
	c := q.Conjugate()

	require.Equal(t, gmath.Quaternion{X: -1, Y: -2, Z: -3, W: 4}, c)
	require.Equal(t, c, q.Inverse())

	// For a unit quaternion the inverse reverses the rotation.
	r := gmath.QuaternionFromAxisAngle(gmath.V3(0, 0, 1), 0.8)
	requireQuaternionInDelta(t, gmath.QuaternionIdentity(), r.Mul(r.Inverse()))
}

func TestQuaternionMulComposition(t *testing.T) {
	a := gmath.QuaternionFromAxisAngle(gmath.V3(0, 0, 1), 0.7)
	b := gmath.QuaternionFromAxisAngle(gmath.V3(1, 0, 0), -0.4)

	// Multiplication composes the same way matrices do: b first,
	// then a.
	ab := gmath.Matrix4FromQuaternion(a.Mul(b))
	mm := gmath.Matrix4FromQuaternion(a).Mul(gmath.Matrix4FromQuaternion(b))
	requireMatrix4InDelta(t, mm, ab)

	// Hamilton product is not commutative.
	v := gmath.V3(1, 2, 3)
	requireVector3InDelta(t, a.Rotate(b.Rotate(v)), a.Mul(b).Rotate(v))
}

func TestQuaternionRotate(t *testing.T) {
	quarter := gmath.QuaternionFromAxisAngle(gmath.V3(0, 0, 1), math.Pi/2)
	requireVector3InDelta(t, gmath.V3(0, 1, 0), quarter.Rotate(gmath.V3(1, 0, 0)))

	// Rotation agrees with the equivalent matrix.
	q := gmath.QuaternionFromEuler(gmath.Euler{X: 0.3, Y: -0.8, Z: 1.2})
	m := gmath.Matrix4FromQuaternion(q)
	v := gmath.V3(0.5, -2, 4)
	requireVector3InDelta(t, m.TransformPoint(v), q.Rotate(v))
}

func TestQuaternionMatrixRoundTrip(t *testing.T) {
	qs := []gmath.Quaternion{
		gmath.QuaternionIdentity(),
		gmath.QuaternionFromAxisAngle(gmath.V3(0, 1, 0), 0.5),
		gmath.QuaternionFromAxisAngle(gmath.V3(1, 0, 0).Normalized(), 3),
		// Near a half turn the trace goes negative.
		gmath.QuaternionFromAxisAngle(gmath.V3(0, 0, 1), math.Pi-1e-3),
		gmath.QuaternionFromEuler(gmath.Euler{X: 1, Y: 2, Z: 3, Order: gmath.OrderZXY}),
	}

	for _, q := range qs {
		got := gmath.QuaternionFromMatrix4(gmath.Matrix4FromQuaternion(q))
		requireSameRotation(t, q, got)

		got3 := gmath.QuaternionFromMatrix3(gmath.Matrix3FromQuaternion(q))
		requireSameRotation(t, q, got3)
	}
}

func TestQuaternionEulerRoundTrip(t *testing.T) {
	for _, order := range allOrders {
		t.Run(order.String(), func(t *testing.T) {
			e := gmath.Euler{X: 0.1, Y: 0.7, Z: -0.4, Order: order}

			q := gmath.QuaternionFromEuler(e)
			m := gmath.Matrix4FromEuler(e)
			requireMatrix4InDelta(t, m, gmath.Matrix4FromQuaternion(q))
		})
	}
}

func TestSlerpEndpoints(t *testing.T) {
	a := gmath.QuaternionFromAxisAngle(gmath.V3(0, 1, 0), 0.3)
	b := gmath.QuaternionFromAxisAngle(gmath.V3(0, 1, 0), 2.1)

	requireQuaternionInDelta(t, a, a.Slerp(b, 0))
	requireQuaternionInDelta(t, b, a.Slerp(b, 1))

	for _, tt := range []float32{0, 0.25, 0.5, 0.75, 1} {
		requireQuaternionInDelta(t, a, a.Slerp(a, tt))
		require.InDelta(t, 1, a.Slerp(b, tt).Norm(), delta)
	}
}

func TestSlerpMidpoint(t *testing.T) {
	a := gmath.QuaternionIdentity()
	b := gmath.QuaternionFromAxisAngle(gmath.V3(0, 0, 1), math.Pi/2)

	mid := a.Slerp(b, 0.5)
	expected := gmath.QuaternionFromAxisAngle(gmath.V3(0, 0, 1), math.Pi/4)
	requireSameRotation(t, expected, mid)
}

func TestSlerpShortestArc(t *testing.T) {
	a := gmath.QuaternionFromAxisAngle(gmath.V3(0, 0, 1), 0.2)
	b := gmath.QuaternionFromAxisAngle(gmath.V3(0, 0, 1), 0.6)

	// Negating b flips it to the opposite hemisphere without
	// changing the rotation; slerp takes the short way regardless.
	neg := gmath.Quaternion{X: -b.X, Y: -b.Y, Z: -b.Z, W: -b.W}
	expected := gmath.QuaternionFromAxisAngle(gmath.V3(0, 0, 1), 0.4)

	requireSameRotation(t, expected, a.Slerp(b, 0.5))
	requireSameRotation(t, expected, a.Slerp(neg, 0.5))
}

func TestSlerpNearParallel(t *testing.T) {
	a := gmath.QuaternionFromAxisAngle(gmath.V3(0, 1, 0), 0.1)
	b := gmath.QuaternionFromAxisAngle(gmath.V3(0, 1, 0), 0.1+2e-5)

	mid := a.Slerp(b, 0.5)
	require.InDelta(t, 1, mid.Norm(), delta)
	requireSameRotation(t, a, mid)
}
