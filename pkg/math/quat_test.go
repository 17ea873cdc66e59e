package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatFromAxisAngleMatchesRotate(t *testing.T) {
	angle := float32(math.Pi / 3)
	q := QuatFromAxisAngle(Vec3{Z: 1}, angle).ToMat4()
	r := RotateZ(angle)

	p := Vec3{1, 2, 3}
	if got, want := q.TransformPoint(p), r.TransformPoint(p); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("axis-angle rotation: got %v, want %v", got, want)
	}
}

func TestQuatFromEulerDegrees(t *testing.T) {
	// 90 degrees around X maps +Y onto +Z.
	m := QuatFromEulerDegrees(90, 0, 0).ToMat4()
	got := m.TransformPoint(Vec3{0, 1, 0})
	if !got.ApproxEqual(Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("euler X 90: got %v, want (0, 0, 1)", got)
	}
}
