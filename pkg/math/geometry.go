package math

import "math"

// parallelEpsilon is the smallest |dir·normal| treated as a real
// intersection. Anything below it means the line runs along the plane.
const parallelEpsilon = 1e-6

// BarycentricEpsilon is the slack allowed on each barycentric weight, so
// points on an edge shared by two triangles are contained by both despite
// float32 rounding.
const BarycentricEpsilon = 1e-5

// Ray represents a line in 3D space with origin and direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns Origin + t*Direction.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlane intersects the ray's supporting line with the plane through
// point with the given normal. The returned t is signed: negative values mean
// the plane lies behind the origin. ok is false when the line is parallel to
// the plane.
func (r Ray) IntersectPlane(point, normal Vec3) (hit Vec3, t float32, ok bool) {
	denom := r.Direction.Dot(normal)
	if math.Abs(float64(denom)) < parallelEpsilon {
		return Vec3{}, 0, false
	}
	t = point.Sub(r.Origin).Dot(normal) / denom
	return r.At(t), t, true
}

// Barycentric returns the barycentric weights of p with respect to the
// triangle (a, b, c), such that p = u*a + v*b + w*c when p lies in the
// triangle's plane. A degenerate triangle produces NaN weights.
func Barycentric(p, a, b, c Vec3) (u, v, w float32) {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w
}

// InTriangle reports whether all three barycentric weights lie in [0, 1],
// widened by BarycentricEpsilon on both ends.
func InTriangle(u, v, w float32) bool {
	const lo, hi = -BarycentricEpsilon, 1 + BarycentricEpsilon
	return u >= lo && u <= hi && v >= lo && v <= hi && w >= lo && w <= hi
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min Vec3
	Max Vec3
}

// EmptyAABB returns a box that any Extend call will replace.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// Extend grows the box to include p.
func (b AABB) Extend(p Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Size returns the extent of the box on each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}
