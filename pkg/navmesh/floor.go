package navmesh

import "github.com/Faultbox/midgard-nav/pkg/math"

// FindFloor looks for the floor under position (scene space).
//
// The point is cast along the gravity line against every face. Among the
// faces that contain the projected point, the one closest to the query point
// wins, so stacked floors resolve to the nearest one. Equal distances keep
// the lowest face index. On success the floor point is returned in scene
// space together with its face index. On failure the position is zero and
// the face is NullFace.
func (m *NavigationMesh) FindFloor(position math.Vec3) (math.Vec3, uint32, bool) {
	ray := math.Ray{
		Origin:    m.PointSceneToLocal(position),
		Direction: m.gravity,
	}

	found := false
	var bestFace uint32
	var bestPoint math.Vec3
	var bestDistance float32

	for i := range m.faces {
		p, ok := m.intersectFace(ray, &m.faces[i])
		if !ok {
			continue
		}
		d := p.Distance(ray.Origin)
		if !found || d < bestDistance {
			found = true
			bestFace = uint32(i)
			bestPoint = p
			bestDistance = d
		}
	}

	if !found {
		return math.Vec3{}, uint32(NullFace), false
	}
	return m.PointLocalToScene(bestPoint), bestFace, true
}

// FindFloorForFace looks for the floor under position starting from a known
// face, typically the face an agent stood on in the previous frame.
//
// The starting face is tested first. If it misses and dontCheckNeighbours is
// false, the search spreads breadth-first across faces sharing an edge until
// one contains the projected point or the connected region is exhausted.
// With dontCheckNeighbours set only the starting face is tested.
//
// A NullFace hint falls back to the full FindFloor scan; any other
// out-of-range hint fails. On success the floor point (scene space) and the
// face that contains it are returned.
func (m *NavigationMesh) FindFloorForFace(position math.Vec3, faceIndex uint32, dontCheckNeighbours bool) (math.Vec3, uint32, bool) {
	if faceIndex == uint32(NullFace) {
		return m.FindFloor(position)
	}
	if faceIndex >= uint32(len(m.faces)) {
		return math.Vec3{}, uint32(NullFace), false
	}

	ray := math.Ray{
		Origin:    m.PointSceneToLocal(position),
		Direction: m.gravity,
	}

	if p, ok := m.intersectFace(ray, &m.faces[faceIndex]); ok {
		return m.PointLocalToScene(p), faceIndex, true
	}
	if dontCheckNeighbours {
		return math.Vec3{}, uint32(NullFace), false
	}

	visited := make([]bool, len(m.faces))
	visited[faceIndex] = true
	queue := []uint16{uint16(faceIndex)}

	for head := 0; head < len(queue); head++ {
		current := queue[head]
		if head > 0 {
			if p, ok := m.intersectFace(ray, &m.faces[current]); ok {
				return m.PointLocalToScene(p), uint32(current), true
			}
		}
		for _, ei := range m.faces[current].Edge {
			next := m.edges[ei].Other(current)
			if next == NullFace || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	return math.Vec3{}, uint32(NullFace), false
}

// FaceLocalPosition expresses a scene-space point in the face's own planar
// frame: origin at the face centroid, X along the face's first edge and Y
// perpendicular to it within the face plane. The point is projected onto
// the plane implicitly. An invalid face yields the zero vector.
func (m *NavigationMesh) FaceLocalPosition(faceIndex uint32, point math.Vec3) math.Vec2 {
	if faceIndex >= uint32(len(m.faces)) {
		return math.Vec2{}
	}
	return m.localToFace(&m.faces[faceIndex], m.PointSceneToLocal(point))
}

// FaceCenterLocalPosition returns the face centroid in its own planar frame.
// By construction of the frame this is the origin.
func (m *NavigationMesh) FaceCenterLocalPosition(faceIndex uint32) math.Vec2 {
	if faceIndex >= uint32(len(m.faces)) {
		return math.Vec2{}
	}
	f := &m.faces[faceIndex]
	return m.localToFace(f, f.Center)
}

// FaceCenter returns the face centroid in scene space.
func (m *NavigationMesh) FaceCenter(faceIndex uint32) (math.Vec3, bool) {
	if faceIndex >= uint32(len(m.faces)) {
		return math.Vec3{}, false
	}
	return m.PointLocalToScene(m.faces[faceIndex].Center), true
}

func (m *NavigationMesh) localToFace(f *Face, local math.Vec3) math.Vec2 {
	a, b, _ := m.faceVertices(f)
	xAxis := b.Sub(a).Normalize()
	yAxis := f.Normal.Cross(xAxis).Normalize()
	d := local.Sub(f.Center)
	return math.Vec2{X: d.Dot(xAxis), Y: d.Dot(yAxis)}
}

// intersectFace casts the ray's line onto the face plane and reports the hit
// if it falls inside the triangle, allowing math.BarycentricEpsilon of slack
// so shared edges have no cracks.
func (m *NavigationMesh) intersectFace(ray math.Ray, f *Face) (math.Vec3, bool) {
	a, b, c := m.faceVertices(f)
	p, _, ok := ray.IntersectPlane(a, f.Normal)
	if !ok {
		return math.Vec3{}, false
	}
	u, v, w := math.Barycentric(p, a, b, c)
	if !math.InTriangle(u, v, w) {
		return math.Vec3{}, false
	}
	return p, true
}
