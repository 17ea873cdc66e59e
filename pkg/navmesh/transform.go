package navmesh

import "github.com/Faultbox/midgard-nav/pkg/math"

// SetSceneTransform replaces the local-to-scene transform. The matrix is
// not checked for invertibility; a singular matrix makes PointSceneToLocal
// collapse points.
//
// The transform stays fixed until the next call, so a mesh attached to a
// moving scene node must be updated by the caller.
func (m *NavigationMesh) SetSceneTransform(transform math.Mat4) {
	m.transform = transform
	m.inverseTransform = transform.Inverse()
}

// SceneTransform returns the current local-to-scene transform.
func (m *NavigationMesh) SceneTransform() math.Mat4 {
	return m.transform
}

// PointSceneToLocal transforms a scene-space point into mesh local space.
func (m *NavigationMesh) PointSceneToLocal(point math.Vec3) math.Vec3 {
	return m.inverseTransform.TransformPoint(point)
}

// PointLocalToScene transforms a mesh local-space point into scene space.
func (m *NavigationMesh) PointLocalToScene(point math.Vec3) math.Vec3 {
	return m.transform.TransformPoint(point)
}
