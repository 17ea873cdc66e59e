package pathfinding

import "github.com/Faultbox/midgard-nav/pkg/math"

// WayPoint is one step of a path across the mesh.
type WayPoint struct {
	FaceIndex         uint32
	ScenePosition     math.Vec3 // Position in scene space
	FaceLocalPosition math.Vec2 // Position in the face's planar frame
}
