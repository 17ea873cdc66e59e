// Package agent moves a single agent along navigation mesh paths.
package agent

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-nav/internal/logger"
	"github.com/Faultbox/midgard-nav/pkg/math"
	"github.com/Faultbox/midgard-nav/pkg/navmesh"
	"github.com/Faultbox/midgard-nav/pkg/pathfinding"
)

// Default movement settings.
const (
	DefaultSpeed        = 4.0  // Units per second
	DefaultArriveRadius = 0.05 // Distance at which a waypoint counts as reached
)

// MovementController moves an agent across a navigation mesh, following
// waypoint paths and keeping the agent on the floor.
type MovementController struct {
	pathFinder   *pathfinding.PathFinder
	mesh         *navmesh.NavigationMesh
	speed        float32
	arriveRadius float32

	position math.Vec3
	face     uint32
	placed   bool

	// Current path
	path      []pathfinding.WayPoint
	pathIndex int

	// Movement state
	IsFollowingPath bool
}

// NewMovementController creates a movement controller. Non-positive speed
// or arrive radius select the defaults.
func NewMovementController(pathFinder *pathfinding.PathFinder, speed, arriveRadius float32) *MovementController {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	if arriveRadius <= 0 {
		arriveRadius = DefaultArriveRadius
	}
	mc := &MovementController{
		pathFinder:   pathFinder,
		speed:        speed,
		arriveRadius: arriveRadius,
		face:         uint32(navmesh.NullFace),
	}
	if pathFinder != nil {
		mc.mesh = pathFinder.Mesh()
	}
	return mc
}

// Place drops the agent onto the floor beneath position (scene space).
// Returns false and leaves the agent unchanged if there is no floor there.
func (mc *MovementController) Place(position math.Vec3) bool {
	if mc.mesh == nil {
		return false
	}
	floor, face, ok := mc.mesh.FindFloor(position)
	if !ok {
		logger.Debug("no floor under agent", zap.Any("position", position))
		return false
	}

	mc.ClearPath()
	mc.position = floor
	mc.face = face
	mc.placed = true
	return true
}

// MoveTo plans a path from the agent's position to destination (scene
// space) and starts following it. Returns the full path, or nil when the
// agent is not placed or no path exists.
func (mc *MovementController) MoveTo(destination math.Vec3) []pathfinding.WayPoint {
	if !mc.placed || mc.pathFinder == nil {
		return nil
	}

	path := mc.pathFinder.FindPathBetweenPoints(mc.position, destination)
	if len(path) == 0 {
		logger.Debug("no path for agent",
			zap.Uint32("face", mc.face),
			zap.Any("destination", destination))
		return nil
	}

	// Skip first waypoint as it's the current position
	if len(path) > 1 {
		mc.path = path[1:]
	} else {
		mc.path = path
	}
	mc.pathIndex = 0
	mc.IsFollowingPath = true

	logger.Debug("agent path planned",
		zap.Int("waypoints", len(path)),
		zap.Uint32("from_face", path[0].FaceIndex),
		zap.Uint32("to_face", path[len(path)-1].FaceIndex))

	return path
}

// Update advances the agent along its path.
// deltaMs is the time since last update in milliseconds.
// Returns true if the agent moved.
func (mc *MovementController) Update(deltaMs float32) bool {
	if !mc.IsFollowingPath || deltaMs <= 0 {
		return false
	}

	budget := mc.speed * deltaMs / 1000.0
	moved := false

	for budget > 0 && mc.pathIndex < len(mc.path) {
		target := mc.path[mc.pathIndex]
		delta := target.ScenePosition.Sub(mc.position)
		dist := delta.Length()

		if dist <= budget || dist < mc.arriveRadius {
			// Reached the waypoint; its face is known exactly
			budget -= dist
			mc.position = target.ScenePosition
			mc.face = target.FaceIndex
			mc.pathIndex++
			moved = true
			continue
		}

		mc.position = mc.position.Add(delta.Scale(budget / dist))
		mc.snapToFloor()
		budget = 0
		moved = true
	}

	if mc.pathIndex >= len(mc.path) {
		mc.IsFollowingPath = false
		logger.Debug("agent arrived",
			zap.Uint32("face", mc.face),
			zap.Any("position", mc.position))
	}
	return moved
}

// snapToFloor projects the agent onto the floor, searching outward from the
// face it stood on. Off-mesh positions keep the previous face.
func (mc *MovementController) snapToFloor() {
	floor, face, ok := mc.mesh.FindFloorForFace(mc.position, mc.face, false)
	if !ok {
		return
	}
	mc.position = floor
	mc.face = face
}

// ClearPath stops the current path following.
func (mc *MovementController) ClearPath() {
	mc.path = nil
	mc.pathIndex = 0
	mc.IsFollowingPath = false
}

// Position returns the agent position in scene space.
func (mc *MovementController) Position() math.Vec3 {
	return mc.position
}

// Face returns the face the agent stands on, or NullFace if not placed.
func (mc *MovementController) Face() uint32 {
	return mc.face
}

// GetPath returns the path being followed, without the starting waypoint.
func (mc *MovementController) GetPath() []pathfinding.WayPoint {
	return mc.path
}

// GetPathIndex returns the current index in the path.
func (mc *MovementController) GetPathIndex() int {
	return mc.pathIndex
}
