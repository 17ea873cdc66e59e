package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/midgard-nav/pkg/math"
)

// parseVec3 parses "x,y,z".
func parseVec3(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("point %q: expected x,y,z", s)
	}
	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("point %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return math.Vec3FromArray(v), nil
}

// parseFace parses a face index.
func parseFace(s string) (uint32, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

func formatVec3(v math.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}

func formatVec2(v math.Vec2) string {
	return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y)
}
