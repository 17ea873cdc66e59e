package navmesh

import (
	"errors"
	"testing"

	"github.com/Faultbox/midgard-nav/pkg/math"
)

var down = math.Vec3{X: 0, Y: 0, Z: -1}

// stripMesh builds n triangles in a row on the z=0 plane, each sharing one
// edge with the next. Bottom vertices sit at (i, 0), top ones at (i, 1).
func stripMesh(t *testing.T, n int) *NavigationMesh {
	t.Helper()

	columns := (n+1)/2 + 1
	vertices := make([]Vertex, 0, columns*2)
	for i := 0; i < columns; i++ {
		vertices = append(vertices,
			Vertex{X: float32(i), Y: 0, Z: 0},
			Vertex{X: float32(i), Y: 1, Z: 0},
		)
	}
	bottom := func(i int) uint16 { return uint16(2 * i) }
	top := func(i int) uint16 { return uint16(2*i + 1) }

	triangles := make([][3]uint16, n)
	for k := 0; k < n; k++ {
		j := k / 2
		if k%2 == 0 {
			triangles[k] = [3]uint16{bottom(j), bottom(j + 1), top(j)}
		} else {
			triangles[k] = [3]uint16{bottom(j + 1), top(j + 1), top(j)}
		}
	}

	m, err := FromTriangles(vertices, triangles, down)
	if err != nil {
		t.Fatalf("FromTriangles failed: %v", err)
	}
	return m
}

// twoFloorMesh builds two unit quads stacked at z=0 (faces 0, 1) and
// z=4 (faces 2, 3), with no connection between them.
func twoFloorMesh(t *testing.T) *NavigationMesh {
	t.Helper()

	vertices := []Vertex{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 4}, {X: 1, Y: 0, Z: 4}, {X: 1, Y: 1, Z: 4}, {X: 0, Y: 1, Z: 4},
	}
	triangles := [][3]uint16{
		{0, 1, 2}, {0, 2, 3},
		{4, 5, 6}, {4, 6, 7},
	}
	m, err := FromTriangles(vertices, triangles, down)
	if err != nil {
		t.Fatalf("FromTriangles failed: %v", err)
	}
	return m
}

func TestFromTriangles_Counts(t *testing.T) {
	m := stripMesh(t, 5)

	if m.FaceCount() != 5 {
		t.Errorf("expected 5 faces, got %d", m.FaceCount())
	}
	// 5 triangles in a strip: 4 shared edges + 7 boundary edges.
	if m.EdgeCount() != 11 {
		t.Errorf("expected 11 edges, got %d", m.EdgeCount())
	}
	if m.VertexCount() != 8 {
		t.Errorf("expected 8 vertices, got %d", m.VertexCount())
	}
}

func TestFromTriangles_FaceData(t *testing.T) {
	m := stripMesh(t, 5)

	f := m.GetFace(2)
	if f == nil {
		t.Fatal("face 2 missing")
	}
	if !f.Normal.ApproxEqual(math.Vec3{Z: 1}, 1e-6) {
		t.Errorf("face 2 normal = %v, want (0, 0, 1)", f.Normal)
	}
	if !f.Center.ApproxEqual(math.Vec3{X: 4.0 / 3, Y: 1.0 / 3}, 1e-6) {
		t.Errorf("face 2 center = %v, want (4/3, 1/3, 0)", f.Center)
	}

	// Edge i connects vertex i and vertex (i+1)%3.
	for i := 0; i < 3; i++ {
		e := m.GetEdge(int(f.Edge[i]))
		a, b := f.Vertex[i], f.Vertex[(i+1)%3]
		if !(e.Vertex[0] == a && e.Vertex[1] == b) && !(e.Vertex[0] == b && e.Vertex[1] == a) {
			t.Errorf("edge %d of face 2 joins %v, want {%d %d}", i, e.Vertex, a, b)
		}
	}
}

func TestAdjacencySymmetry(t *testing.T) {
	for name, m := range map[string]*NavigationMesh{
		"strip":  stripMesh(t, 7),
		"floors": twoFloorMesh(t),
	} {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < int(m.FaceCount()); i++ {
				f := m.GetFace(i)
				for _, ei := range f.Edge {
					e := m.GetEdge(int(ei))
					if e.Face[0] != uint16(i) && e.Face[1] != uint16(i) {
						t.Errorf("edge %d of face %d lists faces %v", ei, i, e.Face)
					}
				}
			}
		})
	}
}

func TestFromTriangles_Errors(t *testing.T) {
	vertices := []Vertex{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: -1, Y: 0},
	}

	tests := []struct {
		name      string
		triangles [][3]uint16
		want      error
	}{
		{"vertex out of range", [][3]uint16{{0, 1, 9}}, ErrInvalidMesh},
		{"repeated vertex", [][3]uint16{{0, 1, 1}}, ErrInvalidMesh},
		{"three faces on one edge", [][3]uint16{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}}, ErrNonManifoldEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromTriangles(vertices, tt.triangles, down)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if m != nil {
				t.Error("expected nil mesh on error")
			}
		})
	}
}

func TestNew_Validation(t *testing.T) {
	valid := func() Data {
		return Data{
			Vertices: []Vertex{{X: 0}, {X: 1}, {Y: 1}},
			Edges: []Edge{
				{Vertex: [2]uint16{0, 1}, Face: [2]uint16{0, NullFace}},
				{Vertex: [2]uint16{1, 2}, Face: [2]uint16{0, NullFace}},
				{Vertex: [2]uint16{2, 0}, Face: [2]uint16{NullFace, 0}},
			},
			Faces: []Face{
				{Vertex: [3]uint16{0, 1, 2}, Edge: [3]uint16{0, 1, 2}, Normal: math.Vec3{Z: 1}},
			},
			Gravity: down,
		}
	}

	if _, err := New(valid()); err != nil {
		t.Fatalf("valid data rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Data)
	}{
		{"face vertex out of range", func(d *Data) { d.Faces[0].Vertex[2] = 7 }},
		{"face edge out of range", func(d *Data) { d.Faces[0].Edge[1] = 3 }},
		{"edge vertex out of range", func(d *Data) { d.Edges[1].Vertex[1] = 3 }},
		{"edge face out of range", func(d *Data) { d.Edges[0].Face[1] = 4 }},
		{"edge does not list face", func(d *Data) { d.Edges[2].Face = [2]uint16{NullFace, NullFace} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid()
			tt.mutate(&d)
			m, err := New(d)
			if !errors.Is(err, ErrInvalidMesh) {
				t.Errorf("expected ErrInvalidMesh, got %v", err)
			}
			if m != nil {
				t.Error("expected nil mesh on error")
			}
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	m := stripMesh(t, 3)
	navm := m.NAVM()
	navm.Vertices[0].Position = [3]float32{99, 99, 99}

	if v := m.GetVertex(0); *v != (Vertex{}) {
		t.Errorf("mesh vertex changed through export: %v", *v)
	}
}

func TestAccessorsOutOfRange(t *testing.T) {
	m := stripMesh(t, 3)

	for _, i := range []int{-1, 3, 1000} {
		if m.GetFace(i) != nil {
			t.Errorf("GetFace(%d) should be nil", i)
		}
	}
	if m.GetEdge(int(m.EdgeCount())) != nil {
		t.Error("GetEdge past end should be nil")
	}
	if m.GetVertex(-1) != nil || m.GetVertex(int(m.VertexCount())) != nil {
		t.Error("GetVertex out of range should be nil")
	}
}

func TestGravityVector(t *testing.T) {
	m := stripMesh(t, 1)
	m.SetSceneTransform(math.RotateX(1.2))

	if m.GravityVector() != down {
		t.Errorf("gravity = %v, want %v regardless of transform", m.GravityVector(), down)
	}
}

func TestBounds(t *testing.T) {
	box := twoFloorMesh(t).Bounds()
	if box.Min != (math.Vec3{}) || box.Max != (math.Vec3{X: 1, Y: 1, Z: 4}) {
		t.Errorf("bounds = %+v", box)
	}
}
