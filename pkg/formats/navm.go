package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// NAVM format errors.
var (
	ErrInvalidNAVMMagic       = errors.New("invalid NAVM magic: expected 'NAVM'")
	ErrUnsupportedNAVMVersion = errors.New("unsupported NAVM version")
	ErrTruncatedNAVMData      = errors.New("truncated NAVM data")
)

// NAVMVersion10 is the only navigation mesh layout currently produced by the
// exporter.
const NAVMVersion10 uint32 = 10

// NAVMNullIndex marks an absent face or edge reference.
const NAVMNullIndex uint16 = 0xffff

// NAVMHeaderSize is the size of the fixed v1.0 header in bytes.
const NAVMHeaderSize = 48

// Record sizes on disk.
const (
	navmVertexSize = 12
	navmEdgeSize   = 8
	navmFaceSize   = 36
)

// navmHeader mirrors the on-disk header. Section offsets are relative to
// DataOffset.
type navmHeader struct {
	Magic            [4]byte
	Version          uint32
	DataOffset       uint32
	VertexCount      uint32
	VertexDataOffset uint32
	EdgeCount        uint32
	EdgeDataOffset   uint32
	FaceCount        uint32
	FaceDataOffset   uint32
	Gravity          [3]float32
}

// NAVMVertex is a single vertex position in mesh local space.
type NAVMVertex struct {
	Position [3]float32
}

// NAVMEdge connects two vertices and lists the faces on either side.
// A boundary edge has NAVMNullIndex in one face slot.
type NAVMEdge struct {
	Vertices [2]uint16
	Faces    [2]uint16
}

// NAVMFace is a triangle with precomputed normal and centroid.
type NAVMFace struct {
	Vertices [3]uint16
	Edges    [3]uint16
	Normal   [3]float32
	Center   [3]float32
}

// NAVM represents a parsed navigation mesh file.
type NAVM struct {
	Version  uint32
	Gravity  [3]float32
	Vertices []NAVMVertex
	Edges    []NAVMEdge
	Faces    []NAVMFace
}

// ParseNAVM parses a navigation mesh from raw bytes.
func ParseNAVM(data []byte) (*NAVM, error) {
	if len(data) < NAVMHeaderSize {
		return nil, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncatedNAVMData, NAVMHeaderSize, len(data))
	}

	var hdr navmHeader
	if err := binary.Read(bytes.NewReader(data[:NAVMHeaderSize]), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: reading header", ErrTruncatedNAVMData)
	}

	if string(hdr.Magic[:]) != "NAVM" {
		return nil, ErrInvalidNAVMMagic
	}
	if hdr.Version != NAVMVersion10 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedNAVMVersion, hdr.Version)
	}

	// 0xffff is reserved as the null index, so no section may reach it.
	for _, c := range []struct {
		name  string
		count uint32
	}{
		{"vertex", hdr.VertexCount},
		{"edge", hdr.EdgeCount},
		{"face", hdr.FaceCount},
	} {
		if c.count >= uint32(NAVMNullIndex) {
			return nil, fmt.Errorf("invalid NAVM %s count: %d", c.name, c.count)
		}
	}

	navm := &NAVM{
		Version:  hdr.Version,
		Gravity:  hdr.Gravity,
		Vertices: make([]NAVMVertex, hdr.VertexCount),
		Edges:    make([]NAVMEdge, hdr.EdgeCount),
		Faces:    make([]NAVMFace, hdr.FaceCount),
	}

	if err := readSection(data, hdr.DataOffset, hdr.VertexDataOffset, navmVertexSize, navm.Vertices); err != nil {
		return nil, fmt.Errorf("reading vertices: %w", err)
	}
	if err := readSection(data, hdr.DataOffset, hdr.EdgeDataOffset, navmEdgeSize, navm.Edges); err != nil {
		return nil, fmt.Errorf("reading edges: %w", err)
	}
	if err := readSection(data, hdr.DataOffset, hdr.FaceDataOffset, navmFaceSize, navm.Faces); err != nil {
		return nil, fmt.Errorf("reading faces: %w", err)
	}

	return navm, nil
}

// readSection decodes a packed array of fixed-size records into out, which
// must be a slice of one of the NAVM record types.
func readSection[T NAVMVertex | NAVMEdge | NAVMFace](data []byte, base, offset uint32, recordSize int, out []T) error {
	if len(out) == 0 {
		return nil
	}
	start := uint64(base) + uint64(offset)
	end := start + uint64(recordSize*len(out))
	if end > uint64(len(data)) {
		return fmt.Errorf("%w: section [%d:%d] exceeds %d bytes", ErrTruncatedNAVMData, start, end, len(data))
	}
	if err := binary.Read(bytes.NewReader(data[start:end]), binary.LittleEndian, out); err != nil {
		return fmt.Errorf("%w: %v", ErrTruncatedNAVMData, err)
	}
	return nil
}

// ParseNAVMFile parses a navigation mesh file from disk.
func ParseNAVMFile(path string) (*NAVM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading NAVM file: %w", err)
	}
	return ParseNAVM(data)
}

// Encode serializes the mesh in the v1.0 layout: header, then vertices,
// edges and faces packed back to back.
func (n *NAVM) Encode() ([]byte, error) {
	vertexBytes := uint32(len(n.Vertices) * navmVertexSize)
	edgeBytes := uint32(len(n.Edges) * navmEdgeSize)

	hdr := navmHeader{
		Magic:            [4]byte{'N', 'A', 'V', 'M'},
		Version:          NAVMVersion10,
		DataOffset:       NAVMHeaderSize,
		VertexCount:      uint32(len(n.Vertices)),
		VertexDataOffset: 0,
		EdgeCount:        uint32(len(n.Edges)),
		EdgeDataOffset:   vertexBytes,
		FaceCount:        uint32(len(n.Faces)),
		FaceDataOffset:   vertexBytes + edgeBytes,
		Gravity:          n.Gravity,
	}

	buf := new(bytes.Buffer)
	buf.Grow(NAVMHeaderSize + int(vertexBytes+edgeBytes) + len(n.Faces)*navmFaceSize)
	for _, part := range []any{hdr, n.Vertices, n.Edges, n.Faces} {
		if err := binary.Write(buf, binary.LittleEndian, part); err != nil {
			return nil, fmt.Errorf("encoding NAVM: %w", err)
		}
	}
	return buf.Bytes(), nil
}
