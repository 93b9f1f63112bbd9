// Package export writes generated meshes as binary glTF (.glb) assets so
// external tooling can consume them.
package export

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/vantage/pkg/geometry"
)

// ErrEmptyMesh is returned when the mesh has no geometry to export.
var ErrEmptyMesh = errors.New("export: mesh has no vertices")

// Document builds a single-mesh glTF document: one buffer holding float32
// positions followed by uint32 indices, one primitive, one node, one scene.
func Document(name string, m *geometry.Mesh) (*gltf.Document, error) {
	if m == nil || len(m.Vertices) == 0 {
		return nil, ErrEmptyMesh
	}
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, fmt.Errorf("export: triangle %d references vertex %d of %d", i, idx, len(m.Vertices))
			}
		}
	}

	buf := make([]byte, 0, len(m.Vertices)*12+len(m.Triangles)*12)
	for _, v := range m.Vertices {
		buf = appendFloat32(buf, float32(v.X))
		buf = appendFloat32(buf, float32(v.Y))
		buf = appendFloat32(buf, float32(v.Z))
	}
	posLen := len(buf)

	for _, tri := range m.Triangles {
		for _, idx := range tri {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(idx))
		}
	}

	min, max := m.Bounds()

	doc := &gltf.Document{
		Asset: gltf.Asset{Version: "2.0", Generator: "vantage"},
	}
	doc.Buffers = []*gltf.Buffer{
		{ByteLength: len(buf), Data: buf},
	}
	doc.BufferViews = []*gltf.BufferView{
		{Buffer: 0, ByteOffset: 0, ByteLength: posLen, Target: gltf.TargetArrayBuffer},
		{Buffer: 0, ByteOffset: posLen, ByteLength: len(buf) - posLen, Target: gltf.TargetElementArrayBuffer},
	}
	doc.Accessors = []*gltf.Accessor{
		{
			BufferView:    gltf.Index(0),
			ComponentType: gltf.ComponentFloat,
			Count:         len(m.Vertices),
			Type:          gltf.AccessorVec3,
			Min:           []float64{float32Round(min.X), float32Round(min.Y), float32Round(min.Z)},
			Max:           []float64{float32Round(max.X), float32Round(max.Y), float32Round(max.Z)},
		},
		{
			BufferView:    gltf.Index(1),
			ComponentType: gltf.ComponentUint,
			Count:         len(m.Triangles) * 3,
			Type:          gltf.AccessorScalar,
		},
	}
	doc.Meshes = []*gltf.Mesh{
		{
			Name: name,
			Primitives: []*gltf.Primitive{
				{
					Attributes: gltf.PrimitiveAttributes{gltf.POSITION: 0},
					Indices:    gltf.Index(1),
					Mode:       gltf.PrimitiveTriangles,
				},
			},
		},
	}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes = []*gltf.Scene{{Nodes: []int{0}}}
	doc.Scene = gltf.Index(0)

	return doc, nil
}

// SaveGLB writes the mesh as a binary glTF file at path.
func SaveGLB(path, name string, m *geometry.Mesh) error {
	doc, err := Document(name, m)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}

func appendFloat32(b []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
}

// float32Round matches the accessor min/max to the float32 precision the
// buffer actually stores.
func float32Round(v float64) float64 {
	return float64(float32(v))
}
