// Package models loads vertex positions from glTF documents as points and
// plots them onto a canvas.
package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/render"
)

// ErrNoPoints indicates an operation that needs at least one point.
var ErrNoPoints = errors.New("models: no points")

// LoadPoints loads a GLTF or GLB file and returns the POSITION attribute of
// every primitive of every mesh as points.
func LoadPoints(path string) ([]math3d.Tuple, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	points, err := documentPoints(doc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	render.Logger().Debug("gltf points loaded", "path", path, "meshes", len(doc.Meshes), "points", len(points))
	return points, nil
}

// documentPoints collects positions from all meshes of doc.
func documentPoints(doc *gltf.Document) ([]math3d.Tuple, error) {
	var points []math3d.Tuple
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readPositions(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}
			points = append(points, positions...)
		}
	}
	return points, nil
}

// readPositions reads a float VEC3 accessor as points.
func readPositions(doc *gltf.Document, accessorIdx int) ([]math3d.Tuple, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d does not exist", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	if *accessor.BufferView < 0 || *accessor.BufferView >= len(doc.BufferViews) {
		return nil, fmt.Errorf("buffer view %d does not exist", *accessor.BufferView)
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) {
		return nil, fmt.Errorf("buffer %d does not exist", bufferView.Buffer)
	}
	bufData := doc.Buffers[bufferView.Buffer].Data
	if bufData == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12 // 3 floats * 4 bytes
	}
	count := accessor.Count
	if count > 0 && start+(count-1)*stride+12 > len(bufData) {
		return nil, fmt.Errorf("accessor reads past end of buffer (%d bytes)", len(bufData))
	}

	points := make([]math3d.Tuple, count)
	for i := range count {
		offset := start + i*stride
		points[i] = math3d.Point(
			readFloat32(bufData[offset:]),
			readFloat32(bufData[offset+4:]),
			readFloat32(bufData[offset+8:]),
		)
	}
	return points, nil
}

// readFloat32 reads a little-endian float32 as float64.
func readFloat32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}
