package models

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/tracer/pkg/math3d"
)

// positionDoc builds an in-memory document with one mesh whose single
// primitive holds the given positions.
func positionDoc(positions [][3]float32) *gltf.Document {
	data := make([]byte, 0, len(positions)*12)
	for _, p := range positions {
		for _, f := range p {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
		}
	}

	return &gltf.Document{
		Buffers:     []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{{Buffer: 0, ByteLength: len(data)}},
		Accessors: []*gltf.Accessor{{
			BufferView:    gltf.Index(0),
			ComponentType: gltf.ComponentFloat,
			Count:         len(positions),
			Type:          gltf.AccessorVec3,
		}},
		Meshes: []*gltf.Mesh{{
			Name: "tri",
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: 0},
			}},
		}},
	}
}

func TestLoadPointsInvalidPath(t *testing.T) {
	_, err := LoadPoints("/nonexistent/path.glb")
	assert.Error(t, err)
}

func TestDocumentPoints(t *testing.T) {
	doc := positionDoc([][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0.5}})

	points, err := documentPoints(doc)
	require.NoError(t, err)
	require.Len(t, points, 3)

	want := []math3d.Tuple{math3d.Point(0, 0, 0), math3d.Point(1, 0, 0), math3d.Point(0, 1, 0.5)}
	for i, p := range points {
		assert.True(t, p.IsPoint())
		assert.True(t, p.Equal(want[i]), "point %d = %v, want %v", i, p, want[i])
	}
}

func TestDocumentPointsSkipsPrimitivesWithoutPositions(t *testing.T) {
	doc := positionDoc([][3]float32{{1, 2, 3}})
	doc.Meshes[0].Primitives = append(doc.Meshes[0].Primitives, &gltf.Primitive{
		Attributes: map[string]int{gltf.NORMAL: 0},
	})

	points, err := documentPoints(doc)
	require.NoError(t, err)
	assert.Len(t, points, 1)
}

func TestReadPositionsErrors(t *testing.T) {
	t.Run("wrong type", func(t *testing.T) {
		doc := positionDoc([][3]float32{{1, 2, 3}})
		doc.Accessors[0].Type = gltf.AccessorVec2
		_, err := documentPoints(doc)
		assert.Error(t, err)
	})

	t.Run("short buffer", func(t *testing.T) {
		doc := positionDoc([][3]float32{{1, 2, 3}})
		doc.Accessors[0].Count = 4
		_, err := documentPoints(doc)
		assert.Error(t, err)
	})

	t.Run("missing accessor", func(t *testing.T) {
		doc := positionDoc([][3]float32{{1, 2, 3}})
		doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION] = 7
		_, err := documentPoints(doc)
		assert.Error(t, err)
	})

	t.Run("missing buffer view", func(t *testing.T) {
		doc := positionDoc([][3]float32{{1, 2, 3}})
		doc.Accessors[0].BufferView = gltf.Index(5)
		_, err := documentPoints(doc)
		assert.ErrorContains(t, err, "buffer view 5 does not exist")
	})

	t.Run("missing buffer", func(t *testing.T) {
		doc := positionDoc([][3]float32{{1, 2, 3}})
		doc.BufferViews[0].Buffer = 3
		_, err := documentPoints(doc)
		assert.ErrorContains(t, err, "buffer 3 does not exist")
	})
}
