package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorustyt/mftlevel/common"
	"github.com/gorustyt/mftlevel/navmesh"
)

func TestParse(t *testing.T) {
	doc := twoViewDoc()
	tbl, err := Parse(encode(t, doc))
	require.NoError(t, err)

	assert.Equal(t, "gallery", tbl.Name())
	assert.Equal(t, "./views/", tbl.DataPath())
	assert.Equal(t, 2, tbl.ViewCount())
	assert.Equal(t, 6, tbl.VertexCount())
	assert.Equal(t, 4, tbl.TriangleCount())

	v, ok := tbl.View(0)
	require.True(t, ok)
	assert.Equal(t, "entrance", v.Name())
	assert.Equal(t, doc.Views[0].Transform, v.WorldTransform())
	w, h := v.Resolution()
	assert.Equal(t, []int{fixtureW, fixtureH}, []int{w, h})
	assert.Equal(t, float32(1.2), v.FieldOfView())
	assert.Equal(t, float32(1.0), v.CroppedFieldOfView())
	assert.Equal(t, float32(2), v.Aspect())
	assert.Equal(t, float32(0.5), v.MaxPan())
	assert.Equal(t, float32(0.25), v.MaxTilt())
	assert.Equal(t, 1, v.AdjacentViewCount())
	assert.Equal(t, []int{1}, v.AdjacentViews())

	vert, ok := tbl.Vertex(5)
	require.True(t, ok)
	assert.Equal(t, common.Vec3{2, 1, 0}, vert)

	tri, ok := tbl.Triangle(2)
	require.True(t, ok)
	assert.Equal(t, TriangleRecord{Verts: [3]uint32{1, 4, 5}, Owner: 1}, tri)

	_, ok = tbl.View(2)
	assert.False(t, ok)
	_, ok = tbl.View(-1)
	assert.False(t, ok)
	_, ok = tbl.Vertex(6)
	assert.False(t, ok)
	_, ok = tbl.Triangle(4)
	assert.False(t, ok)
}

func TestParseIsZeroCopy(t *testing.T) {
	data := encode(t, twoViewDoc())
	tbl, err := Parse(data)
	require.NoError(t, err)
	assert.Same(t, &data[0], &tbl.Bytes()[0])
}

func TestParseEmptyLevel(t *testing.T) {
	tbl, err := Parse(encode(t, &Document{Name: "void"}))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.ViewCount())
	assert.Equal(t, 0, tbl.TriangleCount())
	assert.Equal(t, "", tbl.DataPath())
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]func(t *testing.T) []byte{
		"empty": func(*testing.T) []byte { return nil },
		"short": func(*testing.T) []byte { return []byte{1, 2, 3} },
		"identifier": func(t *testing.T) []byte {
			data := encode(t, twoViewDoc())
			copy(data[4:8], "JXLV")
			return data
		},
		"vertex index": func(t *testing.T) []byte {
			doc := twoViewDoc()
			doc.Triangles[3].Verts[1] = 6
			return encode(t, doc)
		},
		"owner index": func(t *testing.T) []byte {
			doc := twoViewDoc()
			doc.Triangles[0].Owner = 2
			return encode(t, doc)
		},
		"adjacency": func(t *testing.T) []byte {
			doc := twoViewDoc()
			doc.Views[1].Adjacent = []int{0, 5}
			return encode(t, doc)
		},
		"data path text": func(t *testing.T) []byte {
			doc := twoViewDoc()
			doc.DataPath = "views\xff\xfe"
			return encode(t, doc)
		},
		"view name": func(t *testing.T) []byte {
			doc := twoViewDoc()
			doc.Views[0].Name = ""
			return encode(t, doc)
		},
		"truncated": func(t *testing.T) []byte {
			data := encode(t, twoViewDoc())
			return data[:len(data)/2]
		},
		"root offset": func(t *testing.T) []byte {
			data := encode(t, twoViewDoc())
			data[0], data[1], data[2], data[3] = 0xff, 0xff, 0xff, 0x7f
			return data
		},
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			tbl, err := Parse(build(t))
			assert.ErrorIs(t, err, ErrMalformedLevel)
			assert.Nil(t, tbl)
		})
	}
}

func TestEncodeTriangleOwners(t *testing.T) {
	doc := twoViewDoc()
	doc.Triangles = append(doc.Triangles, navmesh.Triangle{Verts: [3]uint32{3, 2, 5}, Owner: 1})
	tbl, err := Parse(encode(t, doc))
	require.NoError(t, err)
	for i, want := range doc.Triangles {
		got, ok := tbl.Triangle(i)
		require.True(t, ok)
		assert.Equal(t, want.Verts, got.Verts)
		assert.Equal(t, want.Owner, got.Owner)
	}
}

func TestEncodeRejectsWideIDs(t *testing.T) {
	cases := map[string]func(doc *Document){
		"owner":          func(doc *Document) { doc.Triangles[1].Owner = 1 << 16 },
		"negative owner": func(doc *Document) { doc.Triangles[1].Owner = -1 },
		"adjacent":       func(doc *Document) { doc.Views[0].Adjacent = []int{1, 70000} },
		"resolution":     func(doc *Document) { doc.Views[1].Width = -4 },
		"view count": func(doc *Document) {
			doc.Views = make([]ViewSpec, 1<<16+1)
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			doc := twoViewDoc()
			mutate(doc)
			data, err := Encode(doc)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.Nil(t, data)
		})
	}

	// the largest uint16 id encodes; Parse then checks it against the view count
	doc := twoViewDoc()
	doc.Triangles[0].Owner = 1<<16 - 1
	tbl, err := Parse(encode(t, doc))
	assert.Nil(t, tbl)
	assert.ErrorIs(t, err, ErrMalformedLevel)
}
