package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gorustyt/mftlevel/codec"
	"github.com/gorustyt/mftlevel/common"
	"github.com/gorustyt/mftlevel/navmesh"
)

const (
	fixtureW = 4
	fixtureH = 2
	envW     = 8
	envH     = 4
)

func translation(x, y, z float32) [16]float32 {
	m := Identity
	m[3], m[7], m[11] = x, y, z
	return m
}

// twoViewDoc is two viewpoints over two unit squares: view 0 owns x in [0,1],
// view 1 owns x in [1,2]. Each view is adjacent to the other.
func twoViewDoc() *Document {
	return &Document{
		Name:     "gallery",
		DataPath: "./views/",
		Views: []ViewSpec{
			{Name: "entrance", Transform: translation(0.5, 0.5, 1.6), Width: fixtureW, Height: fixtureH,
				FieldOfView: 1.2, CroppedFieldOfView: 1.0, MaxPan: 0.5, MaxTilt: 0.25, Adjacent: []int{1}},
			{Name: "hall", Transform: translation(1.5, 0.5, 1.6), Width: fixtureW, Height: fixtureH,
				FieldOfView: 0.9, Adjacent: []int{0}},
		},
		Vertices: []common.Vec3{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{2, 0, 0}, {2, 1, 0},
		},
		Triangles: []navmesh.Triangle{
			{Verts: [3]uint32{0, 1, 2}, Owner: 0},
			{Verts: [3]uint32{0, 2, 3}, Owner: 0},
			{Verts: [3]uint32{1, 4, 5}, Owner: 1},
			{Verts: [3]uint32{1, 5, 2}, Owner: 1},
		},
	}
}

func encode(t *testing.T, doc *Document) []byte {
	t.Helper()
	data, err := Encode(doc)
	require.NoError(t, err)
	return data
}

func fill(n int, v float32) []float32 {
	pix := make([]float32, n)
	for i := range pix {
		pix[i] = v + float32(i)*0.01
	}
	return pix
}

// writeFixture writes doc and one image per view and kind, returning the
// level file path.
func writeFixture(t *testing.T, doc *Document, c codec.Codec, kinds []ImageKind) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.mftl")
	require.NoError(t, os.WriteFile(path, encode(t, doc), 0o644))

	dataDir := filepath.Join(dir, filepath.FromSlash(doc.DataPath))
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	for vi, v := range doc.Views {
		for _, k := range kinds {
			w, h, ch := v.Width, v.Height, 3
			switch k {
			case Depth:
				ch = 1
			case Environment:
				w, h = envW, envH
			}
			data, err := c.Encode(w, h, ch, fill(w*h*ch, float32(vi)))
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(dataDir, k.FileName(v.Name, c.Extension())), data, 0o644))
		}
	}
	return path
}
