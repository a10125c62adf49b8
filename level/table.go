package level

import (
	"unicode/utf8"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/gorustyt/mftlevel/common"
	"github.com/gorustyt/mftlevel/schema/mft"
)

// root offset followed by the file identifier
const headerSize = flatbuffers.SizeUOffsetT + len(mft.LevelIdentifier)

// Table is a read-only view over a level buffer. Accessors decode straight
// from the buffer on every call; nothing is copied at parse time. The buffer
// must not be modified while the Table is in use.
type Table struct {
	buf  []byte
	root mft.Level
}

// ViewRecord is one viewpoint of a Table.
type ViewRecord struct {
	v mft.View
}

// TriangleRecord is one navmesh triangle of a Table.
type TriangleRecord struct {
	Verts [3]uint32
	Owner int
}

// Parse validates data as a level and returns a view over it. Every index in
// the buffer is checked here, so the accessors of a returned Table never read
// out of bounds.
func Parse(data []byte) (t *Table, err error) {
	if len(data) < headerSize {
		return nil, malformed("buffer of %d bytes is shorter than the header", len(data))
	}
	if !mft.LevelBufferHasIdentifier(data) {
		return nil, malformed("missing %q identifier", mft.LevelIdentifier)
	}
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = malformed("truncated or corrupt table: %v", r)
		}
	}()
	t = &Table{buf: data}
	t.root.Init(data, flatbuffers.GetUOffsetT(data))
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// touchViewScalars reads every scalar field of v and discards the values. A
// field whose vtable offset points outside the buffer panics here, inside
// Parse's recover, instead of later in a ViewRecord accessor.
func touchViewScalars(v *mft.View) {
	_, _ = v.ResX(), v.ResY()
	_, _, _ = v.Fov(), v.CroppedFov(), v.Aspect()
	_, _ = v.MaxPan(), v.MaxTilt()
}

func (t *Table) validate() error {
	if !utf8.Valid(t.root.Name()) {
		return malformed("level name is not valid UTF-8")
	}
	if !utf8.Valid(t.root.DataPath()) {
		return malformed("data_path is not valid UTF-8")
	}
	nviews := t.root.ViewsLength()
	var v mft.View
	for i := 0; i < nviews; i++ {
		t.root.Views(&v, i)
		name := v.Name()
		if len(name) == 0 || !utf8.Valid(name) {
			return malformed("view %d has an empty or invalid name", i)
		}
		m := v.WorldTransform(nil)
		if m == nil {
			return malformed("view %d (%s) has no world transform", i, name)
		}
		m.M33() // last field of the matrix; bounds-checks the struct
		touchViewScalars(&v)
		for j, n := 0, v.AdjacentViewsLength(); j < n; j++ {
			if adj := int(v.AdjacentViews(j)); adj >= nviews {
				return malformed("view %d (%s) is adjacent to view %d of %d", i, name, adj, nviews)
			}
		}
	}
	nverts := t.root.NavmeshVertsLength()
	var vert mft.Vec3
	for i := 0; i < nverts; i++ {
		// Z is the last field; reading it bounds-checks the whole struct.
		t.root.NavmeshVerts(&vert, i)
		vert.Z()
	}
	var tri mft.Triangle
	for i, n := 0, t.root.NavmeshTrisLength(); i < n; i++ {
		t.root.NavmeshTris(&tri, i)
		for _, idx := range [3]uint32{tri.V0(), tri.V1(), tri.V2()} {
			if !common.InRange(idx, nverts) {
				return malformed("triangle %d references vertex %d of %d", i, idx, nverts)
			}
		}
		if owner := int(tri.ViewIndex()); owner >= nviews {
			return malformed("triangle %d is owned by view %d of %d", i, owner, nviews)
		}
	}
	return nil
}

// Bytes returns the buffer the table reads from.
func (t *Table) Bytes() []byte {
	return t.buf
}

func (t *Table) Name() string {
	return string(t.root.Name())
}

// DataPath is the image directory, relative to the level file's directory.
func (t *Table) DataPath() string {
	return string(t.root.DataPath())
}

func (t *Table) ViewCount() int {
	return t.root.ViewsLength()
}

func (t *Table) View(i int) (ViewRecord, bool) {
	var r ViewRecord
	if i < 0 || i >= t.root.ViewsLength() {
		return r, false
	}
	t.root.Views(&r.v, i)
	return r, true
}

func (t *Table) VertexCount() int {
	return t.root.NavmeshVertsLength()
}

func (t *Table) Vertex(i int) (common.Vec3, bool) {
	if i < 0 || i >= t.root.NavmeshVertsLength() {
		return common.Vec3{}, false
	}
	var v mft.Vec3
	t.root.NavmeshVerts(&v, i)
	return common.Vec3{v.X(), v.Y(), v.Z()}, true
}

func (t *Table) TriangleCount() int {
	return t.root.NavmeshTrisLength()
}

func (t *Table) Triangle(i int) (TriangleRecord, bool) {
	if i < 0 || i >= t.root.NavmeshTrisLength() {
		return TriangleRecord{}, false
	}
	var tri mft.Triangle
	t.root.NavmeshTris(&tri, i)
	return TriangleRecord{
		Verts: [3]uint32{tri.V0(), tri.V1(), tri.V2()},
		Owner: int(tri.ViewIndex()),
	}, true
}

func (r ViewRecord) Name() string {
	return string(r.v.Name())
}

// WorldTransform returns the 16 row-major floats of the camera matrix.
func (r ViewRecord) WorldTransform() [16]float32 {
	m := r.v.WorldTransform(nil)
	return [16]float32{
		m.M00(), m.M01(), m.M02(), m.M03(),
		m.M10(), m.M11(), m.M12(), m.M13(),
		m.M20(), m.M21(), m.M22(), m.M23(),
		m.M30(), m.M31(), m.M32(), m.M33(),
	}
}

func (r ViewRecord) Resolution() (width, height int) {
	return int(r.v.ResX()), int(r.v.ResY())
}

func (r ViewRecord) FieldOfView() float32 {
	return r.v.Fov()
}

func (r ViewRecord) CroppedFieldOfView() float32 {
	return r.v.CroppedFov()
}

func (r ViewRecord) Aspect() float32 {
	return r.v.Aspect()
}

func (r ViewRecord) MaxPan() float32 {
	return r.v.MaxPan()
}

func (r ViewRecord) MaxTilt() float32 {
	return r.v.MaxTilt()
}

func (r ViewRecord) AdjacentViewCount() int {
	return r.v.AdjacentViewsLength()
}

// AdjacentViews copies the adjacency list out of the buffer.
func (r ViewRecord) AdjacentViews() []int {
	n := r.v.AdjacentViewsLength()
	res := make([]int, n)
	for j := 0; j < n; j++ {
		res[j] = int(r.v.AdjacentViews(j))
	}
	return res
}
