package level

import (
	"fmt"
	"math"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/gorustyt/mftlevel/common"
	"github.com/gorustyt/mftlevel/navmesh"
	"github.com/gorustyt/mftlevel/schema/mft"
)

// Document is the in-memory form of a level file, used to write one.
type Document struct {
	Name      string
	DataPath  string
	Views     []ViewSpec
	Vertices  []common.Vec3
	Triangles []navmesh.Triangle
}

type ViewSpec struct {
	Name string
	// Transform is row-major with the translation in the last column.
	Transform          [16]float32
	Width              int
	Height             int
	FieldOfView        float32
	CroppedFieldOfView float32
	MaxPan             float32
	MaxTilt            float32
	Adjacent           []int
}

// Identity is the row-major identity transform.
var Identity = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Encode serialises doc. View ids are stored as uint16 and resolutions as
// uint32; values that do not fit fail with ErrIndexOutOfRange. Ids that fit
// are written as given and checked by Parse.
func Encode(doc *Document) ([]byte, error) {
	if err := checkDocument(doc); err != nil {
		return nil, err
	}
	b := flatbuffers.NewBuilder(4096)

	views := make([]flatbuffers.UOffsetT, len(doc.Views))
	for i := range doc.Views {
		views[i] = encodeView(b, &doc.Views[i])
	}
	mft.LevelStartViewsVector(b, len(views))
	for i := len(views) - 1; i >= 0; i-- {
		b.PrependUOffsetT(views[i])
	}
	viewVec := b.EndVector(len(views))

	mft.LevelStartNavmeshVertsVector(b, len(doc.Vertices))
	for i := len(doc.Vertices) - 1; i >= 0; i-- {
		v := doc.Vertices[i]
		mft.CreateVec3(b, v[0], v[1], v[2])
	}
	vertVec := b.EndVector(len(doc.Vertices))

	mft.LevelStartNavmeshTrisVector(b, len(doc.Triangles))
	for i := len(doc.Triangles) - 1; i >= 0; i-- {
		tri := doc.Triangles[i]
		mft.CreateTriangle(b, tri.Verts[0], tri.Verts[1], tri.Verts[2], uint16(tri.Owner), 0)
	}
	triVec := b.EndVector(len(doc.Triangles))

	name := b.CreateString(doc.Name)
	dataPath := b.CreateString(doc.DataPath)

	mft.LevelStart(b)
	mft.LevelAddName(b, name)
	mft.LevelAddDataPath(b, dataPath)
	mft.LevelAddViews(b, viewVec)
	mft.LevelAddNavmeshVerts(b, vertVec)
	mft.LevelAddNavmeshTris(b, triVec)
	root := mft.LevelEnd(b)
	b.FinishWithFileIdentifier(root, []byte(mft.LevelIdentifier))
	return b.FinishedBytes(), nil
}

func checkDocument(doc *Document) error {
	if len(doc.Views) > math.MaxUint16+1 {
		return fmt.Errorf("%w: %d views, at most %d fit a level", ErrIndexOutOfRange, len(doc.Views), math.MaxUint16+1)
	}
	viewID := func(id int) bool { return id >= 0 && id <= math.MaxUint16 }
	for i, v := range doc.Views {
		if v.Width < 0 || v.Height < 0 || int64(v.Width) > math.MaxUint32 || int64(v.Height) > math.MaxUint32 {
			return fmt.Errorf("%w: view %d resolution %dx%d", ErrIndexOutOfRange, i, v.Width, v.Height)
		}
		for _, adj := range v.Adjacent {
			if !viewID(adj) {
				return fmt.Errorf("%w: view %d adjacent id %d", ErrIndexOutOfRange, i, adj)
			}
		}
	}
	for i, tri := range doc.Triangles {
		if !viewID(tri.Owner) {
			return fmt.Errorf("%w: triangle %d owner %d", ErrIndexOutOfRange, i, tri.Owner)
		}
	}
	return nil
}

func encodeView(b *flatbuffers.Builder, v *ViewSpec) flatbuffers.UOffsetT {
	name := b.CreateString(v.Name)
	mft.ViewStartAdjacentViewsVector(b, len(v.Adjacent))
	for i := len(v.Adjacent) - 1; i >= 0; i-- {
		b.PrependUint16(uint16(v.Adjacent[i]))
	}
	adjacent := b.EndVector(len(v.Adjacent))

	var aspect float32
	if v.Height > 0 {
		aspect = float32(v.Width) / float32(v.Height)
	}
	m := v.Transform
	mft.ViewStart(b)
	mft.ViewAddName(b, name)
	mft.ViewAddWorldTransform(b, mft.CreateMat4(b,
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15]))
	mft.ViewAddAspect(b, aspect)
	mft.ViewAddFov(b, v.FieldOfView)
	mft.ViewAddResX(b, uint32(v.Width))
	mft.ViewAddResY(b, uint32(v.Height))
	mft.ViewAddMaxPan(b, v.MaxPan)
	mft.ViewAddMaxTilt(b, v.MaxTilt)
	mft.ViewAddAdjacentViews(b, adjacent)
	mft.ViewAddCroppedFov(b, v.CroppedFieldOfView)
	return mft.ViewEnd(b)
}
