package navmesh

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorustyt/mftlevel/common"
)

// two unit squares side by side on z=0, left owned by view 0, right by view 1
func twoSquares() *Mesh {
	verts := []common.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{2, 0, 0}, {2, 1, 0},
	}
	tris := []Triangle{
		{Verts: [3]uint32{0, 1, 2}, Owner: 0},
		{Verts: [3]uint32{0, 2, 3}, Owner: 0},
		{Verts: [3]uint32{1, 4, 5}, Owner: 1},
		{Verts: [3]uint32{1, 5, 2}, Owner: 1},
	}
	return New(verts, tris)
}

func TestNearestOwner(t *testing.T) {
	m := twoSquares()

	owner, err := m.NearestOwner(common.Vec3{0.5, 0.5, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, owner)

	owner, err = m.NearestOwner(common.Vec3{1.6, 0.4, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, owner)

	owner, err = m.NearestOwner(common.Vec3{10, 0.5, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, owner)

	owner, err = m.NearestOwner(common.Vec3{-10, 0.5, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, owner)
}

func TestNearestVertexHit(t *testing.T) {
	m := twoSquares()
	hit, err := m.Nearest(common.Vec3{2, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0, hit.DistSqr, 1e-9)
	assert.Equal(t, 1, hit.Owner)
	assert.Equal(t, 2, hit.Triangle)
}

func TestNearestTieFirstWins(t *testing.T) {
	m := twoSquares()
	// (1, 0.5, 0) lies on the shared edge of triangles 0 and 3
	hit, err := m.Nearest(common.Vec3{1, 0.5, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, hit.Triangle)
	assert.Equal(t, 0, hit.Owner)
}

func TestNearestDeterministic(t *testing.T) {
	m := twoSquares()
	p := common.Vec3{1.2, 0.7, -0.3}
	first, err := m.Nearest(p)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		hit, err := m.Nearest(p)
		require.NoError(t, err)
		assert.Equal(t, first, hit)
	}
}

func TestNearestConcurrent(t *testing.T) {
	m := twoSquares()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			x := float32(i) * 0.25
			owner, err := m.NearestOwner(common.Vec3{x, 0.5, 1})
			assert.NoError(t, err)
			if x < 1 {
				assert.Equal(t, 0, owner)
			} else if x > 1 {
				assert.Equal(t, 1, owner)
			}
		}(i)
	}
	wg.Wait()
}

func TestNearestEmpty(t *testing.T) {
	m := New(nil, nil)
	_, err := m.NearestOwner(common.Vec3{})
	assert.ErrorIs(t, err, ErrEmptyNavMesh)
}

func TestNearestInvalidPoint(t *testing.T) {
	m := twoSquares()
	_, err := m.Nearest(common.Vec3{float32(math.NaN()), 0, 0})
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestTriangleVertices(t *testing.T) {
	m := twoSquares()
	assert.Equal(t, 4, m.TriangleCount())
	assert.Equal(t, 6, m.VertexCount())

	v, err := m.TriangleVertices(2)
	require.NoError(t, err)
	assert.Equal(t, [3]common.Vec3{{1, 0, 0}, {2, 0, 0}, {2, 1, 0}}, v)

	_, err = m.TriangleVertices(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = m.TriangleVertices(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFaces(t *testing.T) {
	m := twoSquares()
	faces := m.Faces()
	require.Len(t, faces, 12)
	assert.Equal(t, common.Vec3{0, 0, 0}, faces[0])
	assert.Equal(t, common.Vec3{2, 1, 0}, faces[10])
}

func TestNewCopiesInput(t *testing.T) {
	verts := []common.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	tris := []Triangle{{Verts: [3]uint32{0, 1, 2}, Owner: 3}}
	m := New(verts, tris)
	verts[0] = common.Vec3{9, 9, 9}
	tris[0].Owner = 7
	v, err := m.TriangleVertices(0)
	require.NoError(t, err)
	assert.Equal(t, common.Vec3{0, 0, 0}, v[0])
	owner, err := m.NearestOwner(common.Vec3{})
	require.NoError(t, err)
	assert.Equal(t, 3, owner)
}
