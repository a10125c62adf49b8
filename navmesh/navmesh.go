// Package navmesh resolves world positions against the ground-plane triangle
// mesh of a level. Each triangle is owned by one viewpoint; the nearest
// triangle to a query point decides which viewpoint is active there.
//
// Queries are a linear scan over every triangle. Level navmeshes hold a few
// hundred triangles at most; a mesh in the tens of thousands would want a
// spatial index in front of Nearest.
package navmesh

import (
	"errors"
	"fmt"

	"github.com/gorustyt/mftlevel/common"
)

var (
	ErrEmptyNavMesh    = errors.New("navmesh: empty navmesh")
	ErrIndexOutOfRange = errors.New("navmesh: index out of range")
	ErrInvalidPoint    = errors.New("navmesh: query point is not finite")
)

type Triangle struct {
	Verts [3]uint32
	Owner int
}

// Hit describes the triangle closest to a query point.
type Hit struct {
	Triangle int
	Owner    int
	Point    common.Vec3
	DistSqr  float32
}

// Mesh is immutable after New and safe for concurrent queries.
type Mesh struct {
	verts []common.Vec3
	tris  []Triangle
}

// New copies verts and tris. Triangle vertex indices must be in range; the
// level reader validates them before a Mesh is built.
func New(verts []common.Vec3, tris []Triangle) *Mesh {
	m := &Mesh{
		verts: make([]common.Vec3, len(verts)),
		tris:  make([]Triangle, len(tris)),
	}
	copy(m.verts, verts)
	copy(m.tris, tris)
	return m
}

func (m *Mesh) VertexCount() int {
	return len(m.verts)
}

func (m *Mesh) TriangleCount() int {
	return len(m.tris)
}

func (m *Mesh) Triangle(i int) (Triangle, error) {
	if i < 0 || i >= len(m.tris) {
		return Triangle{}, fmt.Errorf("%w: triangle %d of %d", ErrIndexOutOfRange, i, len(m.tris))
	}
	return m.tris[i], nil
}

// TriangleVertices returns the corner positions of triangle i.
func (m *Mesh) TriangleVertices(i int) ([3]common.Vec3, error) {
	tri, err := m.Triangle(i)
	if err != nil {
		return [3]common.Vec3{}, err
	}
	return m.corners(tri), nil
}

// Faces flattens the mesh into three positions per triangle, in triangle order.
func (m *Mesh) Faces() []common.Vec3 {
	res := make([]common.Vec3, 0, len(m.tris)*3)
	for _, tri := range m.tris {
		c := m.corners(tri)
		res = append(res, c[0], c[1], c[2])
	}
	return res
}

func (m *Mesh) corners(tri Triangle) [3]common.Vec3 {
	return [3]common.Vec3{m.verts[tri.Verts[0]], m.verts[tri.Verts[1]], m.verts[tri.Verts[2]]}
}

// Nearest finds the triangle closest to p. Ties go to the lowest triangle index.
func (m *Mesh) Nearest(p common.Vec3) (Hit, error) {
	if len(m.tris) == 0 {
		return Hit{}, ErrEmptyNavMesh
	}
	if !common.Visfinite(p) {
		return Hit{}, fmt.Errorf("%w: %v", ErrInvalidPoint, p)
	}
	best := Hit{Triangle: -1}
	for i, tri := range m.tris {
		c := m.corners(tri)
		q := ClosestPointOnTriangle(p, c[0], c[1], c[2])
		d := common.VdistSqr(p, q)
		if best.Triangle < 0 || d < best.DistSqr {
			best = Hit{Triangle: i, Owner: tri.Owner, Point: q, DistSqr: d}
		}
	}
	return best, nil
}

// NearestOwner returns the owning viewpoint of the triangle closest to p.
func (m *Mesh) NearestOwner(p common.Vec3) (int, error) {
	hit, err := m.Nearest(p)
	if err != nil {
		return -1, err
	}
	return hit.Owner, nil
}
