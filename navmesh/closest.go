package navmesh

import (
	"github.com/gorustyt/mftlevel/common"
)

// Relative threshold on det/(a*c) below which a triangle is treated as a
// segment or a point.
const degenerateEps = 1e-6

// ClosestPointOnTriangle returns the point of triangle (v0, v1, v2) closest to p.
//
// The triangle is parameterised as v0 + s*e0 + t*e1 with s, t >= 0 and
// s+t <= 1. The unconstrained minimum of the squared distance is classified
// into one of seven regions around the triangle and clamped back onto it:
//
//	  t
//	  \ 2|
//	   \ |
//	    \|
//	     \
//	     |\
//	   3 | \  1
//	     | 0\
//	-----+---\------ s
//	   4 | 5  \  6
func ClosestPointOnTriangle(p, v0, v1, v2 common.Vec3) common.Vec3 {
	e0 := v1.Sub(v0)
	e1 := v2.Sub(v0)
	diff := v0.Sub(p)
	a := e0.Dot(e0)
	b := e0.Dot(e1)
	c := e1.Dot(e1)
	d := e0.Dot(diff)
	e := e1.Dot(diff)
	det := a*c - b*b

	if det <= degenerateEps*a*c {
		return closestOnEdges(p, v0, v1, v2)
	}

	s := b*e - c*d
	t := b*d - a*e

	if s+t <= det {
		if s < 0 {
			if t < 0 {
				// region 4
				if d < 0 {
					t = 0
					s = clampRatio(-d, a)
				} else {
					s = 0
					t = clampEdge(e, c)
				}
			} else {
				// region 3
				s = 0
				t = clampEdge(e, c)
			}
		} else if t < 0 {
			// region 5
			t = 0
			s = clampEdge(d, a)
		} else {
			// region 0
			inv := 1 / det
			s *= inv
			t *= inv
		}
	} else {
		if s < 0 {
			// region 2
			tmp0 := b + d
			tmp1 := c + e
			if tmp1 > tmp0 {
				numer := tmp1 - tmp0
				denom := a - 2*b + c
				s = clampRatio(numer, denom)
				t = 1 - s
			} else {
				s = 0
				t = clampEdge(e, c)
			}
		} else if t < 0 {
			// region 6
			tmp0 := b + e
			tmp1 := a + d
			if tmp1 > tmp0 {
				numer := tmp1 - tmp0
				denom := a - 2*b + c
				t = clampRatio(numer, denom)
				s = 1 - t
			} else {
				t = 0
				s = clampEdge(d, a)
			}
		} else {
			// region 1
			numer := (c + e) - (b + d)
			if numer <= 0 {
				s = 0
			} else {
				s = clampRatio(numer, a-2*b+c)
			}
			t = 1 - s
		}
	}
	return common.Vmad(common.Vmad(v0, e0, s), e1, t)
}

// clampEdge minimises along one edge whose linear term is k and quadratic term q.
func clampEdge(k, q float32) float32 {
	if k >= 0 {
		return 0
	}
	return clampRatio(-k, q)
}

func clampRatio(numer, denom float32) float32 {
	if numer >= denom {
		return 1
	}
	return numer / denom
}

func closestOnEdges(p, v0, v1, v2 common.Vec3) common.Vec3 {
	best := closestOnSegment(p, v0, v1)
	bestD := common.VdistSqr(p, best)
	for _, seg := range [2][2]common.Vec3{{v1, v2}, {v2, v0}} {
		q := closestOnSegment(p, seg[0], seg[1])
		if d := common.VdistSqr(p, q); d < bestD {
			best, bestD = q, d
		}
	}
	return best
}

func closestOnSegment(p, a, b common.Vec3) common.Vec3 {
	ab := b.Sub(a)
	l := ab.Dot(ab)
	if l == 0 {
		return a
	}
	t := common.Clamp(p.Sub(a).Dot(ab)/l, 0, 1)
	return common.Vmad(a, ab, t)
}
