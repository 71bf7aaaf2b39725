// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"cogentcore.org/core/math32"
)

// Hit is the result of a ray query against a [Proxy].
type Hit struct {

	// Point is where the ray meets the triangle.
	Point math32.Vector3

	// Normal is the unit face normal of the triangle,
	// facing back toward the ray origin.
	Normal math32.Vector3

	// Dist is the distance along the ray, in units of the ray
	// direction length.
	Dist float32

	// Triangle is the index of the triangle in the mesh index list.
	Triangle int
}

// triEpsilon rejects rays nearly parallel to a triangle.
const triEpsilon = 1e-7

// IntersectTriangle returns the ray parameter t at which the ray meets
// triangle abc, from either side, using the Möller-Trumbore test.
func IntersectTriangle(ray math32.Ray, a, b, c math32.Vector3) (float32, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := ray.Dir.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < triEpsilon {
		return 0, false
	}
	inv := 1 / det
	s := ray.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := ray.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// slab returns the ray parameter at which the ray enters the box,
// which is 0 when the origin is inside it.
func slab(ray math32.Ray, bb math32.Box3) (float32, bool) {
	tmin := float32(0)
	tmax := math32.Infinity
	for d := math32.X; d <= math32.Z; d++ {
		o, dir := ray.Origin.Dim(d), ray.Dir.Dim(d)
		lo, hi := bb.Min.Dim(d), bb.Max.Dim(d)
		if dir == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		t0, t1 := (lo-o)/dir, (hi-o)/dir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = max(tmin, t0)
		tmax = min(tmax, t1)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// Raycast returns the nearest triangle hit along the ray within maxDist
// (in units of the ray direction length; <= 0 means unlimited).
func (px *Proxy) Raycast(ray math32.Ray, maxDist float32) (Hit, bool) {
	if len(px.nodes) == 0 {
		return Hit{}, false
	}
	best := math32.Infinity
	if maxDist > 0 {
		best = maxDist
	}
	bestTri := int32(-1)
	if ray.Dir.LengthSquared() == 0 {
		return Hit{}, false
	}

	stack := make([]int32, 0, 64)
	stack = append(stack, 0)
	for len(stack) > 0 {
		ni := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &px.nodes[ni]
		if tmin, ok := slab(ray, nd.bbox); !ok || tmin > best {
			continue
		}
		if !nd.isLeaf() {
			stack = append(stack, nd.left, nd.left+1)
			continue
		}
		for _, t := range px.tris[nd.start : nd.start+nd.count] {
			a, b, c := px.triangle(t)
			if d, ok := IntersectTriangle(ray, a, b, c); ok && d <= best {
				if d < best || bestTri < 0 || t < bestTri {
					best = d
					bestTri = t
				}
			}
		}
	}
	if bestTri < 0 {
		return Hit{}, false
	}
	a, b, c := px.triangle(bestTri)
	n := math32.Normal(a, b, c)
	if n.Dot(ray.Dir) > 0 {
		n = n.Negate()
	}
	return Hit{
		Point:    ray.Origin.Add(ray.Dir.MulScalar(best)),
		Normal:   n,
		Dist:     best,
		Triangle: int(bestTri),
	}, true
}
