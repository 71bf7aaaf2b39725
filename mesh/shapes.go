// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/core/math32"
)

// NewSphere returns a UV sphere of the given radius centered at the origin,
// with segs segments around the Y axis (at least 3) and rings bands from
// pole to pole (at least 2). Every vertex is unique: the poles are single
// vertices and there is no duplicated seam, so that a deforming body
// cannot tear the surface open.
// Triangles wind counter-clockwise when seen from outside.
func NewSphere(name string, radius float32, segs, rings int) *Mesh {
	segs = max(segs, 3)
	rings = max(rings, 2)
	nv := 2 + (rings-1)*segs
	vtx := make([]math32.Vector3, 0, nv)
	vtx = append(vtx, math32.Vec3(0, radius, 0))
	for r := 1; r < rings; r++ {
		phi := math32.Pi * float32(r) / float32(rings)
		y := radius * math32.Cos(phi)
		rr := radius * math32.Sin(phi)
		for s := range segs {
			theta := 2 * math32.Pi * float32(s) / float32(segs)
			vtx = append(vtx, math32.Vec3(rr*math32.Sin(theta), y, rr*math32.Cos(theta)))
		}
	}
	vtx = append(vtx, math32.Vec3(0, -radius, 0))

	top, bottom := uint32(0), uint32(nv-1)
	ring := func(r, s int) uint32 { // r in [0, rings-2]
		return uint32(1 + r*segs + s%segs)
	}
	idx := make([]uint32, 0, 6*segs*(rings-1))
	for s := range segs {
		idx = append(idx, top, ring(0, s), ring(0, s+1))
	}
	for r := 0; r < rings-2; r++ {
		for s := range segs {
			a, b := ring(r, s), ring(r, s+1)
			c, d := ring(r+1, s), ring(r+1, s+1)
			idx = append(idx, a, c, d, a, d, b)
		}
	}
	for s := range segs {
		idx = append(idx, bottom, ring(rings-2, s+1), ring(rings-2, s))
	}
	return New(name, vtx, idx)
}

// NewPlane returns a flat grid in the XZ plane centered at the origin,
// facing +Y, with the given size and number of segments along X and Z
// (each at least 1).
func NewPlane(name string, width, depth float32, segsX, segsZ int) *Mesh {
	segsX = max(segsX, 1)
	segsZ = max(segsZ, 1)
	nx, nz := segsX+1, segsZ+1
	vtx := make([]math32.Vector3, 0, nx*nz)
	for z := range nz {
		for x := range nx {
			vtx = append(vtx, math32.Vec3(
				width*(float32(x)/float32(segsX)-0.5),
				0,
				depth*(float32(z)/float32(segsZ)-0.5)))
		}
	}
	idx := make([]uint32, 0, 6*segsX*segsZ)
	for z := range segsZ {
		for x := range segsX {
			a := uint32(z*nx + x)
			b := a + 1
			c := a + uint32(nx)
			d := c + 1
			idx = append(idx, a, c, b, b, c, d)
		}
	}
	return New(name, vtx, idx)
}
