// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collide provides a triangle collision proxy: a bounding volume
// tree over a snapshot of mesh vertices that answers ray queries.
// A proxy is immutable; [Collider] replaces it wholesale on every rebuild.
package collide

import (
	"slices"

	"cogentcore.org/core/math32"
)

// LeafSize is the maximum number of triangles in a leaf node.
const LeafSize = 4

// node is a node of the bounding volume tree. Interior nodes have
// count == 0 and their two children at left and left+1; leaves cover
// tris[start:start+count].
type node struct {
	bbox  math32.Box3
	left  int32
	start int32
	count int32
}

func (nd *node) isLeaf() bool { return nd.count > 0 }

// Proxy is an immutable bounding volume tree over the triangles of
// one vertex snapshot.
type Proxy struct {
	vertex []math32.Vector3
	index  []uint32

	// tris is the triangle order referenced by the leaves.
	tris  []int32
	nodes []node
}

// NewProxy builds a proxy over the given vertices and triangle indexes.
// The vertices are used as-is and must not be modified afterward;
// index may be shared between proxies. Triangles with out of range
// indexes are left out.
func NewProxy(vertex []math32.Vector3, index []uint32) *Proxy {
	px := &Proxy{vertex: vertex, index: index}
	ntri := len(index) / 3
	px.tris = make([]int32, 0, ntri)
	for t := range ntri {
		i0, i1, i2 := index[3*t], index[3*t+1], index[3*t+2]
		if int(max(i0, i1, i2)) < len(vertex) {
			px.tris = append(px.tris, int32(t))
		}
	}
	if len(px.tris) == 0 {
		return px
	}
	centroids := make([]math32.Vector3, ntri)
	for _, t := range px.tris {
		a, b, c := px.triangle(t)
		centroids[t] = a.Add(b).Add(c).DivScalar(3)
	}
	px.nodes = make([]node, 1, 2*len(px.tris)/LeafSize+1)
	px.build(0, 0, int32(len(px.tris)), centroids)
	return px
}

// triangle returns the corners of triangle t.
func (px *Proxy) triangle(t int32) (a, b, c math32.Vector3) {
	i := 3 * t
	return px.vertex[px.index[i]], px.vertex[px.index[i+1]], px.vertex[px.index[i+2]]
}

// build fills node ni to cover tris[start:end], splitting at the
// centroid median along the longest axis of the centroid bounds.
func (px *Proxy) build(ni, start, end int32, centroids []math32.Vector3) {
	bbox := math32.B3Empty()
	cbox := math32.B3Empty()
	for _, t := range px.tris[start:end] {
		a, b, c := px.triangle(t)
		bbox.ExpandByPoint(a)
		bbox.ExpandByPoint(b)
		bbox.ExpandByPoint(c)
		cbox.ExpandByPoint(centroids[t])
	}
	px.nodes[ni].bbox = bbox
	n := end - start
	if n <= LeafSize {
		px.nodes[ni].start = start
		px.nodes[ni].count = n
		return
	}

	size := cbox.Size()
	axis := math32.X
	if size.Y > size.X && size.Y >= size.Z {
		axis = math32.Y
	} else if size.Z > size.X && size.Z > size.Y {
		axis = math32.Z
	}
	span := px.tris[start:end]
	slices.SortFunc(span, func(a, b int32) int {
		ca, cb := centroids[a].Dim(axis), centroids[b].Dim(axis)
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
		return int(a - b)
	})
	mid := start + n/2

	left := int32(len(px.nodes))
	px.nodes = append(px.nodes, node{}, node{})
	px.nodes[ni].left = left
	px.build(left, start, mid, centroids)
	px.build(left+1, mid, end, centroids)
}

// NumTriangles returns the number of triangles in the proxy.
func (px *Proxy) NumTriangles() int {
	return len(px.tris)
}

// Bounds returns the bounding box of all triangles,
// which is empty if there are none.
func (px *Proxy) Bounds() math32.Box3 {
	if len(px.nodes) == 0 {
		return math32.B3Empty()
	}
	return px.nodes[0].bbox
}

// Depth returns the depth of the tree, which is 0 when empty.
func (px *Proxy) Depth() int {
	if len(px.nodes) == 0 {
		return 0
	}
	var depth func(ni int32) int
	depth = func(ni int32) int {
		nd := &px.nodes[ni]
		if nd.isLeaf() {
			return 1
		}
		return 1 + max(depth(nd.left), depth(nd.left+1))
	}
	return depth(0)
}
