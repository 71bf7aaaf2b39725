// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides an indexed triangle mesh that stores vertex
// positions and recomputes smooth shading normals whenever the
// positions are updated.
package mesh

import (
	"fmt"
	"slices"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/math32"
)

// ErrInvalidIndex is returned by [Mesh.Validate] when the index list
// does not describe whole triangles over existing vertices.
var ErrInvalidIndex = errors.New("mesh: invalid triangle index")

// Mesh is an indexed triangle mesh. Only triangles are supported:
// every three consecutive entries of Index are one triangle.
// There is always one normal per vertex.
type Mesh struct {

	// Name is the name of the mesh.
	Name string

	// Index has three vertex indexes per triangle.
	Index []uint32

	mu     sync.RWMutex
	vertex []math32.Vector3
	normal []math32.Vector3
	bbox   math32.Box3

	// updates counts SetVertices calls.
	updates int
}

// New returns a new mesh with the given vertices and triangle indexes,
// with normals computed.
func New(name string, vertex []math32.Vector3, index []uint32) *Mesh {
	ms := &Mesh{Name: name, Index: index}
	ms.setVertices(slices.Clone(vertex))
	return ms
}

// Validate returns an error if the index list is not a multiple of three,
// or refers to a vertex that does not exist.
func (ms *Mesh) Validate() error {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if len(ms.Index)%3 != 0 {
		return fmt.Errorf("mesh %q: %d indexes is not a multiple of 3: %w", ms.Name, len(ms.Index), ErrInvalidIndex)
	}
	n := uint32(len(ms.vertex))
	for i, idx := range ms.Index {
		if idx >= n {
			return fmt.Errorf("mesh %q: index %d at %d is out of range for %d vertices: %w", ms.Name, idx, i, n, ErrInvalidIndex)
		}
	}
	return nil
}

// NumVertex returns the number of vertices.
func (ms *Mesh) NumVertex() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.vertex)
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Index) / 3
}

// Vertices returns a copy of the vertex positions.
func (ms *Mesh) Vertices() []math32.Vector3 {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return slices.Clone(ms.vertex)
}

// Normals returns a copy of the vertex normals.
func (ms *Mesh) Normals() []math32.Vector3 {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return slices.Clone(ms.normal)
}

// Bounds returns the bounding box of the current vertex positions.
func (ms *Mesh) Bounds() math32.Box3 {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.bbox
}

// Updates returns the number of times the vertices have been set.
func (ms *Mesh) Updates() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.updates
}

// SetVertices replaces the vertex positions and recomputes the normals
// and bounds. The mesh takes ownership of the slice.
// The vertex count is expected to match the index list.
func (ms *Mesh) SetVertices(vertex []math32.Vector3) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.setVertices(vertex)
	ms.updates++
}

func (ms *Mesh) setVertices(vertex []math32.Vector3) {
	ms.vertex = vertex
	ms.normal = slicesx.SetLength(ms.normal, len(vertex))
	ComputeNormals(ms.vertex, ms.Index, ms.normal)
	ms.bbox.SetFromPoints(ms.vertex)
}

// ComputeNormals sets norm to the area-weighted average of the face
// normals of the triangles touching each vertex. The unnormalized cross
// product of two edges has a length of twice the triangle area, so
// summing those gives the weighting directly. Vertices that are not part
// of any non-degenerate triangle get a zero normal, and triangles with
// out of range indexes are skipped.
// norm must have the same length as pos.
func ComputeNormals(pos []math32.Vector3, index []uint32, norm []math32.Vector3) {
	clear(norm)
	n := len(index) / 3
	for t := range n {
		i0, i1, i2 := index[3*t], index[3*t+1], index[3*t+2]
		if int(max(i0, i1, i2)) >= len(pos) {
			continue
		}
		a, b, c := pos[i0], pos[i1], pos[i2]
		face := b.Sub(a).Cross(c.Sub(a))
		norm[i0].SetAdd(face)
		norm[i1].SetAdd(face)
		norm[i2].SetAdd(face)
	}
	for i := range norm {
		if norm[i].LengthSquared() > 0 {
			norm[i] = norm[i].Normal()
		}
	}
}
