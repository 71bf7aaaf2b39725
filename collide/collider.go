// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"sync"

	"cogentcore.org/core/math32"
)

// Collider holds the current collision proxy of one object. Each
// [Collider.RebuildProxy] call builds a new [Proxy] from a vertex
// snapshot and swaps it in; readers holding the previous proxy
// keep a consistent view.
type Collider struct {

	// Index has three vertex indexes per triangle, shared with the mesh.
	Index []uint32

	mu       sync.RWMutex
	proxy    *Proxy
	rebuilds int
}

// NewCollider returns a collider over the given triangles with an
// initial proxy built from vertices, which the collider takes
// ownership of.
func NewCollider(index []uint32, vertices []math32.Vector3) *Collider {
	cl := &Collider{Index: index}
	cl.proxy = NewProxy(vertices, index)
	return cl
}

// RebuildProxy replaces the proxy with one built from the given vertex
// snapshot, which the collider takes ownership of.
func (cl *Collider) RebuildProxy(vertices []math32.Vector3) {
	px := NewProxy(vertices, cl.Index)
	cl.mu.Lock()
	cl.proxy = px
	cl.rebuilds++
	cl.mu.Unlock()
}

// Proxy returns the current proxy.
func (cl *Collider) Proxy() *Proxy {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return cl.proxy
}

// Rebuilds returns the number of times the proxy has been rebuilt.
func (cl *Collider) Rebuilds() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return cl.rebuilds
}

// Raycast runs [Proxy.Raycast] against the current proxy.
func (cl *Collider) Raycast(ray math32.Ray, maxDist float32) (Hit, bool) {
	return cl.Proxy().Raycast(ray, maxDist)
}
