// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package softbody provides a deformable triangle-mesh body whose vertices
// are pushed around by point forces and relax back toward their rest
// positions under a damped-spring model.
//
// A [Body] owns three parallel arrays of the same length: the rest
// positions, the current displaced positions, and the per-vertex velocities.
// Each tick the host optionally injects forces with [Body.AddDeformingForce]
// and then calls [Body.Integrate], which publishes the new positions to the
// [MeshSink] and, every [Params.ColliderUpdateInterval] seconds, a full
// snapshot to the [ColliderSink].
package softbody

import (
	"fmt"
	"slices"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ErrInvalidMesh is returned when a [Body] is initialized with no vertices,
// or when an already initialized body is initialized again.
var ErrInvalidMesh = errors.New("softbody: invalid mesh")

// MeshSink is the rendering side of a [Body]. It receives the displaced
// vertex positions after every integration step and is expected to
// recompute its shading normals from them.
// The slice is a copy owned by the sink.
type MeshSink interface {
	SetVertices(vertices []math32.Vector3)
}

// ColliderSink is the collision side of a [Body]. It receives a full
// vertex snapshot on every collider refresh and must replace any
// previous proxy wholesale.
// The slice is a copy owned by the sink.
type ColliderSink interface {
	RebuildProxy(vertices []math32.Vector3)
}

// Body is a deformable mesh body. The zero value is an uninitialized
// body with zero [Params]; use [New], or set Params and call [Body.Init].
// All methods are safe to call from multiple goroutines: force injections
// and integration steps on one body are serialized.
type Body struct {

	// Params are the simulation parameters.
	Params Params

	// Mesh receives the displaced vertices after every integration step.
	Mesh MeshSink

	// Collider receives a vertex snapshot on each collider refresh.
	Collider ColliderSink

	mu sync.Mutex

	// original are the rest positions, never mutated after Init.
	original []math32.Vector3

	// displaced are the current positions.
	displaced []math32.Vector3

	// velocity are the per-vertex velocities.
	velocity []math32.Vector3

	// colliderTimer accumulates dt since the last collider refresh.
	colliderTimer float32

	// tickDelta is the duration of the current tick, used to size impulses.
	// It is zero until a tick delta is known.
	tickDelta float32

	ticks     int
	refreshes int
	inited    bool
}

// New returns a new initialized [Body] with the given rest vertices
// (in local space) and parameters.
func New(vertices []math32.Vector3, params Params) (*Body, error) {
	b := &Body{Params: params}
	if err := b.Init(vertices); err != nil {
		return nil, err
	}
	return b, nil
}

// Init initializes the body from the given rest vertices, which are copied.
// Velocities start at zero and the collider timer is reset.
// It returns [ErrInvalidMesh] if there are no vertices or if the body
// has already been initialized; construct a fresh body instead.
func (b *Body) Init(vertices []math32.Vector3) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.inited {
		return fmt.Errorf("already initialized with %d vertices: %w", len(b.original), ErrInvalidMesh)
	}
	if len(vertices) == 0 {
		return fmt.Errorf("no vertices: %w", ErrInvalidMesh)
	}
	b.original = slices.Clone(vertices)
	b.displaced = slices.Clone(vertices)
	b.velocity = make([]math32.Vector3, len(vertices))
	b.colliderTimer = 0
	b.inited = true
	return nil
}

// IsInitialized returns whether [Body.Init] has succeeded.
func (b *Body) IsInitialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inited
}

// Len returns the number of vertices.
func (b *Body) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.original)
}

// Rest returns a copy of the rest positions.
func (b *Body) Rest() []math32.Vector3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.original)
}

// Displaced returns a copy of the current displaced positions.
func (b *Body) Displaced() []math32.Vector3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.displaced)
}

// Velocities returns a copy of the current vertex velocities.
func (b *Body) Velocities() []math32.Vector3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.velocity)
}

// SetParams replaces the simulation parameters. It is meant to be
// called between ticks, for example when a config file is reloaded.
func (b *Body) SetParams(p Params) {
	b.mu.Lock()
	b.Params = p
	b.mu.Unlock()
}

// SetTickDelta records the duration of the tick that is starting,
// which sizes the impulses of any forces injected during it.
// [Body.Integrate] also records its dt, so a body stepped without
// a scheduler uses the duration of the previous tick.
func (b *Body) SetTickDelta(dt float32) {
	b.mu.Lock()
	b.tickDelta = dt
	b.mu.Unlock()
}

// TickDelta returns the impulse duration that force injection will use.
func (b *Body) TickDelta() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.impulseDelta()
}

func (b *Body) impulseDelta() float32 {
	if b.tickDelta > 0 {
		return b.tickDelta
	}
	return b.Params.DefaultTick
}

// Reset puts every vertex back at its rest position with zero velocity
// and resets the collider timer. The body stays initialized.
func (b *Body) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	copy(b.displaced, b.original)
	clear(b.velocity)
	b.colliderTimer = 0
}

// ZeroVelocities sets all vertex velocities to zero,
// leaving the displaced positions where they are.
func (b *Body) ZeroVelocities() {
	b.mu.Lock()
	clear(b.velocity)
	b.mu.Unlock()
}

// Stats is a summary of the state of a [Body].
type Stats struct {

	// Ticks is the number of integration steps taken.
	Ticks int

	// Refreshes is the number of collider refresh ticks.
	Refreshes int

	// MaxDisplacement is the largest distance of any vertex
	// from its rest position.
	MaxDisplacement float32

	// KineticEnergy is the sum of |v|^2 / 2 over all vertices (unit mass).
	KineticEnergy float32
}

func (st Stats) String() string {
	return fmt.Sprintf("ticks: %d refreshes: %d max displacement: %g kinetic energy: %g", st.Ticks, st.Refreshes, st.MaxDisplacement, st.KineticEnergy)
}

// Stats returns a summary of the current state.
func (b *Body) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	st := Stats{Ticks: b.ticks, Refreshes: b.refreshes}
	var maxSq float32
	for i := range b.displaced {
		dsq := b.displaced[i].Sub(b.original[i]).LengthSquared()
		maxSq = max(maxSq, dsq)
		st.KineticEnergy += 0.5 * b.velocity[i].LengthSquared()
	}
	st.MaxDisplacement = math32.Sqrt(maxSq)
	return st
}
