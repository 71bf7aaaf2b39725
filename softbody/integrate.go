// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softbody

import (
	"slices"

	"cogentcore.org/core/math32"
	"github.com/charmbracelet/harmonica"
)

// Integrate advances every vertex by dt seconds under the spring and
// damping model selected by [Params.Integrator], publishes the displaced
// positions to the [MeshSink], and refreshes the collision proxy when
// [Params.ColliderUpdateInterval] has elapsed since the last refresh.
// Vertices are independent of each other. A dt <= 0 does nothing.
func (b *Body) Integrate(dt float32) {
	if dt <= 0 {
		return
	}
	b.mu.Lock()
	if !b.inited {
		b.mu.Unlock()
		return
	}
	b.tickDelta = dt
	switch {
	case b.Params.Integrator == Analytic && b.Params.SpringForce > 0:
		b.integrateAnalytic(dt)
	default:
		b.integrateEuler(dt)
	}
	b.ticks++
	mesh := b.Mesh
	var vertices []math32.Vector3
	if mesh != nil {
		vertices = slices.Clone(b.displaced)
	}

	var snapshot []math32.Vector3
	b.colliderTimer += dt
	if b.colliderTimer >= b.Params.ColliderUpdateInterval {
		b.colliderTimer = 0
		b.refreshes++
		if b.Collider != nil {
			snapshot = slices.Clone(b.displaced)
		}
	}
	collider := b.Collider
	b.mu.Unlock()

	// sinks are called outside the lock so that they may read back from the body
	if mesh != nil {
		mesh.SetVertices(vertices)
	}
	if snapshot != nil {
		collider.RebuildProxy(snapshot)
	}
}

// integrateEuler is the explicit damped-spring step.
func (b *Body) integrateEuler(dt float32) {
	spring := b.Params.SpringForce * dt
	damp := 1 - b.Params.Damping*dt
	for i := range b.displaced {
		displacement := b.displaced[i].Sub(b.original[i])
		vel := b.velocity[i].Sub(displacement.MulScalar(spring))
		vel = vel.MulScalar(damp)
		b.velocity[i] = vel
		b.displaced[i].SetAdd(vel.MulScalar(dt))
	}
}

// integrateAnalytic steps each axis of each vertex along the exact
// trajectory of a unit-mass damped oscillator x'' = -k x - c x',
// with angular frequency sqrt(k) and damping ratio c / (2 sqrt(k)).
func (b *Body) integrateAnalytic(dt float32) {
	omega := math32.Sqrt(b.Params.SpringForce)
	zeta := b.Params.Damping / (2 * omega)
	spring := harmonica.NewSpring(float64(dt), float64(omega), float64(zeta))
	step := func(pos, vel, rest float32) (float32, float32) {
		p, v := spring.Update(float64(pos), float64(vel), float64(rest))
		return float32(p), float32(v)
	}
	for i := range b.displaced {
		d, v, o := &b.displaced[i], &b.velocity[i], b.original[i]
		d.X, v.X = step(d.X, v.X, o.X)
		d.Y, v.Y = step(d.Y, v.Y, o.Y)
		d.Z, v.Z = step(d.Z, v.Z, o.Z)
	}
}
