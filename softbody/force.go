// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softbody

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Force is a point force to inject into a [Body].
type Force struct {

	// Point is where the force originates, in the body's local space.
	Point math32.Vector3

	// Magnitude is the non-negative strength of the force.
	Magnitude float32

	// Inflate pushes vertices away from Point when true,
	// and pulls them toward it when false.
	Inflate bool
}

func (f Force) String() string {
	dir := "pinch"
	if f.Inflate {
		dir = "inflate"
	}
	return fmt.Sprintf("%s %g at (%g, %g, %g)", dir, f.Magnitude, f.Point.X, f.Point.Y, f.Point.Z)
}

// Apply injects the given force. See [Body.AddDeformingForce].
func (b *Body) Apply(f Force) {
	b.AddDeformingForce(f.Point, f.Magnitude, f.Inflate)
}

// AddDeformingForce adds an impulse to the velocity of every vertex,
// directed along the line from point (in local space) to the vertex's
// displaced position: outward if inflate is true, inward otherwise.
// The strength is attenuated by the squared distance as
// force / (1 + distance^2), and the force is treated as acting for the
// duration of the current tick (see [Body.SetTickDelta]).
//
// The force is expected to be non-negative; negative values are not checked
// and give undefined behavior. A vertex exactly at point has no defined
// direction and is left unchanged. Velocities are not clamped.
func (b *Body) AddDeformingForce(point math32.Vector3, force float32, inflate bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	dt := b.impulseDelta()
	for i := range b.displaced {
		b.addForceToVertex(i, point, force, dt, inflate)
	}
}

func (b *Body) addForceToVertex(i int, point math32.Vector3, force, dt float32, inflate bool) {
	delta := b.displaced[i].Sub(point)
	distSq := delta.LengthSquared()
	if distSq == 0 {
		return
	}
	attenuated := force / (1 + distSq)
	impulse := delta.MulScalar(attenuated * dt / math32.Sqrt(distSq))
	if inflate {
		b.velocity[i].SetAdd(impulse)
	} else {
		b.velocity[i].SetSub(impulse)
	}
}
