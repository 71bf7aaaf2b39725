// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softbody

// Integrators are the per-vertex integration laws a [Body] can use.
type Integrators int32 //enums:enum -accept-lower

const (
	// Euler is the explicit damped-spring step: the velocity is updated
	// from the current displacement, then damped, then used to move the vertex.
	// It can oscillate or diverge when Damping*dt > 1 or SpringForce*dt is large.
	Euler Integrators = iota

	// Analytic advances every vertex axis with the closed-form solution of
	// the damped harmonic oscillator toward its rest coordinate,
	// which is stable for any dt.
	Analytic
)

// Params are the simulation parameters of a [Body].
// They are configuration: the simulation itself never changes them.
type Params struct {

	// SpringForce is the restoring stiffness pulling each vertex
	// back toward its rest position.
	SpringForce float32 `default:"50"`

	// Damping is the rate at which vertex velocity decays.
	Damping float32 `default:"10"`

	// ColliderUpdateInterval is the number of seconds between
	// collision proxy rebuilds.
	ColliderUpdateInterval float32 `default:"0.1"`

	// Integrator selects the per-vertex integration law.
	Integrator Integrators

	// DefaultTick is the impulse duration in seconds used by force
	// injection before any tick delta is known.
	DefaultTick float32 `default:"0.016666668"`
}

// Defaults sets the default parameter values.
func (p *Params) Defaults() {
	p.SpringForce = 50
	p.Damping = 10
	p.ColliderUpdateInterval = 0.1
	p.Integrator = Euler
	p.DefaultTick = 1.0 / 60.0
}

// DefaultParams returns [Params] with default values.
func DefaultParams() Params {
	p := Params{}
	p.Defaults()
	return p
}

// Stable returns whether the [Euler] integrator is expected to be stable
// for the given tick duration: the damping factor must stay non-negative
// (Damping*dt <= 1) and the spring term must stay under the oscillation
// limit of the symplectic step (SpringForce*dt*dt < 4).
// The [Analytic] integrator is always stable.
func (p *Params) Stable(dt float32) bool {
	if p.Integrator == Analytic {
		return true
	}
	return p.Damping*dt <= 1 && p.SpringForce*dt*dt < 4
}
