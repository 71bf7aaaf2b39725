// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input turns pointer presses into deforming forces: each tick,
// a held primary trigger inflates and a held secondary trigger pinches
// the body under the pointer.
package input

import (
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/softbody/world"
)

// State is the pointer state sampled at one tick.
type State struct {

	// Pos is the pointer position in screen pixels.
	Pos math32.Vector2

	// Primary is whether the primary (inflate) trigger is held.
	Primary bool

	// Secondary is whether the secondary (pinch) trigger is held.
	Secondary bool
}

// Source provides the pointer state for a tick.
type Source interface {
	State(tick int) State
}

// Picker resolves a world ray to the nearest object surface.
// [world.World] is a Picker.
type Picker interface {
	Pick(ray math32.Ray) (world.Hit, bool)
}

// Adapter is a [world.Poller] that injects forces into the
// picked bodies. It keeps no state between ticks.
type Adapter struct {

	// Source of pointer positions and triggers.
	Source Source

	// Camera turns pointer positions into picking rays.
	Camera *Camera

	// Picker finds the object under the pointer.
	Picker Picker

	// Force is the magnitude of the injected force.
	Force float32
}

// NewAdapter returns an adapter picking in the given world.
func NewAdapter(src Source, cam *Camera, w *world.World, force float32) *Adapter {
	return &Adapter{Source: src, Camera: cam, Picker: w, Force: force}
}

// Poll samples the source and applies a force for each held trigger.
// The two triggers are resolved with separate picks.
func (ad *Adapter) Poll(tick int) {
	st := ad.Source.State(tick)
	if st.Primary {
		ad.apply(st.Pos, true)
	}
	if st.Secondary {
		ad.apply(st.Pos, false)
	}
}

func (ad *Adapter) apply(pos math32.Vector2, inflate bool) {
	hit, ok := ad.Picker.Pick(ad.Camera.ScreenRay(pos))
	if !ok || hit.Object == nil || hit.Object.Body == nil {
		return
	}
	hit.Object.Body.AddDeformingForce(hit.Local, ad.Force, inflate)
	slog.Debug("input force", "object", hit.Object.Name, "inflate", inflate, "point", hit.Local)
}
