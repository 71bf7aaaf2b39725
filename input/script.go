// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"slices"

	"cogentcore.org/core/math32"
)

// Buttons are the pointer triggers.
type Buttons int32 //enums:enum -accept-lower

const (
	// Primary inflates.
	Primary Buttons = iota

	// Secondary pinches.
	Secondary
)

// Press is one scripted press of a button, held at a fixed
// screen position.
type Press struct {

	// Tick is the first tick at which the button is held.
	Tick int

	// Hold is the number of ticks the button is held; 0 means 1.
	Hold int

	// Button that is pressed.
	Button Buttons

	// X is the horizontal pixel position.
	X float32

	// Y is the vertical pixel position.
	Y float32
}

// holds returns whether the press is held at the given tick.
func (pr *Press) holds(tick int) bool {
	return tick >= pr.Tick && tick < pr.Tick+max(pr.Hold, 1)
}

// Script is a [Source] that replays scheduled presses by tick index,
// for running without a window. When presses overlap, the position
// is that of the last one listed.
type Script struct {
	Presses []Press
}

// NewScript returns a script over a copy of the given presses.
func NewScript(presses ...Press) *Script {
	return &Script{Presses: slices.Clone(presses)}
}

// State returns the scripted state at the given tick.
func (sc *Script) State(tick int) State {
	var st State
	for i := range sc.Presses {
		pr := &sc.Presses[i]
		if !pr.holds(tick) {
			continue
		}
		st.Pos = math32.Vec2(pr.X, pr.Y)
		switch pr.Button {
		case Primary:
			st.Primary = true
		case Secondary:
			st.Secondary = true
		}
	}
	return st
}

// Len returns the number of ticks up to the end of the last press.
func (sc *Script) Len() int {
	n := 0
	for _, pr := range sc.Presses {
		n = max(n, pr.Tick+max(pr.Hold, 1))
	}
	return n
}
