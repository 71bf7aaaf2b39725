// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"sync"

	"cogentcore.org/core/math32"
)

// Pointer is a [Source] updated from outside the tick loop, for example
// by a window event handler. The state read at a tick is whatever was
// last set.
type Pointer struct {
	mu    sync.Mutex
	state State
}

// Move sets the pointer position.
func (pt *Pointer) Move(pos math32.Vector2) {
	pt.mu.Lock()
	pt.state.Pos = pos
	pt.mu.Unlock()
}

// Press sets whether the given button is held.
func (pt *Pointer) Press(bt Buttons, held bool) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	switch bt {
	case Primary:
		pt.state.Primary = held
	case Secondary:
		pt.state.Secondary = held
	}
}

// State returns the current state; the tick is ignored.
func (pt *Pointer) State(tick int) State {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.state
}
