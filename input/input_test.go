// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"context"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/softbody/mesh"
	"cogentcore.org/softbody/softbody"
	"cogentcore.org/softbody/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVector3(t *testing.T, want, have math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, have.X, 1e-5)
	tolassert.EqualTol(t, want.Y, have.Y, 1e-5)
	tolassert.EqualTol(t, want.Z, have.Z, 1e-5)
}

// fixedPicker returns the same result for every ray.
type fixedPicker struct {
	hit   world.Hit
	ok    bool
	calls int
}

func (fp *fixedPicker) Pick(ray math32.Ray) (world.Hit, bool) {
	fp.calls++
	return fp.hit, fp.ok
}

// oneVertex returns an object whose body has a single vertex at (1, 0, 0).
func oneVertex(t *testing.T) *world.Object {
	t.Helper()
	bd, err := softbody.New([]math32.Vector3{math32.Vec3(1, 0, 0)}, softbody.DefaultParams())
	require.NoError(t, err)
	bd.SetTickDelta(0.1)
	return &world.Object{Name: "vertex", Body: bd}
}

func TestAdapterTriggers(t *testing.T) {
	ob := oneVertex(t)
	fp := &fixedPicker{hit: world.Hit{Object: ob}, ok: true}
	src := &Pointer{}
	ad := &Adapter{Source: src, Camera: NewCamera(), Picker: fp, Force: 1}

	ad.Poll(0)
	assert.Equal(t, 0, fp.calls, "no trigger held")

	src.Press(Primary, true)
	ad.Poll(1)
	assert.Equal(t, 1, fp.calls)
	// force 1 at distance 1 attenuates to 0.5, times dt 0.1
	assertVector3(t, math32.Vec3(0.05, 0, 0), ob.Body.Velocities()[0])

	ob.Body.ZeroVelocities()
	src.Press(Primary, false)
	src.Press(Secondary, true)
	ad.Poll(2)
	assert.Equal(t, 2, fp.calls)
	assertVector3(t, math32.Vec3(-0.05, 0, 0), ob.Body.Velocities()[0])

	// both triggers pick separately and cancel out
	ob.Body.ZeroVelocities()
	src.Press(Primary, true)
	ad.Poll(3)
	assert.Equal(t, 4, fp.calls)
	assert.Equal(t, math32.Vector3{}, ob.Body.Velocities()[0])
}

func TestAdapterSilentMisses(t *testing.T) {
	src := &Pointer{}
	src.Press(Primary, true)
	src.Press(Secondary, true)

	fp := &fixedPicker{}
	ad := &Adapter{Source: src, Camera: NewCamera(), Picker: fp, Force: 1}
	assert.NotPanics(t, func() { ad.Poll(0) })
	assert.Equal(t, 2, fp.calls)

	fp.ok = true
	fp.hit = world.Hit{Object: &world.Object{Name: "static"}}
	assert.NotPanics(t, func() { ad.Poll(1) })
	assert.Equal(t, 4, fp.calls)
}

func TestCameraScreenRay(t *testing.T) {
	cm := NewCamera()
	ray := cm.ScreenRay(math32.Vec2(400, 300))
	assertVector3(t, math32.Vec3(0, 0, 5), ray.Origin)
	assertVector3(t, math32.Vec3(0, 0, -1), ray.Dir)

	ray = cm.ScreenRay(math32.Vec2(0, 0))
	assert.Less(t, ray.Dir.X, float32(0))
	assert.Greater(t, ray.Dir.Y, float32(0))
	tolassert.EqualTol(t, 1, ray.Dir.Length(), 1e-5)
	// the top edge is half the field of view above the axis
	tolassert.EqualTol(t, math32.Tan(math32.DegToRad(15)), ray.Dir.Y/-ray.Dir.Z, 1e-5)

	for _, px := range []math32.Vector2{math32.Vec2(0, 0), math32.Vec2(123, 456), math32.Vec2(800, 600)} {
		ray := cm.ScreenRay(px)
		back, ok := cm.ScreenPos(ray.Origin.Add(ray.Dir.MulScalar(3)))
		require.True(t, ok)
		tolassert.EqualTol(t, px.X, back.X, 1e-2)
		tolassert.EqualTol(t, px.Y, back.Y, 1e-2)
	}

	_, ok := cm.ScreenPos(math32.Vec3(0, 0, 10))
	assert.False(t, ok, "behind the camera")
}

func TestScript(t *testing.T) {
	sc := NewScript(
		Press{Tick: 2, Hold: 3, Button: Primary, X: 10, Y: 20},
		Press{Tick: 4, Button: Secondary, X: 30, Y: 40},
	)
	assert.Equal(t, 5, sc.Len())
	assert.Equal(t, State{}, sc.State(0))
	assert.Equal(t, State{Pos: math32.Vec2(10, 20), Primary: true}, sc.State(2))
	assert.Equal(t, State{Pos: math32.Vec2(30, 40), Primary: true, Secondary: true}, sc.State(4))
	assert.Equal(t, State{}, sc.State(5))
}

func TestButtonsText(t *testing.T) {
	var bt Buttons
	require.NoError(t, bt.UnmarshalText([]byte("secondary")))
	assert.Equal(t, Secondary, bt)
	txt, err := bt.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Secondary", string(txt))
	require.NoError(t, bt.SetString("Primary"))
	assert.Equal(t, Primary, bt)

	err = bt.SetString("middle")
	if assert.Error(t, err) {
		assert.Equal(t, "middle is not a valid value for type Buttons", err.Error())
	}
	assert.Equal(t, Primary, bt)

	assert.Equal(t, "7", Buttons(7).String())
	assert.Equal(t, []Buttons{Primary, Secondary}, ButtonsValues())
	assert.Equal(t, "Secondary pinches.", Secondary.Desc())
}

func TestScriptedWorld(t *testing.T) {
	w := world.New()
	ob, err := world.NewObject("ball", mesh.NewSphere("ball", 1, 16, 12), softbody.DefaultParams())
	require.NoError(t, err)
	require.NoError(t, w.Add(ob))

	cm := NewCamera()
	sc := NewScript(Press{Tick: 0, Hold: 3, Button: Secondary, X: 410, Y: 290})
	w.AddAdapter(NewAdapter(sc, cm, w, 20))

	require.NoError(t, w.Run(context.Background(), 0.01, 3))
	st := ob.Body.Stats()
	assert.Greater(t, st.MaxDisplacement, float32(0))
	assert.Greater(t, st.KineticEnergy, float32(0))

	// a press that misses everything leaves a second ball untouched
	other, err := world.NewObject("other", mesh.NewSphere("other", 1, 8, 6), softbody.DefaultParams())
	require.NoError(t, err)
	other.Transform.Pos = math32.Vec3(0, 0, -20)
	require.NoError(t, w.Add(other))
	w.AddAdapter(NewAdapter(NewScript(Press{Tick: 3, Button: Primary, X: 0, Y: 0}), cm, w, 20))
	w.Step(0.01)
	assert.Equal(t, float32(0), other.Body.Stats().MaxDisplacement)
}
