// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softbody

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEulerStep(t *testing.T) {
	p := DefaultParams()
	p.SpringForce = 50
	p.Damping = 10
	b, err := New([]math32.Vector3{{}}, p)
	require.NoError(t, err)
	b.SetTickDelta(0.01)
	b.AddDeformingForce(math32.Vec3(1, 0, 0), 10, true)

	// v = -0.05; displacement 0 so no spring term; damping: v *= 1 - 10*0.01
	b.Integrate(0.01)
	v := b.Velocities()[0]
	tolassert.EqualTol(t, -0.045, v.X, 1e-6)
	tolassert.EqualTol(t, -0.00045, b.Displaced()[0].X, 1e-8)

	// second step: spring pulls back by 0.00045*50*0.01
	b.Integrate(0.01)
	wantV := (-0.045 + 0.00045*50*0.01) * 0.9
	tolassert.EqualTol(t, float32(wantV), b.Velocities()[0].X, 1e-6)
	tolassert.EqualTol(t, float32(-0.00045+wantV*0.01), b.Displaced()[0].X, 1e-7)
}

func TestIntegrateNonPositive(t *testing.T) {
	b, err := New(triangle(), DefaultParams())
	require.NoError(t, err)
	b.SetTickDelta(0.01)
	b.AddDeformingForce(math32.Vec3(0, 0, 1), 10, true)
	before := b.Displaced()
	b.Integrate(0)
	b.Integrate(-0.01)
	assert.Equal(t, before, b.Displaced())
	assert.Equal(t, 0, b.Stats().Ticks)
}

// TestZeroForceConvergence requires Damping > 0 and a dt small enough for
// the explicit step to be stable: Damping*dt = 0.1 and SpringForce*dt^2 = 0.005.
func TestZeroForceConvergence(t *testing.T) {
	for _, it := range []Integrators{Euler, Analytic} {
		t.Run(it.String(), func(t *testing.T) {
			p := DefaultParams()
			p.SpringForce = 50
			p.Damping = 10
			p.Integrator = it
			const dt = 0.01
			require.True(t, p.Stable(dt))

			b, err := New(triangle(), p)
			require.NoError(t, err)
			b.SetTickDelta(dt)
			b.AddDeformingForce(math32.Vec3(0.2, 0.2, 0.5), 200, false)
			b.Integrate(dt)
			start := b.Stats().MaxDisplacement
			require.Greater(t, start, float32(1e-3))

			prev := start
			for i := range 1000 {
				b.Integrate(dt)
				if i%100 == 99 {
					cur := b.Stats().MaxDisplacement
					assert.LessOrEqual(t, cur, prev)
					prev = cur
				}
			}
			rest := b.Rest()
			for i, d := range b.Displaced() {
				assertVector3(t, rest[i], d, 1e-5)
			}
			tolassert.EqualTol(t, 0, b.Stats().KineticEnergy, 1e-8)
		})
	}
}

func TestAnalyticLargeStep(t *testing.T) {
	p := DefaultParams()
	p.SpringForce = 400
	p.Damping = 200
	const dt = 0.1
	assert.False(t, p.Stable(dt))
	p.Integrator = Analytic
	assert.True(t, p.Stable(dt))

	b, err := New([]math32.Vector3{{}}, p)
	require.NoError(t, err)
	b.SetTickDelta(dt)
	b.AddDeformingForce(math32.Vec3(0, -1, 0), 100, true)
	for range 200 {
		b.Integrate(dt)
		d := b.Displaced()[0]
		assert.False(t, math32.IsNaN(d.Y))
		assert.Less(t, math32.Abs(d.Y), float32(10))
	}
	tolassert.EqualTol(t, 0, b.Displaced()[0].Y, 1e-4)
}

func TestAnalyticZeroSpringFallsBack(t *testing.T) {
	p := DefaultParams()
	p.SpringForce = 0
	p.Damping = 10
	p.Integrator = Analytic
	b, err := New([]math32.Vector3{{}}, p)
	require.NoError(t, err)
	b.SetTickDelta(0.01)
	b.AddDeformingForce(math32.Vec3(1, 0, 0), 10, true)
	b.Integrate(0.01)
	tolassert.EqualTol(t, -0.045, b.Velocities()[0].X, 1e-6)
}

func TestColliderRefreshCadence(t *testing.T) {
	p := DefaultParams()
	p.ColliderUpdateInterval = 0.1
	sink := &recordSink{}
	b, err := New(triangle(), p)
	require.NoError(t, err)
	b.Collider = sink

	var refreshed []int
	for tick := 1; tick <= 16; tick++ {
		n := len(sink.proxies)
		b.Integrate(0.03)
		if len(sink.proxies) > n {
			refreshed = append(refreshed, tick)
		}
	}
	// the timer resets to zero on refresh: 0.03 * 4 = 0.12 >= 0.1 every fourth tick
	assert.Equal(t, []int{4, 8, 12, 16}, refreshed)
	assert.Equal(t, 4, b.Stats().Refreshes)
	assert.Equal(t, 16, b.Stats().Ticks)
}

func TestColliderRefreshVariableDt(t *testing.T) {
	p := DefaultParams()
	p.ColliderUpdateInterval = 0.1
	sink := &recordSink{}
	b, err := New(triangle(), p)
	require.NoError(t, err)
	b.Collider = sink

	dts := []float32{0.05, 0.04, 0.02, 0.2, 0.01, 0.01, 0.09, 0.1}
	var refreshed []int
	for i, dt := range dts {
		n := len(sink.proxies)
		b.Integrate(dt)
		if len(sink.proxies) > n {
			refreshed = append(refreshed, i+1)
		}
	}
	// 0.05+0.04+0.02 = 0.11 at tick 3; 0.2 at tick 4; 0.01+0.01+0.09 = 0.11 at tick 7; 0.1 at tick 8
	assert.Equal(t, []int{3, 4, 7, 8}, refreshed)
}

func TestSinksReceiveCopies(t *testing.T) {
	sink := &recordSink{}
	b, err := New(triangle(), DefaultParams())
	require.NoError(t, err)
	b.Mesh = sink
	b.Collider = sink
	b.SetTickDelta(0.05)
	b.AddDeformingForce(math32.Vec3(0, 0, 1), 10, true)

	for range 3 {
		b.Integrate(0.05)
	}
	require.Len(t, sink.meshes, 3)
	require.Len(t, sink.proxies, 1)
	assert.Equal(t, b.Displaced(), sink.meshes[2])

	// mutating a published slice does not touch the body
	sink.meshes[2][0] = math32.Vec3(100, 100, 100)
	assert.NotEqual(t, sink.meshes[2][0], b.Displaced()[0])
	// each publish is a distinct slice
	assert.NotEqual(t, sink.meshes[0], sink.meshes[1])
}

func TestIntegratorsText(t *testing.T) {
	var it Integrators
	require.NoError(t, it.UnmarshalText([]byte("analytic")))
	assert.Equal(t, Analytic, it)
	txt, err := it.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Analytic", string(txt))
	require.NoError(t, it.SetString("Euler"))
	assert.Equal(t, Euler, it)
	require.NoError(t, it.SetString("ANALYTIC"))
	assert.Equal(t, Analytic, it)

	err = it.SetString("verlet")
	if assert.Error(t, err) {
		assert.Equal(t, "verlet is not a valid value for type Integrators", err.Error())
	}
	assert.Equal(t, Analytic, it)

	assert.Equal(t, "7", Integrators(7).String())
	assert.Equal(t, []Integrators{Euler, Analytic}, IntegratorsValues())
	assert.Len(t, Euler.Values(), int(IntegratorsN))
	assert.Contains(t, Analytic.Desc(), "closed-form")
}

func TestParamsStable(t *testing.T) {
	p := DefaultParams()
	assert.True(t, p.Stable(1.0/60))
	assert.False(t, p.Stable(0.2))
	p.Damping = 0
	assert.False(t, p.Stable(0.3))
}
