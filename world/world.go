// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package world holds a scene of deformable objects and drives them
// with a fixed-step tick: input adapters are polled first, then every
// body is integrated.
package world

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/softbody/collide"
	"cogentcore.org/softbody/mesh"
	"cogentcore.org/softbody/softbody"
	"golang.org/x/sync/errgroup"
)

// ErrDuplicateObject is returned by [World.Add] when an object
// with the same name is already present.
var ErrDuplicateObject = errors.New("world: duplicate object name")

// Object is one named scene object. Any of Mesh, Collider and Body
// may be nil.
type Object struct {

	// Name is the unique name of the object in its world.
	Name string

	// Transform places the object in the world.
	Transform Transform

	// Mesh is the rendered surface.
	Mesh *mesh.Mesh

	// Collider answers picking queries in local space.
	Collider *collide.Collider

	// Body deforms the mesh and collider.
	Body *softbody.Body
}

// NewObject returns an object whose body deforms the given mesh,
// with a collider built over the mesh triangles and wired as the
// body's collision sink.
func NewObject(name string, ms *mesh.Mesh, params softbody.Params) (*Object, error) {
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	vtx := ms.Vertices()
	bd, err := softbody.New(vtx, params)
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", name, err)
	}
	ob := &Object{Name: name, Mesh: ms, Body: bd}
	ob.Transform.Defaults()
	ob.Collider = collide.NewCollider(ms.Index, vtx)
	bd.Mesh = ms
	bd.Collider = ob.Collider
	return ob, nil
}

// Hit is the nearest object surface along a picking ray.
type Hit struct {

	// Object that was hit.
	Object *Object

	// Point is the hit in world coordinates.
	Point math32.Vector3

	// Local is the hit in the object's local coordinates.
	Local math32.Vector3

	// Normal is the unit world normal facing the ray origin.
	Normal math32.Vector3

	// Dist is the ray parameter of the hit.
	Dist float32
}

// Poller is polled once at the start of every tick, before integration.
type Poller interface {
	Poll(tick int)
}

// World is a set of objects stepped together.
type World struct {

	// Parallel integrates bodies concurrently, up to GOMAXPROCS at once.
	Parallel bool

	// OnStep, if set, is called at the end of every step with the
	// number of completed ticks.
	OnStep func(tick int)

	mu       sync.RWMutex
	objects  []*Object
	byName   map[string]*Object
	adapters []Poller
	ticks    int
}

// New returns a new empty world.
func New() *World {
	return &World{byName: map[string]*Object{}}
}

// Add adds the object to the world.
func (w *World) Add(ob *Object) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, has := w.byName[ob.Name]; has {
		return fmt.Errorf("%q: %w", ob.Name, ErrDuplicateObject)
	}
	w.byName[ob.Name] = ob
	w.objects = append(w.objects, ob)
	return nil
}

// Object returns the object with the given name, or nil.
func (w *World) Object(name string) *Object {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.byName[name]
}

// Objects returns the objects in the order they were added.
func (w *World) Objects() []*Object {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]*Object(nil), w.objects...)
}

// AddAdapter adds a poller, which is polled in the order added.
func (w *World) AddAdapter(p Poller) {
	w.mu.Lock()
	w.adapters = append(w.adapters, p)
	w.mu.Unlock()
}

// Ticks returns the number of completed steps.
func (w *World) Ticks() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.ticks
}

// Step advances the world by dt seconds; dt <= 0 does nothing.
// Every body first records dt as the current tick delta, so that
// forces injected by the adapters are sized for this tick.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	w.mu.RLock()
	objects := append([]*Object(nil), w.objects...)
	adapters := append([]Poller(nil), w.adapters...)
	tick := w.ticks
	w.mu.RUnlock()

	for _, ob := range objects {
		if ob.Body != nil {
			ob.Body.SetTickDelta(dt)
		}
	}
	for _, ad := range adapters {
		ad.Poll(tick)
	}
	w.integrate(objects, dt)

	w.mu.Lock()
	w.ticks++
	tick = w.ticks
	w.mu.Unlock()
	if w.OnStep != nil {
		w.OnStep(tick)
	}
}

func (w *World) integrate(objects []*Object, dt float32) {
	if !w.Parallel {
		for _, ob := range objects {
			if ob.Body != nil {
				ob.Body.Integrate(dt)
			}
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, ob := range objects {
		if ob.Body == nil {
			continue
		}
		g.Go(func() error {
			ob.Body.Integrate(dt)
			return nil
		})
	}
	errors.Log(g.Wait())
}

// Run steps the world n times with the given dt, or until ctx is done
// if n is 0. The context is only checked between steps.
func (w *World) Run(ctx context.Context, dt float32, n int) error {
	if dt <= 0 {
		return fmt.Errorf("world: tick %g must be positive", dt)
	}
	slog.Debug("world run", "objects", len(w.Objects()), "tick", dt, "steps", n)
	for i := 0; n == 0 || i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.Step(dt)
	}
	return nil
}

// Pick returns the nearest object surface hit by the world ray, among
// objects that have a collider.
func (w *World) Pick(ray math32.Ray) (Hit, bool) {
	var best Hit
	found := false
	for _, ob := range w.Objects() {
		if ob.Collider == nil {
			continue
		}
		local := ob.Transform.RayToLocal(ray)
		hit, ok := ob.Collider.Raycast(local, 0)
		if !ok || (found && hit.Dist >= best.Dist) {
			continue
		}
		found = true
		best = Hit{
			Object: ob,
			Point:  ray.Origin.Add(ray.Dir.MulScalar(hit.Dist)),
			Local:  hit.Point,
			Normal: ob.Transform.NormalToWorld(hit.Normal),
			Dist:   hit.Dist,
		}
	}
	return best, found
}
