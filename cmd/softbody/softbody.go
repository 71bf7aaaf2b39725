// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command softbody runs a headless simulation of a deformable sphere
// driven by scripted pointer presses.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/softbody/config"
	"cogentcore.org/softbody/input"
	"cogentcore.org/softbody/mesh"
	"cogentcore.org/softbody/softbody"
	"cogentcore.org/softbody/world"
	"github.com/muesli/termenv"
)

// Config is the configuration information for the softbody cli.
type Config struct {

	// Scene is the simulation config file, in TOML or YAML.
	// Without one, run uses the built in demo scene.
	Scene string `posarg:"0" required:"-"`

	// Watch reloads the body parameters between ticks
	// whenever the scene file changes.
	Watch bool `cmd:"run" flag:"w,watch"`

	// Steps overrides the number of ticks in the scene when positive.
	Steps int `cmd:"run"`
}

func main() {
	opts := cli.DefaultOptions("softbody", "Runs a headless soft body simulation.")
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Run, Name: "run", Doc: "Run runs the simulation and prints a summary.", Root: true},
		&cli.Cmd[*Config]{Func: Init, Name: "init", Doc: "Init writes the demo scene to a new scene file."},
	)
}

// Run runs the simulation and prints a summary.
func Run(c *Config) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.UserLevel})))

	cfg := config.Demo()
	if c.Scene != "" {
		var err error
		cfg, err = config.Load(c.Scene)
		if err != nil {
			return err
		}
	}
	if c.Steps > 0 {
		cfg.Sim.Steps = c.Steps
	}
	warnUnstable(cfg.Body, cfg.Sim.Tick)

	w := world.New()
	w.Parallel = cfg.Sim.Parallel
	ms := mesh.NewSphere("ball", cfg.Mesh.Radius, cfg.Mesh.Segments, cfg.Mesh.Rings)
	ob, err := world.NewObject("ball", ms, cfg.Body)
	if err != nil {
		return err
	}
	errors.Log(w.Add(ob))
	cam := cfg.Camera
	w.AddAdapter(input.NewAdapter(input.NewScript(cfg.Script...), &cam, w, cfg.Input.Force))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var reloaded atomic.Pointer[softbody.Params]
	if c.Watch && c.Scene != "" {
		err := config.Watch(ctx, c.Scene, func(nc *config.Config) {
			reloaded.Store(&nc.Body)
		})
		if err != nil {
			return err
		}
	}

	refreshes := 0
	w.OnStep = func(tick int) {
		if p := reloaded.Swap(nil); p != nil {
			ob.Body.SetParams(*p)
			warnUnstable(*p, cfg.Sim.Tick)
			slog.Info("body parameters reloaded", "tick", tick)
		}
		st := ob.Body.Stats()
		if st.Refreshes != refreshes {
			refreshes = st.Refreshes
			slog.Debug("collider refresh", "tick", tick, "maxDisplacement", st.MaxDisplacement, "kineticEnergy", st.KineticEnergy)
		}
	}

	slog.Info("running", "scene", c.Scene, "vertices", ob.Body.Len(), "triangles", ms.NumTriangles(), "steps", cfg.Sim.Steps)
	err = w.Run(ctx, cfg.Sim.Tick, cfg.Sim.Steps)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	st := ob.Body.Stats()
	slog.Info("done", "ticks", st.Ticks, "refreshes", st.Refreshes, "maxDisplacement", st.MaxDisplacement, "kineticEnergy", st.KineticEnergy)

	out := termenv.NewOutput(os.Stdout)
	fmt.Fprintln(out, out.String(ob.Name).Bold(), st.String())
	return nil
}

// Init writes the demo scene to a new scene file,
// softbody.toml if none is given.
func Init(c *Config) error {
	fn := c.Scene
	if fn == "" {
		fn = "softbody.toml"
	}
	if _, err := os.Stat(fn); err == nil {
		return fmt.Errorf("scene file %q already exists", fn)
	}
	return config.Demo().Save(fn)
}

func warnUnstable(p softbody.Params, tick float32) {
	if p.Stable(tick) {
		return
	}
	slog.Warn("explicit Euler integration is unstable at this tick; lower the tick or use the Analytic integrator",
		"tick", tick, "springForce", p.SpringForce, "damping", p.Damping)
}
