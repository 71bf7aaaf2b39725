// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for a
// softbody simulation, and loading, saving and watching of
// configuration files.
package config

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/softbody/input"
	"cogentcore.org/softbody/softbody"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the main config struct that contains all of the
// configuration options for a simulation.
type Config struct {

	// Body has the deformation parameters applied to every body.
	Body softbody.Params

	// Input has the pointer force options.
	Input Input

	// Sim has the tick loop options.
	Sim Sim

	// Mesh has the shape of the simulated sphere.
	Mesh Mesh

	// Camera is used to turn scripted screen positions into rays.
	Camera input.Camera

	// Script has the scheduled pointer presses.
	Script []input.Press
}

// Input has the pointer force options.
type Input struct {

	// Force is the magnitude of the force applied while a trigger is held.
	Force float32 `default:"20"`
}

// Sim has the tick loop options.
type Sim struct {

	// Tick is the fixed step duration in seconds.
	Tick float32 `default:"0.016666668"`

	// Steps is the number of ticks to run; 0 runs until interrupted.
	Steps int `default:"600"`

	// Parallel integrates bodies concurrently.
	Parallel bool `default:"true"`
}

// Mesh has the shape of the simulated sphere.
type Mesh struct {

	// Radius of the sphere.
	Radius float32 `default:"1"`

	// Segments around the vertical axis.
	Segments int `default:"24"`

	// Rings from pole to pole.
	Rings int `default:"16"`
}

// Defaults sets all default values, from the `default:` tags and
// the Defaults methods of the nested types.
func (cfg *Config) Defaults() {
	cfg.Body.Defaults()
	cfg.Camera.Defaults()
	errors.Log(cli.SetFromDefaults(cfg))
}

// New returns a new config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Validate returns an error wrapping [ErrInvalidConfig] for the first
// value that is out of range.
func (cfg *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
	}
	switch {
	case cfg.Body.SpringForce < 0:
		return invalid("Body.SpringForce %g is negative", cfg.Body.SpringForce)
	case cfg.Body.Damping < 0:
		return invalid("Body.Damping %g is negative", cfg.Body.Damping)
	case cfg.Body.ColliderUpdateInterval <= 0:
		return invalid("Body.ColliderUpdateInterval %g must be positive", cfg.Body.ColliderUpdateInterval)
	case cfg.Body.Integrator < 0 || cfg.Body.Integrator >= softbody.IntegratorsN:
		return invalid("Body.Integrator %d is not a valid Integrators value", cfg.Body.Integrator)
	case cfg.Body.DefaultTick <= 0:
		return invalid("Body.DefaultTick %g must be positive", cfg.Body.DefaultTick)
	case cfg.Sim.Tick <= 0:
		return invalid("Sim.Tick %g must be positive", cfg.Sim.Tick)
	case cfg.Sim.Steps < 0:
		return invalid("Sim.Steps %d is negative", cfg.Sim.Steps)
	case cfg.Input.Force < 0:
		return invalid("Input.Force %g is negative", cfg.Input.Force)
	case cfg.Mesh.Radius <= 0:
		return invalid("Mesh.Radius %g must be positive", cfg.Mesh.Radius)
	}
	for i, pr := range cfg.Script {
		if pr.Tick < 0 || pr.Hold < 0 {
			return invalid("Script[%d] has negative tick or hold", i)
		}
		if pr.Button < 0 || pr.Button >= input.ButtonsN {
			return invalid("Script[%d].Button %d is not a valid Buttons value", i, pr.Button)
		}
	}
	return nil
}

// Stable returns whether the body parameters are stable at the
// configured tick. See [softbody.Params.Stable].
func (cfg *Config) Stable() bool {
	return cfg.Body.Stable(cfg.Sim.Tick)
}

// Demo returns the default config with a short script that inflates
// the front of the sphere and then pinches it, in the middle of the
// default viewport.
func Demo() *Config {
	cfg := New()
	cx, cy := cfg.Camera.Size.X/2, cfg.Camera.Size.Y/2
	cfg.Script = []input.Press{
		{Tick: 10, Hold: 30, Button: input.Primary, X: cx, Y: cy},
		{Tick: 120, Hold: 30, Button: input.Secondary, X: cx + 20, Y: cy - 20},
	}
	return cfg
}
