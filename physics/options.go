// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

// options.go configures body creation and world construction using
// functional options, the same "self-referential functions" pattern
// vu/config.go uses for engine setup.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

import "github.com/gazed/rigid2d/math/vec2"

// BodyConfig holds the tunable properties of a body at creation time.
type BodyConfig struct {
	mass        float32
	friction    float32
	restitution float32
	airFriction float32
	isStatic    bool
}

// bodyDefaults mirrors vu's configDefaults: reasonable values so a body
// can be created with no options at all.
var bodyDefaults = BodyConfig{
	mass:        1,
	friction:    0.2,
	restitution: 0.2,
	airFriction: 0,
	isStatic:    false,
}

// BodyOption overrides a single BodyConfig attribute. For use with
// NewBody, Rect, and Circle.
type BodyOption func(*BodyConfig)

// Mass sets the body's mass. Must be > 0.
func Mass(m float32) BodyOption { return func(c *BodyConfig) { c.mass = m } }

// Friction sets the Coulomb friction coefficient. Expected in [0,1].
func Friction(f float32) BodyOption { return func(c *BodyConfig) { c.friction = f } }

// Restitution sets the bounciness coefficient. Expected in [0,1].
func Restitution(r float32) BodyOption { return func(c *BodyConfig) { c.restitution = r } }

// AirFriction sets the air-drag coefficient: each step scales linear
// velocity by (1-f)^dt, so f is the fraction lost per unit of simulated
// time. Must be >= 0.
func AirFriction(f float32) BodyOption { return func(c *BodyConfig) { c.airFriction = f } }

// Static marks the body immovable: its inverse mass and inverse inertia
// are zero and the integrator never moves it.
func Static(static bool) BodyOption { return func(c *BodyConfig) { c.isStatic = static } }

// WorldConfig holds the tunable properties of a World at construction.
type WorldConfig struct {
	gravity            vec2.Vec2
	bucketSize         float32
	velocityIterations int
	slop               float32
	baumgarteBeta      float32
}

// worldDefaults mirrors the values named in spec §6.
var worldDefaults = WorldConfig{
	gravity:            vec2.V(0, 300),
	bucketSize:         64,
	velocityIterations: 8,
	slop:               1.0,
	baumgarteBeta:      10.0,
}

// WorldOption overrides a single WorldConfig attribute. For use with NewWorld.
type WorldOption func(*WorldConfig)

// Gravity sets the world's constant acceleration, applied to every
// non-static body each step.
func Gravity(g vec2.Vec2) WorldOption { return func(c *WorldConfig) { c.gravity = g } }

// BucketSize sets the uniform grid's cell side length. Must be > 0;
// should be on the order of the expected body diameter.
func BucketSize(size float32) WorldOption { return func(c *WorldConfig) { c.bucketSize = size } }

// VelocityIterations sets the number of sequential-impulse sweeps the
// solver performs per step. Must be >= 1.
func VelocityIterations(n int) WorldOption {
	return func(c *WorldConfig) { c.velocityIterations = n }
}

// Slop sets the allowed interpenetration below which positional
// correction is not applied.
func Slop(s float32) WorldOption { return func(c *WorldConfig) { c.slop = s } }

// BaumgarteBeta sets the positional-bias factor fed into the velocity
// solver.
func BaumgarteBeta(beta float32) WorldOption { return func(c *WorldConfig) { c.baumgarteBeta = beta } }
