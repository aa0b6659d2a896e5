// Package projectile moves a point through an environment of constant
// gravity and wind, one tick at a time.
package projectile

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/render"
)

var (
	// ErrNotPoint indicates a position tuple whose W is not 1.
	ErrNotPoint = errors.New("projectile: position must be a point")

	// ErrNotVector indicates a velocity or force tuple whose W is not 0.
	ErrNotVector = errors.New("projectile: velocity must be a vector")

	// ErrInvalidTicks indicates a tick limit below 1.
	ErrInvalidTicks = errors.New("projectile: max ticks must be > 0")
)

// Environment holds the constant forces acting on a projectile.
type Environment struct {
	Gravity math3d.Tuple // Vector
	Wind    math3d.Tuple // Vector
}

// Acceleration returns the combined acceleration of gravity and wind.
func (e Environment) Acceleration() math3d.Tuple {
	return e.Gravity.Add(e.Wind)
}

// Validate checks that both forces are vectors.
func (e Environment) Validate() error {
	if !e.Gravity.IsVector() {
		return fmt.Errorf("gravity %v: %w", e.Gravity, ErrNotVector)
	}
	if !e.Wind.IsVector() {
		return fmt.Errorf("wind %v: %w", e.Wind, ErrNotVector)
	}
	return nil
}

// Projectile is a position and velocity pair.
type Projectile struct {
	Position math3d.Tuple // Point
	Velocity math3d.Tuple // Vector
}

// New creates a projectile, rejecting a position that is not a point or a
// velocity that is not a vector.
func New(position, velocity math3d.Tuple) (Projectile, error) {
	if !position.IsPoint() {
		return Projectile{}, fmt.Errorf("position %v: %w", position, ErrNotPoint)
	}
	if !velocity.IsVector() {
		return Projectile{}, fmt.Errorf("velocity %v: %w", velocity, ErrNotVector)
	}
	return Projectile{Position: position, Velocity: velocity}, nil
}

// Tick advances p by dt: the position moves with the current velocity, then
// the velocity picks up the environment's acceleration.
func Tick(env Environment, p Projectile, dt float64) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity.Scale(dt)),
		Velocity: p.Velocity.Add(env.Acceleration().Scale(dt)),
	}
}

// Simulate ticks p until it drops below y = 0 or maxTicks ticks have run.
// The returned path starts with the initial position and includes the
// first position below the ground.
func Simulate(ctx context.Context, env Environment, p Projectile, dt float64, maxTicks int) ([]math3d.Tuple, error) {
	if maxTicks < 1 {
		return nil, fmt.Errorf("simulate %d ticks: %w", maxTicks, ErrInvalidTicks)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	if _, err := New(p.Position, p.Velocity); err != nil {
		return nil, err
	}

	path := []math3d.Tuple{p.Position}
	for tick := 0; tick < maxTicks && p.Position.Y >= 0; tick++ {
		if err := ctx.Err(); err != nil {
			return path, fmt.Errorf("simulate: stopped after %d ticks: %w", tick, err)
		}
		p = Tick(env, p, dt)
		path = append(path, p.Position)
	}

	render.Logger().Debug("projectile simulated", "ticks", len(path)-1, "final", p.Position.String())
	return path, nil
}

// Plot writes each position of path onto c. World x maps to the canvas
// column and world y to the row counted up from the bottom edge. Positions
// outside the canvas are skipped. It returns the number of pixels written.
func Plot(c *render.Canvas, path []math3d.Tuple, col render.Color) int {
	written := 0
	for _, pos := range path {
		x := int(math.Round(pos.X))
		y := c.Height() - 1 - int(math.Round(pos.Y))
		if err := c.WritePixel(x, y, col); err != nil {
			continue
		}
		written++
	}
	return written
}
