// SPDX-License-Identifier: Unlicense OR MIT

// Package fling implements the friction that slows down kinetic
// scrolling after a drag is released.
package fling

import "recallui.org/f32"

// Decay applies constant friction to a velocity.
type Decay struct {
	// Friction is the deceleration in pixels per second squared.
	Friction float32
	// StopSpeed is the speed in pixels per second below which the
	// motion stops.
	StopSpeed float32
}

// Default is the friction of scroll areas.
var Default = Decay{
	Friction:  1000,
	StopSpeed: 20,
}

// Step decelerates v over dt seconds. It returns the new velocity
// and whether the motion is still active. A stopped motion always
// has exactly zero velocity.
func (d Decay) Step(v f32.Point, dt float32) (f32.Point, bool) {
	friction := d.Friction * dt
	speed := v.Len()
	if friction > speed || speed < d.StopSpeed {
		return f32.Point{}, false
	}
	return v.Sub(v.Normalize().Mul(friction)), true
}
