// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"testing"

	"recallui.org/f32"
)

func TestStepDecelerates(t *testing.T) {
	v, active := Default.Step(f32.Pt(0, 500), .1)
	if !active {
		t.Fatal("motion stopped early")
	}
	if v.X != 0 || v.Y < 399.99 || v.Y > 400.01 {
		t.Errorf("velocity = %v, want (0,400)", v)
	}
}

func TestStepStops(t *testing.T) {
	for _, tc := range []struct {
		label string
		v     f32.Point
		dt    float32
	}{
		{"friction exceeds speed", f32.Pt(0, 50), .1},
		{"below stop speed", f32.Pt(0, 19), .001},
		{"zero", f32.Point{}, .016},
	} {
		t.Run(tc.label, func(t *testing.T) {
			v, active := Default.Step(tc.v, tc.dt)
			if active || v != (f32.Point{}) {
				t.Errorf("Step(%v, %v) = %v, %v; want zero, false", tc.v, tc.dt, v, active)
			}
		})
	}
}

func TestDecayReachesZero(t *testing.T) {
	const dt = 1.0 / 60
	v := f32.Pt(0, -1200)
	frames := 0
	for active := true; active; frames++ {
		v, active = Default.Step(v, dt)
		if frames > 200 {
			t.Fatal("velocity never settled")
		}
	}
	for i := 0; i < 10; i++ {
		if v, _ = Default.Step(v, dt); v != (f32.Point{}) {
			t.Fatalf("velocity moved after stopping: %v", v)
		}
	}
}
