// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"math"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"recallui.org/f32"
	"recallui.org/io/pointer"
)

// Frame is the input state of a single frame.
type Frame struct {
	// Now is the time of the frame.
	Now time.Duration
	// Dt is the time in seconds since the previous frame.
	Dt float32
	// Pointer is the primary pointer.
	Pointer Pointer
	// Scroll is the wheel scroll of this frame in pixels. A positive
	// Y reveals content above, the direction of moving the content
	// down.
	Scroll f32.Point
	// Touch is the gesture of two or more fingers, or nil.
	Touch *MultiTouch
}

// Pointer is the state of the primary pointer.
type Pointer struct {
	// Pos is the latest position; valid only if HasPos.
	Pos    f32.Point
	HasPos bool
	// Delta is the movement since the previous frame.
	Delta f32.Point
	// Velocity is estimated from the movement of the last
	// velocityWindow, in pixels per second.
	Velocity f32.Point
	// Down reports whether the primary button or touch is held.
	Down bool
	// Pressed and Released report transitions during this frame.
	Pressed  bool
	Released bool
}

// MultiTouch describes a gesture of two or more touches relative to
// the previous frame.
type MultiTouch struct {
	NumTouches int
	// Center is the average position of the touches.
	Center f32.Point
	// TranslationDelta is the movement of Center.
	TranslationDelta f32.Point
	// ZoomDelta is the relative change of the touches' spread;
	// 1 means no change.
	ZoomDelta float32
	// RotationDelta is the rotation in radians, positive clockwise.
	RotationDelta float32
	// Force is the average touch pressure in [0, 1].
	Force float32
}

// State accumulates pointer events between frames.
type State struct {
	events  []pointer.Event
	last    time.Duration
	started bool

	ptr     Pointer
	primary pointer.ID
	hasPrim bool
	samples []sample

	touches map[pointer.ID]touch
	prev    map[pointer.ID]touch
}

type sample struct {
	t   time.Duration
	pos f32.Point
}

type touch struct {
	pos      f32.Point
	pressure float32
}

// velocityWindow bounds the pointer history used to estimate
// velocity.
const velocityWindow = 100 * time.Millisecond

// defaultDt is reported for the very first frame.
const defaultDt = 1.0 / 60

// Queue events for the next frame.
func (s *State) Queue(events ...pointer.Event) {
	s.events = append(s.events, events...)
}

// Frame consumes the queued events and returns the input state
// for a frame at time now.
func (s *State) Frame(now time.Duration) *Frame {
	f := &Frame{Now: now, Dt: defaultDt}
	if s.started {
		f.Dt = float32((now - s.last).Seconds())
		if f.Dt < 0 {
			f.Dt = 0
		}
	}
	s.started = true
	s.last = now

	s.prev = maps.Clone(s.touches)
	prevPos, hadPos := s.ptr.Pos, s.ptr.HasPos
	s.ptr.Pressed = false
	s.ptr.Released = false
	for _, e := range s.events {
		s.process(f, e)
	}
	s.events = s.events[:0]

	p := s.ptr
	if hadPos && p.HasPos {
		p.Delta = p.Pos.Sub(prevPos)
	}
	p.Velocity = s.velocity(now)
	f.Pointer = p
	f.Touch = s.multiTouch()
	return f
}

func (s *State) process(f *Frame, e pointer.Event) {
	if e.Source == pointer.Touch {
		s.processTouch(e)
		if s.hasPrim && e.PointerID != s.primary {
			return
		}
	}
	switch e.Kind {
	case pointer.Press:
		if e.Source == pointer.Mouse && !e.Buttons.Contain(pointer.ButtonPrimary) {
			s.move(e)
			return
		}
		if e.Source == pointer.Touch {
			s.primary, s.hasPrim = e.PointerID, true
		}
		s.move(e)
		s.samples = s.samples[:0]
		s.addSample(e)
		s.ptr.Down = true
		s.ptr.Pressed = true
	case pointer.Release, pointer.Cancel:
		s.move(e)
		if s.ptr.Down {
			s.ptr.Released = true
		}
		s.ptr.Down = false
		s.hasPrim = false
	case pointer.Move, pointer.Drag:
		s.move(e)
		s.addSample(e)
	case pointer.Scroll:
		s.move(e)
		f.Scroll = f.Scroll.Sub(e.Scroll)
	}
}

func (s *State) move(e pointer.Event) {
	s.ptr.Pos = e.Position
	s.ptr.HasPos = true
}

func (s *State) addSample(e pointer.Event) {
	s.samples = append(s.samples, sample{t: e.Time, pos: e.Position})
}

func (s *State) velocity(now time.Duration) f32.Point {
	i := 0
	for i < len(s.samples) && now-s.samples[i].t > velocityWindow {
		i++
	}
	s.samples = append(s.samples[:0], s.samples[i:]...)
	if len(s.samples) < 2 {
		return f32.Point{}
	}
	first, last := s.samples[0], s.samples[len(s.samples)-1]
	dt := float32((last.t - first.t).Seconds())
	if dt <= 0 {
		return f32.Point{}
	}
	return last.pos.Sub(first.pos).Mul(1 / dt)
}

func (s *State) processTouch(e pointer.Event) {
	switch e.Kind {
	case pointer.Press, pointer.Move, pointer.Drag:
		if s.touches == nil {
			s.touches = make(map[pointer.ID]touch)
		}
		s.touches[e.PointerID] = touch{pos: e.Position, pressure: e.Pressure}
	case pointer.Release, pointer.Cancel:
		delete(s.touches, e.PointerID)
	}
}

// multiTouch compares the touches that are down in both this frame
// and the previous one.
func (s *State) multiTouch() *MultiTouch {
	if len(s.touches) < 2 {
		return nil
	}
	ids := maps.Keys(s.touches)
	slices.Sort(ids)
	mt := &MultiTouch{NumTouches: len(ids), ZoomDelta: 1}
	var cur, prev []f32.Point
	for _, id := range ids {
		t := s.touches[id]
		mt.Force += t.pressure
		if p, ok := s.prev[id]; ok {
			cur = append(cur, t.pos)
			prev = append(prev, p.pos)
		}
	}
	mt.Force /= float32(len(ids))
	c := centroid(touchPositions(s.touches, ids))
	mt.Center = c
	if len(cur) < 2 {
		return mt
	}
	cc, pc := centroid(cur), centroid(prev)
	mt.TranslationDelta = cc.Sub(pc)
	if ps := spread(prev, pc); ps > 0 {
		mt.ZoomDelta = spread(cur, cc) / ps
	}
	a0 := math.Atan2(float64(prev[1].Y-prev[0].Y), float64(prev[1].X-prev[0].X))
	a1 := math.Atan2(float64(cur[1].Y-cur[0].Y), float64(cur[1].X-cur[0].X))
	d := a1 - a0
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	mt.RotationDelta = float32(d)
	return mt
}

func touchPositions(touches map[pointer.ID]touch, ids []pointer.ID) []f32.Point {
	pts := make([]f32.Point, len(ids))
	for i, id := range ids {
		pts[i] = touches[id].pos
	}
	return pts
}

func centroid(pts []f32.Point) f32.Point {
	var c f32.Point
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Mul(1 / float32(len(pts)))
}

func spread(pts []f32.Point, c f32.Point) float32 {
	var d float32
	for _, p := range pts {
		d += p.Sub(c).Len()
	}
	return d / float32(len(pts))
}
