// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim smooths boolean widget state into values that move
linearly between 0 and 1 over a short duration.

A Manager is kept in the memory of a UI context and keyed by widget
ID, so that ephemeral widget code can ask "how far along is my
transition" every frame.
*/
package anim

import (
	"time"

	"golang.org/x/exp/maps"

	"recallui.org/id"
)

// DefaultDuration is the duration of a full transition.
const DefaultDuration = time.Second / 12

// Manager tracks animated values by widget ID.
type Manager struct {
	bools map[id.ID]boolAnim
}

type boolAnim struct {
	target  bool
	from    float32
	toggled time.Duration
}

// Clone implements memory.Cloner.
func (m Manager) Clone() Manager {
	return Manager{bools: maps.Clone(m.bools)}
}

// Bool returns the value of the animation for key at time now,
// moving towards 1 when target is true and 0 otherwise. The first
// call for a key returns the target value without animating.
// Calls with the same arguments return the same value.
func (m *Manager) Bool(key id.ID, target bool, now, duration time.Duration) float32 {
	a, ok := m.bools[key]
	if !ok {
		if m.bools == nil {
			m.bools = make(map[id.ID]boolAnim)
		}
		m.bools[key] = boolAnim{target: target, from: boolValue(target), toggled: now}
		return boolValue(target)
	}
	if a.target != target {
		a = boolAnim{target: target, from: a.value(now, duration), toggled: now}
		m.bools[key] = a
	}
	return a.value(now, duration)
}

// Snap moves the animation for key to target without a transition.
func (m *Manager) Snap(key id.ID, target bool, now time.Duration) {
	if m.bools == nil {
		m.bools = make(map[id.ID]boolAnim)
	}
	m.bools[key] = boolAnim{target: target, from: boolValue(target), toggled: now}
}

// Active reports whether the animation for key has not yet reached
// its target at time now.
func (m *Manager) Active(key id.ID, now, duration time.Duration) bool {
	a, ok := m.bools[key]
	if !ok {
		return false
	}
	return a.value(now, duration) != boolValue(a.target)
}

func (a boolAnim) value(now, duration time.Duration) float32 {
	to := boolValue(a.target)
	if duration <= 0 {
		return to
	}
	t := float32(now-a.toggled) / float32(duration)
	if t >= 1 {
		return to
	}
	if t < 0 {
		t = 0
	}
	return a.from + (to-a.from)*t
}

func boolValue(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
