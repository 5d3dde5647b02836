// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer defines the pointer events delivered by the platform
to a frame driver.

Widgets do not consume pointer events directly: package input folds
the events of a frame into a snapshot that widgets query.
*/
package pointer

import (
	"fmt"
	"strings"
	"time"

	"recallui.org/f32"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID follows one finger or mouse from Press to
	// Release or Cancel.
	PointerID ID
	// Time of the event, relative to an arbitrary base shared by
	// all events of a window.
	Time time.Duration
	// Buttons held during the event.
	Buttons Buttons
	// Position in window coordinates.
	Position f32.Point
	// Scroll is the wheel movement of a Scroll event, in pixels.
	// Positive Y scrolls towards the end of the content.
	Scroll f32.Point
	// Pressure of a touch in the range [0, 1], if reported by the
	// device.
	Pressure float32
}

// ID identifies a pointer.
type ID uint16

// Kind of an Event.
type Kind uint

// Source of an Event.
type Source uint8

// Buttons is a set of mouse buttons
type Buttons uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = 1 << iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Drag of a pointer.
	Drag
	// Scroll of a pointer.
	Scroll
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

var kindNames = [...]string{"Cancel", "Press", "Release", "Move", "Drag", "Scroll"}

// String returns the names of the kinds in k joined by '|'.
func (k Kind) String() string {
	var names []string
	for i, n := range kindNames {
		if k&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("Kind(%d)", uint(k))
	}
	return strings.Join(names, "|")
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		return fmt.Sprintf("Source(%d)", uint8(s))
	}
}

// Contain reports whether b holds every button in buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

var buttonNames = [...]string{"ButtonPrimary", "ButtonSecondary", "ButtonTertiary"}

func (b Buttons) String() string {
	var names []string
	for i, n := range buttonNames {
		if b.Contain(1 << i) {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}
