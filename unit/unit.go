// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units and values.

A Value is a value with a Unit attached.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays.

Style constants such as item spacing and scroll bar widths are
expressed in dp and converted to pixels through a Metric once per
frame.

*/
package unit

import "fmt"

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

// Metric converts Values to device-dependent pixels. The zero
// Metric maps 1 dp to 1 px.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
}

const (
	// UnitPx represent device pixels in the resolution of
	// the underlying display.
	UnitPx Unit = iota
	// UnitDp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	UnitDp
)

// Px returns the Value for v device pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Dp returns the Value for v device independent
// pixels.
func Dp(v float32) Value {
	return Value{V: v, U: UnitDp}
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

// Px converts v to pixels.
func (m Metric) Px(v Value) float32 {
	switch v.U {
	case UnitPx:
		return v.V
	case UnitDp:
		s := m.PxPerDp
		if s == 0 {
			s = 1
		}
		return v.V * s
	default:
		panic("unknown unit")
	}
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	default:
		panic("unknown unit")
	}
}
