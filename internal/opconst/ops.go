// SPDX-License-Identifier: Unlicense OR MIT

package opconst

type OpType byte

// Start at a high number for easier debugging.
const firstOpIndex = 200

const (
	TypeInvalidate OpType = iota + firstOpIndex
	TypeClip
	TypePopClip
	TypeFill
	TypeStroke
	TypeLine
)

const (
	TypeInvalidateLen = 1
	TypeClipLen       = 1 + 4*4
	TypePopClipLen    = 1
	TypeFillLen       = 1 + 4*4 + 4 + 4
	TypeStrokeLen     = 1 + 4*4 + 4 + 4 + 4
	TypeLineLen       = 1 + 4*4 + 4 + 4
)

func (t OpType) Size() int {
	return [...]int{
		TypeInvalidateLen,
		TypeClipLen,
		TypePopClipLen,
		TypeFillLen,
		TypeStrokeLen,
		TypeLineLen,
	}[t-firstOpIndex]
}

func (t OpType) String() string {
	switch t {
	case TypeInvalidate:
		return "Invalidate"
	case TypeClip:
		return "Clip"
	case TypePopClip:
		return "PopClip"
	case TypeFill:
		return "Fill"
	case TypeStroke:
		return "Stroke"
	case TypeLine:
		return "Line"
	default:
		panic("unknown OpType")
	}
}
