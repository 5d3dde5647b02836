// SPDX-License-Identifier: Unlicense OR MIT

/*
Package id derives the stable identifiers that name widget
instances across frames.

Widgets in an immediate mode UI are rebuilt every frame, so they
are identified by hashing a stable source value, usually a label
or a loop index, combined with the identifier of the enclosing
widget. Two widgets that derive the same ID share persistent
state; callers must keep sources unique among siblings.
*/
package id

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ID identifies one logical widget instance.
type ID uint64

// Root is the ID of the outermost layout context.
const Root ID = 0

// New returns the ID derived from source alone.
func New(source any) ID {
	return Root.With(source)
}

// With returns the ID of a child of id, derived from source.
func (id ID) With(source any) ID {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	d.Write(buf[:])
	writeSource(d, source)
	return ID(d.Sum64())
}

func writeSource(d *xxhash.Digest, source any) {
	switch s := source.(type) {
	case string:
		d.WriteString("s")
		d.WriteString(s)
	case int:
		d.WriteString("i")
		d.WriteString(strconv.Itoa(s))
	case ID:
		d.WriteString("d")
		d.WriteString(strconv.FormatUint(uint64(s), 16))
	default:
		fmt.Fprintf(d, "%T:%v", source, source)
	}
}

// Short returns a short hexadecimal rendering of id, suitable for
// debug output.
func (id ID) Short() string {
	return fmt.Sprintf("%04X", uint64(id)>>48)
}

func (id ID) String() string {
	return fmt.Sprintf("%016X", uint64(id))
}
