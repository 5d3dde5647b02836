// SPDX-License-Identifier: Unlicense OR MIT

package memory

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// TypeKey is a 64-bit fingerprint of a Go type, used as the key of
// the by-type stores and recorded next to serialized entries.
//
// A TypeKey is a hash of the type's package path and name. It is
// stable within a process and across runs of the same build, which
// is what makes it usable in persisted state. Renaming or moving a
// type changes its key; persisted entries for the old key are then
// silently ignored.
//
// Two distinct types may hash to the same key. The probability is
// negligible but not zero; a collision between live values is
// detected and reported with a panic, never silently miscast.
type TypeKey uint64

// TypeKeyOf returns the TypeKey of T.
func TypeKeyOf[T any]() TypeKey {
	return typeKey(reflect.TypeOf((*T)(nil)).Elem())
}

func typeKey(t reflect.Type) TypeKey {
	d := xxhash.New()
	d.WriteString(t.PkgPath())
	d.WriteString(".")
	d.WriteString(t.String())
	return TypeKey(d.Sum64())
}
