// SPDX-License-Identifier: Unlicense OR MIT

package memory

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"recallui.org/id"
)

// anyMap is the storage shared by the by-type and by-instance
// maps.
type anyMap[K comparable] struct {
	m map[K]*element
}

func (a *anyMap[K]) lookup(k K) (*element, bool) {
	e, ok := a.m[k]
	return e, ok
}

func (a *anyMap[K]) store(k K, e *element) {
	if a.m == nil {
		a.m = make(map[K]*element)
	}
	a.m[k] = e
}

func (a *anyMap[K]) each(f func(K, *element)) {
	for k, e := range a.m {
		f(k, e)
	}
}

// Len returns the number of stored values.
func (a *anyMap[K]) Len() int {
	return len(a.m)
}

// Clear removes every stored value.
func (a *anyMap[K]) Clear() {
	maps.Clear(a.m)
}

func (a *anyMap[K]) remove(k K) {
	delete(a.m, k)
}

func (a *anyMap[K]) clone() anyMap[K] {
	c := anyMap[K]{m: make(map[K]*element, len(a.m))}
	for k, e := range a.m {
		c.m[k] = e.copy()
	}
	return c
}

// TypeStore is a map from a type to the single value of that type.
// It is implemented by TypeMap and SerialTypeMap.
type TypeStore interface {
	lookup(k TypeKey) (*element, bool)
	store(k TypeKey, e *element)
	remove(k TypeKey)
}

// IDStore is a map from a widget ID to a value. It is implemented by
// IDMap and SerialIDMap.
//
// An IDStore keeps one value per ID regardless of type: widgets must
// use a single state type per ID. Mixing types under one ID is
// caught only when a live value is read back as another type.
type IDStore interface {
	lookup(k id.ID) (*element, bool)
	store(k id.ID, e *element)
	each(f func(id.ID, *element))
	Remove(k id.ID)
}

// TypeMap stores at most one value per Go type. Use it for state
// shared by every instance of a widget, and wrap plain types in a
// named type to avoid clashes:
//
//	type editMode bool
//	memory.Data[editMode](m)
type TypeMap struct {
	anyMap[TypeKey]
}

// IDMap stores values by widget ID.
type IDMap struct {
	anyMap[id.ID]
}

// Clone returns a deep copy of m.
func (m *TypeMap) Clone() *TypeMap {
	return &TypeMap{anyMap: m.clone()}
}

// Clone returns a deep copy of m.
func (m *IDMap) Clone() *IDMap {
	return &IDMap{anyMap: m.clone()}
}

// Remove the value stored for k.
func (m *IDMap) Remove(k id.ID) {
	m.remove(k)
}

// Keys returns the stored IDs in ascending order.
func (m *IDMap) Keys() []id.ID {
	keys := maps.Keys(m.m)
	slices.Sort(keys)
	return keys
}

// Data returns the value of type T in s, inserting the default
// value of T if absent.
func Data[T any](s TypeStore) *T {
	k := TypeKeyOf[T]()
	if e, ok := s.lookup(k); ok {
		if p, ok := get[T](e); ok {
			return p
		}
	}
	e := newElement(defaultValue[T]())
	s.store(k, e)
	return e.value.(*T)
}

// LookupData returns the value of type T in s, if any.
func LookupData[T any](s TypeStore) (*T, bool) {
	e, ok := s.lookup(TypeKeyOf[T]())
	if !ok {
		return nil, false
	}
	return get[T](e)
}

// SetData replaces the value of type T in s.
func SetData[T any](s TypeStore, v T) {
	s.store(TypeKeyOf[T](), newElement(v))
}

// RemoveData removes the value of type T from s.
func RemoveData[T any](s TypeStore) {
	s.remove(TypeKeyOf[T]())
}

// GetOrDefault returns the value stored for key, inserting the
// default value of T if absent. An entry loaded from persisted
// state that fails to decode as T is replaced by the default.
func GetOrDefault[T any](s IDStore, key id.ID) *T {
	if e, ok := s.lookup(key); ok {
		if p, ok := get[T](e); ok {
			return p
		}
	}
	e := newElement(defaultValue[T]())
	s.store(key, e)
	return e.value.(*T)
}

// Get returns the value stored for key, if any.
func Get[T any](s IDStore, key id.ID) (*T, bool) {
	e, ok := s.lookup(key)
	if !ok {
		return nil, false
	}
	return get[T](e)
}

// Insert stores v for key, replacing any previous value.
func Insert[T any](s IDStore, key id.ID, v T) {
	s.store(key, newElement(v))
}

// CountByType returns the number of values of type T in s.
//
// The count is for diagnostics only: entries are matched by TypeKey
// and are subject to the same collision caveat.
func CountByType[T any](s IDStore) int {
	return len(KeysByType[T](s))
}

// KeysByType returns, in ascending order, the IDs whose values have
// type T. Like CountByType it is best effort.
func KeysByType[T any](s IDStore) []id.ID {
	k := TypeKeyOf[T]()
	var keys []id.ID
	s.each(func(key id.ID, e *element) {
		if e.typ == k {
			keys = append(keys, key)
		}
	})
	slices.Sort(keys)
	return keys
}

// RemoveByType removes every value of type T from s.
func RemoveByType[T any](s IDStore) {
	for _, k := range KeysByType[T](s) {
		s.Remove(k)
	}
}
