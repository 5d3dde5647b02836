// SPDX-License-Identifier: Unlicense OR MIT

package memory

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Cloner is implemented by state types that hold references and
// need a deep copy when a store is cloned. Other values are copied
// with plain assignment.
type Cloner[T any] interface {
	Clone() T
}

// Defaulter is implemented by state types whose default is not the
// zero value.
type Defaulter[T any] interface {
	Default() T
}

// element is one boxed value. A freshly loaded element holds only
// its serialized form until the first typed access decodes it.
type element struct {
	typ   TypeKey
	value any // *T, or nil while serialized.
	clone func(any) any
	raw   []byte
}

func newElement[T any](v T) *element {
	p := new(T)
	*p = v
	return &element{
		typ:   TypeKeyOf[T](),
		value: p,
		clone: cloneFunc[T](),
	}
}

func defaultValue[T any]() T {
	var v T
	if d, ok := any(v).(Defaulter[T]); ok {
		return d.Default()
	}
	return v
}

func cloneFunc[T any]() func(any) any {
	return func(v any) any {
		p := v.(*T)
		n := new(T)
		if c, ok := any(*p).(Cloner[T]); ok {
			*n = c.Clone()
		} else {
			*n = *p
		}
		return n
	}
}

// get returns the element's value as a *T. It reports false for a
// serialized element of another type or one that fails to decode;
// the caller treats such an element as absent. A live element of
// another type is a broken invariant and panics.
func get[T any](e *element) (*T, bool) {
	if e.value != nil {
		p, ok := e.value.(*T)
		if !ok {
			panic(fmt.Sprintf("memory: slot holds %T, requested %T", e.value, p))
		}
		return p, true
	}
	if e.typ != TypeKeyOf[T]() {
		return nil, false
	}
	p := new(T)
	if err := yaml.Unmarshal(e.raw, p); err != nil {
		return nil, false
	}
	e.value = p
	e.clone = cloneFunc[T]()
	e.raw = nil
	return p, true
}

func (e *element) copy() *element {
	c := *e
	if e.value != nil {
		c.value = e.clone(e.value)
	} else {
		c.raw = append([]byte(nil), e.raw...)
	}
	return &c
}

// encode returns the serialized form of the element.
func (e *element) encode() ([]byte, error) {
	if e.value == nil {
		return e.raw, nil
	}
	return yaml.Marshal(e.value)
}
