// SPDX-License-Identifier: Unlicense OR MIT

package memory

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// SerialTypeMap is a TypeMap that can be saved and restored with
// gopkg.in/yaml.v3. Stored types must be encodable by yaml.v3;
// values that fail to encode are left out of the output.
type SerialTypeMap struct {
	TypeMap
}

// SerialIDMap is an IDMap that can be saved and restored with
// gopkg.in/yaml.v3.
//
// Restored entries stay encoded until they are first accessed. An
// entry that no longer decodes as the requested type, for example
// after the type changed between releases, is treated as absent and
// replaced by the default value on the next GetOrDefault. Such
// failures are never reported: losing a scroll offset or a column
// width is harmless, crashing the UI is not.
type SerialIDMap struct {
	IDMap
}

// entry is the persisted form of one element.
type entry struct {
	Key   uint64 `yaml:"key"`
	Type  uint64 `yaml:"type"`
	Value string `yaml:"value"`
}

func marshalEntries[K ~uint64](a *anyMap[K]) []entry {
	entries := make([]entry, 0, len(a.m))
	for k, e := range a.m {
		data, err := e.encode()
		if err != nil {
			continue
		}
		entries = append(entries, entry{Key: uint64(k), Type: uint64(e.typ), Value: string(data)})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return entries
}

func unmarshalEntries[K ~uint64](a *anyMap[K], n *yaml.Node) error {
	var entries []entry
	if err := n.Decode(&entries); err != nil {
		return fmt.Errorf("memory: decode entries: %w", err)
	}
	a.m = make(map[K]*element, len(entries))
	for _, en := range entries {
		a.m[K(en.Key)] = &element{typ: TypeKey(en.Type), raw: []byte(en.Value)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m *SerialTypeMap) MarshalYAML() (interface{}, error) {
	return marshalEntries(&m.anyMap), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *SerialTypeMap) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEntries(&m.anyMap, n)
}

// MarshalYAML implements yaml.Marshaler.
func (m *SerialIDMap) MarshalYAML() (interface{}, error) {
	return marshalEntries(&m.anyMap), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *SerialIDMap) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEntries(&m.anyMap, n)
}

// Clone returns a deep copy of m.
func (m *SerialIDMap) Clone() *SerialIDMap {
	return &SerialIDMap{IDMap: *m.IDMap.Clone()}
}

// Clone returns a deep copy of m.
func (m *SerialTypeMap) Clone() *SerialTypeMap {
	return &SerialTypeMap{TypeMap: *m.TypeMap.Clone()}
}

var _ IDStore = (*SerialIDMap)(nil)
var _ TypeStore = (*SerialTypeMap)(nil)
var _ IDStore = (*IDMap)(nil)
var _ TypeStore = (*TypeMap)(nil)
