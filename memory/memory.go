// SPDX-License-Identifier: Unlicense OR MIT

/*
Package memory implements the type-erased stores that let widget
code in an immediate mode UI remember state between frames.

There are no persistent widget objects: each frame a widget reads
what it stored last frame and writes what it wants to remember for
the next one. Values are boxed and looked up either by their Go
type (TypeMap) or by the ID of the widget instance (IDMap).

	st := memory.GetOrDefault[scrollState](&m.IDData, areaID)
	st.Offset.Y += delta

The serializable variants can be saved to and restored from YAML.
They are meant for low-stakes visual memory such as scroll offsets
and column widths: decode failures silently reset the affected
value. Applications needing reliable persistence should keep their
own state and serialize it themselves.
*/
package memory

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Memory holds the persistent state of one UI context.
type Memory struct {
	// Data is state stored by type, shared by all widget instances.
	Data SerialTypeMap
	// IDData is state stored by widget instance.
	IDData SerialIDMap
	// Temp is state that is never saved, such as the active
	// interaction and running animations.
	Temp TypeMap
}

type file struct {
	Data   *SerialTypeMap `yaml:"data"`
	IDData *SerialIDMap   `yaml:"id_data"`
}

// Save writes the serializable parts of m to w.
func (m *Memory) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(file{Data: &m.Data, IDData: &m.IDData}); err != nil {
		return fmt.Errorf("memory: save: %w", err)
	}
	return enc.Close()
}

// Load restores a Memory written by Save. Only a malformed document
// is reported; individual entries are decoded lazily.
func Load(r io.Reader) (*Memory, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("memory: load: %w", err)
	}
	m := new(Memory)
	if f.Data != nil {
		m.Data = *f.Data
	}
	if f.IDData != nil {
		m.IDData = *f.IDData
	}
	return m, nil
}
