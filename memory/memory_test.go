// SPDX-License-Identifier: Unlicense OR MIT

package memory

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"recallui.org/id"
)

type counter struct {
	N int `yaml:"n"`
}

type label struct {
	Text string `yaml:"text"`
}

type zoom struct {
	Factor float32 `yaml:"factor"`
}

func (zoom) Default() zoom { return zoom{Factor: 1} }

type history struct {
	Items []int
}

func (h history) Clone() history {
	return history{Items: append([]int(nil), h.Items...)}
}

func TestTypeKeys(t *testing.T) {
	if TypeKeyOf[counter]() != TypeKeyOf[counter]() {
		t.Error("TypeKeyOf is not stable")
	}
	keys := map[TypeKey]string{}
	for name, k := range map[string]TypeKey{
		"counter":  TypeKeyOf[counter](),
		"label":    TypeKeyOf[label](),
		"*counter": TypeKeyOf[*counter](),
		"int":      TypeKeyOf[int](),
		"int64":    TypeKeyOf[int64](),
	} {
		if prev, dup := keys[k]; dup {
			t.Errorf("TypeKey collision between %s and %s", prev, name)
		}
		keys[k] = name
	}
}

func TestDataDoesNotAlias(t *testing.T) {
	var m TypeMap
	Data[counter](&m).N = 7
	Data[label](&m).Text = "seven"
	if got := Data[counter](&m).N; got != 7 {
		t.Errorf("counter = %d, want 7", got)
	}
	if got := Data[label](&m).Text; got != "seven" {
		t.Errorf("label = %q, want %q", got, "seven")
	}
	if m.Len() != 2 {
		t.Errorf("got %d slots, want 2", m.Len())
	}
	RemoveData[label](&m)
	if _, ok := LookupData[label](&m); ok {
		t.Error("label still present after RemoveData")
	}
	SetData(&m, counter{N: 3})
	if got := Data[counter](&m).N; got != 3 {
		t.Errorf("counter after SetData = %d, want 3", got)
	}
}

func TestGetOrDefaultIdempotent(t *testing.T) {
	var m IDMap
	k := id.New("area")
	a := GetOrDefault[counter](&m, k)
	a.N = 5
	b := GetOrDefault[counter](&m, k)
	if a != b || b.N != 5 {
		t.Errorf("second GetOrDefault returned %+v at %p, want 5 at %p", *b, b, a)
	}
	if got := GetOrDefault[zoom](&m, id.New("zoom")).Factor; got != 1 {
		t.Errorf("Defaulter ignored: factor = %v", got)
	}
}

func TestInsertGetRemove(t *testing.T) {
	var m IDMap
	k := id.New("grid")
	if _, ok := Get[counter](&m, k); ok {
		t.Fatal("empty map returned a value")
	}
	Insert(&m, k, counter{N: 2})
	if v, ok := Get[counter](&m, k); !ok || v.N != 2 {
		t.Errorf("Get = %v, %v; want {2}, true", v, ok)
	}
	m.Remove(k)
	if _, ok := Get[counter](&m, k); ok {
		t.Error("value present after Remove")
	}
}

func TestTypeMismatchPanics(t *testing.T) {
	var m IDMap
	k := id.New("shared")
	Insert(&m, k, counter{N: 1})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("reading a live value as another type did not panic")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "memory.counter") {
			t.Errorf("panic message %q does not name the stored type", msg)
		}
	}()
	Get[label](&m, k)
}

func TestCountByType(t *testing.T) {
	var m IDMap
	for i := 0; i < 3; i++ {
		Insert(&m, id.New(i), counter{N: i})
	}
	Insert(&m, id.New("label"), label{})
	if got := CountByType[counter](&m); got != 3 {
		t.Errorf("CountByType[counter] = %d, want 3", got)
	}
	if got := len(KeysByType[label](&m)); got != 1 {
		t.Errorf("KeysByType[label] has %d keys, want 1", got)
	}
	RemoveByType[counter](&m)
	if got := m.Len(); got != 1 {
		t.Errorf("%d values left after RemoveByType, want 1", got)
	}
}

func TestClone(t *testing.T) {
	var m IDMap
	k := id.New("history")
	Insert(&m, k, history{Items: []int{1, 2}})
	c := m.Clone()
	GetOrDefault[history](&m, k).Items[0] = 99
	if got := GetOrDefault[history](c, k).Items[0]; got != 1 {
		t.Errorf("clone shares storage: got %d, want 1", got)
	}
}

func TestSaveLoad(t *testing.T) {
	var m Memory
	k := id.New("area")
	GetOrDefault[counter](&m.IDData, k).N = 42
	Data[label](&m.Data).Text = "hello"
	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatal(err)
	}
	m2, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := GetOrDefault[counter](&m2.IDData, k).N; got != 42 {
		t.Errorf("restored counter = %d, want 42", got)
	}
	if got := Data[label](&m2.Data).Text; got != "hello" {
		t.Errorf("restored label = %q, want %q", got, "hello")
	}
}

func TestCorruptEntryResetsToDefault(t *testing.T) {
	good, bad, wrongType := id.New("good"), id.New("bad"), id.New("wrong")
	doc := fmt.Sprintf(`id_data:
  - key: %d
    type: %d
    value: "n: 3"
  - key: %d
    type: %d
    value: "n: [not a number"
  - key: %d
    type: %d
    value: "text: hi"
`,
		uint64(good), uint64(TypeKeyOf[counter]()),
		uint64(bad), uint64(TypeKeyOf[counter]()),
		uint64(wrongType), uint64(TypeKeyOf[label]()),
	)
	m, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if got := CountByType[counter](&m.IDData); got != 2 {
		t.Errorf("CountByType before access = %d, want 2", got)
	}
	if got := GetOrDefault[counter](&m.IDData, good).N; got != 3 {
		t.Errorf("good entry = %d, want 3", got)
	}
	if _, ok := Get[counter](&m.IDData, bad); ok {
		t.Error("corrupt entry decoded")
	}
	if got := GetOrDefault[counter](&m.IDData, bad).N; got != 0 {
		t.Errorf("corrupt entry = %d, want default 0", got)
	}
	if got := GetOrDefault[counter](&m.IDData, wrongType).N; got != 0 {
		t.Errorf("entry of another type = %d, want default 0", got)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	if _, err := Load(strings.NewReader("id_data: {")); err == nil {
		t.Error("malformed document loaded without error")
	}
	m, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty document: %v", err)
	}
	if m.IDData.Len() != 0 {
		t.Error("empty document produced entries")
	}
}
