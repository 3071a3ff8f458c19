package assembler

import (
	"bytes"
	"encoding/json"
	"strings"
)

// LabelStyle names the response label template. The "title" template keeps
// human-readable labels ("Full Name"); "snake" lowercases them into snake_case
// keys.
type LabelStyle string

const (
	LabelTitle LabelStyle = "title"
	LabelSnake LabelStyle = "snake"
)

func (s LabelStyle) Label(title string) string {
	if s == LabelSnake {
		return strings.ReplaceAll(strings.ToLower(title), " ", "_")
	}
	return title
}

// OrderedObject is a JSON object that marshals its keys in insertion order.
// encoding/json sorts map keys, which would scramble the response blocks.
type OrderedObject struct {
	keys []string
	vals map[string]any
}

func NewOrderedObject() *OrderedObject {
	return &OrderedObject{vals: make(map[string]any)}
}

func (o *OrderedObject) Set(key string, v any) *OrderedObject {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
	return o
}

func (o *OrderedObject) Get(key string) (any, bool) {
	v, ok := o.vals[key]
	return v, ok
}

func (o *OrderedObject) Keys() []string {
	return o.keys
}

func (o *OrderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
