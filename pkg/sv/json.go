package sv

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"

	"github.com/google/uuid"
)

type wireStatusValue[S comparable] struct {
	Status S               `json:"status"`
	Value  json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes r as {"status": ..., "value": ...}; value is omitted
// when r holds none.
func (r StatusValue[S, V]) MarshalJSON() ([]byte, error) {
	w := wireStatusValue[S]{Status: r.status}
	if r.hasValue {
		raw, err := json.Marshal(r.value)
		if err != nil {
			return nil, err
		}
		w.Value = raw
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the form written by MarshalJSON. The decoded
// instance gets fresh trace metadata. A null value counts as absent unless
// V can hold nil (pointer, slice, map, interface, chan or func).
func (r *StatusValue[S, V]) UnmarshalJSON(data []byte) error {
	var w wireStatusValue[S]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	out := StatusValue[S, V]{
		status:    w.Status,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
	if len(w.Value) > 0 && !(isNull(w.Value) && !nillable[V]()) {
		if err := json.Unmarshal(w.Value, &out.value); err != nil {
			return err
		}
		out.hasValue = true
	}
	*r = out
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func nillable[V any]() bool {
	switch reflect.TypeOf((*V)(nil)).Elem().Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
