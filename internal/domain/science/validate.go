package science

import (
	"bytes"
	"encoding/json"
	"strings"
)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return Invalid(field, "cannot be empty")
	}
	return nil
}

func requireTextPtr(field string, value *string) error {
	if value == nil {
		return Invalid(field, "must not be null")
	}
	return requireText(field, *value)
}

// Optional tracks whether a JSON key was present at all. Value is nil for an explicit null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: &v} }
