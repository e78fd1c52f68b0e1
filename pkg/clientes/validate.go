package clientes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks a payload before it is sent with Create or Update.
type Validator[T any] func(T) error

// ValidationError lists the fields a MapRules hook rejected.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid cliente: " + strings.Join(parts, "; ")
}

// MapRules validates a Record with validator tags keyed by field name, e.g.
// {"nome": "required", "email": "omitempty,email"}.
func MapRules(rules map[string]interface{}) Validator[Record] {
	v := validator.New()
	return func(r Record) error {
		failed := v.ValidateMap(r, rules)
		if len(failed) == 0 {
			return nil
		}
		fields := make(map[string]string, len(failed))
		for field, err := range failed {
			fields[field] = describe(err)
		}
		return &ValidationError{Fields: fields}
	}
}

// StructRules validates T through its `validate` struct tags.
func StructRules[T any]() Validator[T] {
	v := validator.New(validator.WithRequiredStructEnabled())
	return func(item T) error {
		if err := v.Struct(item); err != nil {
			return fmt.Errorf("invalid cliente: %w", err)
		}
		return nil
	}
}

func describe(err interface{}) string {
	switch e := err.(type) {
	case validator.ValidationErrors:
		tags := make([]string, 0, len(e))
		for _, fe := range e {
			tags = append(tags, fe.Tag())
		}
		return "failed " + strings.Join(tags, ",")
	case map[string]interface{}:
		return "invalid nested value"
	case error:
		return e.Error()
	default:
		return fmt.Sprint(err)
	}
}
