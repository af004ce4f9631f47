package schema

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all schemas; validator instances are safe for
// concurrent use.
var validate = validator.New()

// FieldType is the primitive type of a request field. Numeric 0/1 flags
// are bounded integers, not booleans, to match the procedures' calling
// convention.
type FieldType int

const (
	TypeString FieldType = iota
	TypeInt
	TypeFloat
)

// Field declares one request field: type, requiredness and the
// validator rule string evaluated against the coerced value.
type Field struct {
	Name     string
	Type     FieldType
	Rules    string
	Optional bool
	Nullable bool
}

// Str declares a required string field with a maximum length.
func Str(name string, max int) Field {
	return Field{Name: name, Type: TypeString, Rules: fmt.Sprintf("max=%d", max)}
}

// Int declares a required integer field.
func Int(name string) Field {
	return Field{Name: name, Type: TypeInt}
}

// Num declares a required numeric (float) field.
func Num(name string) Field {
	return Field{Name: name, Type: TypeFloat}
}

// Flag declares a required 0/1 integer flag.
func Flag(name string) Field {
	return Field{Name: name, Type: TypeInt, Rules: "min=0,max=1"}
}

// Opt marks the field optional: it may be absent from the payload.
func (f Field) Opt() Field {
	f.Optional = true
	return f
}

// Null marks the field nullable: an explicit JSON null is accepted.
func (f Field) Null() Field {
	f.Nullable = true
	return f
}

// WithRules replaces the validator rule string.
func (f Field) WithRules(rules string) Field {
	f.Rules = rules
	return f
}

// FieldError is one validation failure, addressed by field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Schema is the declarative structural schema of one operation's
// request body. Validation runs before any database interaction.
type Schema struct {
	fields []Field
}

// New builds a schema from an ordered field list.
func New(fields ...Field) *Schema {
	return &Schema{fields: fields}
}

// Fields returns the declared fields in order.
func (s *Schema) Fields() []Field {
	return s.fields
}

// Validate checks and coerces a decoded JSON payload. On success it
// returns the coerced values keyed by field name; unknown payload keys
// are stripped. On failure it returns the failures in declaration
// order and a nil map.
func (s *Schema) Validate(payload map[string]any) (map[string]any, []FieldError) {
	out := make(map[string]any, len(s.fields))
	var errs []FieldError

	for _, f := range s.fields {
		raw, present := payload[f.Name]

		if !present {
			if !f.Optional {
				errs = append(errs, FieldError{Field: f.Name, Message: "Required"})
			}
			continue
		}

		if raw == nil {
			if !f.Nullable {
				errs = append(errs, FieldError{Field: f.Name, Message: "Expected non-null value"})
				continue
			}
			out[f.Name] = nil
			continue
		}

		value, err := coerce(f.Type, raw)
		if err != nil {
			errs = append(errs, FieldError{Field: f.Name, Message: err.Error()})
			continue
		}

		if f.Rules != "" {
			if err := validate.Var(value, f.Rules); err != nil {
				errs = append(errs, FieldError{Field: f.Name, Message: ruleMessage(err)})
				continue
			}
		}

		out[f.Name] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func coerce(t FieldType, raw any) (any, error) {
	switch t {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("Expected string, received %T", raw)
		}
		return s, nil
	case TypeInt:
		switch v := raw.(type) {
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("Expected integer, received float")
			}
			return int64(v), nil
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		default:
			return nil, fmt.Errorf("Expected integer, received %T", raw)
		}
	case TypeFloat:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int64:
			return float64(v), nil
		case int:
			return float64(v), nil
		default:
			return nil, fmt.Errorf("Expected number, received %T", raw)
		}
	default:
		return nil, fmt.Errorf("unsupported field type %d", t)
	}
}

func ruleMessage(err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Sprintf("Failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
	}
	return err.Error()
}

// NormalizeNullables replaces empty-string values of the designated keys
// with nil, so they bind as SQL NULL.
func NormalizeNullables(data map[string]any, nullableKeys []string) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	for _, k := range nullableKeys {
		if v, ok := out[k]; ok {
			if s, isStr := v.(string); isStr && s == "" {
				out[k] = nil
			}
		} else {
			out[k] = nil
		}
	}
	return out
}
