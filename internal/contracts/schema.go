package contracts

import (
	"fmt"
	"sort"
)

// FieldType enumerates the JSON value kinds a contract field can require.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldArray   FieldType = "array"
	FieldObject  FieldType = "object"
	FieldAny     FieldType = "any"
)

// Field pins the shape of a single schema field.
type Field struct {
	Type     FieldType
	Required bool

	// Enum restricts a string field (or array of strings) to a closed set.
	Enum []string

	// Literal requires the exact string value, e.g. the workflow patch
	// discriminator.
	Literal string

	// Elem describes array elements. A nil Elem accepts any element.
	Elem *Field

	// Object describes a nested object shape.
	Object *Schema
}

// Schema is a structural validator for a request body, query parameter set,
// or the subset of response fields a tool reads.
//
// Validation is unknown-field-tolerant: fields beyond the declared key set
// are ignored, never rejected, so new backend fields do not break the tools.
// Declared fields are checked strictly; a violation means stop and report,
// not coerce.
type Schema struct {
	Name   string
	Fields map[string]Field
}

// Keys returns the schema's declared key set, sorted. Contract tests use this
// to pin exact key names against backend validation schemas (e.g. dateFrom vs
// startDate).
func (s *Schema) Keys() []string {
	keys := make([]string, 0, len(s.Fields))
	for k := range s.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasKey reports whether the schema declares the given key.
func (s *Schema) HasKey(key string) bool {
	_, ok := s.Fields[key]
	return ok
}

// Validate checks a JSON-decoded value against the schema. It returns nil on
// success or a ValidationErrors listing every violation.
func (s *Schema) Validate(v interface{}) error {
	var errs ValidationErrors
	obj, ok := v.(map[string]interface{})
	if !ok {
		errs.Add("", fmt.Sprintf("%s: expected an object, got %T", s.Name, v), v)
		return errs
	}

	for name, field := range s.Fields {
		value, present := obj[name]
		if !present {
			if field.Required {
				errs.Add(name, "required field is missing")
			}
			continue
		}
		validateField(&errs, name, field, value)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateField(errs *ValidationErrors, path string, field Field, value interface{}) {
	// JSON null counts as absent-but-present; a required field must carry a
	// real value, and tools never send nulls for unset optional fields.
	if value == nil {
		errs.Add(path, "must not be null", value)
		return
	}

	switch field.Type {
	case FieldString:
		str, ok := value.(string)
		if !ok {
			errs.Add(path, fmt.Sprintf("expected string, got %T", value), value)
			return
		}
		if field.Literal != "" && str != field.Literal {
			errs.Add(path, fmt.Sprintf("must be %q, got %q", field.Literal, str), value)
			return
		}
		if len(field.Enum) > 0 && !Contains(field.Enum, str) {
			errs.Add(path, fmt.Sprintf("%q is not an allowed value", str), value)
		}

	case FieldNumber:
		if _, ok := value.(float64); !ok {
			errs.Add(path, fmt.Sprintf("expected number, got %T", value), value)
		}

	case FieldBoolean:
		if _, ok := value.(bool); !ok {
			errs.Add(path, fmt.Sprintf("expected boolean, got %T", value), value)
		}

	case FieldArray:
		arr, ok := value.([]interface{})
		if !ok {
			errs.Add(path, fmt.Sprintf("expected array, got %T", value), value)
			return
		}
		if field.Elem != nil {
			for i, elem := range arr {
				validateField(errs, fmt.Sprintf("%s[%d]", path, i), *field.Elem, elem)
			}
		}

	case FieldObject:
		obj, ok := value.(map[string]interface{})
		if !ok {
			errs.Add(path, fmt.Sprintf("expected object, got %T", value), value)
			return
		}
		if field.Object != nil {
			for name, nested := range field.Object.Fields {
				nestedValue, present := obj[name]
				nestedPath := path + "." + name
				if !present {
					if nested.Required {
						errs.Add(nestedPath, "required field is missing")
					}
					continue
				}
				validateField(errs, nestedPath, nested, nestedValue)
			}
		}

	case FieldAny:
		// Anything but null passes.
	}
}

// nested wraps a field map as an anonymous sub-schema for FieldObject fields.
func nested(fields map[string]Field) *Schema {
	return &Schema{Fields: fields}
}
