package vastcheck

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Enum returns a validation rule that checks if a value exactly matches one
// of the allowed values. Matching is case-sensitive.
func Enum(values ...string) Rule {
	in := make([]any, len(values))
	for i := range values {
		in[i] = values[i]
	}
	return &enumRule{
		validation.In(in...).Error(fmt.Sprintf("Invalid value. Allowed values: %s", strings.Join(values, ", "))),
		values,
	}
}

type enumRule struct {
	validation.InRule
	values []string
}

func (r *enumRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	enum := make([]any, len(r.values))
	for i := range r.values {
		enum[i] = r.values[i]
	}
	ref.Value.Enum = enum
	return nil
}
