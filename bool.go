package vastcheck

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Bool returns a validation rule that checks if a value is the literal "0"
// or "1". VAST boolean parameters never use true/false.
func Bool() Rule {
	return boolRule{validation.In("0", "1")}
}

type boolRule struct {
	validation.InRule
}

func (r boolRule) Validate(value any) error {
	if err := r.InRule.Validate(value); err != nil {
		return fmt.Errorf("Expected 0 or 1, got '%v'", value)
	}
	return nil
}

func (r boolRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Enum = []any{"0", "1"}
	return nil
}
