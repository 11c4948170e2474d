package vastcheck

import (
	"fmt"
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Sign prefixes, leading zeros and arbitrarily large magnitudes are all
// accepted; surrounding whitespace is not.
var intRegexp = regexp.MustCompile(`^[+-]?[0-9]+$`)

// Int returns a validation rule that checks if a value is a base-10 integer.
func Int() Rule {
	return intRule{validation.Match(intRegexp)}
}

type intRule struct {
	validation.MatchRule
}

func (r intRule) Validate(value any) error {
	if err := r.MatchRule.Validate(value); err != nil {
		return fmt.Errorf("Expected integer, got '%v'", value)
	}
	return nil
}

func (r intRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = intRegexp.String()
	return nil
}
