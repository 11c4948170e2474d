package vastcheck

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var sizeRegexp = regexp.MustCompile(`^\d+x\d+$`)

// Size returns a validation rule that checks if a value is an ad slot size
// in WIDTHxHEIGHT form.
func Size() Rule {
	return sizeRule{validation.Match(sizeRegexp).Error("Expected format WIDTHxHEIGHT (e.g., 640x480)")}
}

type sizeRule struct {
	validation.MatchRule
}

func (r sizeRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = sizeRegexp.String()
	return nil
}
