package vastcheck

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Str returns the rule for free-form string parameters. Any non-empty value
// is accepted; the empty-value check happens before rule dispatch.
func Str() Rule {
	return strRule{}
}

type strRule struct{}

func (strRule) Validate(any) error {
	return nil
}

func (strRule) Describe(_ string, _ *openapi3.Schema, _ *openapi3.SchemaRef) error {
	return nil
}
