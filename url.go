package vastcheck

import (
	"fmt"
	"net/url"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// URL returns a validation rule that checks if a value is an absolute http
// or https URL with a non-empty host.
func URL() Rule {
	return urlRule{validation.NewStringRule(isAdURL, "must be a valid URL")}
}

type urlRule struct {
	validation.StringRule
}

func isAdURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (r urlRule) Validate(value any) error {
	if err := r.StringRule.Validate(value); err != nil {
		return fmt.Errorf("Invalid URL: '%v'", value)
	}
	return nil
}

func (r urlRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = "uri"
	return nil
}
