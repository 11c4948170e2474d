package vastcheck

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule is the interface implemented by every parameter type rule.
	// Validate checks a raw parameter value; Describe projects the rule
	// into the OpenAPI property schema for the parameter.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// Param binds one query parameter name to its type rule.
	Param struct {
		Name string
		Rule Rule
	}
)
