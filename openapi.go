package vastcheck

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// ParameterSchema builds an OpenAPI object schema describing the query
// parameters for the given implementation type. Properties come from each
// rule's Describe. The required list covers the required tier and, when
// programmatic is true, the programmatic-required tier; recommended
// parameters appear as optional properties.
func ParameterSchema(impl string, programmatic bool) (*openapi3.SchemaRef, error) {
	schema, err := SchemaFor(impl)
	if err != nil {
		return nil, err
	}

	obj := openapi3.NewObjectSchema()
	obj.Properties = openapi3.Schemas{}

	for _, tier := range []struct {
		params   []Param
		required bool
	}{
		{schema.Required, true},
		{schema.ProgrammaticRequired, programmatic},
		{schema.ProgrammaticRecommended, false},
	} {
		for _, p := range tier.params {
			ref := openapi3.NewSchemaRef("", openapi3.NewStringSchema())
			if err := p.Rule.Describe(p.Name, obj, ref); err != nil {
				return nil, err
			}
			obj.Properties[p.Name] = ref
			if tier.required {
				obj.Required = append(obj.Required, p.Name)
			}
		}
	}

	return openapi3.NewSchemaRef("", obj), nil
}
