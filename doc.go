// Package vastcheck validates the query parameters of VAST ad requests.
//
// A request is checked against the parameter schema for its implementation
// type (web, app, ctv, audio, doh). Each schema has three tiers: parameters
// that are always required, parameters required only for programmatic
// requests, and parameters recommended for programmatic requests.
//
// Validate is the single entry point:
//
//	present, issues := vastcheck.Validate(request, "web", false, false)
//	report := vastcheck.NewReport(present, issues)
//
// Issues of kind missing or invalid are blocking; recommended issues are
// advisory. [ParameterSchema] exposes a context's schema as an OpenAPI
// object schema.
//
// The cmd/vastcheck binary wraps Validate for command-line use.
package vastcheck
