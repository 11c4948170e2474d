package vastcheck

import (
	"fmt"
	"strings"
)

// Validate is the single entry point for all validation.
// It parses a raw VAST request string and checks the parameters it contains
// against the schema for the given implementation type. The returned issues
// follow tier order (required, programmatic-required, programmatic-
// recommended) and, within a tier, schema declaration order.
//
// An unknown implementation type short-circuits: nothing is parsed and the
// only issue names the implementation_type itself.
func Validate(request, impl string, programmatic, decode bool) (Params, []Issue) {
	schema, err := SchemaFor(impl)
	if err != nil {
		return Params{}, []Issue{{
			Parameter: "implementation_type",
			Kind:      KindInvalid,
			Message: fmt.Sprintf("Invalid implementation type: '%s'. Allowed types are: %s",
				impl, strings.Join(Implementations, ", ")),
		}}
	}

	present := ParseRequest(request, decode)

	issues := checkTier(schema.Required, present, missingIssue("Missing required parameter"))
	if programmatic {
		issues = append(issues, checkTier(schema.ProgrammaticRequired, present,
			missingIssue("Missing required programmatic parameter"))...)
	} else {
		// Without the programmatic flag the tier's missing check is
		// suppressed, but supplied values are still type-checked.
		issues = append(issues, checkTier(schema.ProgrammaticRequired, present, nil)...)
	}
	issues = append(issues, checkTier(schema.ProgrammaticRecommended, present, recommendedIssue)...)

	return present, issues
}

// absentFunc produces the issue for a declared parameter that is not in the
// request, or nil when absence is not reportable.
type absentFunc func(name string) *Issue

func missingIssue(message string) absentFunc {
	return func(name string) *Issue {
		return &Issue{Parameter: name, Kind: KindMissing, Message: message}
	}
}

func recommendedIssue(name string) *Issue {
	return &Issue{Parameter: name, Kind: KindRecommended, Message: "Recommended programmatic parameter not found"}
}

func checkTier(tier []Param, present Params, absent absentFunc) []Issue {
	var issues []Issue
	for _, p := range tier {
		value, ok := present[p.Name]
		if !ok {
			if absent != nil {
				issues = append(issues, *absent(p.Name))
			}
			continue
		}
		if issue := checkValue(p, value); issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues
}

// checkValue validates one present parameter value. Empty values are invalid
// for every declared type and short-circuit the type rule.
func checkValue(p Param, value string) *Issue {
	if value == "" {
		return &Issue{Parameter: p.Name, Kind: KindInvalid, Message: "Parameter value is empty"}
	}
	if err := p.Rule.Validate(value); err != nil {
		return &Issue{Parameter: p.Name, Kind: KindInvalid, Message: err.Error()}
	}
	return nil
}
