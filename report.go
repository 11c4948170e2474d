package vastcheck

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Report is the rendered outcome of one validation call, with issues split
// into blocking errors and advisory warnings.
type Report struct {
	Valid             bool    `json:"valid"`
	Errors            []Issue `json:"errors"`
	Warnings          []Issue `json:"warnings"`
	PresentParameters Params  `json:"present_parameters"`
}

// NewReport classifies issues into errors and warnings. Valid is true when
// no blocking issue was found.
func NewReport(present Params, issues []Issue) *Report {
	r := &Report{
		Errors:            []Issue{},
		Warnings:          []Issue{},
		PresentParameters: present,
	}
	for _, issue := range issues {
		if issue.Kind.Blocking() {
			r.Errors = append(r.Errors, issue)
		} else {
			r.Warnings = append(r.Warnings, issue)
		}
	}
	r.Valid = len(r.Errors) == 0
	return r
}

// JSON renders the report as an indented JSON object.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}

// Text renders the report in a human-readable layout. quiet suppresses
// everything except errors.
func (r *Report) Text(impl string, quiet bool) string {
	var b strings.Builder
	if !quiet {
		// Sorted for stable output.
		names := make([]string, 0, len(r.PresentParameters))
		for name := range r.PresentParameters {
			names = append(names, name)
		}
		sort.Strings(names)
		listed := "None"
		if len(names) > 0 {
			listed = strings.Join(names, ", ")
		}
		b.WriteString("\n--- Validation Results ---\n")
		fmt.Fprintf(&b, "Implementation Type: %s\n", impl)
		fmt.Fprintf(&b, "Present Parameters: %s\n", listed)
	}
	if len(r.Errors) > 0 {
		b.WriteString("\n--- Errors ---\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "  Parameter: %s\n", e.Parameter)
			fmt.Fprintf(&b, "    Type: %s\n", e.Kind)
			fmt.Fprintf(&b, "    Message: %s\n", e.Message)
		}
	}
	if len(r.Warnings) > 0 && !quiet {
		b.WriteString("\n--- Warnings ---\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "  Parameter: %s\n", w.Parameter)
			fmt.Fprintf(&b, "    Message: %s\n", w.Message)
		}
	}
	if len(r.Errors) == 0 && !quiet {
		b.WriteString("No errors found.\n")
	}
	return b.String()
}
