package vastcheck_test

import (
	"testing"

	v "github.com/Gobd/vastcheck"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportSplitsIssues(t *testing.T) {
	present := v.Params{"correlator": "abc"}
	issues := []v.Issue{
		{Parameter: "vpmute", Kind: v.KindMissing, Message: "Missing required parameter"},
		{Parameter: "correlator", Kind: v.KindInvalid, Message: "Expected integer, got 'abc'"},
		{Parameter: "aconp", Kind: v.KindRecommended, Message: "Recommended programmatic parameter not found"},
	}

	report := v.NewReport(present, issues)

	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 2)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "vpmute", report.Errors[0].Parameter)
	assert.Equal(t, "aconp", report.Warnings[0].Parameter)
	assert.Equal(t, present, report.PresentParameters)
}

func TestNewReportValid(t *testing.T) {
	report := v.NewReport(v.Params{"correlator": "123"}, []v.Issue{
		{Parameter: "aconp", Kind: v.KindRecommended, Message: "Recommended programmatic parameter not found"},
	})
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestReportJSON(t *testing.T) {
	report := v.NewReport(v.Params{"correlator": "123"}, nil)

	out, err := report.JSON()
	require.NoError(t, err)

	var decoded struct {
		Valid             bool              `json:"valid"`
		Errors            []v.Issue         `json:"errors"`
		Warnings          []v.Issue         `json:"warnings"`
		PresentParameters map[string]string `json:"present_parameters"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.True(t, decoded.Valid)
	assert.NotNil(t, decoded.Errors)
	assert.Empty(t, decoded.Errors)
	assert.Equal(t, map[string]string{"correlator": "123"}, decoded.PresentParameters)

	// Empty issue lists serialize as [], not null.
	assert.Contains(t, string(out), `"errors": []`)
	assert.Contains(t, string(out), `"warnings": []`)
}

func TestReportIssueJSONFieldNames(t *testing.T) {
	out, err := json.Marshal(v.Issue{Parameter: "correlator", Kind: v.KindInvalid, Message: "m"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"parameter":"correlator","type":"invalid","message":"m"}`, string(out))
}

func TestReportText(t *testing.T) {
	report := v.NewReport(v.Params{"correlator": "abc"}, []v.Issue{
		{Parameter: "correlator", Kind: v.KindInvalid, Message: "Expected integer, got 'abc'"},
		{Parameter: "aconp", Kind: v.KindRecommended, Message: "Recommended programmatic parameter not found"},
	})

	text := report.Text("web", false)
	assert.Contains(t, text, "--- Validation Results ---")
	assert.Contains(t, text, "Implementation Type: web")
	assert.Contains(t, text, "Present Parameters: correlator")
	assert.Contains(t, text, "--- Errors ---")
	assert.Contains(t, text, "Expected integer, got 'abc'")
	assert.Contains(t, text, "--- Warnings ---")
	assert.NotContains(t, text, "No errors found.")
}

func TestReportTextValid(t *testing.T) {
	report := v.NewReport(v.Params{"correlator": "123"}, nil)
	text := report.Text("web", false)
	assert.Contains(t, text, "No errors found.")
	assert.NotContains(t, text, "--- Errors ---")
}

// Quiet suppresses everything except errors.
func TestReportTextQuiet(t *testing.T) {
	valid := v.NewReport(v.Params{"correlator": "123"}, nil)
	assert.Empty(t, valid.Text("web", true))

	invalid := v.NewReport(v.Params{}, []v.Issue{
		{Parameter: "vpmute", Kind: v.KindMissing, Message: "Missing required parameter"},
		{Parameter: "aconp", Kind: v.KindRecommended, Message: "Recommended programmatic parameter not found"},
	})
	text := invalid.Text("web", true)
	assert.Contains(t, text, "--- Errors ---")
	assert.Contains(t, text, "vpmute")
	assert.NotContains(t, text, "--- Warnings ---")
	assert.NotContains(t, text, "--- Validation Results ---")
}
