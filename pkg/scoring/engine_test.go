package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_FullProfile(t *testing.T) {
	// Senior title at a business domain, sourced from LinkedIn.
	result := Score(Input{
		Email:       "vp@acme.com",
		CompanyName: "Acme",
		JobTitle:    "VP of Sales",
		Phone:       "555-1234",
		Source:      "linkedin",
	})

	assert.Equal(t, 85, result.Score)
	assert.Equal(t, MaxScore, result.MaxScore)
	assert.Equal(t, map[string]int{
		"has_company_name": ScoreHasCompanyName,
		"has_job_title":    ScoreHasJobTitle,
		"senior_title":     ScoreSeniorTitle,
		"has_phone":        ScoreHasPhone,
		"business_domain":  ScoreBusinessDomain,
		"quality_source":   ScoreQualitySource,
	}, result.Breakdown)
}

func TestScore_EmptyLead(t *testing.T) {
	result := Score(Input{Email: "someone@gmail.com"})

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Breakdown)
}

func TestScore_Deterministic(t *testing.T) {
	in := Input{
		Email:       "jane@bigcorp.io",
		CompanyName: "BigCorp",
		JobTitle:    "Engineer",
		Source:      "website",
	}

	first := Score(in)
	second := Score(in)

	assert.Equal(t, first, second)
}

func TestScore_AlwaysInRange(t *testing.T) {
	inputs := []Input{
		{},
		{Email: "a@b.co", CompanyName: "x", JobTitle: "Chief Head Director Manager VP", Phone: "1", Source: "referral"},
		{Email: "no-at-sign", Source: "other"},
		{Email: "trailing@"},
	}

	for _, in := range inputs {
		result := Score(in)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, MaxScore)
	}
}

func TestScore_SeniorTitleKeywords(t *testing.T) {
	tests := []struct {
		title  string
		senior bool
	}{
		{"VP of Sales", true},
		{"Director of Engineering", true},
		{"Chief Revenue Officer", true},
		{"Head of Growth", true},
		{"Account Manager", true},
		{"Sales Representative", false},
		{"Analyst", false},
		{"", false},
	}

	for _, tt := range tests {
		result := Score(Input{JobTitle: tt.title})
		_, hasSenior := result.Breakdown["senior_title"]
		assert.Equal(t, tt.senior, hasSenior, "title %q", tt.title)
	}
}

func TestScore_FreeEmailDomains(t *testing.T) {
	free := Score(Input{Email: "user@gmail.com"})
	assert.NotContains(t, free.Breakdown, "business_domain")

	// Domain matching is case-insensitive.
	freeUpper := Score(Input{Email: "user@GMAIL.COM"})
	assert.NotContains(t, freeUpper.Breakdown, "business_domain")

	business := Score(Input{Email: "user@acme.com"})
	assert.Contains(t, business.Breakdown, "business_domain")
}

func TestScore_QualitySources(t *testing.T) {
	for _, source := range []string{"linkedin", "referral"} {
		result := Score(Input{Source: source})
		assert.Equal(t, ScoreQualitySource, result.Score, "source %q", source)
	}

	for _, source := range []string{"apollo", "website", "cold_email", "event", "other", ""} {
		result := Score(Input{Source: source})
		assert.Equal(t, 0, result.Score, "source %q", source)
	}
}
