package scoring

import "strings"

// Scoring weights. The rule set is additive and the sum is clipped to
// [0, MaxScore].
const (
	ScoreHasCompanyName = 20
	ScoreHasJobTitle    = 15
	ScoreSeniorTitle    = 20
	ScoreHasPhone       = 10
	ScoreBusinessDomain = 10
	ScoreQualitySource  = 10

	// MaxScore is the ceiling a lead score is clipped to.
	MaxScore = 100
)

// seniorTitleKeywords mark decision-maker job titles. Matching is
// case-insensitive substring.
var seniorTitleKeywords = []string{
	"vp", "director", "chief", "head", "manager", "ceo", "cto", "cfo",
}

// freeEmailDomains are consumer mail providers; a business domain scores
// higher.
var freeEmailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"aol.com":        true,
	"icloud.com":     true,
	"protonmail.com": true,
	"live.com":       true,
	"msn.com":        true,
}

// qualitySources are lead sources that historically convert better.
var qualitySources = map[string]bool{
	"linkedin": true,
	"referral": true,
}

// Input holds the lead fields the scoring rule reads. Changing any of these
// on a lead requires a recompute.
type Input struct {
	Email       string
	CompanyName string
	JobTitle    string
	Phone       string
	Source      string
}

// Result is a computed score with its per-rule breakdown.
type Result struct {
	Score     int            `json:"score"`
	MaxScore  int            `json:"max_score"`
	Breakdown map[string]int `json:"breakdown"`
}

// Score computes a lead's quality score. It is a total, deterministic
// function: identical input always yields an identical result in [0, 100].
func Score(in Input) Result {
	breakdown := make(map[string]int)
	total := 0

	if in.CompanyName != "" {
		breakdown["has_company_name"] = ScoreHasCompanyName
		total += ScoreHasCompanyName
	}

	if in.JobTitle != "" {
		breakdown["has_job_title"] = ScoreHasJobTitle
		total += ScoreHasJobTitle

		if isSeniorTitle(in.JobTitle) {
			breakdown["senior_title"] = ScoreSeniorTitle
			total += ScoreSeniorTitle
		}
	}

	if in.Phone != "" {
		breakdown["has_phone"] = ScoreHasPhone
		total += ScoreHasPhone
	}

	if domain := emailDomain(in.Email); domain != "" && !freeEmailDomains[domain] {
		breakdown["business_domain"] = ScoreBusinessDomain
		total += ScoreBusinessDomain
	}

	if qualitySources[in.Source] {
		breakdown["quality_source"] = ScoreQualitySource
		total += ScoreQualitySource
	}

	if total > MaxScore {
		total = MaxScore
	}
	if total < 0 {
		total = 0
	}

	return Result{
		Score:     total,
		MaxScore:  MaxScore,
		Breakdown: breakdown,
	}
}

func isSeniorTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range seniorTitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
