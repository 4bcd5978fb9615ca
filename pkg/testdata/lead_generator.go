// Package testdata generates realistic fake leads for local development and
// demos. Production code never imports it.
package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/pkg/scoring"
)

// GeneratorConfig controls the shape of generated leads.
type GeneratorConfig struct {
	Count         int
	PhoneChance   float64 // probability of having a phone number
	TitleChance   float64 // probability of having a job title
	CompanyChance float64 // probability of having a company name
	Seed          int64   // 0 means non-deterministic
}

// DefaultConfig returns a config matching the field coverage we see in real
// imported lead lists.
func DefaultConfig(count int) GeneratorConfig {
	return GeneratorConfig{
		Count:         count,
		PhoneChance:   0.6,
		TitleChance:   0.75,
		CompanyChance: 0.85,
	}
}

var sources = []string{"apollo", "linkedin", "website", "referral", "cold_email", "event", "other"}

var seniorTitles = []string{
	"VP of Sales", "VP of Engineering", "Director of Marketing",
	"Head of Growth", "Chief Revenue Officer", "CTO", "CEO",
	"Engineering Manager", "Sales Director",
}

var juniorTitles = []string{
	"Account Executive", "Sales Development Rep", "Software Engineer",
	"Marketing Associate", "Customer Success Specialist", "Analyst",
}

// GenerateLeads creates count leads for a company. Scores are computed with
// the real scoring rules so seeded data behaves like user-created data.
func GenerateLeads(ctx context.Context, client *ent.Client, companyID int, cfg GeneratorConfig) ([]*ent.Lead, error) {
	faker := gofakeit.New(cfg.Seed)
	rng := rand.New(rand.NewSource(cfg.Seed + 1))

	builders := make([]*ent.LeadCreate, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		firstName := faker.FirstName()
		lastName := faker.LastName()
		companyName := ""
		if rng.Float64() < cfg.CompanyChance {
			companyName = faker.Company()
		}

		domain := "gmail.com"
		if companyName != "" {
			domain = emailDomainFor(companyName)
		}
		email := fmt.Sprintf("%s.%s%d@%s",
			strings.ToLower(firstName), strings.ToLower(lastName), i, domain)

		jobTitle := ""
		if rng.Float64() < cfg.TitleChance {
			if rng.Float64() < 0.4 {
				jobTitle = seniorTitles[rng.Intn(len(seniorTitles))]
			} else {
				jobTitle = juniorTitles[rng.Intn(len(juniorTitles))]
			}
		}

		phone := ""
		if rng.Float64() < cfg.PhoneChance {
			phone = faker.Phone()
		}

		source := sources[rng.Intn(len(sources))]
		score := scoring.Score(scoring.Input{
			Email:       email,
			CompanyName: companyName,
			JobTitle:    jobTitle,
			Phone:       phone,
			Source:      source,
		}).Score

		builder := client.Lead.Create().
			SetCompanyID(companyID).
			SetEmail(email).
			SetFirstName(firstName).
			SetLastName(lastName).
			SetSource(lead.Source(source)).
			SetScore(score)
		if companyName != "" {
			builder.SetCompanyName(companyName)
		}
		if jobTitle != "" {
			builder.SetJobTitle(jobTitle)
		}
		if phone != "" {
			builder.SetPhone(phone)
		}
		builders = append(builders, builder)
	}

	return client.Lead.CreateBulk(builders...).Save(ctx)
}

func emailDomainFor(companyName string) string {
	cleaned := strings.ToLower(companyName)
	cleaned = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, cleaned)
	if cleaned == "" {
		return "example.com"
	}
	return cleaned + ".com"
}
