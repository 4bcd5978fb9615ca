package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/pkg/domain"
)

// Service recomputes and persists lead scores.
type Service struct {
	client *ent.Client
}

// NewService creates a new scoring service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// ScoreResponse represents a lead's stored score.
type ScoreResponse struct {
	LeadID    int            `json:"lead_id"`
	Score     int            `json:"score"`
	MaxScore  int            `json:"max_score"`
	Breakdown map[string]int `json:"breakdown"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// FromLead computes the score for a stored lead entity.
func FromLead(l *ent.Lead) Result {
	return Score(Input{
		Email:       l.Email,
		CompanyName: l.CompanyName,
		JobTitle:    l.JobTitle,
		Phone:       l.Phone,
		Source:      string(l.Source),
	})
}

// Recompute recalculates and stores the score for one lead, scoped to the
// caller's company.
func (s *Service) Recompute(ctx context.Context, companyID, leadID int) (*ScoreResponse, error) {
	l, err := s.client.Lead.
		Query().
		Where(lead.ID(leadID), lead.CompanyID(companyID), lead.IsDeleted(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}

	result := FromLead(l)

	updated, err := s.client.Lead.
		UpdateOne(l).
		SetScore(result.Score).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead score: %w", err)
	}

	return &ScoreResponse{
		LeadID:    updated.ID,
		Score:     result.Score,
		MaxScore:  result.MaxScore,
		Breakdown: result.Breakdown,
		UpdatedAt: updated.UpdatedAt,
	}, nil
}

// RecomputeUpdatedSince recalculates scores for leads touched after the
// given time. The nightly job uses this to keep stored scores consistent
// with the rule set; scoring itself never fails, so errors here are only
// storage errors.
func (s *Service) RecomputeUpdatedSince(ctx context.Context, since time.Time, limit int) (int, error) {
	if limit <= 0 || limit > 1000 {
		limit = 500
	}

	leads, err := s.client.Lead.
		Query().
		Where(lead.UpdatedAtGTE(since), lead.IsDeleted(false)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch leads: %w", err)
	}

	updated := 0
	for _, l := range leads {
		result := FromLead(l)
		if result.Score == l.Score {
			continue
		}
		if _, err := s.client.Lead.UpdateOne(l).SetScore(result.Score).AddVersion(1).Save(ctx); err != nil {
			continue
		}
		updated++
	}

	return updated, nil
}
