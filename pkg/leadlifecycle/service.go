package leadlifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/ent/leadstatushistory"
	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/salesflowhq/salesflow/pkg/locks"
)

// Service handles lead lifecycle operations.
type Service struct {
	client *ent.Client
	locks  *locks.KeyedMutex
}

// NewService creates a new lead lifecycle service.
func NewService(client *ent.Client, km *locks.KeyedMutex) *Service {
	if km == nil {
		km = locks.New()
	}
	return &Service{client: client, locks: km}
}

// TransitionRequest represents a request to move a lead to a new status.
type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=new qualified contacted responded converted closed unqualified"`
	Reason string `json:"reason,omitempty" validate:"omitempty,max=1000"`
}

// StatusHistoryResponse represents one recorded transition.
type StatusHistoryResponse struct {
	ID        int       `json:"id"`
	LeadID    int       `json:"lead_id"`
	UserID    int       `json:"user_id"`
	UserName  string    `json:"user_name"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadStatusResponse represents a lead with its current status.
type LeadStatusResponse struct {
	ID              int       `json:"id"`
	Email           string    `json:"email"`
	Status          string    `json:"status"`
	StatusChangedAt time.Time `json:"status_changed_at"`
	Score           int       `json:"score"`
	Version         int       `json:"version"`
}

// Transition applies a status transition atomically: either the status
// changes and a history record is appended in the same transaction, or
// nothing changes. Concurrent transitions on the same lead serialize on a
// per-entity lock, so the second request re-validates against the state the
// first one produced.
func (s *Service) Transition(ctx context.Context, companyID, userID, leadID int, req TransitionRequest) (*LeadStatusResponse, error) {
	key := fmt.Sprintf("lead:%d:%d", companyID, leadID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	current, err := s.client.Lead.
		Query().
		Where(lead.ID(leadID), lead.IsDeleted(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}
	if current.CompanyID != companyID {
		return nil, domain.NewTenantMismatchError("lead")
	}

	from := Status(current.Status)
	to := Status(req.Status)
	if err := CheckTransition(from, to); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	now := time.Now()
	updated, err := tx.Lead.
		UpdateOne(current).
		Where(lead.Version(current.Version)).
		SetStatus(lead.Status(to)).
		SetStatusChangedAt(now).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, domain.NewConflictError("lead was modified concurrently, re-fetch and retry")
		}
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}

	historyBuilder := tx.LeadStatusHistory.
		Create().
		SetLeadID(leadID).
		SetUserID(userID).
		SetOldStatus(leadstatushistory.OldStatus(from)).
		SetNewStatus(leadstatushistory.NewStatus(to))
	if req.Reason != "" {
		historyBuilder.SetReason(req.Reason)
	}

	if _, err := historyBuilder.Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create status history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &LeadStatusResponse{
		ID:              updated.ID,
		Email:           updated.Email,
		Status:          string(updated.Status),
		StatusChangedAt: updated.StatusChangedAt,
		Score:           updated.Score,
		Version:         updated.Version,
	}, nil
}

// GetHistory retrieves the complete transition history for a lead, newest
// first.
func (s *Service) GetHistory(ctx context.Context, companyID, leadID int) ([]StatusHistoryResponse, error) {
	l, err := s.client.Lead.
		Query().
		Where(lead.ID(leadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}
	if l.CompanyID != companyID {
		return nil, domain.NewTenantMismatchError("lead")
	}

	history, err := s.client.LeadStatusHistory.
		Query().
		Where(leadstatushistory.LeadID(leadID)).
		WithUser().
		Order(ent.Desc(leadstatushistory.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status history: %w", err)
	}

	response := make([]StatusHistoryResponse, len(history))
	for i, h := range history {
		var reason *string
		if h.Reason != "" {
			reason = &h.Reason
		}

		userName := "Unknown User"
		if user := h.Edges.User; user != nil {
			userName = user.Name
		}

		response[i] = StatusHistoryResponse{
			ID:        h.ID,
			LeadID:    h.LeadID,
			UserID:    h.UserID,
			UserName:  userName,
			OldStatus: string(h.OldStatus),
			NewStatus: string(h.NewStatus),
			Reason:    reason,
			CreatedAt: h.CreatedAt,
		}
	}

	return response, nil
}

// StatusCounts returns the number of leads in each status for a company.
func (s *Service) StatusCounts(ctx context.Context, companyID int) (map[string]int, error) {
	counts := make(map[string]int, len(AllStatuses))

	for _, status := range AllStatuses {
		count, err := s.client.Lead.
			Query().
			Where(
				lead.CompanyID(companyID),
				lead.StatusEQ(lead.Status(status)),
				lead.IsDeleted(false),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count leads for status %s: %w", status, err)
		}
		counts[string(status)] = count
	}

	return counts, nil
}
