// Package jobs runs the background work of the engine: dispatching due
// emails, rescheduling active campaigns, and nightly rescoring.
package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/pkg/cache"
	"github.com/salesflowhq/salesflow/pkg/email"
	"github.com/salesflowhq/salesflow/pkg/metrics"
)

const dispatchBatchSize = 100

// Dispatcher sends campaign emails that have come due.
type Dispatcher struct {
	client  *ent.Client
	cache   *cache.Client
	sender  email.Sender
	metrics *metrics.Metrics
}

// NewDispatcher creates a new dispatcher.
func NewDispatcher(client *ent.Client, cacheClient *cache.Client, sender email.Sender, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{client: client, cache: cacheClient, sender: sender, metrics: m}
}

// DispatchResult summarizes one dispatch run.
type DispatchResult struct {
	Sent    int
	Failed  int
	Skipped int
}

// DispatchDue sends every drafted email whose scheduled_send_at has passed.
// A Redis SETNX key per (campaign, lead, step) guards against double sends
// when runs overlap; emails of paused or deleted campaigns are left alone.
func (d *Dispatcher) DispatchDue(ctx context.Context, now time.Time) (*DispatchResult, error) {
	due, err := d.client.CampaignEmail.
		Query().
		Where(
			campaignemail.StatusEQ(campaignemail.StatusScheduled),
			campaignemail.ScheduledSendAtLTE(now),
		).
		WithLead().
		WithCampaign().
		Order(ent.Asc(campaignemail.FieldScheduledSendAt)).
		Limit(dispatchBatchSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch due emails: %w", err)
	}

	result := &DispatchResult{}
	for _, e := range due {
		c := e.Edges.Campaign
		if c == nil || c.Status != campaign.StatusActive || c.DeletedAt != nil {
			result.Skipped++
			continue
		}
		l := e.Edges.Lead
		if l == nil || l.IsDeleted {
			result.Skipped++
			continue
		}

		dedupKey := fmt.Sprintf("send:%d:%d:%d", e.CampaignID, e.LeadID, e.SequencePosition)
		acquired, err := d.cache.SetNX(ctx, dedupKey, "1", 24*time.Hour)
		if err != nil {
			return result, fmt.Errorf("failed to acquire dedup key: %w", err)
		}
		if !acquired {
			result.Skipped++
			continue
		}

		leadName := strings.TrimSpace(l.FirstName + " " + l.LastName)
		if err := d.sender.Send(l.Email, leadName, e.Subject, e.Body); err != nil {
			d.markFailed(ctx, e, err)
			result.Failed++
			continue
		}

		d.markSent(ctx, e, now)
		result.Sent++
	}

	return result, nil
}

func (d *Dispatcher) markSent(ctx context.Context, e *ent.CampaignEmail, now time.Time) {
	if _, err := d.client.CampaignEmail.
		UpdateOne(e).
		SetStatus(campaignemail.StatusSent).
		SetSentAt(now).
		Save(ctx); err != nil {
		return
	}
	_, _ = d.client.Campaign.UpdateOneID(e.CampaignID).AddSentCount(1).Save(ctx)
	if d.metrics != nil {
		d.metrics.RecordEmailSent(true)
	}
}

func (d *Dispatcher) markFailed(ctx context.Context, e *ent.CampaignEmail, sendErr error) {
	if _, err := d.client.CampaignEmail.
		UpdateOne(e).
		SetStatus(campaignemail.StatusFailed).
		SetErrorMessage(sendErr.Error()).
		Save(ctx); err != nil {
		return
	}
	_, _ = d.client.Campaign.UpdateOneID(e.CampaignID).AddFailedCount(1).Save(ctx)
	if d.metrics != nil {
		d.metrics.RecordEmailSent(false)
	}
}
