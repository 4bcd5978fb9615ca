package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/pkg/draft"
	"github.com/salesflowhq/salesflow/pkg/scheduler"
	"github.com/salesflowhq/salesflow/pkg/scoring"
)

// CronManager owns the recurring jobs of the engine.
type CronManager struct {
	cron       *cron.Cron
	client     *ent.Client
	dispatcher *Dispatcher
	scheduler  *scheduler.Service
	drafts     *draft.Service
	scoring    *scoring.Service
	logger     *log.Logger
}

// NewCronManager creates a new cron manager.
func NewCronManager(client *ent.Client, dispatcher *Dispatcher, schedulerService *scheduler.Service, draftService *draft.Service, scoringService *scoring.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}
	return &CronManager{
		cron:       cron.New(),
		client:     client,
		dispatcher: dispatcher,
		scheduler:  schedulerService,
		drafts:     draftService,
		scoring:    scoringService,
		logger:     logger,
	}
}

// SetupJobs registers all recurring jobs.
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Every minute: dispatch drafted emails that have come due.
	if _, err := cm.cron.AddFunc("* * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		result, err := cm.dispatcher.DispatchDue(ctx, time.Now())
		if err != nil {
			cm.logger.Printf("❌ Dispatch failed: %v", err)
			return
		}
		if result.Sent > 0 || result.Failed > 0 {
			cm.logger.Printf("📧 Dispatched emails: %d sent, %d failed, %d skipped",
				result.Sent, result.Failed, result.Skipped)
		}
	}); err != nil {
		return err
	}

	// Hourly: re-run the scheduler and drafter for active campaigns so newly
	// targeted leads get their sequence slots. Dedup makes this idempotent.
	if _, err := cm.cron.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		cm.rescheduleActiveCampaigns(ctx)
	}); err != nil {
		return err
	}

	// Nightly at 3 AM: recompute scores for leads touched in the last day, in
	// case the scoring rules shipped a change.
	if _, err := cm.cron.AddFunc("0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		updated, err := cm.scoring.RecomputeUpdatedSince(ctx, time.Now().Add(-24*time.Hour), 0)
		if err != nil {
			cm.logger.Printf("❌ Nightly rescore failed: %v", err)
			return
		}
		cm.logger.Printf("✅ Nightly rescore updated %d leads", updated)
	}); err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured")
	return nil
}

func (cm *CronManager) rescheduleActiveCampaigns(ctx context.Context) {
	active, err := cm.client.Campaign.
		Query().
		Where(campaign.StatusEQ(campaign.StatusActive), campaign.DeletedAtIsNil()).
		All(ctx)
	if err != nil {
		cm.logger.Printf("❌ Failed to list active campaigns: %v", err)
		return
	}

	for _, c := range active {
		result, err := cm.scheduler.Schedule(ctx, c.CompanyID, c.ID)
		if err != nil {
			cm.logger.Printf("❌ Reschedule of campaign %d failed: %v", c.ID, err)
			continue
		}
		if result.Created > 0 {
			cm.logger.Printf("📅 Campaign %d: scheduled %d new emails", c.ID, result.Created)
		}

		if _, err := cm.drafts.DraftPending(ctx, c.CompanyID, c.ID); err != nil {
			cm.logger.Printf("❌ Drafting for campaign %d failed: %v", c.ID, err)
		}
	}
}

// Start begins running the jobs.
func (cm *CronManager) Start() {
	cm.logger.Println("Starting cron scheduler...")
	cm.cron.Start()
}

// Stop halts the jobs, waiting for running ones to finish.
func (cm *CronManager) Stop() {
	cm.logger.Println("Stopping cron scheduler...")
	ctx := cm.cron.Stop()
	<-ctx.Done()
}
