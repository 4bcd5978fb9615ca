package scheduler

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/enttest"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:scheduler?mode=memory&cache=shared&_fk=1")
	return client, func() { client.Close() }
}

type fixture struct {
	company *ent.Company
	user    *ent.User
}

func setupFixture(t *testing.T, client *ent.Client, slug string) fixture {
	ctx := context.Background()

	company, err := client.Company.
		Create().
		SetName("Test Co").
		SetSlug(slug).
		Save(ctx)
	require.NoError(t, err)

	user, err := client.User.
		Create().
		SetCompanyID(company.ID).
		SetEmail(slug + "@test.com").
		SetPasswordHash("hashed_password").
		SetName("Test User").
		Save(ctx)
	require.NoError(t, err)

	return fixture{company: company, user: user}
}

func createLead(t *testing.T, client *ent.Client, companyID int, email string, score int, source string) *ent.Lead {
	l, err := client.Lead.
		Create().
		SetCompanyID(companyID).
		SetEmail(email).
		SetScore(score).
		SetSource(lead.Source(source)).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func createActiveCampaign(t *testing.T, client *ent.Client, fx fixture, delays schematype.Delays, filter *schematype.LeadFilter, start time.Time) *ent.Campaign {
	builder := client.Campaign.
		Create().
		SetCompanyID(fx.company.ID).
		SetUserID(fx.user.ID).
		SetName("Scheduled Campaign").
		SetContext(schematype.CampaignContext{
			CompanyName:        "Acme",
			ProductDescription: "Widgets",
			ProblemSolved:      "Slow assembly",
			CallToAction:       "Book a demo",
			Tone:               "friendly",
		}).
		SetDelays(delays).
		SetStatus("active").
		SetScheduledStart(start)
	if filter != nil {
		builder.SetLeadFilter(filter)
	}
	c, err := builder.Save(context.Background())
	require.NoError(t, err)
	return c
}

func TestServiceSchedule(t *testing.T) {
	t0 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Creates one record per lead per step", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		fx := setupFixture(t, client, "sched-basic")
		service := NewService(client)

		lead1 := createLead(t, client, fx.company.ID, "a@x.com", 80, "linkedin")
		lead2 := createLead(t, client, fx.company.ID, "b@x.com", 20, "website")
		c := createActiveCampaign(t, client, fx, schematype.Delays{"1": 0, "3": 5}, nil, t0)

		result, err := service.Schedule(ctx, fx.company.ID, c.ID)

		require.NoError(t, err)
		assert.Equal(t, 2, result.TargetedLeads)
		assert.Equal(t, 4, result.Created)
		assert.Equal(t, 0, result.Skipped)

		emails, err := client.CampaignEmail.
			Query().
			Where(campaignemail.CampaignID(c.ID)).
			Order(ent.Asc(campaignemail.FieldLeadID), ent.Asc(campaignemail.FieldSequencePosition)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, emails, 4)

		assert.Equal(t, lead1.ID, emails[0].LeadID)
		assert.Equal(t, 1, emails[0].SequencePosition)
		assert.True(t, emails[0].ScheduledSendAt.Equal(t0))
		assert.Equal(t, "pending", string(emails[0].Status))

		assert.Equal(t, lead1.ID, emails[1].LeadID)
		assert.Equal(t, 3, emails[1].SequencePosition)
		assert.True(t, emails[1].ScheduledSendAt.Equal(t0.AddDate(0, 0, 5)))

		assert.Equal(t, lead2.ID, emails[2].LeadID)

		stored, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, stored.EmailCount)
	})

	t.Run("Idempotent - rerun creates nothing new", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		fx := setupFixture(t, client, "sched-idem")
		service := NewService(client)

		createLead(t, client, fx.company.ID, "a@x.com", 80, "linkedin")
		c := createActiveCampaign(t, client, fx, schematype.Delays{"1": 0, "2": 3}, nil, t0)

		first, err := service.Schedule(ctx, fx.company.ID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, first.Created)

		second, err := service.Schedule(ctx, fx.company.ID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, second.Created)
		assert.Equal(t, 2, second.Skipped)

		stored, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.EmailCount)
	})

	t.Run("Newly targeted leads picked up on rerun", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		fx := setupFixture(t, client, "sched-new")
		service := NewService(client)

		createLead(t, client, fx.company.ID, "a@x.com", 80, "linkedin")
		c := createActiveCampaign(t, client, fx, schematype.Delays{"1": 0}, nil, t0)

		first, err := service.Schedule(ctx, fx.company.ID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Created)

		createLead(t, client, fx.company.ID, "late@x.com", 60, "referral")

		second, err := service.Schedule(ctx, fx.company.ID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, second.Created)
		assert.Equal(t, 1, second.Skipped)
	})

	t.Run("Lead filter restricts the cohort", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		fx := setupFixture(t, client, "sched-filter")
		service := NewService(client)

		high := createLead(t, client, fx.company.ID, "high@x.com", 90, "linkedin")
		createLead(t, client, fx.company.ID, "low@x.com", 10, "website")

		minScore := 50
		c := createActiveCampaign(t, client, fx, schematype.Delays{"1": 0},
			&schematype.LeadFilter{MinScore: &minScore}, t0)

		result, err := service.Schedule(ctx, fx.company.ID, c.ID)

		require.NoError(t, err)
		assert.Equal(t, 1, result.TargetedLeads)
		require.Len(t, result.Due, 1)
		assert.Equal(t, high.ID, result.Due[0].LeadID)
	})

	t.Run("Error - inactive campaign", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		fx := setupFixture(t, client, "sched-inactive")
		service := NewService(client)

		c, err := client.Campaign.
			Create().
			SetCompanyID(fx.company.ID).
			SetUserID(fx.user.ID).
			SetName("Draft").
			Save(ctx)
		require.NoError(t, err)

		_, err = service.Schedule(ctx, fx.company.ID, c.ID)
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("Error - campaign not found", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		fx := setupFixture(t, client, "sched-nf")
		service := NewService(client)

		_, err := service.Schedule(context.Background(), fx.company.ID, 99999)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Error - tenant mismatch", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()
		ctx := context.Background()
		fx := setupFixture(t, client, "sched-tenant-a")
		other := setupFixture(t, client, "sched-tenant-b")
		service := NewService(client)

		c := createActiveCampaign(t, client, other, schematype.Delays{"1": 0}, nil, t0)

		_, err := service.Schedule(ctx, fx.company.ID, c.ID)
		assert.True(t, domain.IsTenantMismatch(err))
	})
}
