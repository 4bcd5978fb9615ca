package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/enttest"
	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/salesflowhq/salesflow/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSender captures sends; failAddresses simulate provider errors.
type recordingSender struct {
	sent          []string
	failAddresses map[string]bool
}

func (r *recordingSender) Send(toEmail, toName, subject, body string) error {
	if r.failAddresses[toEmail] {
		return fmt.Errorf("provider rejected %s", toEmail)
	}
	r.sent = append(r.sent, toEmail)
	return nil
}

type env struct {
	client  *ent.Client
	cache   *cache.Client
	sender  *recordingSender
	company *ent.Company
	user    *ent.User
}

func setupEnv(t *testing.T, slug string) (*env, func()) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:jobs-%s?mode=memory&cache=shared&_fk=1", slug))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)

	ctx := context.Background()
	company, err := client.Company.Create().SetName("Test Co").SetSlug(slug).Save(ctx)
	require.NoError(t, err)
	user, err := client.User.Create().
		SetCompanyID(company.ID).
		SetEmail(slug + "@test.com").
		SetPasswordHash("hashed_password").
		SetName("Test User").
		Save(ctx)
	require.NoError(t, err)

	e := &env{
		client:  client,
		cache:   cacheClient,
		sender:  &recordingSender{failAddresses: map[string]bool{}},
		company: company,
		user:    user,
	}
	return e, func() {
		cacheClient.Close()
		mr.Close()
		client.Close()
	}
}

func (e *env) createCampaign(t *testing.T, status string) *ent.Campaign {
	c, err := e.client.Campaign.Create().
		SetCompanyID(e.company.ID).
		SetUserID(e.user.ID).
		SetName("Dispatch Campaign").
		SetContext(schematype.CampaignContext{
			CompanyName:        "Acme",
			ProductDescription: "Widgets",
			ProblemSolved:      "slow assembly",
			CallToAction:       "Book a demo",
			Tone:               "friendly",
		}).
		SetDelays(schematype.Delays{"1": 0}).
		SetStatus(campaign.Status(status)).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func (e *env) createLead(t *testing.T, email string) *ent.Lead {
	l, err := e.client.Lead.Create().
		SetCompanyID(e.company.ID).
		SetEmail(email).
		SetFirstName("Jane").
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func (e *env) createEmail(t *testing.T, campaignID, leadID, position int, status string, due time.Time) *ent.CampaignEmail {
	ce, err := e.client.CampaignEmail.Create().
		SetCampaignID(campaignID).
		SetLeadID(leadID).
		SetSequencePosition(position).
		SetSubject("Hello").
		SetBody("Body text").
		SetStatus(campaignemail.Status(status)).
		SetScheduledSendAt(due).
		Save(context.Background())
	require.NoError(t, err)
	return ce
}

func TestDispatchDue(t *testing.T) {
	now := time.Now()

	t.Run("Sends due emails and updates counters", func(t *testing.T) {
		e, cleanup := setupEnv(t, "send")
		defer cleanup()
		ctx := context.Background()

		c := e.createCampaign(t, "active")
		l := e.createLead(t, "jane@acme.com")
		ce := e.createEmail(t, c.ID, l.ID, 1, "scheduled", now.Add(-time.Minute))

		d := NewDispatcher(e.client, e.cache, e.sender, nil)
		result, err := d.DispatchDue(ctx, now)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Sent)
		assert.Equal(t, []string{"jane@acme.com"}, e.sender.sent)

		stored, err := e.client.CampaignEmail.Get(ctx, ce.ID)
		require.NoError(t, err)
		assert.Equal(t, "sent", string(stored.Status))
		assert.NotNil(t, stored.SentAt)

		campaignRow, err := e.client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, campaignRow.SentCount)
	})

	t.Run("Future emails are not sent", func(t *testing.T) {
		e, cleanup := setupEnv(t, "future")
		defer cleanup()

		c := e.createCampaign(t, "active")
		l := e.createLead(t, "later@acme.com")
		e.createEmail(t, c.ID, l.ID, 1, "scheduled", now.Add(time.Hour))

		d := NewDispatcher(e.client, e.cache, e.sender, nil)
		result, err := d.DispatchDue(context.Background(), now)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Sent)
		assert.Empty(t, e.sender.sent)
	})

	t.Run("Undrafted pending emails are not sent", func(t *testing.T) {
		e, cleanup := setupEnv(t, "pending")
		defer cleanup()

		c := e.createCampaign(t, "active")
		l := e.createLead(t, "raw@acme.com")
		e.createEmail(t, c.ID, l.ID, 1, "pending", now.Add(-time.Minute))

		d := NewDispatcher(e.client, e.cache, e.sender, nil)
		result, err := d.DispatchDue(context.Background(), now)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Sent)
	})

	t.Run("Paused campaign emails are skipped", func(t *testing.T) {
		e, cleanup := setupEnv(t, "paused")
		defer cleanup()

		c := e.createCampaign(t, "inactive")
		l := e.createLead(t, "paused@acme.com")
		e.createEmail(t, c.ID, l.ID, 1, "scheduled", now.Add(-time.Minute))

		d := NewDispatcher(e.client, e.cache, e.sender, nil)
		result, err := d.DispatchDue(context.Background(), now)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Sent)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("Dedup key prevents double sends", func(t *testing.T) {
		e, cleanup := setupEnv(t, "dedup")
		defer cleanup()
		ctx := context.Background()

		c := e.createCampaign(t, "active")
		l := e.createLead(t, "once@acme.com")
		ce := e.createEmail(t, c.ID, l.ID, 1, "scheduled", now.Add(-time.Minute))

		d := NewDispatcher(e.client, e.cache, e.sender, nil)
		_, err := d.DispatchDue(ctx, now)
		require.NoError(t, err)

		// Force the row back to scheduled, as if a crash lost the update.
		_, err = e.client.CampaignEmail.UpdateOne(ce).SetStatus("scheduled").Save(ctx)
		require.NoError(t, err)

		result, err := d.DispatchDue(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Sent)
		assert.Equal(t, 1, result.Skipped)
		assert.Len(t, e.sender.sent, 1)
	})

	t.Run("Provider failure marks the email failed", func(t *testing.T) {
		e, cleanup := setupEnv(t, "fail")
		defer cleanup()
		ctx := context.Background()

		c := e.createCampaign(t, "active")
		l := e.createLead(t, "bounce@acme.com")
		ce := e.createEmail(t, c.ID, l.ID, 1, "scheduled", now.Add(-time.Minute))
		e.sender.failAddresses["bounce@acme.com"] = true

		d := NewDispatcher(e.client, e.cache, e.sender, nil)
		result, err := d.DispatchDue(ctx, now)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)

		stored, err := e.client.CampaignEmail.Get(ctx, ce.ID)
		require.NoError(t, err)
		assert.Equal(t, "failed", string(stored.Status))
		assert.Contains(t, stored.ErrorMessage, "provider rejected")

		campaignRow, err := e.client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, campaignRow.FailedCount)
	})
}
