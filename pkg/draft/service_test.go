package draft

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/enttest"
	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:draft?mode=memory&cache=shared&_fk=1")
	return client, func() { client.Close() }
}

func seedCampaignWithEmails(t *testing.T, client *ent.Client, slug string) (int, int) {
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

	l, err := client.Lead.Create().
		SetCompanyID(company.ID).
		SetEmail("lead@" + slug + ".com").
		SetFirstName("Jane").
		SetLastName("Doe").
		Save(ctx)
	require.NoError(t, err)

	c, err := client.Campaign.Create().
		SetCompanyID(company.ID).
		SetUserID(user.ID).
		SetName("Drafted Campaign").
		SetContext(schematype.CampaignContext{
			CompanyName:        "Acme",
			ProductDescription: "Widgets",
			ProblemSolved:      "slow assembly",
			CallToAction:       "Book a demo",
			Tone:               "friendly",
		}).
		SetDelays(schematype.Delays{"1": 0, "2": 3}).
		SetStatus("active").
		Save(ctx)
	require.NoError(t, err)

	for pos := 1; pos <= 2; pos++ {
		_, err = client.CampaignEmail.Create().
			SetCampaignID(c.ID).
			SetLeadID(l.ID).
			SetSequencePosition(pos).
			SetScheduledSendAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}

	return company.ID, c.ID
}

func TestDraftPending(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	companyID, campaignID := seedCampaignWithEmails(t, client, "draft-co")
	service := NewService(client, NewTemplateDrafter())

	result, err := service.DraftPending(ctx, companyID, campaignID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Drafted)
	assert.Equal(t, 0, result.Failed)

	emails, err := client.CampaignEmail.Query().
		Where(campaignemail.CampaignID(campaignID)).
		Order(ent.Asc(campaignemail.FieldSequencePosition)).
		All(ctx)
	require.NoError(t, err)
	for _, e := range emails {
		assert.NotEmpty(t, e.Subject)
		assert.NotEmpty(t, e.Body)
		assert.Equal(t, "scheduled", string(e.Status))
	}
	assert.Contains(t, emails[0].Body, "Hi Jane Doe")
	assert.Contains(t, emails[1].Subject, "Re:")

	// Idempotent: nothing left to draft.
	again, err := service.DraftPending(ctx, companyID, campaignID)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Drafted)
}

func TestDraftPending_TenantMismatch(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	_, campaignID := seedCampaignWithEmails(t, client, "draft-tenant")
	other, err := client.Company.Create().SetName("Other").SetSlug("draft-other").Save(context.Background())
	require.NoError(t, err)

	service := NewService(client, NewTemplateDrafter())
	_, err = service.DraftPending(context.Background(), other.ID, campaignID)
	assert.True(t, domain.IsTenantMismatch(err))
}
