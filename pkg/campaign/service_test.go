package campaign

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/enttest"
	"github.com/salesflowhq/salesflow/ent/schema/schematype"
	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:campaign?mode=memory&cache=shared&_fk=1")
	return client, func() { client.Close() }
}

func createTestCompany(t *testing.T, client *ent.Client, slug string) *ent.Company {
	company, err := client.Company.
		Create().
		SetName("Test Co").
		SetSlug(slug).
		Save(context.Background())
	require.NoError(t, err)
	return company
}

func createTestUser(t *testing.T, client *ent.Client, companyID int, email string) *ent.User {
	user, err := client.User.
		Create().
		SetCompanyID(companyID).
		SetEmail(email).
		SetPasswordHash("hashed_password").
		SetName("Test User").
		Save(context.Background())
	require.NoError(t, err)
	return user
}

func fullContext() *schematype.CampaignContext {
	return &schematype.CampaignContext{
		CompanyName:        "Acme",
		ProductDescription: "Widgets that assemble themselves",
		ProblemSolved:      "Manual assembly is slow",
		CallToAction:       "Book a demo",
		Tone:               "friendly",
	}
}

func TestCreate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)
	company := createTestCompany(t, client, "create-co")
	user := createTestUser(t, client, company.ID, "rep@create.com")

	t.Run("Success - minimal draft", func(t *testing.T) {
		result, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{
			Name: "Q3 Outbound",
		})

		require.NoError(t, err)
		assert.Equal(t, "Q3 Outbound", result.Name)
		assert.Equal(t, "draft", result.Status)
		assert.Equal(t, 1, result.Version)
		assert.NotNil(t, result.Delays)
	})

	t.Run("Success - fully configured at creation", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
		result, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{
			Name:           "Launch",
			Context:        fullContext(),
			Delays:         schematype.Delays{"1": 0, "3": 5},
			ScheduledStart: &start,
		})

		require.NoError(t, err)
		assert.Equal(t, "draft", result.Status)
		assert.Equal(t, schematype.Delays{"1": 0, "3": 5}, result.Delays)
		assert.True(t, result.ScheduledStart.Equal(start))
	})
}

func TestTransition(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)
	company := createTestCompany(t, client, "trans-co")
	user := createTestUser(t, client, company.ID, "rep@trans.com")

	t.Run("Error - activating a partially configured draft lists every gap", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{
			Name: "Half Done",
			Context: &schematype.CampaignContext{
				CompanyName: "Acme",
				Tone:        "direct",
			},
		})
		require.NoError(t, err)

		_, err = service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "active"})

		require.Error(t, err)
		assert.True(t, domain.IsValidationFailed(err))

		violations := domain.Violations(err)
		// 3 missing context fields + empty delays
		assert.Len(t, violations, 4)

		// Campaign is untouched.
		stored, err := service.Get(ctx, company.ID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "draft", stored.Status)
		assert.Equal(t, created.Version, stored.Version)
	})

	t.Run("Success - activate, pause, reactivate", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{
			Name:    "Full Cycle",
			Context: fullContext(),
			Delays:  schematype.Delays{"1": 0},
		})
		require.NoError(t, err)

		active, err := service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "active"})
		require.NoError(t, err)
		assert.Equal(t, "active", active.Status)
		assert.Equal(t, created.Version+1, active.Version)

		paused, err := service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "inactive"})
		require.NoError(t, err)
		assert.Equal(t, "inactive", paused.Status)

		reactivated, err := service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "active"})
		require.NoError(t, err)
		assert.Equal(t, "active", reactivated.Status)
	})

	t.Run("Error - reactivation re-runs validation", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{
			Name:    "Goes Stale",
			Context: fullContext(),
			Delays:  schematype.Delays{"1": 0},
		})
		require.NoError(t, err)

		_, err = service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "active"})
		require.NoError(t, err)
		_, err = service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "inactive"})
		require.NoError(t, err)

		// Paused campaigns can be edited; break the config.
		empty := schematype.Delays{}
		_, err = service.Update(ctx, company.ID, created.ID, UpdateCampaignRequest{Delays: &empty})
		require.NoError(t, err)

		_, err = service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "active"})
		require.Error(t, err)
		assert.True(t, domain.IsValidationFailed(err))
	})

	t.Run("Error - draft cannot pause", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{Name: "Fresh"})
		require.NoError(t, err)

		_, err = service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "inactive"})

		require.Error(t, err)
		assert.True(t, domain.IsInvalidTransition(err))

		de := &domain.DomainError{}
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "draft", de.Current)
		assert.Equal(t, "inactive", de.Requested)
	})

	t.Run("Error - campaign not found", func(t *testing.T) {
		_, err := service.Transition(ctx, company.ID, 99999, TransitionRequest{Status: "active"})
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Error - tenant mismatch", func(t *testing.T) {
		other := createTestCompany(t, client, "trans-other")
		otherUser := createTestUser(t, client, other.ID, "rep@other.com")
		created, err := service.Create(ctx, other.ID, otherUser.ID, CreateCampaignRequest{Name: "Theirs"})
		require.NoError(t, err)

		_, err = service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "active"})
		assert.True(t, domain.IsTenantMismatch(err))
	})
}

func TestUpdate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)
	company := createTestCompany(t, client, "update-co")
	user := createTestUser(t, client, company.ID, "rep@update.com")

	t.Run("Success - drafts are freely editable", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{Name: "Draft"})
		require.NoError(t, err)

		newName := "Renamed Draft"
		result, err := service.Update(ctx, company.ID, created.ID, UpdateCampaignRequest{
			Name:    &newName,
			Context: fullContext(),
		})

		require.NoError(t, err)
		assert.Equal(t, "Renamed Draft", result.Name)
		assert.Equal(t, "Acme", result.Context.CompanyName)
		assert.Equal(t, created.Version+1, result.Version)
	})

	t.Run("Error - active campaigns are locked", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{
			Name:    "Locked",
			Context: fullContext(),
			Delays:  schematype.Delays{"1": 0},
		})
		require.NoError(t, err)

		_, err = service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "active"})
		require.NoError(t, err)

		newName := "Sneaky Rename"
		_, err = service.Update(ctx, company.ID, created.ID, UpdateCampaignRequest{Name: &newName})

		require.Error(t, err)
		assert.True(t, domain.IsCampaignLocked(err))
		assert.False(t, domain.IsInvalidTransition(err))

		stored, err := service.Get(ctx, company.ID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Locked", stored.Name)
	})

	t.Run("Success - paused campaigns are editable again", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{
			Name:    "Pausable",
			Context: fullContext(),
			Delays:  schematype.Delays{"1": 0},
		})
		require.NoError(t, err)

		_, err = service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "active"})
		require.NoError(t, err)
		_, err = service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "inactive"})
		require.NoError(t, err)

		newName := "Paused Rename"
		result, err := service.Update(ctx, company.ID, created.ID, UpdateCampaignRequest{Name: &newName})

		require.NoError(t, err)
		assert.Equal(t, "Paused Rename", result.Name)
	})
}

func TestDelete(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)
	company := createTestCompany(t, client, "delete-co")
	user := createTestUser(t, client, company.ID, "rep@delete.com")

	t.Run("Success - deleted campaigns disappear from reads", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{Name: "Doomed"})
		require.NoError(t, err)

		require.NoError(t, service.Delete(ctx, company.ID, created.ID))

		_, err = service.Get(ctx, company.ID, created.ID)
		assert.True(t, domain.IsNotFound(err))

		// Row survives as a soft-deleted record.
		stored, err := client.Campaign.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored.DeletedAt)
	})

	t.Run("Success - deleting an active campaign deactivates it", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{
			Name:    "Active Doomed",
			Context: fullContext(),
			Delays:  schematype.Delays{"1": 0},
		})
		require.NoError(t, err)
		_, err = service.Transition(ctx, company.ID, created.ID, TransitionRequest{Status: "active"})
		require.NoError(t, err)

		require.NoError(t, service.Delete(ctx, company.ID, created.ID))

		stored, err := client.Campaign.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "inactive", string(stored.Status))
	})

	t.Run("Error - tenant mismatch", func(t *testing.T) {
		other := createTestCompany(t, client, "delete-other")
		otherUser := createTestUser(t, client, other.ID, "rep@del-other.com")
		created, err := service.Create(ctx, other.ID, otherUser.ID, CreateCampaignRequest{Name: "Theirs"})
		require.NoError(t, err)

		err = service.Delete(ctx, company.ID, created.ID)
		assert.True(t, domain.IsTenantMismatch(err))
	})
}

func TestList(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)
	company := createTestCompany(t, client, "list-co")
	user := createTestUser(t, client, company.ID, "rep@list.com")

	for _, name := range []string{"One", "Two", "Three"} {
		_, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{Name: name})
		require.NoError(t, err)
	}
	active, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{
		Name:    "Running",
		Context: fullContext(),
		Delays:  schematype.Delays{"1": 0},
	})
	require.NoError(t, err)
	_, err = service.Transition(ctx, company.ID, active.ID, TransitionRequest{Status: "active"})
	require.NoError(t, err)

	t.Run("All campaigns with pagination", func(t *testing.T) {
		result, err := service.List(ctx, company.ID, ListCampaignsRequest{Page: 1, Limit: 2})

		require.NoError(t, err)
		assert.Len(t, result.Campaigns, 2)
		assert.Equal(t, 4, result.Pagination.Total)
		assert.Equal(t, 2, result.Pagination.TotalPages)
	})

	t.Run("Filter by status", func(t *testing.T) {
		result, err := service.List(ctx, company.ID, ListCampaignsRequest{Status: "active", Page: 1, Limit: 20})

		require.NoError(t, err)
		require.Len(t, result.Campaigns, 1)
		assert.Equal(t, "Running", result.Campaigns[0].Name)
	})

	t.Run("Deleted campaigns excluded", func(t *testing.T) {
		doomed, err := service.Create(ctx, company.ID, user.ID, CreateCampaignRequest{Name: "Doomed"})
		require.NoError(t, err)
		require.NoError(t, service.Delete(ctx, company.ID, doomed.ID))

		result, err := service.List(ctx, company.ID, ListCampaignsRequest{Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Len(t, result.Campaigns, 4)
	})

	t.Run("Tenant isolation", func(t *testing.T) {
		other := createTestCompany(t, client, "list-other")
		result, err := service.List(ctx, other.ID, ListCampaignsRequest{Page: 1, Limit: 20})

		require.NoError(t, err)
		assert.Empty(t, result.Campaigns)
	})
}
