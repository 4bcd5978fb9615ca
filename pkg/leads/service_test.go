package leads

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/enttest"
	"github.com/salesflowhq/salesflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:leads?mode=memory&cache=shared&_fk=1")
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

func TestCreate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)
	company := createTestCompany(t, client, "create-co")

	t.Run("Success - scored immediately", func(t *testing.T) {
		result, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{
			Email:       "jane@acme.com",
			FirstName:   "Jane",
			LastName:    "Doe",
			CompanyName: "Acme",
			JobTitle:    "VP of Sales",
			Phone:       "+12125550123",
			Source:      "linkedin",
		})

		require.NoError(t, err)
		assert.Equal(t, "new", result.Status)
		assert.Equal(t, 85, result.Score)
		assert.Equal(t, 1, result.Version)
	})

	t.Run("Success - bare lead scores zero", func(t *testing.T) {
		result, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{
			Email: "bare@gmail.com",
		})

		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, "other", result.Source)
	})

	t.Run("Success - phone normalized to E.164", func(t *testing.T) {
		result, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{
			Email: "phones@acme.com",
			Phone: "(212) 555-0177",
		})

		require.NoError(t, err)
		assert.Equal(t, "+12125550177", result.Phone)
	})

	t.Run("Error - duplicate email within company", func(t *testing.T) {
		_, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{Email: "dup@acme.com"})
		require.NoError(t, err)

		_, err = service.Create(ctx, company.ID, 1, CreateLeadRequest{Email: "dup@acme.com"})
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("Success - same email allowed across companies", func(t *testing.T) {
		other := createTestCompany(t, client, "create-other")

		_, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{Email: "shared@x.com"})
		require.NoError(t, err)
		_, err = service.Create(ctx, other.ID, 1, CreateLeadRequest{Email: "shared@x.com"})
		require.NoError(t, err)
	})

	t.Run("Success - re-import reactivates a deleted lead", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{
			Email:    "back@acme.com",
			JobTitle: "Analyst",
		})
		require.NoError(t, err)
		require.NoError(t, service.Delete(ctx, company.ID, created.ID))

		revived, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{
			Email:       "back@acme.com",
			CompanyName: "Acme",
			JobTitle:    "Director of Ops",
			Source:      "referral",
		})

		require.NoError(t, err)
		assert.Equal(t, created.ID, revived.ID)
		assert.Equal(t, "new", revived.Status)
		assert.Equal(t, "Director of Ops", revived.JobTitle)
		// company name 20 + title 15 + senior 20 + business domain 10 + quality source 10
		assert.Equal(t, 75, revived.Score)
	})
}

func TestUpdate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)
	company := createTestCompany(t, client, "update-co")

	t.Run("Scored field change triggers rescore", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{
			Email: "grow@acme.com",
		})
		require.NoError(t, err)
		// business domain only
		assert.Equal(t, 10, created.Score)

		title := "VP of Engineering"
		result, err := service.Update(ctx, company.ID, created.ID, UpdateLeadRequest{JobTitle: &title})

		require.NoError(t, err)
		// +15 title, +20 senior keyword
		assert.Equal(t, 45, result.Score)
		assert.Equal(t, created.Version+1, result.Version)
	})

	t.Run("Unscored field change keeps score", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{
			Email:    "notes@acme.com",
			JobTitle: "VP of Sales",
		})
		require.NoError(t, err)

		notes := "Met at the conference"
		result, err := service.Update(ctx, company.ID, created.ID, UpdateLeadRequest{Notes: &notes})

		require.NoError(t, err)
		assert.Equal(t, created.Score, result.Score)
		assert.Equal(t, "Met at the conference", result.Notes)
	})

	t.Run("Clearing a scored field lowers the score", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{
			Email:       "shrink@acme.com",
			CompanyName: "Acme",
		})
		require.NoError(t, err)
		assert.Equal(t, 30, created.Score)

		empty := ""
		result, err := service.Update(ctx, company.ID, created.ID, UpdateLeadRequest{CompanyName: &empty})

		require.NoError(t, err)
		assert.Equal(t, 10, result.Score)
	})

	t.Run("Error - lead not found", func(t *testing.T) {
		title := "CEO"
		_, err := service.Update(ctx, company.ID, 99999, UpdateLeadRequest{JobTitle: &title})
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Error - tenant mismatch", func(t *testing.T) {
		other := createTestCompany(t, client, "update-other")
		created, err := service.Create(ctx, other.ID, 1, CreateLeadRequest{Email: "theirs@x.com"})
		require.NoError(t, err)

		title := "CEO"
		_, err = service.Update(ctx, company.ID, created.ID, UpdateLeadRequest{JobTitle: &title})
		assert.True(t, domain.IsTenantMismatch(err))
	})
}

func TestDelete(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)
	company := createTestCompany(t, client, "delete-co")

	created, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{Email: "gone@acme.com"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, company.ID, created.ID))

	_, err = service.Get(ctx, company.ID, created.ID)
	assert.True(t, domain.IsNotFound(err))

	// Soft delete: the row is still there.
	stored, err := client.Lead.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsDeleted)

	// Deleting twice is a not-found, not a crash.
	err = service.Delete(ctx, company.ID, created.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestList(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)
	company := createTestCompany(t, client, "list-co")

	seed := []CreateLeadRequest{
		{Email: "vp@acme.com", FirstName: "Vic", CompanyName: "Acme", JobTitle: "VP of Sales", Phone: "+12125550100", Source: "linkedin"},
		{Email: "dev@gmail.com", FirstName: "Dana", Source: "website"},
		{Email: "dir@corp.com", FirstName: "Drew", CompanyName: "Corp", JobTitle: "Director", Source: "referral"},
	}
	for _, req := range seed {
		_, err := service.Create(ctx, company.ID, 1, req)
		require.NoError(t, err)
	}

	t.Run("No filters", func(t *testing.T) {
		result, err := service.List(ctx, company.ID, ListLeadsRequest{Page: 1, Limit: 20})

		require.NoError(t, err)
		assert.Len(t, result.Leads, 3)
		assert.Equal(t, 3, result.Pagination.Total)
	})

	t.Run("Filter by source", func(t *testing.T) {
		result, err := service.List(ctx, company.ID, ListLeadsRequest{Source: "linkedin", Page: 1, Limit: 20})

		require.NoError(t, err)
		require.Len(t, result.Leads, 1)
		assert.Equal(t, "vp@acme.com", result.Leads[0].Email)
	})

	t.Run("Filter by score range", func(t *testing.T) {
		minScore := 50
		result, err := service.List(ctx, company.ID, ListLeadsRequest{MinScore: &minScore, Page: 1, Limit: 20})

		require.NoError(t, err)
		require.Len(t, result.Leads, 2)
		for _, l := range result.Leads {
			assert.GreaterOrEqual(t, l.Score, 50)
		}
	})

	t.Run("Search across name and company", func(t *testing.T) {
		result, err := service.List(ctx, company.ID, ListLeadsRequest{Search: "corp", Page: 1, Limit: 20})

		require.NoError(t, err)
		require.Len(t, result.Leads, 1)
		assert.Equal(t, "dir@corp.com", result.Leads[0].Email)
	})

	t.Run("Deleted leads excluded", func(t *testing.T) {
		created, err := service.Create(ctx, company.ID, 1, CreateLeadRequest{Email: "bye@acme.com"})
		require.NoError(t, err)
		require.NoError(t, service.Delete(ctx, company.ID, created.ID))

		result, err := service.List(ctx, company.ID, ListLeadsRequest{Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Len(t, result.Leads, 3)
	})

	t.Run("Pagination", func(t *testing.T) {
		result, err := service.List(ctx, company.ID, ListLeadsRequest{Page: 2, Limit: 2})

		require.NoError(t, err)
		assert.Len(t, result.Leads, 1)
		assert.True(t, result.Pagination.HasPrev)
		assert.False(t, result.Pagination.HasNext)
	})
}
