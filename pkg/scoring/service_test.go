package scoring

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/enttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:scoring?mode=memory&cache=shared&_fk=1")
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

func TestRecompute(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	company := createTestCompany(t, client, "scoring-co")

	l, err := client.Lead.
		Create().
		SetCompanyID(company.ID).
		SetEmail("vp@acme.com").
		SetCompanyName("Acme").
		SetJobTitle("VP of Sales").
		SetPhone("555-1234").
		SetSource("linkedin").
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Score)

	resp, err := service.Recompute(ctx, company.ID, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 85, resp.Score)

	stored, err := client.Lead.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 85, stored.Score)
	assert.Equal(t, l.Version+1, stored.Version)
}

func TestRecompute_NotFound(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	company := createTestCompany(t, client, "scoring-nf")

	_, err := service.Recompute(ctx, company.ID, 99999)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "lead not found")
}

func TestRecompute_TenantScoped(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	company := createTestCompany(t, client, "scoring-a")
	other := createTestCompany(t, client, "scoring-b")

	l, err := client.Lead.
		Create().
		SetCompanyID(company.ID).
		SetEmail("x@acme.com").
		Save(ctx)
	require.NoError(t, err)

	// Another company cannot touch this lead.
	_, err = service.Recompute(ctx, other.ID, l.ID)
	assert.Error(t, err)
}

func TestRecomputeUpdatedSince(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client)
	company := createTestCompany(t, client, "scoring-batch")

	// Stored with a stale zero score; recompute should fix it.
	_, err := client.Lead.
		Create().
		SetCompanyID(company.ID).
		SetEmail("a@corp.com").
		SetCompanyName("Corp").
		Save(ctx)
	require.NoError(t, err)

	// Already consistent; recompute should skip it.
	_, err = client.Lead.
		Create().
		SetCompanyID(company.ID).
		SetEmail("b@gmail.com").
		Save(ctx)
	require.NoError(t, err)

	updated, err := service.RecomputeUpdatedSince(ctx, time.Now().Add(-time.Hour), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}
