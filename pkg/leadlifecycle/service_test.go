package leadlifecycle

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
	client := enttest.Open(t, "sqlite3", "file:leadlifecycle?mode=memory&cache=shared&_fk=1")
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

func createTestLead(t *testing.T, client *ent.Client, companyID int, email string) *ent.Lead {
	l, err := client.Lead.
		Create().
		SetCompanyID(companyID).
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func TestTransition(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)

	company := createTestCompany(t, client, "acme")
	user := createTestUser(t, client, company.ID, "rep@acme.com")
	testLead := createTestLead(t, client, company.ID, "lead@example.com")

	t.Run("Success - new to contacted", func(t *testing.T) {
		result, err := service.Transition(ctx, company.ID, user.ID, testLead.ID, TransitionRequest{
			Status: "contacted",
			Reason: "Called and spoke with owner",
		})

		require.NoError(t, err)
		assert.Equal(t, "contacted", result.Status)

		history, err := service.GetHistory(ctx, company.ID, testLead.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "new", history[0].OldStatus)
		assert.Equal(t, "contacted", history[0].NewStatus)
		assert.Equal(t, "Called and spoke with owner", *history[0].Reason)
		assert.Equal(t, user.ID, history[0].UserID)
	})

	t.Run("Success - contacted to responded to converted", func(t *testing.T) {
		_, err := service.Transition(ctx, company.ID, user.ID, testLead.ID, TransitionRequest{Status: "responded"})
		require.NoError(t, err)

		result, err := service.Transition(ctx, company.ID, user.ID, testLead.ID, TransitionRequest{Status: "converted"})
		require.NoError(t, err)
		assert.Equal(t, "converted", result.Status)

		history, err := service.GetHistory(ctx, company.ID, testLead.ID)
		require.NoError(t, err)
		assert.Len(t, history, 3)
		// Newest first
		assert.Equal(t, "converted", history[0].NewStatus)
		assert.Equal(t, "responded", history[0].OldStatus)
	})

	t.Run("Error - terminal status rejects further transitions", func(t *testing.T) {
		// Lead is converted from the previous subtest.
		result, err := service.Transition(ctx, company.ID, user.ID, testLead.ID, TransitionRequest{Status: "qualified"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, domain.IsInvalidTransition(err))

		de := &domain.DomainError{}
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "converted", de.Current)
		assert.Equal(t, "qualified", de.Requested)

		// No history row was appended.
		history, err := service.GetHistory(ctx, company.ID, testLead.ID)
		require.NoError(t, err)
		assert.Len(t, history, 3)
	})

	t.Run("Error - invalid edge leaves lead unchanged", func(t *testing.T) {
		lead2 := createTestLead(t, client, company.ID, "lead2@example.com")

		_, err := service.Transition(ctx, company.ID, user.ID, lead2.ID, TransitionRequest{Status: "converted"})
		require.Error(t, err)
		assert.True(t, domain.IsInvalidTransition(err))

		stored, err := client.Lead.Get(ctx, lead2.ID)
		require.NoError(t, err)
		assert.Equal(t, "new", string(stored.Status))
	})

	t.Run("Success - any non-terminal status can close", func(t *testing.T) {
		lead3 := createTestLead(t, client, company.ID, "lead3@example.com")

		_, err := service.Transition(ctx, company.ID, user.ID, lead3.ID, TransitionRequest{Status: "unqualified"})
		require.NoError(t, err)

		result, err := service.Transition(ctx, company.ID, user.ID, lead3.ID, TransitionRequest{Status: "closed"})
		require.NoError(t, err)
		assert.Equal(t, "closed", result.Status)
	})

	t.Run("Error - lead not found", func(t *testing.T) {
		_, err := service.Transition(ctx, company.ID, user.ID, 99999, TransitionRequest{Status: "contacted"})

		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("Error - tenant mismatch", func(t *testing.T) {
		other := createTestCompany(t, client, "rival")
		otherLead := createTestLead(t, client, other.ID, "lead@rival.com")

		_, err := service.Transition(ctx, company.ID, user.ID, otherLead.ID, TransitionRequest{Status: "contacted"})

		require.Error(t, err)
		assert.True(t, domain.IsTenantMismatch(err))
	})
}

func TestGetHistory(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)

	company := createTestCompany(t, client, "hist-co")
	user1 := createTestUser(t, client, company.ID, "one@hist.com")
	user2 := createTestUser(t, client, company.ID, "two@hist.com")
	testLead := createTestLead(t, client, company.ID, "lead@hist.com")

	t.Run("Empty history for a new lead", func(t *testing.T) {
		history, err := service.GetHistory(ctx, company.ID, testLead.ID)

		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("Multiple transitions by different users", func(t *testing.T) {
		_, err := service.Transition(ctx, company.ID, user1.ID, testLead.ID, TransitionRequest{
			Status: "qualified",
			Reason: "Budget confirmed",
		})
		require.NoError(t, err)

		_, err = service.Transition(ctx, company.ID, user2.ID, testLead.ID, TransitionRequest{Status: "contacted"})
		require.NoError(t, err)

		history, err := service.GetHistory(ctx, company.ID, testLead.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)

		assert.Equal(t, "contacted", history[0].NewStatus)
		assert.Equal(t, user2.ID, history[0].UserID)
		assert.Nil(t, history[0].Reason)

		assert.Equal(t, "qualified", history[1].NewStatus)
		assert.Equal(t, user1.ID, history[1].UserID)
		assert.Equal(t, "Budget confirmed", *history[1].Reason)
	})

	t.Run("Error - lead not found", func(t *testing.T) {
		_, err := service.GetHistory(ctx, company.ID, 99999)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestStatusCounts(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	service := NewService(client, nil)

	company := createTestCompany(t, client, "counts-co")
	user := createTestUser(t, client, company.ID, "rep@counts.com")

	_ = createTestLead(t, client, company.ID, "a@x.com")
	lead2 := createTestLead(t, client, company.ID, "b@x.com")
	lead3 := createTestLead(t, client, company.ID, "c@x.com")

	_, err := service.Transition(ctx, company.ID, user.ID, lead2.ID, TransitionRequest{Status: "contacted"})
	require.NoError(t, err)
	_, err = service.Transition(ctx, company.ID, user.ID, lead3.ID, TransitionRequest{Status: "unqualified"})
	require.NoError(t, err)

	counts, err := service.StatusCounts(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["new"])
	assert.Equal(t, 1, counts["contacted"])
	assert.Equal(t, 1, counts["unqualified"])
	assert.Equal(t, 0, counts["converted"])

	// Another company sees nothing.
	other := createTestCompany(t, client, "counts-other")
	counts, err = service.StatusCounts(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, counts["new"])
}
