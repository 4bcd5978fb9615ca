package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/salesflowhq/salesflow/ent"
	"github.com/salesflowhq/salesflow/ent/enttest"
	"github.com/salesflowhq/salesflow/pkg/campaign"
	"github.com/salesflowhq/salesflow/pkg/draft"
	"github.com/salesflowhq/salesflow/pkg/export"
	"github.com/salesflowhq/salesflow/pkg/leadlifecycle"
	"github.com/salesflowhq/salesflow/pkg/leads"
	"github.com/salesflowhq/salesflow/pkg/locks"
	"github.com/salesflowhq/salesflow/pkg/scheduler"
	"github.com/stretchr/testify/require"
)

// testEnv wires real services over an in-memory database, the way the
// production wiring does.
type testEnv struct {
	client    *ent.Client
	leads     *leads.Service
	lifecycle *leadlifecycle.Service
	campaigns *campaign.Service
	scheduler *scheduler.Service
	drafts    *draft.Service
	export    *export.Service
	company   *ent.Company
	user      *ent.User
}

func setupHandlerEnv(t *testing.T, slug string) (*testEnv, func()) {
	client := enttest.Open(t, "sqlite3", "file:handlers-"+slug+"?mode=memory&cache=shared&_fk=1")

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

	km := locks.New()
	leadService := leads.NewService(client, km)
	env := &testEnv{
		client:    client,
		leads:     leadService,
		lifecycle: leadlifecycle.NewService(client, km),
		campaigns: campaign.NewService(client, km),
		scheduler: scheduler.NewService(client),
		drafts:    draft.NewService(client, draft.NewTemplateDrafter()),
		export:    export.NewService(leadService),
		company:   company,
		user:      user,
	}
	return env, func() { client.Close() }
}

// request builds an authenticated echo context the way the JWT middleware
// leaves it.
func (env *testEnv) request(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", env.user.ID)
	c.Set("company_id", env.company.ID)
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func withParam(c echo.Context, name, value string) {
	c.SetParamNames(name)
	c.SetParamValues(value)
}
