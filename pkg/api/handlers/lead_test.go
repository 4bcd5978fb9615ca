package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createLeadViaHandler(t *testing.T, env *testEnv, handler *LeadHandler, body string) map[string]interface{} {
	t.Helper()
	c, rec := env.request(http.MethodPost, "/api/v1/leads", body)
	require.NoError(t, handler.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode(t, rec)
}

func TestLeadHandlerCreate(t *testing.T) {
	t.Run("Scores the lead on creation", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "lead-create")
		defer cleanup()
		handler := NewLeadHandler(env.leads, env.export, nil)

		body := createLeadViaHandler(t, env, handler, `{
			"email": "vp@acme.com",
			"first_name": "Ada",
			"company_name": "Acme",
			"job_title": "VP of Engineering",
			"phone": "+12125550177",
			"source": "linkedin"
		}`)

		assert.Equal(t, "new", body["status"])
		assert.Equal(t, 85.0, body["score"])
	})

	t.Run("Duplicate email returns 409", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "lead-dup")
		defer cleanup()
		handler := NewLeadHandler(env.leads, env.export, nil)

		createLeadViaHandler(t, env, handler, `{"email":"dup@acme.com"}`)

		c, rec := env.request(http.MethodPost, "/api/v1/leads", `{"email":"dup@acme.com"}`)
		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Missing email returns 400", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "lead-noemail")
		defer cleanup()
		handler := NewLeadHandler(env.leads, env.export, nil)

		c, rec := env.request(http.MethodPost, "/api/v1/leads", `{"first_name":"No Email"}`)
		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLeadHandlerGetUpdateDelete(t *testing.T) {
	env, cleanup := setupHandlerEnv(t, "lead-gud")
	defer cleanup()
	handler := NewLeadHandler(env.leads, env.export, nil)

	created := createLeadViaHandler(t, env, handler,
		`{"email":"gud@acme.com","first_name":"Grace"}`)
	leadID := fmt.Sprintf("%v", int(created["id"].(float64)))

	t.Run("Get returns the lead", func(t *testing.T) {
		c, rec := env.request(http.MethodGet, "/api/v1/leads/"+leadID, "")
		withParam(c, "id", leadID)
		require.NoError(t, handler.Get(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "gud@acme.com", decode(t, rec)["email"])
	})

	t.Run("Update rescoring is reflected in the response", func(t *testing.T) {
		c, rec := env.request(http.MethodPatch, "/api/v1/leads/"+leadID,
			`{"job_title":"Senior Director of Sales"}`)
		withParam(c, "id", leadID)
		require.NoError(t, handler.Update(c))
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		// business domain (10) + job title (15) + senior keyword (20)
		assert.Equal(t, 45.0, body["score"])
	})

	t.Run("Delete then Get returns 404", func(t *testing.T) {
		c, rec := env.request(http.MethodDelete, "/api/v1/leads/"+leadID, "")
		withParam(c, "id", leadID)
		require.NoError(t, handler.Delete(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		c, rec = env.request(http.MethodGet, "/api/v1/leads/"+leadID, "")
		withParam(c, "id", leadID)
		require.NoError(t, handler.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLeadHandlerList(t *testing.T) {
	env, cleanup := setupHandlerEnv(t, "lead-list")
	defer cleanup()
	handler := NewLeadHandler(env.leads, env.export, nil)

	createLeadViaHandler(t, env, handler, `{"email":"a@acme.com","source":"linkedin","company_name":"Acme"}`)
	createLeadViaHandler(t, env, handler, `{"email":"b@acme.com","source":"website"}`)

	t.Run("Filters by source", func(t *testing.T) {
		c, rec := env.request(http.MethodGet, "/api/v1/leads?source=linkedin", "")
		require.NoError(t, handler.List(c))
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		leads := body["leads"].([]interface{})
		require.Len(t, leads, 1)
		assert.Equal(t, "a@acme.com", leads[0].(map[string]interface{})["email"])
	})

	t.Run("Invalid status filter returns 400", func(t *testing.T) {
		c, rec := env.request(http.MethodGet, "/api/v1/leads?status=negotiating", "")
		require.NoError(t, handler.List(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLeadHandlerExport(t *testing.T) {
	env, cleanup := setupHandlerEnv(t, "lead-export")
	defer cleanup()
	handler := NewLeadHandler(env.leads, env.export, nil)

	createLeadViaHandler(t, env, handler, `{"email":"csv@acme.com","first_name":"Ada"}`)

	t.Run("CSV export includes the lead", func(t *testing.T) {
		c, rec := env.request(http.MethodGet, "/api/v1/leads/export?format=csv", "")
		require.NoError(t, handler.Export(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")

		rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2) // header + one lead
		assert.Contains(t, rows[1], "csv@acme.com")
	})

	t.Run("Unknown format returns 400", func(t *testing.T) {
		c, rec := env.request(http.MethodGet, "/api/v1/leads/export?format=pdf", "")
		require.NoError(t, handler.Export(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
