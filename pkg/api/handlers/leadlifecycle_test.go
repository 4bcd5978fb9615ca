package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadLifecycleHandler(t *testing.T) {
	env, cleanup := setupHandlerEnv(t, "lifecycle")
	defer cleanup()
	leadHandler := NewLeadHandler(env.leads, env.export, nil)
	handler := NewLeadLifecycleHandler(env.lifecycle, nil)

	created := createLeadViaHandler(t, env, leadHandler, `{"email":"cycle@acme.com"}`)
	id := entityID(created)

	t.Run("Valid transition records history", func(t *testing.T) {
		c, rec := env.request(http.MethodPatch, "/api/v1/leads/"+id+"/status",
			`{"status":"qualified","reason":"Budget confirmed"}`)
		withParam(c, "id", id)
		require.NoError(t, handler.UpdateStatus(c))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "qualified", decode(t, rec)["status"])

		c, rec = env.request(http.MethodGet, "/api/v1/leads/"+id+"/status-history", "")
		withParam(c, "id", id)
		require.NoError(t, handler.History(c))
		require.Equal(t, http.StatusOK, rec.Code)

		history := decode(t, rec)["history"].([]interface{})
		require.Len(t, history, 1)
		entry := history[0].(map[string]interface{})
		assert.Equal(t, "new", entry["old_status"])
		assert.Equal(t, "qualified", entry["new_status"])
		assert.Equal(t, "Budget confirmed", entry["reason"])
	})

	t.Run("Invalid edge returns 422 with both states", func(t *testing.T) {
		c, rec := env.request(http.MethodPatch, "/api/v1/leads/"+id+"/status",
			`{"status":"responded"}`)
		withParam(c, "id", id)
		require.NoError(t, handler.UpdateStatus(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Unknown status value returns 400", func(t *testing.T) {
		c, rec := env.request(http.MethodPatch, "/api/v1/leads/"+id+"/status",
			`{"status":"negotiating"}`)
		withParam(c, "id", id)
		require.NoError(t, handler.UpdateStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Status counts include every lead", func(t *testing.T) {
		createLeadViaHandler(t, env, leadHandler, `{"email":"fresh@acme.com"}`)

		c, rec := env.request(http.MethodGet, "/api/v1/leads/status-counts", "")
		require.NoError(t, handler.StatusCounts(c))
		require.Equal(t, http.StatusOK, rec.Code)

		counts := decode(t, rec)["counts"].(map[string]interface{})
		assert.Equal(t, 1.0, counts["new"])
		assert.Equal(t, 1.0, counts["qualified"])
	})
}
