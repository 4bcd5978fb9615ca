package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullCampaignBody = `{
	"name": "Q4 Outreach",
	"context": {
		"company_name": "Acme",
		"product_description": "Widget automation",
		"problem_solved": "Manual assembly is slow",
		"call_to_action": "Book a demo",
		"tone": "friendly"
	},
	"delays": {"1": 0, "3": 5},
	"scheduled_start": "2026-09-01T09:00:00Z"
}`

func createCampaignViaHandler(t *testing.T, env *testEnv, handler *CampaignHandler, body string) map[string]interface{} {
	t.Helper()
	c, rec := env.request(http.MethodPost, "/api/v1/campaigns", body)
	require.NoError(t, handler.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode(t, rec)
}

func entityID(body map[string]interface{}) string {
	return fmt.Sprintf("%d", int(body["id"].(float64)))
}

func (env *testEnv) campaignHandler() *CampaignHandler {
	return NewCampaignHandler(env.campaigns, env.scheduler, env.drafts, nil)
}

func TestCampaignHandlerLifecycle(t *testing.T) {
	t.Run("Create starts in draft", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "camp-create")
		defer cleanup()
		handler := env.campaignHandler()

		body := createCampaignViaHandler(t, env, handler, `{"name":"Bare Draft"}`)
		assert.Equal(t, "draft", body["status"])
	})

	t.Run("Activating an incomplete draft lists every violation", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "camp-invalid")
		defer cleanup()
		handler := env.campaignHandler()

		created := createCampaignViaHandler(t, env, handler, `{"name":"Incomplete"}`)
		id := entityID(created)

		c, rec := env.request(http.MethodPatch, "/api/v1/campaigns/"+id+"/status", `{"status":"active"}`)
		withParam(c, "id", id)
		require.NoError(t, handler.UpdateStatus(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, "validation_failed", body["error"])
		// 5 context fields + missing delays
		assert.Len(t, body["details"].([]interface{}), 6)
	})

	t.Run("Complete draft activates and pauses", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "camp-activate")
		defer cleanup()
		handler := env.campaignHandler()

		created := createCampaignViaHandler(t, env, handler, fullCampaignBody)
		id := entityID(created)

		c, rec := env.request(http.MethodPatch, "/api/v1/campaigns/"+id+"/status", `{"status":"active"}`)
		withParam(c, "id", id)
		require.NoError(t, handler.UpdateStatus(c))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "active", decode(t, rec)["status"])

		c, rec = env.request(http.MethodPatch, "/api/v1/campaigns/"+id+"/status", `{"status":"inactive"}`)
		withParam(c, "id", id)
		require.NoError(t, handler.UpdateStatus(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "inactive", decode(t, rec)["status"])
	})

	t.Run("Draft to inactive is an invalid transition", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "camp-badedge")
		defer cleanup()
		handler := env.campaignHandler()

		created := createCampaignViaHandler(t, env, handler, `{"name":"Stuck Draft"}`)
		id := entityID(created)

		c, rec := env.request(http.MethodPatch, "/api/v1/campaigns/"+id+"/status", `{"status":"inactive"}`)
		withParam(c, "id", id)
		require.NoError(t, handler.UpdateStatus(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Editing an active campaign returns 409", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "camp-locked")
		defer cleanup()
		handler := env.campaignHandler()

		created := createCampaignViaHandler(t, env, handler, fullCampaignBody)
		id := entityID(created)

		c, _ := env.request(http.MethodPatch, "/api/v1/campaigns/"+id+"/status", `{"status":"active"}`)
		withParam(c, "id", id)
		require.NoError(t, handler.UpdateStatus(c))

		c, rec := env.request(http.MethodPatch, "/api/v1/campaigns/"+id, `{"name":"Renamed"}`)
		withParam(c, "id", id)
		require.NoError(t, handler.Update(c))
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "campaign_locked", decode(t, rec)["error"])
	})

	t.Run("Unknown campaign returns 404", func(t *testing.T) {
		env, cleanup := setupHandlerEnv(t, "camp-nf")
		defer cleanup()
		handler := env.campaignHandler()

		c, rec := env.request(http.MethodGet, "/api/v1/campaigns/99999", "")
		withParam(c, "id", "99999")
		require.NoError(t, handler.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCampaignHandlerEmailPipeline(t *testing.T) {
	env, cleanup := setupHandlerEnv(t, "camp-pipeline")
	defer cleanup()
	campaignHandler := env.campaignHandler()
	leadHandler := NewLeadHandler(env.leads, env.export, nil)

	createLeadViaHandler(t, env, leadHandler, `{"email":"p1@acme.com","first_name":"Ada"}`)
	createLeadViaHandler(t, env, leadHandler, `{"email":"p2@acme.com","first_name":"Grace"}`)

	created := createCampaignViaHandler(t, env, campaignHandler, fullCampaignBody)
	id := entityID(created)

	t.Run("Targets previews the cohort before activation", func(t *testing.T) {
		c, rec := env.request(http.MethodGet, "/api/v1/campaigns/"+id+"/targets", "")
		withParam(c, "id", id)
		require.NoError(t, campaignHandler.Targets(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2.0, decode(t, rec)["count"])
	})

	t.Run("Schedule requires an active campaign", func(t *testing.T) {
		c, rec := env.request(http.MethodPost, "/api/v1/campaigns/"+id+"/schedule", "")
		withParam(c, "id", id)
		require.NoError(t, campaignHandler.Schedule(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Schedule then draft moves emails to scheduled", func(t *testing.T) {
		c, _ := env.request(http.MethodPatch, "/api/v1/campaigns/"+id+"/status", `{"status":"active"}`)
		withParam(c, "id", id)
		require.NoError(t, campaignHandler.UpdateStatus(c))

		c, rec := env.request(http.MethodPost, "/api/v1/campaigns/"+id+"/schedule", "")
		withParam(c, "id", id)
		require.NoError(t, campaignHandler.Schedule(c))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, 4.0, decode(t, rec)["created"]) // 2 leads x 2 steps

		c, rec = env.request(http.MethodPost, "/api/v1/campaigns/"+id+"/emails/draft", "")
		withParam(c, "id", id)
		require.NoError(t, campaignHandler.DraftEmails(c))
		require.Equal(t, http.StatusOK, rec.Code)

		c, rec = env.request(http.MethodGet, "/api/v1/campaigns/"+id+"/emails", "")
		withParam(c, "id", id)
		require.NoError(t, campaignHandler.ListEmails(c))
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, rec)
		emails := body["emails"].([]interface{})
		require.Len(t, emails, 4)
		for _, raw := range emails {
			e := raw.(map[string]interface{})
			assert.Equal(t, "scheduled", e["status"])
			assert.NotEmpty(t, e["subject"])
		}
	})
}
