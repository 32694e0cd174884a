package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutils "github.com/kodendaal/name-voting/api/controllers/testing"
	"github.com/kodendaal/name-voting/storage"
)

func adminHeaders() map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"x-admin-token": "secret",
	}
}

func TestAdminEndpoints(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "secret")

	t.Run("Unhappy path - missing token", func(t *testing.T) {
		router, _, _ := setupTestRouter(t, time.Now())

		res := testutils.PerformRequest(router, http.MethodGet, "/api/admin/submissions", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Happy path - list full submission rows", func(t *testing.T) {
		router, subs, _ := setupTestRouter(t, time.Now())

		require.NoError(t, subs.Create(context.Background(), &storage.Submission{
			Name: "Alpha", Tag: "JD", Timestamp: "2025-04-03 09:30:00",
		}))

		res := testutils.PerformRequest(router, http.MethodGet, "/api/admin/submissions", nil, adminHeaders())
		assert.Equal(t, http.StatusOK, res.Code)

		var listed []*storage.Submission
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, "Alpha", listed[0].Name)
		assert.Equal(t, "JD", listed[0].Tag)
		assert.Equal(t, "2025-04-03 09:30:00", listed[0].Timestamp)
	})

	t.Run("Happy path - reset votes", func(t *testing.T) {
		router, _, votes := setupTestRouter(t, time.Now())

		require.NoError(t, votes.CreateAll(context.Background(), []*storage.Vote{{Name: "Alpha"}}))

		res := testutils.PerformRequest(router, http.MethodDelete, "/api/admin/votes", nil, adminHeaders())
		assert.Equal(t, http.StatusOK, res.Code)

		stored, err := votes.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("Happy path - reset submissions", func(t *testing.T) {
		router, subs, _ := setupTestRouter(t, time.Now())

		require.NoError(t, subs.Create(context.Background(), &storage.Submission{
			Name: "Alpha", Tag: "JD", Timestamp: "2025-04-03 09:30:00",
		}))

		res := testutils.PerformRequest(router, http.MethodDelete, "/api/admin/submissions", nil, adminHeaders())
		assert.Equal(t, http.StatusOK, res.Code)

		stored, err := subs.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, stored)
	})
}
