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
	"github.com/kodendaal/name-voting/api/models"
	"github.com/kodendaal/name-voting/storage"
)

func TestGetLeaderboard(t *testing.T) {
	t.Run("Happy path - full submit and vote flow", func(t *testing.T) {
		router, _, _ := setupTestRouter(t, opensAt.Add(time.Hour))

		for _, name := range []string{"Alpha", "Beta", "Gamma"} {
			payload := models.SubmitRequest{Name: name, Tag: "JD"}
			res := testutils.PerformRequest(router, http.MethodPost, "/api/submissions", payload, nil)
			require.Equal(t, http.StatusOK, res.Code)
		}

		votePayload := models.CastVotesRequest{
			Names:          []string{"Alpha", "Alpha", "Beta"},
			VotesRemaining: intPtr(3),
		}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/votes", votePayload, nil)
		require.Equal(t, http.StatusOK, res.Code)

		res = testutils.PerformRequest(router, http.MethodGet, "/api/leaderboard", nil, nil)
		assert.Equal(t, http.StatusOK, res.Code)

		var response models.LeaderboardResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Equal(t, []models.LeaderboardRow{
			{Name: "Alpha", Votes: 2},
			{Name: "Beta", Votes: 1},
			{Name: "Gamma", Votes: 0},
		}, response.Rows)
	})

	t.Run("Orphan votes get trailing rows", func(t *testing.T) {
		router, subs, votes := setupTestRouter(t, opensAt.Add(time.Hour))

		require.NoError(t, subs.Create(context.Background(), &storage.Submission{
			Name: "Alpha", Tag: "JD", Timestamp: "2025-04-03 09:30:00",
		}))
		require.NoError(t, votes.CreateAll(context.Background(), []*storage.Vote{{Name: "Zed"}}))

		res := testutils.PerformRequest(router, http.MethodGet, "/api/leaderboard", nil, nil)
		assert.Equal(t, http.StatusOK, res.Code)

		var response models.LeaderboardResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Equal(t, []models.LeaderboardRow{
			{Name: "Zed", Votes: 1},
			{Name: "Alpha", Votes: 0},
		}, response.Rows)
	})

	t.Run("Empty stores yield zero rows", func(t *testing.T) {
		router, _, _ := setupTestRouter(t, opensAt.Add(time.Hour))

		res := testutils.PerformRequest(router, http.MethodGet, "/api/leaderboard", nil, nil)
		assert.Equal(t, http.StatusOK, res.Code)

		var response models.LeaderboardResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Empty(t, response.Rows)
	})
}

func TestGetLeaderboardChart(t *testing.T) {
	pngMagic := []byte{0x89, 'P', 'N', 'G'}

	t.Run("Happy path - PNG with data", func(t *testing.T) {
		router, subs, votes := setupTestRouter(t, opensAt.Add(time.Hour))

		require.NoError(t, subs.Create(context.Background(), &storage.Submission{
			Name: "Alpha", Tag: "JD", Timestamp: "2025-04-03 09:30:00",
		}))
		require.NoError(t, votes.CreateAll(context.Background(), []*storage.Vote{{Name: "Alpha"}}))

		res := testutils.PerformRequest(router, http.MethodGet, "/api/leaderboard/chart", nil, nil)

		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "image/png", res.Header().Get("Content-Type"))
		assert.Equal(t, pngMagic, res.Body.Bytes()[:4])
	})

	t.Run("Placeholder PNG without data", func(t *testing.T) {
		router, _, _ := setupTestRouter(t, opensAt.Add(time.Hour))

		res := testutils.PerformRequest(router, http.MethodGet, "/api/leaderboard/chart", nil, nil)

		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "image/png", res.Header().Get("Content-Type"))
		assert.Equal(t, pngMagic, res.Body.Bytes()[:4])
	})
}
