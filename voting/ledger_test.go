package voting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodendaal/name-voting/logging"
	"github.com/kodendaal/name-voting/storage"
)

var opensAt = time.Date(2025, 4, 2, 20, 38, 0, 0, time.Local)

type failingVoteStorage struct {
	storage.MemoryVoteStorage
}

func (s *failingVoteStorage) CreateAll(_ context.Context, _ []*storage.Vote) error {
	return errors.New("disk full")
}

func setupLedger(t *testing.T, now time.Time) (*Ledger, *storage.MemoryVoteStorage) {
	t.Helper()
	logging.Log = logrus.New()

	votes := &storage.MemoryVoteStorage{}
	ledger := NewLedger(votes, LedgerConfig{OpensAt: opensAt, SessionBudget: 3}, fixedClock{now: now})
	return ledger, votes
}

func TestCastVotes(t *testing.T) {
	afterOpening := opensAt.Add(time.Hour)

	t.Run("Unhappy path - voting not open yet", func(t *testing.T) {
		ledger, votes := setupLedger(t, opensAt.Add(-time.Minute))

		remaining, result, err := ledger.CastVotes(context.Background(), []string{"Alpha", "Beta"}, 3)
		require.NoError(t, err)

		assert.Equal(t, 3, remaining, "Budget should be unchanged")
		assert.False(t, result.OK)
		assert.Equal(t,
			"⚠️ Voting is not open yet. Please come back after 2025-04-02 20:38:00.",
			result.Message)

		stored, _ := votes.GetAll(context.Background())
		assert.Empty(t, stored)
	})

	t.Run("Unhappy path - empty selection", func(t *testing.T) {
		ledger, _ := setupLedger(t, afterOpening)

		remaining, result, err := ledger.CastVotes(context.Background(), nil, 3)
		require.NoError(t, err)

		assert.Equal(t, 3, remaining)
		assert.False(t, result.OK)
		assert.Equal(t, "⚠️ No names selected. Please choose up to 3.", result.Message)
	})

	t.Run("Unhappy path - no votes remaining", func(t *testing.T) {
		ledger, _ := setupLedger(t, afterOpening)

		remaining, result, err := ledger.CastVotes(context.Background(), []string{"Alpha"}, 0)
		require.NoError(t, err)

		assert.Equal(t, 0, remaining)
		assert.False(t, result.OK)
		assert.Equal(t, "⚠️ You have no votes remaining.", result.Message)
	})

	t.Run("Unhappy path - selection exceeds budget", func(t *testing.T) {
		ledger, votes := setupLedger(t, afterOpening)

		remaining, result, err := ledger.CastVotes(context.Background(), []string{"Gamma", "Delta"}, 1)
		require.NoError(t, err)

		assert.Equal(t, 1, remaining)
		assert.False(t, result.OK)
		assert.Equal(t, "⚠️ You can only vote for 1 more name(s).", result.Message)

		stored, _ := votes.GetAll(context.Background())
		assert.Empty(t, stored, "Declined cast should record nothing")
	})

	t.Run("Happy path - multiple votes recorded", func(t *testing.T) {
		ledger, votes := setupLedger(t, afterOpening)

		remaining, result, err := ledger.CastVotes(context.Background(), []string{"Alpha", "Beta"}, 3)
		require.NoError(t, err)

		assert.Equal(t, 1, remaining)
		assert.True(t, result.OK)
		assert.Equal(t, "✅ Votes recorded! You have 1 vote(s) left.", result.Message)

		stored, _ := votes.GetAll(context.Background())
		require.Len(t, stored, 2)
		assert.Equal(t, "Alpha", stored[0].Name)
		assert.Equal(t, "Beta", stored[1].Name)
	})

	t.Run("Happy path - single vote exhausting the budget", func(t *testing.T) {
		ledger, _ := setupLedger(t, afterOpening)

		remaining, result, err := ledger.CastVotes(context.Background(), []string{"Alpha"}, 1)
		require.NoError(t, err)

		assert.Equal(t, 0, remaining)
		assert.True(t, result.OK)
		assert.Equal(t, "✅ Vote recorded! You have no votes left.", result.Message)
	})

	t.Run("Duplicates within one selection are each recorded", func(t *testing.T) {
		ledger, votes := setupLedger(t, afterOpening)

		remaining, result, err := ledger.CastVotes(context.Background(), []string{"Alpha", "Alpha"}, 3)
		require.NoError(t, err)

		assert.Equal(t, 1, remaining)
		assert.True(t, result.OK)

		stored, _ := votes.GetAll(context.Background())
		assert.Len(t, stored, 2, "Both entries of the duplicate selection should be recorded")
	})

	t.Run("Persist failure surfaces as error with unchanged budget", func(t *testing.T) {
		logging.Log = logrus.New()
		ledger := NewLedger(&failingVoteStorage{},
			LedgerConfig{OpensAt: opensAt, SessionBudget: 3}, fixedClock{now: afterOpening})

		remaining, _, err := ledger.CastVotes(context.Background(), []string{"Alpha"}, 3)
		assert.Error(t, err)
		assert.Equal(t, 3, remaining)
	})
}
