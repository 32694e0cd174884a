package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodendaal/name-voting/logging"
)

func setupSQLite(t *testing.T) (*SQLiteSubmissionStorage, *SQLiteVoteStorage) {
	t.Helper()
	logging.Log = logrus.New()

	path := filepath.Join(t.TempDir(), "name-voting.db")
	db, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	return &SQLiteSubmissionStorage{DB: db}, &SQLiteVoteStorage{DB: db}
}

func TestSQLiteSubmissionStorage(t *testing.T) {
	t.Run("Round trip keeps insertion order", func(t *testing.T) {
		subs, _ := setupSQLite(t)

		for _, name := range []string{"B", "A", "C"} {
			require.NoError(t, subs.Create(context.Background(), &Submission{
				Name: name, Tag: "t", Timestamp: "2025-04-03 09:30:00",
			}))
		}

		stored, err := subs.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, stored, 3)
		assert.Equal(t, "B", stored[0].Name)
		assert.Equal(t, "A", stored[1].Name)
		assert.Equal(t, "C", stored[2].Name)
		assert.Equal(t, "2025-04-03 09:30:00", stored[0].Timestamp)
	})

	t.Run("Fresh database reads as empty", func(t *testing.T) {
		subs, _ := setupSQLite(t)

		stored, err := subs.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("DeleteAll clears the table", func(t *testing.T) {
		subs, _ := setupSQLite(t)
		require.NoError(t, subs.Create(context.Background(), &Submission{
			Name: "Thunderbolts", Tag: "JD", Timestamp: "2025-04-03 09:30:00",
		}))

		require.NoError(t, subs.DeleteAll(context.Background()))

		stored, err := subs.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, stored)
	})
}

func TestSQLiteVoteStorage(t *testing.T) {
	t.Run("CreateAll appends the whole selection", func(t *testing.T) {
		_, votes := setupSQLite(t)

		require.NoError(t, votes.CreateAll(context.Background(), []*Vote{{Name: "A"}, {Name: "B"}, {Name: "A"}}))

		stored, err := votes.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, stored, 3)
		assert.Equal(t, "A", stored[0].Name)
		assert.Equal(t, "B", stored[1].Name)
		assert.Equal(t, "A", stored[2].Name)
	})

	t.Run("Schema creation is idempotent", func(t *testing.T) {
		logging.Log = logrus.New()
		path := filepath.Join(t.TempDir(), "name-voting.db")

		db, err := OpenSQLite(path)
		require.NoError(t, err)
		votes := &SQLiteVoteStorage{DB: db}
		require.NoError(t, votes.CreateAll(context.Background(), []*Vote{{Name: "A"}}))
		require.NoError(t, db.Close())

		reopened, err := OpenSQLite(path)
		require.NoError(t, err)
		defer reopened.Close()

		stored, err := (&SQLiteVoteStorage{DB: reopened}).GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "A", stored[0].Name)
	})
}
