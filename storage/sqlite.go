package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/kodendaal/name-voting/logging"
)

// SQLite-backed stores keep the same two tables but append row-by-row inside
// transactions, so a write never rewrites the table and concurrent writers
// cannot lose each other's rows.

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    tag TEXT NOT NULL,
    timestamp TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);
`

// OpenSQLite opens (creating if needed) the database file and ensures the
// schema exists. Safe to call multiple times.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

type SQLiteSubmissionStorage struct {
	DB *sql.DB
}

func (s *SQLiteSubmissionStorage) GetAll(ctx context.Context) ([]*Submission, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT name, tag, timestamp FROM submissions ORDER BY id`)
	if err != nil {
		logging.Log.Errorf("SUBMISSION: select failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var submissions []*Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.Name, &sub.Tag, &sub.Timestamp); err != nil {
			logging.Log.Errorf("SUBMISSION: scan row failed: %v", err)
			return nil, err
		}
		submissions = append(submissions, &sub)
	}
	return submissions, rows.Err()
}

func (s *SQLiteSubmissionStorage) Create(ctx context.Context, submission *Submission) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO submissions (name, tag, timestamp) VALUES (?, ?, ?)`,
		submission.Name, submission.Tag, submission.Timestamp)
	if err != nil {
		logging.Log.Errorf("SUBMISSION: insert failed: %v", err)
	}
	return err
}

func (s *SQLiteSubmissionStorage) DeleteAll(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM submissions`)
	return err
}

type SQLiteVoteStorage struct {
	DB *sql.DB
}

func (s *SQLiteVoteStorage) GetAll(ctx context.Context) ([]*Vote, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT name FROM votes ORDER BY id`)
	if err != nil {
		logging.Log.Errorf("VOTE: select failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var votes []*Vote
	for rows.Next() {
		var vote Vote
		if err := rows.Scan(&vote.Name); err != nil {
			logging.Log.Errorf("VOTE: scan row failed: %v", err)
			return nil, err
		}
		votes = append(votes, &vote)
	}
	return votes, rows.Err()
}

// CreateAll appends the whole selection in one transaction: either every vote
// of a cast lands or none do.
func (s *SQLiteVoteStorage) CreateAll(ctx context.Context, votes []*Vote) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		logging.Log.Errorf("VOTE: begin tx failed: %v", err)
		return err
	}

	for _, vote := range votes {
		if _, err := tx.ExecContext(ctx, `INSERT INTO votes (name) VALUES (?)`, vote.Name); err != nil {
			tx.Rollback()
			logging.Log.Errorf("VOTE: insert failed: %v", err)
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteVoteStorage) DeleteAll(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM votes`)
	return err
}
