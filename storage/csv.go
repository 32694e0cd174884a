package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/kodendaal/name-voting/logging"
)

// CSV-backed stores keep the original flat-table layout on disk:
// submissions.csv with Name,Tag,Timestamp and votes.csv with Name. The format
// has no safe concurrent append, so every write re-reads the table and
// rewrites the whole file; a mutex serializes writers within the process.

type CSVSubmissionStorage struct {
	Path string

	mu sync.Mutex
}

func (s *CSVSubmissionStorage) GetAll(_ context.Context) ([]*Submission, error) {
	var submissions []*Submission
	if err := readCSV(s.Path, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *CSVSubmissionStorage) Create(_ context.Context, submission *Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Best effort: a missing or corrupt table starts over empty.
	var submissions []*Submission
	if err := readCSV(s.Path, &submissions); err != nil {
		logging.Log.Warnf("SUBMISSION: unreadable table %s, starting empty: %v", s.Path, err)
		submissions = nil
	}

	submissions = append(submissions, submission)
	return writeCSV(s.Path, &submissions)
}

func (s *CSVSubmissionStorage) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	empty := []*Submission{}
	return writeCSV(s.Path, &empty)
}

type CSVVoteStorage struct {
	Path string

	mu sync.Mutex
}

func (s *CSVVoteStorage) GetAll(_ context.Context) ([]*Vote, error) {
	var votes []*Vote
	if err := readCSV(s.Path, &votes); err != nil {
		return nil, err
	}
	return votes, nil
}

func (s *CSVVoteStorage) CreateAll(_ context.Context, newVotes []*Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var votes []*Vote
	if err := readCSV(s.Path, &votes); err != nil {
		logging.Log.Warnf("VOTE: unreadable table %s, starting empty: %v", s.Path, err)
		votes = nil
	}

	votes = append(votes, newVotes...)
	return writeCSV(s.Path, &votes)
}

func (s *CSVVoteStorage) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	empty := []*Vote{}
	return writeCSV(s.Path, &empty)
}

func readCSV(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil
		}
		return fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return nil
}

// writeCSV rewrites the full table through a temp file so a crash mid-write
// never leaves a half-written table behind.
func writeCSV(path string, in interface{}) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		logging.Log.Errorf("failed to create temp table for %s: %v", path, err)
		return err
	}

	if err := gocsv.MarshalFile(in, tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		logging.Log.Errorf("failed to write table %s: %v", path, err)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
