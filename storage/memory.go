package storage

import (
	"context"
	"sync"
)

// In-memory stores for tests and throwaway runs. Slices keep insertion order,
// which is all the leaderboard relies on.

type MemorySubmissionStorage struct {
	mu          sync.RWMutex
	submissions []*Submission
}

func (s *MemorySubmissionStorage) GetAll(_ context.Context) ([]*Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Submission, len(s.submissions))
	for i, sub := range s.submissions {
		copied := *sub
		out[i] = &copied
	}
	return out, nil
}

func (s *MemorySubmissionStorage) Create(_ context.Context, submission *Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *submission
	s.submissions = append(s.submissions, &copied)
	return nil
}

func (s *MemorySubmissionStorage) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submissions = nil
	return nil
}

type MemoryVoteStorage struct {
	mu    sync.RWMutex
	votes []*Vote
}

func (s *MemoryVoteStorage) GetAll(_ context.Context) ([]*Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Vote, len(s.votes))
	for i, vote := range s.votes {
		copied := *vote
		out[i] = &copied
	}
	return out, nil
}

func (s *MemoryVoteStorage) CreateAll(_ context.Context, votes []*Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, vote := range votes {
		copied := *vote
		s.votes = append(s.votes, &copied)
	}
	return nil
}

func (s *MemoryVoteStorage) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.votes = nil
	return nil
}
