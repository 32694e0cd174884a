package voting

import (
	"context"
	"sort"
	"strings"

	"github.com/kodendaal/name-voting/logging"
	"github.com/kodendaal/name-voting/storage"
)

// Row is one leaderboard entry, derived on every read and never stored.
type Row struct {
	Name  string `json:"name"`
	Votes int    `json:"votes"`
}

// Aggregator joins submissions and votes into the ranked leaderboard. It
// re-reads both stores on every call; an unreadable store reads as empty.
type Aggregator struct {
	submissions storage.SubmissionStorage
	votes       storage.VoteStorage
}

func NewAggregator(submissions storage.SubmissionStorage, votes storage.VoteStorage) *Aggregator {
	return &Aggregator{
		submissions: submissions,
		votes:       votes,
	}
}

// Leaderboard counts votes per name (exact match on the stored string) for
// every submitted name, appends orphan voted names that have no submission,
// and sorts by votes descending. Ties keep first-seen submission order, with
// orphans after.
func (a *Aggregator) Leaderboard(ctx context.Context) []Row {
	names := a.submittedNames(ctx)

	votes, err := a.votes.GetAll(ctx)
	if err != nil {
		logging.Log.Warnf("AGGREGATOR: unreadable vote store, treating as empty: %v", err)
		votes = nil
	}

	counts := make(map[string]int, len(names))
	for _, vote := range votes {
		counts[vote.Name]++
	}

	known := make(map[string]bool, len(names))
	rows := make([]Row, 0, len(names))
	for _, name := range names {
		known[name] = true
		rows = append(rows, Row{Name: name, Votes: counts[name]})
	}

	// Orphan votes: names voted for without a submission record still get a
	// row, in the order first encountered among the votes.
	for _, vote := range votes {
		if known[vote.Name] {
			continue
		}
		known[vote.Name] = true
		rows = append(rows, Row{Name: vote.Name, Votes: counts[vote.Name]})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Votes > rows[j].Votes
	})
	return rows
}

// NameChoices returns the distinct submitted names in first-seen order, for
// repopulating the selection widget.
func (a *Aggregator) NameChoices(ctx context.Context) []string {
	return a.submittedNames(ctx)
}

func (a *Aggregator) submittedNames(ctx context.Context) []string {
	submissions, err := a.submissions.GetAll(ctx)
	if err != nil {
		logging.Log.Warnf("AGGREGATOR: unreadable submission store, treating as empty: %v", err)
		submissions = nil
	}

	seen := make(map[string]bool, len(submissions))
	names := make([]string, 0, len(submissions))
	for _, sub := range submissions {
		if strings.TrimSpace(sub.Name) == "" || seen[sub.Name] {
			continue
		}
		seen[sub.Name] = true
		names = append(names, sub.Name)
	}
	return names
}
