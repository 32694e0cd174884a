package voting

import (
	"context"
	"fmt"
	"time"

	"github.com/kodendaal/name-voting/logging"
	"github.com/kodendaal/name-voting/storage"
)

// LedgerConfig is handed to the ledger at construction; the opening instant
// and the per-session budget are never read from ambient state.
type LedgerConfig struct {
	OpensAt       time.Time
	SessionBudget int
}

// Ledger enforces the opening gate and the per-session vote budget, and
// appends raw vote records. The remaining budget is caller state: it comes in
// as a parameter and goes back out as a return value.
type Ledger struct {
	votes  storage.VoteStorage
	config LedgerConfig
	clock  Clock
}

func NewLedger(votes storage.VoteStorage, config LedgerConfig, clock Clock) *Ledger {
	return &Ledger{
		votes:  votes,
		config: config,
		clock:  clock,
	}
}

// SessionBudget is the number of votes a fresh session starts with.
func (l *Ledger) SessionBudget() int {
	return l.config.SessionBudget
}

// CastVotes records one vote per selected name. Duplicates within a selection
// are recorded as cast, not deduplicated. Every declined check returns the
// unchanged remaining budget; the error is non-nil only when persisting fails.
func (l *Ledger) CastVotes(ctx context.Context, selected []string, remaining int) (int, Result, error) {
	if l.clock.Now().Before(l.config.OpensAt) {
		return remaining, declined(fmt.Sprintf(
			"⚠️ Voting is not open yet. Please come back after %s.",
			l.config.OpensAt.Format(TimestampLayout))), nil
	}

	if len(selected) == 0 {
		return remaining, declined(fmt.Sprintf(
			"⚠️ No names selected. Please choose up to %d.", l.config.SessionBudget)), nil
	}
	if remaining <= 0 {
		return remaining, declined("⚠️ You have no votes remaining."), nil
	}
	if len(selected) > remaining {
		return remaining, declined(fmt.Sprintf(
			"⚠️ You can only vote for %d more name(s).", remaining)), nil
	}

	votes := make([]*storage.Vote, 0, len(selected))
	for _, name := range selected {
		votes = append(votes, &storage.Vote{Name: name})
	}
	if err := l.votes.CreateAll(ctx, votes); err != nil {
		return remaining, Result{}, err
	}

	newRemaining := remaining - len(selected)
	message := "✅ Votes recorded!"
	if len(selected) == 1 {
		message = "✅ Vote recorded!"
	}
	if newRemaining > 0 {
		message += fmt.Sprintf(" You have %d vote(s) left.", newRemaining)
	} else {
		message += " You have no votes left."
	}

	logging.Log.Infof("LEDGER: recorded %d vote(s), %d remaining", len(selected), newRemaining)
	return newRemaining, accepted(message), nil
}
