package voting

import (
	"context"
	"fmt"
	"strings"

	"github.com/kodendaal/name-voting/logging"
	"github.com/kodendaal/name-voting/storage"
)

// Registry validates and appends new team name proposals.
type Registry struct {
	submissions storage.SubmissionStorage
	clock       Clock
}

func NewRegistry(submissions storage.SubmissionStorage, clock Clock) *Registry {
	return &Registry{
		submissions: submissions,
		clock:       clock,
	}
}

// SubmitOutcome carries the user-facing result plus the recorded timestamp on
// success.
type SubmitOutcome struct {
	Result
	Timestamp string `json:"timestamp,omitempty"`
}

// Submit trims both inputs, enforces case-insensitive name uniqueness and
// appends the submission. The returned error is non-nil only when persisting
// fails; every validation outcome is a declined Result.
func (r *Registry) Submit(ctx context.Context, name, tag string) (SubmitOutcome, error) {
	name = strings.TrimSpace(name)
	tag = strings.TrimSpace(tag)

	if name == "" {
		return SubmitOutcome{Result: declined("⚠️ Please enter a team name.")}, nil
	}
	if tag == "" {
		return SubmitOutcome{Result: declined("⚠️ Please include an anonymous tag.")}, nil
	}

	// An unreadable table reads as empty rather than blocking submissions.
	existing, err := r.submissions.GetAll(ctx)
	if err != nil {
		logging.Log.Warnf("REGISTRY: unreadable submission store, treating as empty: %v", err)
		existing = nil
	}

	for _, sub := range existing {
		if strings.EqualFold(strings.TrimSpace(sub.Name), name) {
			return SubmitOutcome{
				Result: declined(fmt.Sprintf("⚠️ The name '%s' has already been submitted.", name)),
			}, nil
		}
	}

	timestamp := r.clock.Now().Format(TimestampLayout)
	submission := &storage.Submission{
		Name:      name,
		Tag:       tag,
		Timestamp: timestamp,
	}
	if err := r.submissions.Create(ctx, submission); err != nil {
		return SubmitOutcome{}, err
	}

	logging.Log.Infof("REGISTRY: recorded submission %q (tag %q)", name, tag)
	return SubmitOutcome{
		Result: accepted(fmt.Sprintf(
			"✅ Team name '%s' with tag '%s' submitted successfully at %s!", name, tag, timestamp)),
		Timestamp: timestamp,
	}, nil
}
