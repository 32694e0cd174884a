package models

import "github.com/kodendaal/name-voting/voting"

type SubmitRequest struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

type SubmitResponse struct {
	Accepted  bool   `json:"accepted"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

func TransformSubmitOutcome(outcome voting.SubmitOutcome) SubmitResponse {
	return SubmitResponse{
		Accepted:  outcome.OK,
		Message:   outcome.Message,
		Timestamp: outcome.Timestamp,
	}
}

// NameChoicesResponse repopulates the vote selection widget; ClearSelection
// tells the caller to drop whatever was ticked before the refresh.
type NameChoicesResponse struct {
	Names          []string `json:"names"`
	ClearSelection bool     `json:"clearSelection"`
}
