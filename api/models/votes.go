package models

type CastVotesRequest struct {
	Names          []string `json:"names"`
	VotesRemaining *int     `json:"votesRemaining"`
}

type CastVotesResponse struct {
	Accepted       bool   `json:"accepted"`
	VotesRemaining int    `json:"votesRemaining"`
	Message        string `json:"message"`
}

// SessionResponse mints the client-held vote budget for a fresh session. The
// budget lives with the client; the server never tracks it per session.
type SessionResponse struct {
	SessionID      string `json:"sessionId"`
	VotesRemaining int    `json:"votesRemaining"`
}
