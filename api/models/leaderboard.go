package models

import "github.com/kodendaal/name-voting/voting"

type LeaderboardRow struct {
	Name  string `json:"name"`
	Votes int    `json:"votes"`
}

type LeaderboardResponse struct {
	Rows []LeaderboardRow `json:"rows"`
}

func TransformLeaderboard(rows []voting.Row) LeaderboardResponse {
	out := LeaderboardResponse{Rows: make([]LeaderboardRow, 0, len(rows))}
	for _, row := range rows {
		out.Rows = append(out.Rows, LeaderboardRow{Name: row.Name, Votes: row.Votes})
	}
	return out
}
