package api

import (
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/kodendaal/name-voting/logging"
	"github.com/kodendaal/name-voting/voting"
)

type Config struct {
	StorageConfig
	ServerConfig
	VotingConfig
}

type StorageConfig struct {
	// Driver selects the backing store: sqlite (default), csv, dynamo, memory.
	Driver string

	SubmissionsPath string
	VotesPath       string

	SQLitePath string

	TableNameSubmissions string
	TableNameVotes       string
}

type ServerConfig struct {
	Port int
}

type VotingConfig struct {
	// OpensAt is the fixed instant before which every cast is declined.
	OpensAt time.Time
	// SessionBudget is the number of votes a fresh session may cast.
	SessionBudget int
}

var settingsOnce sync.Once

func ReadConfig() *Config {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("storage.submissionsPath", "submissions.csv")
	viper.SetDefault("storage.votesPath", "votes.csv")
	viper.SetDefault("storage.sqlitePath", "name-voting.db")
	viper.SetDefault("storage.tableNameSubmissions", "TeamNameSubmissions")
	viper.SetDefault("storage.tableNameVotes", "TeamNameVotes")
	viper.SetDefault("voting.opensAt", "2025-04-02 20:38:00")
	viper.SetDefault("voting.sessionBudget", 3)

	var conf = &Config{
		StorageConfig: StorageConfig{
			Driver:               viper.GetString("storage.driver"),
			SubmissionsPath:      viper.GetString("storage.submissionsPath"),
			VotesPath:            viper.GetString("storage.votesPath"),
			SQLitePath:           viper.GetString("storage.sqlitePath"),
			TableNameSubmissions: viper.GetString("storage.tableNameSubmissions"),
			TableNameVotes:       viper.GetString("storage.tableNameVotes"),
		},
		ServerConfig: ServerConfig{
			Port: viper.GetInt("server.port"),
		},
		VotingConfig: VotingConfig{
			OpensAt:       parseOpensAt(viper.GetString("voting.opensAt")),
			SessionBudget: viper.GetInt("voting.sessionBudget"),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func parseOpensAt(value string) time.Time {
	opensAt, err := time.ParseInLocation(voting.TimestampLayout, value, time.Local)
	if err != nil {
		logging.Log.Fatalf("invalid voting.opensAt %q: %v", value, err)
	}
	return opensAt
}
