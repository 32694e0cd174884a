// @title Team Name Voting API
// @version 1.0
// @description Backend API for team name submissions, voting and the leaderboard

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	_ "github.com/kodendaal/name-voting/docs"

	"github.com/spf13/viper"

	"github.com/kodendaal/name-voting/api"
	"github.com/kodendaal/name-voting/logging"
)

func main() {
	logging.BootstrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Warnf("No config file found, using defaults: %v", err)
	}

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
