package api

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/kodendaal/name-voting/api/controllers"
	"github.com/kodendaal/name-voting/api/transport"
	"github.com/kodendaal/name-voting/logging"
	"github.com/kodendaal/name-voting/storage"
	"github.com/kodendaal/name-voting/voting"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	submissionStorage, voteStorage := s.buildStorage()

	clock := voting.SystemClock{}
	registry := voting.NewRegistry(submissionStorage, clock)
	ledger := voting.NewLedger(voteStorage, voting.LedgerConfig{
		OpensAt:       s.config.OpensAt,
		SessionBudget: s.config.SessionBudget,
	}, clock)
	aggregator := voting.NewAggregator(submissionStorage, voteStorage)

	//Register controllers
	submissionsController := controllers.NewSubmissionsController(registry, aggregator)
	submissionsController.RegisterRoutes(r)
	votingController := controllers.NewVotingController(ledger)
	votingController.RegisterRoutes(r)
	leaderboardController := controllers.NewLeaderboardController(aggregator)
	leaderboardController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(submissionStorage, voteStorage)
	adminController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

func (s *Server) buildStorage() (storage.SubmissionStorage, storage.VoteStorage) {
	switch s.config.Driver {
	case "csv":
		logging.Log.Infof("Using CSV tables %s / %s", s.config.SubmissionsPath, s.config.VotesPath)
		return &storage.CSVSubmissionStorage{Path: s.config.SubmissionsPath},
			&storage.CSVVoteStorage{Path: s.config.VotesPath}

	case "dynamo":
		cfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			logging.Log.Errorf("failed to load AWS config: %v", err)
			panic("failed to load AWS config")
		}
		dynamoClient := dynamodb.NewFromConfig(cfg)
		return &storage.DynamoSubmissionStorage{
				Client:    dynamoClient,
				TableName: s.config.TableNameSubmissions,
			}, &storage.DynamoVoteStorage{
				Client:    dynamoClient,
				TableName: s.config.TableNameVotes,
			}

	case "memory":
		logging.Log.Warn("Using in-memory storage, nothing will be persisted")
		return &storage.MemorySubmissionStorage{}, &storage.MemoryVoteStorage{}

	default:
		db, err := storage.OpenSQLite(s.config.SQLitePath)
		if err != nil {
			logging.Log.Errorf("failed to open sqlite storage: %v", err)
			panic("failed to open sqlite storage")
		}
		logging.Log.Infof("Using sqlite database %s", s.config.SQLitePath)
		return &storage.SQLiteSubmissionStorage{DB: db}, &storage.SQLiteVoteStorage{DB: db}
	}
}

// startLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// startLocal starts a normal HTTP server
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
