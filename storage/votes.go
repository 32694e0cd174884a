package storage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/kodendaal/name-voting/logging"
)

type VoteStorage interface {
	GetAll(ctx context.Context) ([]*Vote, error)
	CreateAll(ctx context.Context, votes []*Vote) error
	DeleteAll(ctx context.Context) error
}

type DynamoVoteStorage struct {
	Client    *dynamodb.Client
	TableName string
}

// dynamoVote adds a random key; votes have no natural identity.
type dynamoVote struct {
	PK string `dynamodbav:"PK"`
	Vote
}

func (s *DynamoVoteStorage) GetAll(ctx context.Context) ([]*Vote, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("VOTE: scan failed: %v", err)
		return nil, err
	}

	var items []*dynamoVote
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		logging.Log.Errorf("VOTE: failed to unmarshal vote list: %v", err)
		return nil, err
	}

	votes := make([]*Vote, 0, len(items))
	for _, item := range items {
		vote := item.Vote
		votes = append(votes, &vote)
	}
	return votes, nil
}

func (s *DynamoVoteStorage) CreateAll(ctx context.Context, votes []*Vote) error {
	for _, vote := range votes {
		id, err := gonanoid.New()
		if err != nil {
			logging.Log.Errorf("VOTE: failed to generate vote key: %v", err)
			return err
		}

		item, err := attributevalue.MarshalMap(&dynamoVote{PK: id, Vote: *vote})
		if err != nil {
			logging.Log.Errorf("VOTE: failed to marshal vote: %v", err)
			return err
		}

		_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: &s.TableName,
			Item:      item,
		})
		if err != nil {
			logging.Log.Errorf("VOTE: failed to create vote: %v", err)
			return err
		}
	}
	return nil
}

func (s *DynamoVoteStorage) DeleteAll(ctx context.Context) error {
	return deleteAllItems(ctx, s.Client, s.TableName, "VOTE")
}

// deleteAllItems scans the whole table and batch-deletes by PK.
func deleteAllItems(ctx context.Context, client *dynamodb.Client, tableName, tag string) error {
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		scanOutput, err := client.Scan(ctx, &dynamodb.ScanInput{
			TableName:            &tableName,
			ExclusiveStartKey:    lastEvaluatedKey,
			ProjectionExpression: aws.String("PK"),
		})
		if err != nil {
			logging.Log.Errorf("%s: scan for delete failed: %v", tag, err)
			return err
		}

		var writeRequests []types.WriteRequest
		for _, item := range scanOutput.Items {
			writeRequests = append(writeRequests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"PK": item["PK"],
					},
				},
			})
		}

		for i := 0; i < len(writeRequests); i += 25 {
			end := i + 25
			if end > len(writeRequests) {
				end = len(writeRequests)
			}
			_, err := client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					tableName: writeRequests[i:end],
				},
			})
			if err != nil {
				logging.Log.Errorf("%s: batch delete failed: %v", tag, err)
				return err
			}
		}

		if scanOutput.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = scanOutput.LastEvaluatedKey
	}

	return nil
}
