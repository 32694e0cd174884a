package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/kodendaal/name-voting/logging"
)

type SubmissionStorage interface {
	GetAll(ctx context.Context) ([]*Submission, error)
	Create(ctx context.Context, submission *Submission) error
	DeleteAll(ctx context.Context) error
}

type DynamoSubmissionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

// dynamoSubmission keys the table by the lower-cased name so a conditional
// put doubles as a uniqueness guard against racing submitters.
type dynamoSubmission struct {
	PK string `dynamodbav:"PK"`
	Submission
}

func (s *DynamoSubmissionStorage) GetAll(ctx context.Context) ([]*Submission, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("SUBMISSION: scan failed: %v", err)
		return nil, err
	}

	var items []*dynamoSubmission
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		logging.Log.Errorf("SUBMISSION: failed to unmarshal submission list: %v", err)
		return nil, err
	}

	submissions := make([]*Submission, 0, len(items))
	for _, item := range items {
		sub := item.Submission
		submissions = append(submissions, &sub)
	}
	return submissions, nil
}

func (s *DynamoSubmissionStorage) Create(ctx context.Context, submission *Submission) error {
	item, err := attributevalue.MarshalMap(&dynamoSubmission{
		PK:         strings.ToLower(submission.Name),
		Submission: *submission,
	})
	if err != nil {
		logging.Log.Errorf("SUBMISSION: failed to marshal submission: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("SUBMISSION: name %q already submitted", submission.Name)
			return ErrSubmissionAlreadyExists
		}
		logging.Log.Errorf("SUBMISSION: failed to create submission: %v", err)
		return err
	}
	return nil
}

func (s *DynamoSubmissionStorage) DeleteAll(ctx context.Context) error {
	return deleteAllItems(ctx, s.Client, s.TableName, "SUBMISSION")
}
