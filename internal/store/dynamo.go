package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// dynamoEntry is the stored item shape. The table's partition key is the
// exact term string; lookups are strict equality with no normalization.
type dynamoEntry struct {
	Term       string  `dynamodbav:"term"`
	Definition *string `dynamodbav:"definition"`
}

// dynamoAPI is the slice of the DynamoDB client used by this package.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Dynamo looks up glossary entries in a DynamoDB table.
type Dynamo struct {
	client    dynamoAPI
	tableName string
}

// NewDynamo creates a Dynamo store backed by the default AWS config chain.
func NewDynamo(ctx context.Context, tableName string) (*Dynamo, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Dynamo{
		client:    dynamodb.NewFromConfig(cfg),
		tableName: tableName,
	}, nil
}

// GetDefinition fetches the definition stored for term.
// Returns ErrNotFound when the table has no item for the term. A found item
// without a string definition attribute is malformed data and reported as a
// fault, not as absence.
func (d *Dynamo) GetDefinition(ctx context.Context, term string) (string, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"term": &types.AttributeValueMemberS{Value: term},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to query table %s: %w", d.tableName, err)
	}

	if len(out.Item) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, term)
	}

	var entry dynamoEntry
	if err := attributevalue.UnmarshalMap(out.Item, &entry); err != nil {
		return "", fmt.Errorf("malformed item for term %q: %w", term, err)
	}
	if entry.Definition == nil {
		return "", fmt.Errorf("item for term %q has no definition attribute", term)
	}

	return *entry.Definition, nil
}
