package helpers

import (
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// RenderCounter tracks how many times each draft has been rendered, with
// DynamoDB as the backend.
type RenderCounter struct {
	tableName string
	svc       *dynamodb.DynamoDB
	mu        sync.Mutex
}

// NewRenderCounter creates a new RenderCounter instance with DynamoDB as the
// backend.
func NewRenderCounter(sess *session.Session, tableName string) (*RenderCounter, error) {
	svc := dynamodb.New(sess)
	return &RenderCounter{
		tableName: tableName,
		svc:       svc,
	}, nil
}

// Increment bumps the render count for a draft slug, creating the item on
// first render.
func (c *RenderCounter) Increment(slug string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]*dynamodb.AttributeValue{
			"slug": {S: aws.String(slug)},
		},
		UpdateExpression: aws.String("SET #renders = if_not_exists(#renders, :start) + :inc"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":start": {N: aws.String("0")},
			":inc":   {N: aws.String("1")},
		},
		ExpressionAttributeNames: map[string]*string{
			"#renders": aws.String("renders"),
		},
		ReturnValues: aws.String("UPDATED_NEW"),
	}

	_, err := c.svc.UpdateItem(input)
	if err != nil {
		return err
	}

	return nil
}

// Value returns the render count stored for a slug, or "" when the slug has
// never been rendered.
func (c *RenderCounter) Value(slug string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	getInput := &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]*dynamodb.AttributeValue{
			"slug": {S: aws.String(slug)},
		},
	}

	result, err := c.svc.GetItem(getInput)
	if err != nil {
		return "", err
	}

	if len(result.Item) > 0 {
		val := result.Item["renders"].N
		if val != nil {
			return *val, nil
		}
	}

	return "", nil
}
