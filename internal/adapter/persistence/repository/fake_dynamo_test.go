package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo understands just the expressions the repositories send.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
	err    error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	t := f.table(aws.ToString(in.TableName))
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	existing, exists := t[id]
	cond := aws.ToString(in.ConditionExpression)

	if strings.Contains(cond, "attribute_not_exists(#id)") && exists {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	if strings.Contains(cond, "#version = :expected") {
		want := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value
		if !exists || existing["version"].(*types.AttributeValueMemberN).Value != want {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("version")}
		}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[id]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	parts := strings.SplitN(aws.ToString(in.KeyConditionExpression), " = ", 2)
	attr, placeholder := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	want := in.ExpressionAttributeValues[placeholder].(*types.AttributeValueMemberS).Value

	var items []map[string]types.AttributeValue
	for _, it := range f.table(aws.ToString(in.TableName)) {
		if v, ok := it[attr].(*types.AttributeValueMemberS); ok && v.Value == want {
			items = append(items, it)
		}
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}
