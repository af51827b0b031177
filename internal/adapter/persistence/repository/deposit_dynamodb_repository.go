package repository

import (
	"context"
	"time"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDepositsTableName = "deal_deposits"
	depositsDealIDIndex      = "deal_id-index"
)

type depositItem struct {
	ID                 string                 `dynamodbav:"id"`
	DealID             string                 `dynamodbav:"deal_id"`
	Amount             float64                `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// DepositDynamoRepository persists Deposit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: deal_id-index (PK: deal_id)
type DepositDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IDepositRepository = (*DepositDynamoRepository)(nil)

func NewDepositDynamoRepository(ddb *dynamodb.Client, tableName string) *DepositDynamoRepository {
	return newDepositDynamoRepository(ddb, tableName)
}

func newDepositDynamoRepository(ddb dynamoAPI, tableName string) *DepositDynamoRepository {
	return &DepositDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultDepositsTableName),
	}
}

func (r *DepositDynamoRepository) Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error) {
	av, err := attributevalue.MarshalMap(toDepositItem(d))
	if err != nil {
		return entities.Deposit{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Deposit{}, err
	}
	return d, nil
}

func (r *DepositDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deposit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deposit{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deposit{}, nil
	}

	var it depositItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Deposit{}, err
	}
	return fromDepositItem(it), nil
}

func (r *DepositDynamoRepository) ListByDealID(ctx context.Context, dealID string) ([]entities.Deposit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositsDealIDIndex),
		KeyConditionExpression: aws.String("deal_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: dealID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Deposit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDepositItem(it))
	}
	return items, nil
}

func toDepositItem(d entities.Deposit) depositItem {
	return depositItem{
		ID:                 d.ID,
		DealID:             d.DealID,
		Amount:             d.Amount,
		Date:               d.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(d.Status),
		ProviderPayload:    d.ProviderPayload,
		ProviderPayloadRaw: string(d.ProviderPayloadRaw),
	}
}

func fromDepositItem(it depositItem) entities.Deposit {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	d := entities.Deposit{
		ID:              it.ID,
		DealID:          it.DealID,
		Amount:          it.Amount,
		Date:            dt,
		Status:          entities.DepositStatus(it.Status),
		ProviderPayload: it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		d.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return d
}
