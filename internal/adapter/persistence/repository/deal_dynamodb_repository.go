package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDealsTableName = "deals"
	dealsStockNumberIndex = "stock_number-index"
)

type dealItem struct {
	ID          string `dynamodbav:"id"`
	StockNumber string `dynamodbav:"stock_number"`
	Type        string `dynamodbav:"type"`
	Status      string `dynamodbav:"status"`
	Sections    string `dynamodbav:"sections_json"`
	Version     int64  `dynamodbav:"version"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// dealSections is stored as one JSON attribute so a section can grow fields
// without a table change.
type dealSections struct {
	Customer   entities.DealCustomer     `json:"customer"`
	Vehicle    entities.DealVehicle      `json:"vehicle"`
	Trade      entities.TradeIn          `json:"trade"`
	Worksheet  entities.WorksheetInput   `json:"worksheet"`
	Totals     *entities.WorksheetTotals `json:"totals,omitempty"`
	Disclosure entities.Disclosure       `json:"disclosure"`
	Delivery   entities.Delivery         `json:"delivery"`
}

// DealDynamoRepository persists Deal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: stock_number-index (PK: stock_number)
type DealDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IDealRepository = (*DealDynamoRepository)(nil)

func NewDealDynamoRepository(ddb *dynamodb.Client, tableName string) *DealDynamoRepository {
	return newDealDynamoRepository(ddb, tableName)
}

func newDealDynamoRepository(ddb dynamoAPI, tableName string) *DealDynamoRepository {
	return &DealDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultDealsTableName),
	}
}

func (r *DealDynamoRepository) Create(ctx context.Context, d entities.Deal) (entities.Deal, error) {
	if d.Version == 0 {
		d.Version = 1
	}
	av, err := marshalDeal(d)
	if err != nil {
		return entities.Deal{}, err
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
		return entities.Deal{}, err
	}
	return d, nil
}

func (r *DealDynamoRepository) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Deal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Deal{}, nil
	}
	return unmarshalDeal(out.Item)
}

func (r *DealDynamoRepository) ListByStockNumber(ctx context.Context, stockNumber string) ([]entities.Deal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(dealsStockNumberIndex),
		KeyConditionExpression: aws.String("stock_number = :sn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sn": &types.AttributeValueMemberS{Value: stockNumber},
		},
	})
	if err != nil {
		return nil, err
	}

	deals := make([]entities.Deal, 0, len(out.Items))
	for _, raw := range out.Items {
		d, err := unmarshalDeal(raw)
		if err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}
	return deals, nil
}

// Save replaces the deal if its stored version is still expectedVersion.
func (r *DealDynamoRepository) Save(ctx context.Context, d entities.Deal, expectedVersion int64) (entities.Deal, error) {
	d.Version = expectedVersion + 1
	av, err := marshalDeal(d)
	if err != nil {
		return entities.Deal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Deal{}, interfaces.ErrVersionConflict
		}
		return entities.Deal{}, err
	}
	return d, nil
}

func marshalDeal(d entities.Deal) (map[string]types.AttributeValue, error) {
	it, err := toDealItem(d)
	if err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(it)
}

func unmarshalDeal(av map[string]types.AttributeValue) (entities.Deal, error) {
	var it dealItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Deal{}, err
	}
	return fromDealItem(it)
}

func toDealItem(d entities.Deal) (dealItem, error) {
	sections, err := json.Marshal(dealSections{
		Customer:   d.Customer,
		Vehicle:    d.Vehicle,
		Trade:      d.Trade,
		Worksheet:  d.Worksheet,
		Totals:     d.Totals,
		Disclosure: d.Disclosure,
		Delivery:   d.Delivery,
	})
	if err != nil {
		return dealItem{}, err
	}
	return dealItem{
		ID:          d.ID,
		StockNumber: d.StockNumber,
		Type:        string(d.Type),
		Status:      string(d.Status),
		Sections:    string(sections),
		Version:     d.Version,
		CreatedAt:   d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromDealItem(it dealItem) (entities.Deal, error) {
	var s dealSections
	if it.Sections != "" {
		if err := json.Unmarshal([]byte(it.Sections), &s); err != nil {
			return entities.Deal{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Deal{
		ID:          it.ID,
		StockNumber: it.StockNumber,
		Type:        entities.DealType(it.Type),
		Status:      entities.DealStatus(it.Status),
		Customer:    s.Customer,
		Vehicle:     s.Vehicle,
		Trade:       s.Trade,
		Worksheet:   s.Worksheet,
		Totals:      s.Totals,
		Disclosure:  s.Disclosure,
		Delivery:    s.Delivery,
		Version:     it.Version,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
