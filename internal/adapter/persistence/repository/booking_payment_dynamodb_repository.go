package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
	"github.com/tukang-design/tukang-api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsBookingIDIndex = "booking_id-index"

type bookingPaymentItem struct {
	ID        string `dynamodbav:"id"`
	BookingID string `dynamodbav:"booking_id"`
	Amount    string `dynamodbav:"amount"`
	Date      string `dynamodbav:"date"`
	Status    string `dynamodbav:"status"`

	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// BookingPaymentDynamoRepository persists BookingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)

type BookingPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingPaymentRepository = (*BookingPaymentDynamoRepository)(nil)

func NewBookingPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *BookingPaymentDynamoRepository {
	return &BookingPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BookingPaymentDynamoRepository) Create(ctx context.Context, p entities.BookingPayment) (entities.BookingPayment, error) {
	it := toBookingPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BookingPayment{}, err
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
		return entities.BookingPayment{}, err
	}
	return p, nil
}

func (r *BookingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BookingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookingPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BookingPayment{}, nil
	}

	var it bookingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BookingPayment{}, err
	}
	return fromBookingPaymentItem(it), nil
}

func (r *BookingPaymentDynamoRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.BookingPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BookingPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingPaymentItem(it))
	}
	return items, nil
}

func toBookingPaymentItem(p entities.BookingPayment) bookingPaymentItem {
	return bookingPaymentItem{
		ID:                 p.ID,
		BookingID:          p.BookingID,
		Amount:             floatToString(p.Amount),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromBookingPaymentItem(it bookingPaymentItem) entities.BookingPayment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.BookingPayment{
		ID:                 it.ID,
		BookingID:          it.BookingID,
		Amount:             amount,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
