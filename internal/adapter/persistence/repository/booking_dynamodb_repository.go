package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/tukang-design/tukang-api/internal/domain/entities"
	"github.com/tukang-design/tukang-api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const bookingsStatusIndex = "status-index"

type bookingItem struct {
	ID            string `dynamodbav:"id"`
	SubmissionID  string `dynamodbav:"submission_id,omitempty"`
	Name          string `dynamodbav:"name"`
	Email         string `dynamodbav:"email"`
	Company       string `dynamodbav:"company,omitempty"`
	Phone         string `dynamodbav:"phone,omitempty"`
	Region        string `dynamodbav:"region"`
	DepositAmount string `dynamodbav:"deposit_amount"`
	Status        string `dynamodbav:"status"`

	FollowUpSent   bool   `dynamodbav:"follow_up_sent"`
	FollowUpCount  int    `dynamodbav:"follow_up_count"`
	LastFollowUpAt string `dynamodbav:"last_follow_up_at,omitempty"`

	SubmittedAt string `dynamodbav:"submitted_at"`
	// SubmittedAtUnix duplicates SubmittedAt as epoch seconds so the
	// follow-up scan can range-filter numerically; RFC3339Nano strings do
	// not compare reliably in a FilterExpression.
	SubmittedAtUnix int64  `dynamodbav:"submitted_at_unix"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// The follow-up scan queries the status index for pending_payment and
// filters on age and the follow_up_sent flag server-side.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client, tableName string) *BookingDynamoRepository {
	return &BookingDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListPendingFollowUps(ctx context.Context, submittedBefore time.Time) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		FilterExpression:       aws.String("#submitted_at_unix < :cutoff AND (attribute_not_exists(#follow_up_sent) OR #follow_up_sent = :false)"),
		ExpressionAttributeNames: map[string]string{
			"#status":            "status",
			"#submitted_at_unix": "submitted_at_unix",
			"#follow_up_sent":    "follow_up_sent",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.BookingStatusPendingPayment)},
			":cutoff": &types.AttributeValueMemberN{Value: strconv.FormatInt(submittedBefore.Unix(), 10)},
			":false":  &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		return nil, err
	}

	bookings := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bookings = append(bookings, fromBookingItem(it))
	}
	return bookings, nil
}

// MarkFollowUpSent sets the flag exactly once. A booking already marked is
// returned as-is, so scan re-runs cannot double-mark.
func (r *BookingDynamoRepository) MarkFollowUpSent(ctx context.Context, id string, at time.Time) (entities.Booking, error) {
	now := at.UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#follow_up_sent) OR #follow_up_sent = :false)"),
		UpdateExpression:    aws.String("SET #follow_up_sent = :true, #follow_up_count = if_not_exists(#follow_up_count, :zero) + :one, #last_follow_up_at = :now, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#follow_up_sent":    "follow_up_sent",
			"#follow_up_count":   "follow_up_count",
			"#last_follow_up_at": "last_follow_up_at",
			"#updated_at":        "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":zero":  &types.AttributeValueMemberN{Value: "0"},
			":one":   &types.AttributeValueMemberN{Value: "1"},
			":now":   &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.GetByID(ctx, id)
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) IncrementFollowUpCount(ctx context.Context, id string, at time.Time) (entities.Booking, error) {
	now := at.UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #follow_up_count = if_not_exists(#follow_up_count, :zero) + :one, #last_follow_up_at = :now, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#follow_up_count":   "follow_up_count",
			"#last_follow_up_at": "last_follow_up_at",
			"#updated_at":        "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":one":  &types.AttributeValueMemberN{Value: "1"},
			":now":  &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	it := bookingItem{
		ID:              b.ID,
		SubmissionID:    b.SubmissionID,
		Name:            b.Contact.Name,
		Email:           b.Contact.Email,
		Company:         b.Contact.Company,
		Phone:           b.Contact.Phone,
		Region:          b.Region,
		DepositAmount:   floatToString(b.DepositAmount),
		Status:          string(b.Status),
		FollowUpSent:    b.FollowUpSent,
		FollowUpCount:   b.FollowUpCount,
		SubmittedAt:     b.SubmittedAt.UTC().Format(time.RFC3339Nano),
		SubmittedAtUnix: b.SubmittedAt.UTC().Unix(),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if b.LastFollowUpAt != nil {
		it.LastFollowUpAt = b.LastFollowUpAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromBookingItem(it bookingItem) entities.Booking {
	deposit, _ := strconv.ParseFloat(it.DepositAmount, 64)
	submittedAt, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	b := entities.Booking{
		ID:           it.ID,
		SubmissionID: it.SubmissionID,
		Contact: entities.Contact{
			Name:    it.Name,
			Email:   it.Email,
			Company: it.Company,
			Phone:   it.Phone,
		},
		Region:        it.Region,
		DepositAmount: deposit,
		Status:        entities.BookingStatus(it.Status),
		FollowUpSent:  it.FollowUpSent,
		FollowUpCount: it.FollowUpCount,
		SubmittedAt:   submittedAt,
		UpdatedAt:     updatedAt,
	}
	if it.LastFollowUpAt != "" {
		if at, err := time.Parse(time.RFC3339Nano, it.LastFollowUpAt); err == nil {
			b.LastFollowUpAt = &at
		}
	}
	return b
}
