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

const submissionsStatusIndex = "status-index"

type goalItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Price       string `dynamodbav:"price"`
}

type featureItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Price       string `dynamodbav:"price"`
	Complexity  string `dynamodbav:"complexity,omitempty"`
	Required    bool   `dynamodbav:"required"`
}

type submissionItem struct {
	ID               string        `dynamodbav:"id"`
	Name             string        `dynamodbav:"name"`
	Email            string        `dynamodbav:"email"`
	Company          string        `dynamodbav:"company,omitempty"`
	Phone            string        `dynamodbav:"phone,omitempty"`
	SelectedGoals    []goalItem    `dynamodbav:"selected_goals,omitempty"`
	SelectedFeatures []featureItem `dynamodbav:"selected_features,omitempty"`
	TotalPrice       string        `dynamodbav:"total_price"`
	Region           string        `dynamodbav:"region"`
	Timeline         string        `dynamodbav:"timeline,omitempty"`
	ProjectType      string        `dynamodbav:"project_type,omitempty"`
	ProjectBrief     string        `dynamodbav:"project_brief,omitempty"`
	Status           string        `dynamodbav:"status"`
	SubmittedAt      string        `dynamodbav:"submitted_at"`
	UpdatedAt        string        `dynamodbav:"updated_at"`
}

// SubmissionDynamoRepository persists Submission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)

type SubmissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubmissionRepository = (*SubmissionDynamoRepository)(nil)

func NewSubmissionDynamoRepository(ddb *dynamodb.Client, tableName string) *SubmissionDynamoRepository {
	return &SubmissionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SubmissionDynamoRepository) Create(ctx context.Context, s entities.Submission) (entities.Submission, error) {
	it := toSubmissionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Submission{}, err
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
		return entities.Submission{}, err
	}
	return s, nil
}

func (r *SubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Submission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Submission{}, err
	}
	if len(out.Item) == 0 {
		return entities.Submission{}, nil
	}

	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Submission{}, err
	}
	return fromSubmissionItem(it), nil
}

func (r *SubmissionDynamoRepository) ListByStatus(ctx context.Context, status entities.SubmissionStatus) ([]entities.Submission, error) {
	var items []map[string]types.AttributeValue

	if status == "" {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName: aws.String(r.tableName),
		})
		if err != nil {
			return nil, err
		}
		items = out.Items
	} else {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(submissionsStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		})
		if err != nil {
			return nil, err
		}
		items = out.Items
	}

	submissions := make([]entities.Submission, 0, len(items))
	for _, raw := range items {
		var it submissionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		submissions = append(submissions, fromSubmissionItem(it))
	}
	return submissions, nil
}

func (r *SubmissionDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.SubmissionStatus) (entities.Submission, error) {
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
			return entities.Submission{}, nil
		}
		return entities.Submission{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Submission{}, nil
	}

	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Submission{}, err
	}
	return fromSubmissionItem(it), nil
}

func toSubmissionItem(s entities.Submission) submissionItem {
	goals := make([]goalItem, 0, len(s.SelectedGoals))
	for _, g := range s.SelectedGoals {
		goals = append(goals, goalItem{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Price:       floatToString(g.Price),
		})
	}
	features := make([]featureItem, 0, len(s.SelectedFeatures))
	for _, f := range s.SelectedFeatures {
		features = append(features, featureItem{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			Price:       floatToString(f.Price),
			Complexity:  string(f.Complexity),
			Required:    f.Required,
		})
	}
	return submissionItem{
		ID:               s.ID,
		Name:             s.Contact.Name,
		Email:            s.Contact.Email,
		Company:          s.Contact.Company,
		Phone:            s.Contact.Phone,
		SelectedGoals:    goals,
		SelectedFeatures: features,
		TotalPrice:       floatToString(s.TotalPrice),
		Region:           s.Region,
		Timeline:         s.Timeline,
		ProjectType:      s.ProjectType,
		ProjectBrief:     s.ProjectBrief,
		Status:           string(s.Status),
		SubmittedAt:      s.SubmittedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSubmissionItem(it submissionItem) entities.Submission {
	goals := make([]entities.Goal, 0, len(it.SelectedGoals))
	for _, g := range it.SelectedGoals {
		price, _ := strconv.ParseFloat(g.Price, 64)
		goals = append(goals, entities.Goal{
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Price:       price,
		})
	}
	features := make([]entities.Feature, 0, len(it.SelectedFeatures))
	for _, f := range it.SelectedFeatures {
		price, _ := strconv.ParseFloat(f.Price, 64)
		features = append(features, entities.Feature{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			Price:       price,
			Complexity:  entities.FeatureComplexity(f.Complexity),
			Required:    f.Required,
		})
	}
	totalPrice, _ := strconv.ParseFloat(it.TotalPrice, 64)
	submittedAt, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Submission{
		ID: it.ID,
		Contact: entities.Contact{
			Name:    it.Name,
			Email:   it.Email,
			Company: it.Company,
			Phone:   it.Phone,
		},
		SelectedGoals:    goals,
		SelectedFeatures: features,
		TotalPrice:       totalPrice,
		Region:           it.Region,
		Timeline:         it.Timeline,
		ProjectType:      it.ProjectType,
		ProjectBrief:     it.ProjectBrief,
		Status:           entities.SubmissionStatus(it.Status),
		SubmittedAt:      submittedAt,
		UpdatedAt:        updatedAt,
	}
}
