package repository

import (
	"context"

	"aventura_tours/internal/domain/entities"
	"aventura_tours/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPoliciesTableName = "cancellation_policies"
	policiesNameIndex        = "name-index"
)

type cancellationPolicyItem struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	Description      string `dynamodbav:"description,omitempty"`
	RefundPercentage int    `dynamodbav:"refund_percentage"`
	DaysBeforeTour   int    `dynamodbav:"days_before_tour"`
}

// CancellationPolicyDynamoRepository persists CancellationPolicy entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name), used for the uniqueness pre-check

type CancellationPolicyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICancellationPolicyRepository = (*CancellationPolicyDynamoRepository)(nil)

func NewCancellationPolicyDynamoRepository(ddb *dynamodb.Client) *CancellationPolicyDynamoRepository {
	return &CancellationPolicyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CANCELLATION_POLICIES_TABLE", defaultPoliciesTableName),
	}
}

func (r *CancellationPolicyDynamoRepository) Create(ctx context.Context, p entities.CancellationPolicy) (entities.CancellationPolicy, error) {
	it := toCancellationPolicyItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CancellationPolicy{}, err
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
		return entities.CancellationPolicy{}, err
	}
	return p, nil
}

func (r *CancellationPolicyDynamoRepository) GetByID(ctx context.Context, id string) (entities.CancellationPolicy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CancellationPolicy{}, err
	}
	if len(out.Item) == 0 {
		return entities.CancellationPolicy{}, nil
	}

	var it cancellationPolicyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CancellationPolicy{}, err
	}
	return fromCancellationPolicyItem(it), nil
}

func (r *CancellationPolicyDynamoRepository) GetByName(ctx context.Context, name string) (entities.CancellationPolicy, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(policiesNameIndex),
		KeyConditionExpression: aws.String("#name = :name"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.CancellationPolicy{}, err
	}
	if len(out.Items) == 0 {
		return entities.CancellationPolicy{}, nil
	}

	var it cancellationPolicyItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.CancellationPolicy{}, err
	}
	return fromCancellationPolicyItem(it), nil
}

func (r *CancellationPolicyDynamoRepository) List(ctx context.Context) ([]entities.CancellationPolicy, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CancellationPolicy, 0, len(out.Items))
	for _, raw := range out.Items {
		var it cancellationPolicyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCancellationPolicyItem(it))
	}
	return items, nil
}

func toCancellationPolicyItem(p entities.CancellationPolicy) cancellationPolicyItem {
	return cancellationPolicyItem{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		RefundPercentage: p.RefundPercentage,
		DaysBeforeTour:   p.DaysBeforeTour,
	}
}

func fromCancellationPolicyItem(it cancellationPolicyItem) entities.CancellationPolicy {
	return entities.CancellationPolicy{
		ID:               it.ID,
		Name:             it.Name,
		Description:      it.Description,
		RefundPercentage: it.RefundPercentage,
		DaysBeforeTour:   it.DaysBeforeTour,
	}
}
