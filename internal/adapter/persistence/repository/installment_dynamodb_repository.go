package repository

import (
	"context"
	"errors"
	"time"

	"aventura_tours/internal/domain/entities"
	"aventura_tours/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultInstallmentsTableName = "installments"
	installmentsReservationIndex = "reservation_id-index"

	dueDateLayout = "2006-01-02"
)

type installmentItem struct {
	ID            string `dynamodbav:"id"`
	ReservationID string `dynamodbav:"reservation_id"`
	Amount        string `dynamodbav:"amount"`
	DueDate       string `dynamodbav:"due_date,omitempty"`
	PaymentID     string `dynamodbav:"payment_id,omitempty"`
	Status        string `dynamodbav:"status"`
	ReminderSent  bool   `dynamodbav:"reminder_sent"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// InstallmentDynamoRepository persists PaymentInstallment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reservation_id-index (PK: reservation_id)
//
// Amounts are stored as decimal strings to keep the 2-decimal scale exact;
// due dates are stored as ISO dates so lexicographic comparison matches
// chronological order in the batch-job filters.

type InstallmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstallmentRepository = (*InstallmentDynamoRepository)(nil)

func NewInstallmentDynamoRepository(ddb *dynamodb.Client) *InstallmentDynamoRepository {
	return &InstallmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTALLMENTS_TABLE", defaultInstallmentsTableName),
	}
}

func (r *InstallmentDynamoRepository) Create(ctx context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error) {
	it := toInstallmentItem(inst)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentInstallment{}, err
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
		return entities.PaymentInstallment{}, err
	}
	return inst, nil
}

func (r *InstallmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentInstallment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentInstallment{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentInstallment{}, nil
	}

	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentInstallment{}, err
	}
	return fromInstallmentItem(it), nil
}

func (r *InstallmentDynamoRepository) ListByReservationID(ctx context.Context, reservationID string) ([]entities.PaymentInstallment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(installmentsReservationIndex),
		KeyConditionExpression: aws.String("reservation_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: reservationID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInstallments(out.Items)
}

// ListOpen returns every non-terminal installment. The batch jobs run per
// operator schedule over modest volumes, so a filtered Scan is acceptable
// here.
func (r *InstallmentDynamoRepository) ListOpen(ctx context.Context) ([]entities.PaymentInstallment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status IN (:pending, :overdue)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusPending)},
			":overdue": &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusOverdue)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInstallments(out.Items)
}

func (r *InstallmentDynamoRepository) ListOpenDueBefore(ctx context.Context, cutoff time.Time) ([]entities.PaymentInstallment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status IN (:pending, :overdue) AND #due_date < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status":   "status",
			"#due_date": "due_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusPending)},
			":overdue": &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusOverdue)},
			":cutoff":  &types.AttributeValueMemberS{Value: cutoff.UTC().Format(dueDateLayout)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalInstallments(out.Items)
}

func (r *InstallmentDynamoRepository) Update(ctx context.Context, inst entities.PaymentInstallment) (entities.PaymentInstallment, error) {
	it := toInstallmentItem(inst)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentInstallment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentInstallment{}, nil
		}
		return entities.PaymentInstallment{}, err
	}
	return inst, nil
}

func (r *InstallmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func unmarshalInstallments(raw []map[string]types.AttributeValue) ([]entities.PaymentInstallment, error) {
	items := make([]entities.PaymentInstallment, 0, len(raw))
	for _, r := range raw {
		var it installmentItem
		if err := attributevalue.UnmarshalMap(r, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInstallmentItem(it))
	}
	return items, nil
}

func toInstallmentItem(inst entities.PaymentInstallment) installmentItem {
	it := installmentItem{
		ID:            inst.ID,
		ReservationID: inst.ReservationID,
		Amount:        inst.Amount.StringFixed(2),
		PaymentID:     inst.PaymentID,
		Status:        string(inst.Status),
		ReminderSent:  inst.ReminderSent,
		CreatedAt:     inst.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if inst.DueDate != nil {
		it.DueDate = inst.DueDate.UTC().Format(dueDateLayout)
	}
	return it
}

func fromInstallmentItem(it installmentItem) entities.PaymentInstallment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := decimal.NewFromString(it.Amount)
	inst := entities.PaymentInstallment{
		ID:            it.ID,
		ReservationID: it.ReservationID,
		Amount:        amount,
		PaymentID:     it.PaymentID,
		Status:        entities.InstallmentStatus(it.Status),
		ReminderSent:  it.ReminderSent,
		CreatedAt:     createdAt,
	}
	if it.DueDate != "" {
		if due, err := time.Parse(dueDateLayout, it.DueDate); err == nil {
			inst.DueDate = &due
		}
	}
	return inst
}
