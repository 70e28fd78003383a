package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobCardsTableName = "job_cards"

type partLineItem struct {
	SKU      string `dynamodbav:"sku"`
	Name     string `dynamodbav:"name"`
	UnitCost int64  `dynamodbav:"unit_cost"`
	Qty      int    `dynamodbav:"qty"`
}

type paymentItem struct {
	Mode        string `dynamodbav:"mode"`
	UPIAmount   int64  `dynamodbav:"upi_amount"`
	UPIAccount  string `dynamodbav:"upi_account,omitempty"`
	CashAmount  int64  `dynamodbav:"cash_amount"`
	CollectedBy string `dynamodbav:"collected_by,omitempty"`
}

type jobCardItem struct {
	ID                  string         `dynamodbav:"id"`
	TicketNo            string         `dynamodbav:"ticket_no"`
	VehicleRegistration string         `dynamodbav:"vehicle_registration"`
	CustomerName        string         `dynamodbav:"customer_name"`
	Phone               string         `dynamodbav:"phone"`
	Showroom            string         `dynamodbav:"showroom,omitempty"`
	RaisedBy            string         `dynamodbav:"raised_by,omitempty"`
	AssignedServiceman  string         `dynamodbav:"assigned_serviceman,omitempty"`
	Problem             string         `dynamodbav:"problem"`
	Parts               []partLineItem `dynamodbav:"parts"`
	LaborCharge         int64          `dynamodbav:"labor_charge"`
	PartsCharge         int64          `dynamodbav:"parts_charge"`
	TotalCharge         int64          `dynamodbav:"total_charge"`
	Status              string         `dynamodbav:"status"`
	Payment             *paymentItem   `dynamodbav:"payment,omitempty"`
	CreatedAt           string         `dynamodbav:"created_at"`
	ClosingTime         string         `dynamodbav:"closing_time,omitempty"`
	Version             int64          `dynamodbav:"version"`
}

// JobCardDynamoRepository persists JobCard aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Concurrency model: every save is a conditional PutItem guarded by
// "#version = :expected". DynamoDB rejects the write atomically when another
// terminal committed first, which is surfaced as interfaces.ErrVersionConflict
// with no partial effects.

type JobCardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobCardRepository = (*JobCardDynamoRepository)(nil)

func NewJobCardDynamoRepository(ddb *dynamodb.Client) *JobCardDynamoRepository {
	return &JobCardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_CARDS_TABLE", defaultJobCardsTableName),
	}
}

func (r *JobCardDynamoRepository) Create(ctx context.Context, j entities.JobCard) (entities.JobCard, error) {
	av, err := attributevalue.MarshalMap(toJobCardItem(j))
	if err != nil {
		return entities.JobCard{}, err
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
		return entities.JobCard{}, err
	}
	return j, nil
}

func (r *JobCardDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobCard, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobCard{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobCard{}, nil
	}

	var it jobCardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobCard{}, err
	}
	return fromJobCardItem(it), nil
}

// Save persists the mutated copy with version expectedVersion+1, guarded by a
// compare-and-swap on the stored version.
func (r *JobCardDynamoRepository) Save(ctx context.Context, j entities.JobCard, expectedVersion int64) (entities.JobCard, error) {
	j.Version = expectedVersion + 1

	av, err := attributevalue.MarshalMap(toJobCardItem(j))
	if err != nil {
		return entities.JobCard{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: intToString(expectedVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.JobCard{}, interfaces.ErrVersionConflict
		}
		return entities.JobCard{}, err
	}
	return j, nil
}

func (r *JobCardDynamoRepository) List(ctx context.Context, filter interfaces.JobCardFilter) ([]entities.JobCard, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if filter.Status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(filter.Status)},
		}
	}

	jobs := make([]entities.JobCard, 0)
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it jobCardItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			j := fromJobCardItem(it)
			if matchesQuery(j, filter.Query) {
				jobs = append(jobs, j)
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	// Newest first; equal timestamps tie-break by id so the ordering is
	// stable across re-queries.
	sort.Slice(jobs, func(a, b int) bool {
		if jobs[a].CreatedAt.Equal(jobs[b].CreatedAt) {
			return jobs[a].ID < jobs[b].ID
		}
		return jobs[a].CreatedAt.After(jobs[b].CreatedAt)
	})
	return jobs, nil
}

func matchesQuery(j entities.JobCard, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{j.CustomerName, j.VehicleRegistration, j.Phone, j.TicketNo} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func toJobCardItem(j entities.JobCard) jobCardItem {
	parts := make([]partLineItem, 0, len(j.Parts))
	for _, line := range j.Parts {
		parts = append(parts, partLineItem{
			SKU:      line.SKU,
			Name:     line.Name,
			UnitCost: int64(line.UnitCost),
			Qty:      line.Qty,
		})
	}

	it := jobCardItem{
		ID:                  j.ID,
		TicketNo:            j.TicketNo,
		VehicleRegistration: j.VehicleRegistration,
		CustomerName:        j.CustomerName,
		Phone:               j.Phone,
		Showroom:            j.Showroom,
		RaisedBy:            j.RaisedBy,
		AssignedServiceman:  j.AssignedServiceman,
		Problem:             j.Problem,
		Parts:               parts,
		LaborCharge:         int64(j.LaborCharge),
		PartsCharge:         int64(j.PartsCharge),
		TotalCharge:         int64(j.TotalCharge),
		Status:              string(j.Status),
		CreatedAt:           j.CreatedAt.UTC().Format(time.RFC3339Nano),
		Version:             j.Version,
	}
	if j.Payment != nil {
		it.Payment = &paymentItem{
			Mode:        string(j.Payment.Mode),
			UPIAmount:   int64(j.Payment.UPIAmount),
			UPIAccount:  j.Payment.UPIAccount,
			CashAmount:  int64(j.Payment.CashAmount),
			CollectedBy: j.Payment.CollectedBy,
		}
	}
	if j.ClosingTime != nil {
		it.ClosingTime = j.ClosingTime.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromJobCardItem(it jobCardItem) entities.JobCard {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	parts := make([]entities.PartLine, 0, len(it.Parts))
	for _, line := range it.Parts {
		parts = append(parts, entities.PartLine{
			SKU:      line.SKU,
			Name:     line.Name,
			UnitCost: entities.Money(line.UnitCost),
			Qty:      line.Qty,
		})
	}

	j := entities.JobCard{
		ID:                  it.ID,
		TicketNo:            it.TicketNo,
		VehicleRegistration: it.VehicleRegistration,
		CustomerName:        it.CustomerName,
		Phone:               it.Phone,
		Showroom:            it.Showroom,
		RaisedBy:            it.RaisedBy,
		AssignedServiceman:  it.AssignedServiceman,
		Problem:             it.Problem,
		Parts:               parts,
		LaborCharge:         entities.Money(it.LaborCharge),
		PartsCharge:         entities.Money(it.PartsCharge),
		TotalCharge:         entities.Money(it.TotalCharge),
		Status:              entities.JobStatus(it.Status),
		CreatedAt:           createdAt,
		Version:             it.Version,
	}
	if it.Payment != nil {
		j.Payment = &entities.Payment{
			Mode:        entities.PaymentMode(it.Payment.Mode),
			UPIAmount:   entities.Money(it.Payment.UPIAmount),
			UPIAccount:  it.Payment.UPIAccount,
			CashAmount:  entities.Money(it.Payment.CashAmount),
			CollectedBy: it.Payment.CollectedBy,
		}
	}
	if it.ClosingTime != "" {
		closingTime, err := time.Parse(time.RFC3339Nano, it.ClosingTime)
		if err == nil {
			j.ClosingTime = &closingTime
		}
	}
	return j
}
