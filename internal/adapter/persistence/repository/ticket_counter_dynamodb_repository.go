package repository

import (
	"context"
	"fmt"
	"strconv"

	"jobcard_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCountersTableName = "counters"
	defaultTicketPrefix      = "JC"
	jobTicketCounterName     = "job_ticket_no"
)

// TicketCounterDynamoRepository allocates human-facing ticket numbers from a
// DynamoDB atomic counter.
//
// Table requirements:
//   - PK: name (string)
//
// ADD on the counter item is atomic, so concurrent intakes can never be
// handed the same sequence value.

type TicketCounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	prefix    string
}

var _ interfaces.ITicketNumberAllocator = (*TicketCounterDynamoRepository)(nil)

func NewTicketCounterDynamoRepository(ddb *dynamodb.Client) *TicketCounterDynamoRepository {
	return &TicketCounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		prefix:    getenvDefault("TICKET_PREFIX", defaultTicketPrefix),
	}
}

func (r *TicketCounterDynamoRepository) AllocateTicketNumber(ctx context.Context) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: jobTicketCounterName},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return "", err
	}

	attr, ok := out.Attributes["seq"]
	if !ok {
		return "", fmt.Errorf("counter %s returned no seq attribute", jobTicketCounterName)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("counter %s seq attribute is not numeric", jobTicketCounterName)
	}
	seq, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%05d", r.prefix, seq), nil
}
