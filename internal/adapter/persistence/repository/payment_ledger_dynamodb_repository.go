package repository

import (
	"context"
	"time"

	"jobcard_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultPaymentLedgerTableName = "payment_ledger"

type paymentLedgerItem struct {
	ID          string `dynamodbav:"id"`
	TicketNo    string `dynamodbav:"ticket_no"`
	TotalCharge int64  `dynamodbav:"total_charge"`
	Mode        string `dynamodbav:"mode"`
	UPIAmount   int64  `dynamodbav:"upi_amount"`
	UPIAccount  string `dynamodbav:"upi_account,omitempty"`
	CashAmount  int64  `dynamodbav:"cash_amount"`
	CollectedBy string `dynamodbav:"collected_by,omitempty"`
	ClosedAt    string `dynamodbav:"closed_at"`
}

// PaymentLedgerDynamoRepository appends closed-ticket payment records to the
// downstream general payment ledger table.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: ticket_no-index (PK: ticket_no), used by reporting jobs outside
//     this service.

type PaymentLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentLedgerSink = (*PaymentLedgerDynamoRepository)(nil)

func NewPaymentLedgerDynamoRepository(ddb *dynamodb.Client) *PaymentLedgerDynamoRepository {
	return &PaymentLedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_LEDGER_TABLE", defaultPaymentLedgerTableName),
	}
}

func (r *PaymentLedgerDynamoRepository) Record(ctx context.Context, entry interfaces.PaymentLedgerEntry) error {
	it := paymentLedgerItem{
		ID:          entry.ID,
		TicketNo:    entry.TicketNo,
		TotalCharge: int64(entry.TotalCharge),
		Mode:        string(entry.Payment.Mode),
		UPIAmount:   int64(entry.Payment.UPIAmount),
		UPIAccount:  entry.Payment.UPIAccount,
		CashAmount:  int64(entry.Payment.CashAmount),
		CollectedBy: entry.Payment.CollectedBy,
		ClosedAt:    entry.ClosedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}
