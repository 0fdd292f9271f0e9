package repository

import (
	"context"
	"sort"
	"time"

	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultStatusSnapshotsTableName = "status_snapshots"
	snapshotsOrderIDIndex           = "order_id-index"
)

type statusSnapshotItem struct {
	ID           string `dynamodbav:"id"`
	OrderID      string `dynamodbav:"order_id"`
	State        string `dynamodbav:"state"`
	Description  string `dynamodbav:"description"`
	Progress     int    `dynamodbav:"progress"`
	Observations string `dynamodbav:"observations,omitempty"`
	RecordedAt   string `dynamodbav:"recorded_at"`
}

// StatusSnapshotDynamoRepository persists the append-only status history in
// DynamoDB. Items are only ever inserted.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type StatusSnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatusSnapshotRepository = (*StatusSnapshotDynamoRepository)(nil)

func NewStatusSnapshotDynamoRepository(ddb *dynamodb.Client) *StatusSnapshotDynamoRepository {
	return &StatusSnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STATUS_SNAPSHOTS_TABLE", defaultStatusSnapshotsTableName),
	}
}

func (r *StatusSnapshotDynamoRepository) Create(ctx context.Context, s entities.StatusSnapshot) (entities.StatusSnapshot, error) {
	it := toStatusSnapshotItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.StatusSnapshot{}, err
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
		return entities.StatusSnapshot{}, err
	}
	return s, nil
}

// ListByOrderID returns the order's snapshots oldest first. The GSI does not
// guarantee ordering across partitions, so results are sorted here.
func (r *StatusSnapshotDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.StatusSnapshot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(snapshotsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	snapshots := make([]entities.StatusSnapshot, 0, len(out.Items))
	for _, raw := range out.Items {
		var it statusSnapshotItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, fromStatusSnapshotItem(it))
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].RecordedAt.Before(snapshots[j].RecordedAt)
	})
	return snapshots, nil
}

func toStatusSnapshotItem(s entities.StatusSnapshot) statusSnapshotItem {
	return statusSnapshotItem{
		ID:           s.ID,
		OrderID:      s.OrderID,
		State:        s.State,
		Description:  s.Description,
		Progress:     s.Progress,
		Observations: s.Observations,
		RecordedAt:   s.RecordedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromStatusSnapshotItem(it statusSnapshotItem) entities.StatusSnapshot {
	recordedAt, _ := time.Parse(time.RFC3339Nano, it.RecordedAt)
	return entities.StatusSnapshot{
		ID:           it.ID,
		OrderID:      it.OrderID,
		State:        it.State,
		Description:  it.Description,
		Progress:     it.Progress,
		Observations: it.Observations,
		RecordedAt:   recordedAt,
	}
}
