package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	ordersStateIndex              = "state-index"
	ordersVehicleIDIndex          = "vehicle_id-index"
	ordersTechnicianIDIndex       = "technician_id-index"
)

type serviceOrderItem struct {
	ID                 string `dynamodbav:"id"`
	VehicleID          string `dynamodbav:"vehicle_id"`
	TechnicianID       string `dynamodbav:"technician_id,omitempty"`
	ProblemDescription string `dynamodbav:"problem_description"`
	State              string `dynamodbav:"state"`
	Priority           string `dynamodbav:"priority"`
	EstimatedCost      string `dynamodbav:"estimated_cost,omitempty"`
	ReceivedAt         string `dynamodbav:"received_at"`
	DeliveredAt        string `dynamodbav:"delivered_at,omitempty"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: state-index (PK: state)
//   - GSI: vehicle_id-index (PK: vehicle_id)
//   - GSI: technician_id-index (PK: technician_id)

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	it := toServiceOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) UpdateState(ctx context.Context, id string, state entities.OrderState, deliveredAt *time.Time) (entities.ServiceOrder, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #state = :state"
		vals := map[string]types.AttributeValue{
			":state": &types.AttributeValueMemberS{Value: string(state)},
		}
		names := map[string]string{
			"#state": "state",
		}
		if deliveredAt != nil {
			expr += ", #delivered_at = :delivered_at"
			vals[":delivered_at"] = &types.AttributeValueMemberS{Value: deliveredAt.UTC().Format(time.RFC3339Nano)}
			names["#delivered_at"] = "delivered_at"
		}
		return expr, vals, names
	})
}

func (r *ServiceOrderDynamoRepository) AssignTechnician(ctx context.Context, id string, technicianID string) (entities.ServiceOrder, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #technician_id = :technician_id"
		vals := map[string]types.AttributeValue{
			":technician_id": &types.AttributeValueMemberS{Value: technicianID},
		}
		names := map[string]string{
			"#technician_id": "technician_id",
		}
		return expr, vals, names
	})
}

func (r *ServiceOrderDynamoRepository) ListByState(ctx context.Context, state entities.OrderState) ([]entities.ServiceOrder, error) {
	return r.queryIndex(ctx, ordersStateIndex, "#state = :state",
		map[string]types.AttributeValue{
			":state": &types.AttributeValueMemberS{Value: string(state)},
		},
		map[string]string{
			"#state": "state",
		},
	)
}

func (r *ServiceOrderDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.ServiceOrder, error) {
	return r.queryIndex(ctx, ordersVehicleIDIndex, "vehicle_id = :vid",
		map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: vehicleID},
		},
		nil,
	)
}

func (r *ServiceOrderDynamoRepository) ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.ServiceOrder, error) {
	return r.queryIndex(ctx, ordersTechnicianIDIndex, "technician_id = :tid",
		map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: technicianID},
		},
		nil,
	)
}

func (r *ServiceOrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ServiceOrder, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}
	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) queryIndex(
	ctx context.Context,
	index string,
	keyCondition string,
	values map[string]types.AttributeValue,
	names map[string]string,
) ([]entities.ServiceOrder, error) {
	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String(keyCondition),
		ExpressionAttributeValues: values,
	}
	if len(names) > 0 {
		in.ExpressionAttributeNames = names
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceOrderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromServiceOrderItem(it))
	}
	return orders, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:                 o.ID,
		VehicleID:          o.VehicleID,
		TechnicianID:       o.TechnicianID,
		ProblemDescription: o.ProblemDescription,
		State:              string(o.State),
		Priority:           string(o.Priority),
		ReceivedAt:         o.ReceivedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.EstimatedCost != nil {
		it.EstimatedCost = floatToString(*o.EstimatedCost)
	}
	if o.DeliveredAt != nil {
		it.DeliveredAt = o.DeliveredAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	receivedAt, _ := time.Parse(time.RFC3339Nano, it.ReceivedAt)
	o := entities.ServiceOrder{
		ID:                 it.ID,
		VehicleID:          it.VehicleID,
		TechnicianID:       it.TechnicianID,
		ProblemDescription: it.ProblemDescription,
		State:              entities.OrderState(it.State),
		Priority:           entities.Priority(it.Priority),
		ReceivedAt:         receivedAt,
	}
	if it.EstimatedCost != "" {
		if cost, err := strconv.ParseFloat(it.EstimatedCost, 64); err == nil {
			o.EstimatedCost = &cost
		}
	}
	if it.DeliveredAt != "" {
		if deliveredAt, err := time.Parse(time.RFC3339Nano, it.DeliveredAt); err == nil {
			o.DeliveredAt = &deliveredAt
		}
	}
	return o
}
