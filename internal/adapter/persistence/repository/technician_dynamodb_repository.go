package repository

import (
	"context"
	"errors"
	"time"

	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTechniciansTableName = "technicians"

type technicianItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Specialty string `dynamodbav:"specialty,omitempty"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// TechnicianDynamoRepository persists Technician entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The roster is small (dozens of rows), so ListAll and ListActive use Scan
// with pagination instead of maintaining an index on active.

type TechnicianDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITechnicianRepository = (*TechnicianDynamoRepository)(nil)

func NewTechnicianDynamoRepository(ddb *dynamodb.Client) *TechnicianDynamoRepository {
	return &TechnicianDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TECHNICIANS_TABLE", defaultTechniciansTableName),
	}
}

func (r *TechnicianDynamoRepository) Create(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	it := toTechnicianItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Technician{}, err
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
		return entities.Technician{}, err
	}
	return t, nil
}

func (r *TechnicianDynamoRepository) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Technician{}, err
	}
	if len(out.Item) == 0 {
		return entities.Technician{}, nil
	}

	var it technicianItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Technician{}, err
	}
	return fromTechnicianItem(it), nil
}

func (r *TechnicianDynamoRepository) ListAll(ctx context.Context) ([]entities.Technician, error) {
	return r.scan(ctx, nil, nil)
}

func (r *TechnicianDynamoRepository) ListActive(ctx context.Context) ([]entities.Technician, error) {
	return r.scan(ctx,
		aws.String("#active = :active"),
		&scanFilter{
			values: map[string]types.AttributeValue{
				":active": &types.AttributeValueMemberBOOL{Value: true},
			},
			names: map[string]string{
				"#active": "active",
			},
		},
	)
}

func (r *TechnicianDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Technician, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #active = :active, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":     &types.AttributeValueMemberBOOL{Value: active},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#active":     "active",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Technician{}, nil
		}
		return entities.Technician{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Technician{}, nil
	}
	var it technicianItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Technician{}, err
	}
	return fromTechnicianItem(it), nil
}

type scanFilter struct {
	values map[string]types.AttributeValue
	names  map[string]string
}

func (r *TechnicianDynamoRepository) scan(ctx context.Context, filterExpr *string, filter *scanFilter) ([]entities.Technician, error) {
	var technicians []entities.Technician
	var startKey map[string]types.AttributeValue

	for {
		in := &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
			FilterExpression:  filterExpr,
		}
		if filter != nil {
			in.ExpressionAttributeValues = filter.values
			in.ExpressionAttributeNames = filter.names
		}

		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it technicianItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			technicians = append(technicians, fromTechnicianItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return technicians, nil
}

func toTechnicianItem(t entities.Technician) technicianItem {
	return technicianItem{
		ID:        t.ID,
		Name:      t.Name,
		Specialty: t.Specialty,
		Active:    t.Active,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTechnicianItem(it technicianItem) entities.Technician {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Technician{
		ID:        it.ID,
		Name:      it.Name,
		Specialty: it.Specialty,
		Active:    it.Active,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
