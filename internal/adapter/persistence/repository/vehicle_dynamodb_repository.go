package repository

import (
	"context"
	"time"

	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultVehiclesTableName = "vehicles"
	vehiclesPlateIndex       = "plate-index"
)

type vehicleItem struct {
	ID            string `dynamodbav:"id"`
	Plate         string `dynamodbav:"plate"`
	Brand         string `dynamodbav:"brand"`
	Model         string `dynamodbav:"model"`
	Year          int    `dynamodbav:"year,omitempty"`
	OwnerName     string `dynamodbav:"owner_name"`
	OwnerEmail    string `dynamodbav:"owner_email,omitempty"`
	OwnerPhone    string `dynamodbav:"owner_phone,omitempty"`
	OwnerUsername string `dynamodbav:"owner_username,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: plate-index (PK: plate)
//
// Owner contact data is flattened onto the item so the notification path
// resolves the recipient with the same GetItem that loads the vehicle.

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	it := toVehicleItem(v)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Vehicle{}, err
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
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) GetByPlate(ctx context.Context, plate string) (entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(vehiclesPlateIndex),
		KeyConditionExpression: aws.String("plate = :plate"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":plate": &types.AttributeValueMemberS{Value: plate},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Items) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:            v.ID,
		Plate:         v.Plate,
		Brand:         v.Brand,
		Model:         v.Model,
		Year:          v.Year,
		OwnerName:     v.Owner.Name,
		OwnerEmail:    v.Owner.Email,
		OwnerPhone:    v.Owner.Phone,
		OwnerUsername: v.Owner.Username,
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Vehicle{
		ID:    it.ID,
		Plate: it.Plate,
		Brand: it.Brand,
		Model: it.Model,
		Year:  it.Year,
		Owner: entities.OwnerContact{
			Name:     it.OwnerName,
			Email:    it.OwnerEmail,
			Phone:    it.OwnerPhone,
			Username: it.OwnerUsername,
		},
		CreatedAt: createdAt,
	}
}
