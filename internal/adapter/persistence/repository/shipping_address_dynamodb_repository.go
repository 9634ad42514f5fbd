package repository

import (
	"context"
	"errors"
	"time"

	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAddressesTableName = "shipping_addresses"
	addressesUserIDIndex      = "user_id-index"
)

type shippingAddressItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	Label      string `dynamodbav:"label,omitempty"`
	Recipient  string `dynamodbav:"recipient"`
	Line1      string `dynamodbav:"line1"`
	Line2      string `dynamodbav:"line2,omitempty"`
	City       string `dynamodbav:"city"`
	PostalCode string `dynamodbav:"postal_code"`
	Country    string `dynamodbav:"country"`
	Phone      string `dynamodbav:"phone,omitempty"`
	IsDefault  bool   `dynamodbav:"is_default"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ShippingAddressDynamoRepository persists ShippingAddress entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index: PK user_id (string), SK created_at (string)

type ShippingAddressDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShippingAddressRepository = (*ShippingAddressDynamoRepository)(nil)

func NewShippingAddressDynamoRepository(ddb *dynamodb.Client) *ShippingAddressDynamoRepository {
	return &ShippingAddressDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHIPPING_ADDRESSES_TABLE", defaultAddressesTableName),
	}
}

func (r *ShippingAddressDynamoRepository) Create(ctx context.Context, a entities.ShippingAddress) (entities.ShippingAddress, error) {
	it := toShippingAddressItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ShippingAddress{}, err
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
		return entities.ShippingAddress{}, err
	}
	return a, nil
}

func (r *ShippingAddressDynamoRepository) GetByID(ctx context.Context, id string) (entities.ShippingAddress, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ShippingAddress{}, err
	}
	if len(out.Item) == 0 {
		return entities.ShippingAddress{}, nil
	}

	var it shippingAddressItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ShippingAddress{}, err
	}
	return fromShippingAddressItem(it), nil
}

func (r *ShippingAddressDynamoRepository) Update(ctx context.Context, a entities.ShippingAddress) (entities.ShippingAddress, error) {
	a.UpdatedAt = time.Now().UTC()
	it := toShippingAddressItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ShippingAddress{}, err
	}

	// Full replace keeps the write simple; the use case always passes the
	// complete record.
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
			return entities.ShippingAddress{}, nil
		}
		return entities.ShippingAddress{}, err
	}
	return a, nil
}

func (r *ShippingAddressDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ShippingAddressDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.ShippingAddress, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(addressesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	addresses := make([]entities.ShippingAddress, 0, len(out.Items))
	for _, raw := range out.Items {
		var it shippingAddressItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		addresses = append(addresses, fromShippingAddressItem(it))
	}
	return addresses, nil
}

func (r *ShippingAddressDynamoRepository) ClearDefault(ctx context.Context, userID string) error {
	addresses, err := r.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	now := formatTime(time.Now())
	for _, a := range addresses {
		if !a.IsDefault {
			continue
		}
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: a.ID},
			},
			UpdateExpression: aws.String("SET #is_default = :false, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#is_default": "is_default",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":false":      &types.AttributeValueMemberBOOL{Value: false},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toShippingAddressItem(a entities.ShippingAddress) shippingAddressItem {
	return shippingAddressItem{
		ID:         a.ID,
		UserID:     a.UserID,
		Label:      a.Label,
		Recipient:  a.Recipient,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
		IsDefault:  a.IsDefault,
		CreatedAt:  formatTime(a.CreatedAt),
		UpdatedAt:  formatTime(a.UpdatedAt),
	}
}

func fromShippingAddressItem(it shippingAddressItem) entities.ShippingAddress {
	return entities.ShippingAddress{
		ID:         it.ID,
		UserID:     it.UserID,
		Label:      it.Label,
		Recipient:  it.Recipient,
		Line1:      it.Line1,
		Line2:      it.Line2,
		City:       it.City,
		PostalCode: it.PostalCode,
		Country:    it.Country,
		Phone:      it.Phone,
		IsDefault:  it.IsDefault,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
