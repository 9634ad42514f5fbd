package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBooksTableName = "books"
	booksOwnerIDIndex     = "owner_id-index"
)

type bookItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Price       string `dynamodbav:"price"`
	Quantity    int    `dynamodbav:"quantity"`
	CoverImage  string `dynamodbav:"cover_image,omitempty"`
	Category    string `dynamodbav:"category,omitempty"`
	OwnerID     string `dynamodbav:"owner_id"`
	OwnerName   string `dynamodbav:"owner_name"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// BookDynamoRepository persists Book entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI owner_id-index: PK owner_id (string), SK created_at (string)
//
// Stock movements go through DecreaseQuantity/IncreaseQuantity so that the
// "quantity >= amount" check and the decrement happen in one conditional
// UpdateItem. Two buyers racing for the last unit resolve server-side: one
// update applies, the other fails its condition.

type BookDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookRepository = (*BookDynamoRepository)(nil)

func NewBookDynamoRepository(ddb *dynamodb.Client) *BookDynamoRepository {
	return &BookDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKS_TABLE", defaultBooksTableName),
	}
}

func (r *BookDynamoRepository) Create(ctx context.Context, b entities.Book) (entities.Book, error) {
	it := toBookItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Book{}, err
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
		return entities.Book{}, err
	}
	return b, nil
}

func (r *BookDynamoRepository) GetByID(ctx context.Context, id string) (entities.Book, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Book{}, err
	}
	if len(out.Item) == 0 {
		return entities.Book{}, nil
	}

	var it bookItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Book{}, err
	}
	return fromBookItem(it), nil
}

func (r *BookDynamoRepository) Update(ctx context.Context, b entities.Book) (entities.Book, error) {
	return r.update(ctx, b.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #title = :title, #description = :description, #price = :price, " +
			"#quantity = :quantity, #cover_image = :cover_image, #category = :category, " +
			"#owner_name = :owner_name, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":title":       &types.AttributeValueMemberS{Value: b.Title},
			":description": &types.AttributeValueMemberS{Value: b.Description},
			":price":       &types.AttributeValueMemberS{Value: b.Price.String()},
			":quantity":    &types.AttributeValueMemberN{Value: strconv.Itoa(b.Quantity)},
			":cover_image": &types.AttributeValueMemberS{Value: b.CoverImage},
			":category":    &types.AttributeValueMemberS{Value: b.Category},
			":owner_name":  &types.AttributeValueMemberS{Value: b.OwnerName},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#title":       "title",
			"#description": "description",
			"#price":       "price",
			"#quantity":    "quantity",
			"#cover_image": "cover_image",
			"#category":    "category",
			"#owner_name":  "owner_name",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	}, "attribute_exists(#id)")
}

func (r *BookDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// DecreaseQuantity takes stock atomically. The condition carries the
// inventory invariant: when available stock is below amount the update is
// rejected as a whole and the zero-value Book is returned.
func (r *BookDynamoRepository) DecreaseQuantity(ctx context.Context, id string, amount int) (entities.Book, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #quantity = #quantity - :amount, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":amount":     &types.AttributeValueMemberN{Value: strconv.Itoa(amount)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#quantity":   "quantity",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	}, "attribute_exists(#id) AND #quantity >= :amount")
}

func (r *BookDynamoRepository) IncreaseQuantity(ctx context.Context, id string, amount int) (entities.Book, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #quantity = #quantity + :amount, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":amount":     &types.AttributeValueMemberN{Value: strconv.Itoa(amount)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#quantity":   "quantity",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	}, "attribute_exists(#id)")
}

func (r *BookDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Book, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(booksOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	books := make([]entities.Book, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		books = append(books, fromBookItem(it))
	}
	return books, nil
}

// ListWithFilters scans the table and applies the filters client-side.
//
// Equality filters (category, owner) are pushed into the scan's
// FilterExpression to cut transferred data; text search, price bounds and
// sorting cannot be expressed against string-encoded decimals in DynamoDB,
// so they run here after unmarshalling.
func (r *BookDynamoRepository) ListWithFilters(ctx context.Context, f entities.BookFilters) ([]entities.Book, error) {
	var (
		exprParts []string
		vals      = map[string]types.AttributeValue{}
		names     = map[string]string{}
	)
	if f.Category != "" {
		exprParts = append(exprParts, "#category = :category")
		names["#category"] = "category"
		vals[":category"] = &types.AttributeValueMemberS{Value: f.Category}
	}
	if f.OwnerID != "" {
		exprParts = append(exprParts, "#owner_id = :owner_id")
		names["#owner_id"] = "owner_id"
		vals[":owner_id"] = &types.AttributeValueMemberS{Value: f.OwnerID}
	}
	if f.ExcludeOwner != "" {
		exprParts = append(exprParts, "#owner_id <> :exclude_owner")
		names["#owner_id"] = "owner_id"
		vals[":exclude_owner"] = &types.AttributeValueMemberS{Value: f.ExcludeOwner}
	}
	if f.AvailableOnly {
		exprParts = append(exprParts, "#quantity > :zero")
		names["#quantity"] = "quantity"
		vals[":zero"] = &types.AttributeValueMemberN{Value: "0"}
	}

	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if len(exprParts) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprParts, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = vals
	}

	var books []entities.Book
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it bookItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			b := fromBookItem(it)
			if !matchesBookFilters(b, f) {
				continue
			}
			books = append(books, b)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sortBooks(books, f.SortBy, f.SortOrder)
	if f.Limit > 0 && len(books) > f.Limit {
		books = books[:f.Limit]
	}
	return books, nil
}

func (r *BookDynamoRepository) ListCategories(ctx context.Context) ([]string, error) {
	input := &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("#category, #quantity"),
		FilterExpression:     aws.String("attribute_exists(#category) AND #category <> :empty AND #quantity > :zero"),
		ExpressionAttributeNames: map[string]string{
			"#category": "category",
			"#quantity": "quantity",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberS{Value: ""},
			":zero":  &types.AttributeValueMemberN{Value: "0"},
		},
	}

	seen := map[string]struct{}{}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it bookItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if it.Category != "" {
				seen[it.Category] = struct{}{}
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *BookDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
	condition string,
) (entities.Book, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Book{}, nil
		}
		return entities.Book{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Book{}, nil
	}
	var it bookItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Book{}, err
	}
	return fromBookItem(it), nil
}

func matchesBookFilters(b entities.Book, f entities.BookFilters) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(b.Title), needle) &&
			!strings.Contains(strings.ToLower(b.Description), needle) &&
			!strings.Contains(strings.ToLower(b.OwnerName), needle) {
			return false
		}
	}
	if f.PriceMin != nil && b.Price.LessThan(*f.PriceMin) {
		return false
	}
	if f.PriceMax != nil && b.Price.GreaterThan(*f.PriceMax) {
		return false
	}
	return true
}

func sortBooks(books []entities.Book, sortBy, sortOrder string) {
	desc := !strings.EqualFold(sortOrder, "ASC")
	less := func(a, b entities.Book) bool {
		switch sortBy {
		case "title":
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case "price":
			return a.Price.LessThan(b.Price)
		case "quantity":
			return a.Quantity < b.Quantity
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(books, func(i, j int) bool {
		if desc {
			return less(books[j], books[i])
		}
		return less(books[i], books[j])
	})
}

func toBookItem(b entities.Book) bookItem {
	return bookItem{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price.String(),
		Quantity:    b.Quantity,
		CoverImage:  b.CoverImage,
		Category:    b.Category,
		OwnerID:     b.OwnerID,
		OwnerName:   b.OwnerName,
		CreatedAt:   formatTime(b.CreatedAt),
		UpdatedAt:   formatTime(b.UpdatedAt),
	}
}

func fromBookItem(it bookItem) entities.Book {
	return entities.Book{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Price:       parseDecimal(it.Price),
		Quantity:    it.Quantity,
		CoverImage:  it.CoverImage,
		Category:    it.Category,
		OwnerID:     it.OwnerID,
		OwnerName:   it.OwnerName,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
