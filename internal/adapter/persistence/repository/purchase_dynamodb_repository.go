package repository

import (
	"context"
	"errors"
	"sort"
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
	defaultPurchasesTableName = "book_purchases"
	purchasesBuyerIDIndex     = "buyer_id-index"
	purchasesSellerIDIndex    = "seller_id-index"
	purchasesBookIDIndex      = "book_id-index"
	purchasesStatusIndex      = "status-index"
)

type purchaseItem struct {
	ID            string `dynamodbav:"id"`
	BookID        string `dynamodbav:"book_id"`
	BookTitle     string `dynamodbav:"book_title"`
	SellerID      string `dynamodbav:"seller_id"`
	BuyerID       string `dynamodbav:"buyer_id"`
	BuyerName     string `dynamodbav:"buyer_name"`
	BuyerEmail    string `dynamodbav:"buyer_email"`
	Quantity      int    `dynamodbav:"quantity"`
	Price         string `dynamodbav:"price"`
	Status        string `dynamodbav:"status"`
	Notes         string `dynamodbav:"notes,omitempty"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	CompletedAt   string `dynamodbav:"completed_at,omitempty"`
}

// PurchaseDynamoRepository persists BookPurchase entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI buyer_id-index:  PK buyer_id (string),  SK created_at (string)
//   - GSI seller_id-index: PK seller_id (string), SK created_at (string)
//   - GSI book_id-index:   PK book_id (string),   SK created_at (string)
//   - GSI status-index:    PK status (string),    SK created_at (string)
//
// Status is only ever changed through UpdateStatus, whose condition pins the
// stored status to "pending". A record that already reached completed or
// cancelled can never move again, no matter how requests interleave.

type PurchaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPurchaseRepository = (*PurchaseDynamoRepository)(nil)

func NewPurchaseDynamoRepository(ddb *dynamodb.Client) *PurchaseDynamoRepository {
	return &PurchaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PURCHASES_TABLE", defaultPurchasesTableName),
	}
}

func (r *PurchaseDynamoRepository) Create(ctx context.Context, p entities.BookPurchase) (entities.BookPurchase, error) {
	it := toPurchaseItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BookPurchase{}, err
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
		return entities.BookPurchase{}, err
	}
	return p, nil
}

func (r *PurchaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.BookPurchase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookPurchase{}, err
	}
	if len(out.Item) == 0 {
		return entities.BookPurchase{}, nil
	}

	var it purchaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BookPurchase{}, err
	}
	return fromPurchaseItem(it), nil
}

func (r *PurchaseDynamoRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.BookPurchase, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#transaction_id = :tx"),
		ExpressionAttributeNames: map[string]string{
			"#transaction_id": "transaction_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tx": &types.AttributeValueMemberS{Value: transactionID},
		},
	}

	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return entities.BookPurchase{}, err
		}
		if len(out.Items) > 0 {
			var it purchaseItem
			if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
				return entities.BookPurchase{}, err
			}
			return fromPurchaseItem(it), nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return entities.BookPurchase{}, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// UpdateStatus advances a pending purchase to status. The condition rejects
// the write when the record is missing or no longer pending; both cases come
// back as the zero value and the caller re-reads to tell them apart.
func (r *PurchaseDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PurchaseStatus, transactionID string, completedAt *time.Time) (entities.BookPurchase, error) {
	now := formatTime(time.Now())

	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":pending":    &types.AttributeValueMemberS{Value: string(entities.PurchaseStatusPending)},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if transactionID != "" {
		expr += ", #transaction_id = :transaction_id"
		names["#transaction_id"] = "transaction_id"
		vals[":transaction_id"] = &types.AttributeValueMemberS{Value: transactionID}
	}
	if completedAt != nil {
		expr += ", #completed_at = :completed_at"
		names["#completed_at"] = "completed_at"
		vals[":completed_at"] = &types.AttributeValueMemberS{Value: formatTime(*completedAt)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BookPurchase{}, nil
		}
		return entities.BookPurchase{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BookPurchase{}, nil
	}
	var it purchaseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BookPurchase{}, err
	}
	return fromPurchaseItem(it), nil
}

func (r *PurchaseDynamoRepository) ListByBuyer(ctx context.Context, buyerID string) ([]entities.BookPurchase, error) {
	return r.queryIndex(ctx, purchasesBuyerIDIndex, "buyer_id", buyerID)
}

func (r *PurchaseDynamoRepository) ListBySeller(ctx context.Context, sellerID string) ([]entities.BookPurchase, error) {
	return r.queryIndex(ctx, purchasesSellerIDIndex, "seller_id", sellerID)
}

func (r *PurchaseDynamoRepository) ListByBook(ctx context.Context, bookID string) ([]entities.BookPurchase, error) {
	return r.queryIndex(ctx, purchasesBookIDIndex, "book_id", bookID)
}

func (r *PurchaseDynamoRepository) ListByStatus(ctx context.Context, status entities.PurchaseStatus) ([]entities.BookPurchase, error) {
	return r.queryIndex(ctx, purchasesStatusIndex, "status", string(status))
}

func (r *PurchaseDynamoRepository) ListWithFilters(ctx context.Context, f entities.PurchaseFilters) ([]entities.BookPurchase, error) {
	var (
		exprParts []string
		vals      = map[string]types.AttributeValue{}
		names     = map[string]string{}
	)
	if f.BuyerID != "" {
		exprParts = append(exprParts, "#buyer_id = :buyer_id")
		names["#buyer_id"] = "buyer_id"
		vals[":buyer_id"] = &types.AttributeValueMemberS{Value: f.BuyerID}
	}
	if f.SellerID != "" {
		exprParts = append(exprParts, "#seller_id = :seller_id")
		names["#seller_id"] = "seller_id"
		vals[":seller_id"] = &types.AttributeValueMemberS{Value: f.SellerID}
	}
	if f.BookID != "" {
		exprParts = append(exprParts, "#book_id = :book_id")
		names["#book_id"] = "book_id"
		vals[":book_id"] = &types.AttributeValueMemberS{Value: f.BookID}
	}
	if f.Status != "" {
		exprParts = append(exprParts, "#status = :status")
		names["#status"] = "status"
		vals[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
	}

	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if len(exprParts) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprParts, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = vals
	}

	var purchases []entities.BookPurchase
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it purchaseItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p := fromPurchaseItem(it)
			if !matchesPurchaseFilters(p, f) {
				continue
			}
			purchases = append(purchases, p)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sortPurchases(purchases, f.SortBy, f.SortOrder)
	if f.Limit > 0 && len(purchases) > f.Limit {
		purchases = purchases[:f.Limit]
	}
	return purchases, nil
}

func (r *PurchaseDynamoRepository) ListRecentCompleted(ctx context.Context, limit int) ([]entities.BookPurchase, error) {
	purchases, err := r.ListByStatus(ctx, entities.PurchaseStatusCompleted)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(purchases, func(i, j int) bool {
		ti, tj := purchases[i].CreatedAt, purchases[j].CreatedAt
		if purchases[i].CompletedAt != nil {
			ti = *purchases[i].CompletedAt
		}
		if purchases[j].CompletedAt != nil {
			tj = *purchases[j].CompletedAt
		}
		return ti.After(tj)
	})
	if limit > 0 && len(purchases) > limit {
		purchases = purchases[:limit]
	}
	return purchases, nil
}

func (r *PurchaseDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.BookPurchase, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#pk = :pk"),
		ExpressionAttributeNames: map[string]string{
			"#pk": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: value},
		},
		ScanIndexForward: aws.Bool(false),
	}

	var purchases []entities.BookPurchase
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it purchaseItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			purchases = append(purchases, fromPurchaseItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return purchases, nil
}

func matchesPurchaseFilters(p entities.BookPurchase, f entities.PurchaseFilters) bool {
	if f.DateFrom != nil && p.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && p.CreatedAt.After(*f.DateTo) {
		return false
	}
	total := p.TotalPrice()
	if f.PriceMin != nil && total.LessThan(*f.PriceMin) {
		return false
	}
	if f.PriceMax != nil && total.GreaterThan(*f.PriceMax) {
		return false
	}
	return true
}

func sortPurchases(purchases []entities.BookPurchase, sortBy, sortOrder string) {
	desc := !strings.EqualFold(sortOrder, "ASC")
	less := func(a, b entities.BookPurchase) bool {
		switch sortBy {
		case "total_price":
			return a.TotalPrice().LessThan(b.TotalPrice())
		case "quantity":
			return a.Quantity < b.Quantity
		case "status":
			return a.Status < b.Status
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(purchases, func(i, j int) bool {
		if desc {
			return less(purchases[j], purchases[i])
		}
		return less(purchases[i], purchases[j])
	})
}

func toPurchaseItem(p entities.BookPurchase) purchaseItem {
	it := purchaseItem{
		ID:            p.ID,
		BookID:        p.BookID,
		BookTitle:     p.BookTitle,
		SellerID:      p.SellerID,
		BuyerID:       p.BuyerID,
		BuyerName:     p.BuyerName,
		BuyerEmail:    p.BuyerEmail,
		Quantity:      p.Quantity,
		Price:         p.Price.String(),
		Status:        string(p.Status),
		Notes:         p.Notes,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
	if p.CompletedAt != nil {
		it.CompletedAt = formatTime(*p.CompletedAt)
	}
	return it
}

func fromPurchaseItem(it purchaseItem) entities.BookPurchase {
	p := entities.BookPurchase{
		ID:            it.ID,
		BookID:        it.BookID,
		BookTitle:     it.BookTitle,
		SellerID:      it.SellerID,
		BuyerID:       it.BuyerID,
		BuyerName:     it.BuyerName,
		BuyerEmail:    it.BuyerEmail,
		Quantity:      it.Quantity,
		Price:         parseDecimal(it.Price),
		Status:        entities.PurchaseStatus(it.Status),
		Notes:         it.Notes,
		PaymentMethod: it.PaymentMethod,
		TransactionID: it.TransactionID,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.CompletedAt != "" {
		t := parseTime(it.CompletedAt)
		p.CompletedAt = &t
	}
	return p
}
