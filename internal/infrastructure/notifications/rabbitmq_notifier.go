package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "bookmarket.events"
	exchangeType = "topic"

	routingKeyPurchaseCreated   = "purchase.created"
	routingKeyPurchaseCompleted = "purchase.completed"
	routingKeyPurchaseCancelled = "purchase.cancelled"
)

type purchaseEvent struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Timestamp string         `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
}

// RabbitPurchaseNotifier publishes purchase lifecycle events to a RabbitMQ
// topic exchange. Consumers (email, storefront feeds) bind on the
// purchase.* routing keys.
type RabbitPurchaseNotifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

var _ interfaces.IPurchaseNotifier = (*RabbitPurchaseNotifier)(nil)

// NewRabbitPurchaseNotifier connects to RabbitMQ and declares the durable
// events exchange. The URL comes from RABBITMQ_URL.
func NewRabbitPurchaseNotifier(url string) (*RabbitPurchaseNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		exchangeName,
		exchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	log.Printf("[purchase][notifier] connected exchange=%s", exchangeName)

	return &RabbitPurchaseNotifier{conn: conn, channel: channel}, nil
}

func (n *RabbitPurchaseNotifier) PurchaseCreated(ctx context.Context, p entities.BookPurchase) error {
	return n.publish(ctx, routingKeyPurchaseCreated, p)
}

func (n *RabbitPurchaseNotifier) PurchaseCompleted(ctx context.Context, p entities.BookPurchase) error {
	return n.publish(ctx, routingKeyPurchaseCompleted, p)
}

func (n *RabbitPurchaseNotifier) PurchaseCancelled(ctx context.Context, p entities.BookPurchase) error {
	return n.publish(ctx, routingKeyPurchaseCancelled, p)
}

func (n *RabbitPurchaseNotifier) publish(ctx context.Context, routingKey string, p entities.BookPurchase) error {
	event := purchaseEvent{
		EventID:   uuid.New().String(),
		EventType: routingKey,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Payload: map[string]any{
			"purchase_id": p.ID,
			"book_id":     p.BookID,
			"book_title":  p.BookTitle,
			"buyer_id":    p.BuyerID,
			"seller_id":   p.SellerID,
			"quantity":    p.Quantity,
			"unit_price":  p.Price.String(),
			"total_price": p.TotalPrice().String(),
			"status":      string(p.Status),
		},
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = n.channel.PublishWithContext(
		ctx,
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			MessageId:    event.EventID,
			Body:         body,
		},
	)
	if err != nil {
		log.Printf("[purchase][notifier] publish failed key=%s purchase_id=%s err=%v", routingKey, p.ID, err)
		return err
	}
	log.Printf("[purchase][notifier] published key=%s purchase_id=%s", routingKey, p.ID)
	return nil
}

// Close releases the channel and connection.
func (n *RabbitPurchaseNotifier) Close() error {
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
