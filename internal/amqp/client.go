package amqp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizbooks/ledger/internal/core/domain"
	portssvc "github.com/bizbooks/ledger/internal/core/ports/services"
	"github.com/rabbitmq/amqp091-go"
)

// Client publishes commit announcements to a RabbitMQ exchange so external
// consumers (dashboards, read caches) can refresh after each journal commit.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

var _ portssvc.CommitNotifier = (*Client)(nil)

func NewClient(url, exchangeName, queueName string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = c.channel.QueueBind(
		c.queueName,    // queue name
		c.queueName,    // routing key (same as queue name for direct exchange)
		c.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// NotifyCommitted publishes a commit announcement. Best-effort: failures are
// logged and swallowed, the journal commit already happened.
func (c *Client) NotifyCommitted(ctx context.Context, txns []domain.Transaction) {
	txnIDs := make([]string, 0, len(txns))
	accountSet := make(map[string]bool)
	accountIDs := make([]string, 0, len(txns))
	for _, txn := range txns {
		txnIDs = append(txnIDs, txn.TransactionID)
		for _, accID := range txn.AffectedAccountIDs() {
			if !accountSet[accID] {
				accountSet[accID] = true
				accountIDs = append(accountIDs, accID)
			}
		}
	}

	if err := c.publish(ctx, NewLedgerCommittedMessage(txnIDs, accountIDs)); err != nil {
		slog.ErrorContext(ctx, "Failed to publish commit notification",
			"error", err,
			"transaction_ids", txnIDs)
	}
}

func (c *Client) publish(ctx context.Context, msg *LedgerCommittedMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		c.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.InfoContext(ctx, "Published commit notification",
		"transactions", len(msg.TransactionIDs),
		"exchange", c.exchangeName,
		"queue", c.queueName)

	return nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
