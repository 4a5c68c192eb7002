package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel the dispatcher publishes through.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type ChannelOpener func() (Channel, error)

// TemplateDispatcher hands template messages to the messaging worker through
// a durable queue. A channel is opened per message.
type TemplateDispatcher struct {
	open  ChannelOpener
	queue string
	now   func() time.Time
}

func NewTemplateDispatcher(open ChannelOpener, cfg config.AMQPConfig) *TemplateDispatcher {
	return &TemplateDispatcher{
		open:  open,
		queue: cfg.TemplateQueue,
		now:   time.Now,
	}
}

func (d *TemplateDispatcher) Dispatch(ctx context.Context, msg shared.TemplateMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "encode template message")
	}

	ch, err := d.open()
	if err != nil {
		return errs.Wrap(err, "open amqp channel")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(d.queue, true, false, false, false, nil); err != nil {
		return errs.Wrapf(err, "declare queue %s", d.queue)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    d.now().UTC(),
		Type:         msg.Template,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", d.queue, false, false, pub); err != nil {
		return errs.Wrapf(err, "publish to %s", d.queue)
	}
	return nil
}

// Broker owns a lazily dialed AMQP connection and redials after it drops.
type Broker struct {
	url  string
	mu   sync.Mutex
	conn *amqp.Connection
}

func NewBroker(cfg config.AMQPConfig) *Broker {
	return &Broker{url: cfg.URL}
}

func (b *Broker) OpenChannel() (Channel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil || b.conn.IsClosed() {
		conn, err := amqp.Dial(b.url)
		if err != nil {
			return nil, errs.Wrap(err, "dial amqp")
		}
		b.conn = conn
	}

	ch, err := b.conn.Channel()
	if err != nil {
		return nil, errs.Wrap(err, "open amqp channel")
	}
	return ch, nil
}

func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil || b.conn.IsClosed() {
		return nil
	}
	return b.conn.Close()
}
