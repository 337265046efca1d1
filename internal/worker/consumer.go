package worker

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/streadway/amqp"
)

const (
	DefaultAnalysisQueue = "jd_analysis"
	UpdatesExchange      = "analysis_updates"
)

type ConsumerConfig struct {
	Queue   string
	Workers int
}

// Consumer pulls jd_analysis messages and settles each one according to the
// Processor's decision. Messages are acked manually.
type Consumer struct {
	cfg  ConsumerConfig
	proc *Processor
	log  *log.Logger
}

func NewConsumer(cfg ConsumerConfig, proc *Processor, logger *log.Logger) *Consumer {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Queue == "" {
		cfg.Queue = DefaultAnalysisQueue
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Consumer{cfg: cfg, proc: proc, log: logger}
}

// Dial opens the broker connection and declares the queue and the updates
// exchange.
func Dial(url, queue string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.ExchangeDeclare(UpdatesExchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return conn, nil
}

func (c *Consumer) Run(ctx context.Context, conn *amqp.Connection) error {
	if conn == nil {
		return errors.New("nil rabbitmq connection")
	}
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(c.cfg.Workers, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}
	msgs, err := ch.Consume(c.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.cfg.Queue, err)
	}
	c.log.Printf("worker=jd_analysis status=started queue=%s workers=%d", c.cfg.Queue, c.cfg.Workers)

	pool := NewPool(c.cfg.Workers, c.cfg.Workers)
	results := pool.Run(ctx)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for r := range results {
			if r.Err != nil {
				c.log.Printf("worker=jd_analysis status=settle_error err=%v", r.Err)
			}
		}
	}()

	runErr := c.dispatch(ctx, msgs, pool)
	pool.Close()
	<-drained
	c.log.Printf("worker=jd_analysis status=stopped")
	return runErr
}

func (c *Consumer) dispatch(ctx context.Context, msgs <-chan amqp.Delivery, pool *Pool) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("rabbitmq delivery channel closed")
			}
			if !pool.Submit(ctx, func(ctx context.Context) error {
				return settle(msg, c.proc.Process(ctx, msg.Body, msg.Redelivered))
			}) {
				_ = msg.Nack(false, true)
				return nil
			}
		}
	}
}

func settle(msg amqp.Delivery, d Decision) error {
	switch d {
	case Ack:
		return msg.Ack(false)
	case Requeue:
		return msg.Nack(false, true)
	default:
		return msg.Nack(false, false)
	}
}

// ChannelPublisher publishes status updates to the updates exchange.
type ChannelPublisher struct {
	ch       *amqp.Channel
	exchange string
}

func NewChannelPublisher(conn *amqp.Connection) (*ChannelPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open publish channel: %w", err)
	}
	return &ChannelPublisher{ch: ch, exchange: UpdatesExchange}, nil
}

func (p *ChannelPublisher) Publish(_ context.Context, routingKey string, body []byte) error {
	return p.ch.Publish(p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (p *ChannelPublisher) Close() error {
	return p.ch.Close()
}
