package jetstream

import (
	"context"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/deedlane/marketplace/internal/adapter"
	"github.com/deedlane/marketplace/internal/logger"
	"github.com/deedlane/marketplace/internal/messaging"
)

type publisher struct {
	conn          adapter.NatsConn
	js            adapter.JetStream
	subjectPrefix string
}

// NewPublisher connects to NATS and ensures the event stream exists.
// subjectPrefix is the root of all published subjects, e.g. marketplace.events.
func NewPublisher(endpoint, streamName, subjectPrefix string) (messaging.Publisher, error) {
	conn, err := adapter.ConnectNats(endpoint,
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Default().Warn("nats disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Default().Info("nats reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to get jetstream context: %w", err)
	}

	if _, err := js.StreamInfo(streamName); err != nil {
		if _, err := js.AddStream(&nats.StreamConfig{
			Name:     streamName,
			Subjects: []string{subjectPrefix + ".>"},
			Storage:  nats.FileStorage,
		}); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to create stream %s: %w", streamName, err)
		}
	}

	return &publisher{
		conn:          conn,
		js:            js,
		subjectPrefix: subjectPrefix,
	}, nil
}

func (p *publisher) PublishPriceEvent(ctx context.Context, event messaging.PriceEvent) error {
	data, err := adapter.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal price event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", p.subjectPrefix, strings.ToLower(string(event.Type)))
	if _, err := p.js.Publish(subject, data, nats.MsgId(event.ID)); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	logger.DebugCtx(ctx, "published price event",
		zap.String("subject", subject),
		zap.String("event_id", event.ID))
	return nil
}

func (p *publisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return fmt.Errorf("failed to drain nats connection: %w", err)
	}
	return nil
}
