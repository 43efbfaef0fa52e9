package adapter

import (
	"github.com/nats-io/nats.go"
)

//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=NatsConn=MockNatsConn,JetStream=MockJetStream

// NatsConn abstracts the NATS connection lifecycle
type NatsConn interface {
	JetStream(opts ...nats.JSOpt) (nats.JetStreamContext, error)
	Drain() error
	Close()
}

// JetStream abstracts the JetStream publish surface
type JetStream interface {
	Publish(subj string, data []byte, opts ...nats.PubOpt) (*nats.PubAck, error)
	AddStream(cfg *nats.StreamConfig, opts ...nats.JSOpt) (*nats.StreamInfo, error)
	StreamInfo(stream string, opts ...nats.JSOpt) (*nats.StreamInfo, error)
}

// ConnectNats establishes a NATS connection with the given options
func ConnectNats(endpoint string, opts ...nats.Option) (NatsConn, error) {
	return nats.Connect(endpoint, opts...)
}
