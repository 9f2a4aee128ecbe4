package natsevents

import (
	"context"
	"encoding/json"
	"fmt"

	"postsvc/internal/service"

	"github.com/nats-io/nats.go"
)

type conn interface {
	Publish(subj string, data []byte) error
}

// Publisher sends each event to the subject named by its type.
type Publisher struct {
	nc conn
}

var _ service.EventPublisher = (*Publisher)(nil)

func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

func Connect(url, name string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.RetryOnFailedConnect(true),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return nc, nil
}

func (p *Publisher) Publish(_ context.Context, event service.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	if err := p.nc.Publish(string(event.Type), data); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}
