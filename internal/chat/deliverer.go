package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/event"
)

// Deliverer hands one chat line to one recipient's transport
type Deliverer interface {
	Deliver(ctx context.Context, msg domain.ChatMessage) error
}

// BusDeliverer publishes chat.message on the event bus. The SSE subscriber
// streams it to connected clients.
type BusDeliverer struct {
	bus event.Bus
}

// NewBusDeliverer creates a deliverer backed by the event bus
func NewBusDeliverer(bus event.Bus) *BusDeliverer {
	return &BusDeliverer{bus: bus}
}

// Deliver publishes the message and reports handler failures
func (d *BusDeliverer) Deliver(ctx context.Context, msg domain.ChatMessage) error {
	return d.bus.Publish(ctx, event.NewChatMessageEvent(msg))
}

// Publisher is the part of *nats.Conn the NATS deliverer needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSDeliverer publishes each chat line on the recipient's subject
type NATSDeliverer struct {
	conn Publisher
}

// NewNATSDeliverer creates a deliverer on an open nats connection
func NewNATSDeliverer(conn Publisher) *NATSDeliverer {
	return &NATSDeliverer{conn: conn}
}

// Subject returns the chat subject for an entity
func Subject(entityID int64) string {
	return fmt.Sprintf(NATSSubjectFormat, entityID)
}

// Deliver publishes the chat event envelope as JSON
func (d *NATSDeliverer) Deliver(ctx context.Context, msg domain.ChatMessage) error {
	data, err := json.Marshal(event.NewChatMessageEvent(msg))
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalFailed, err)
	}
	subject := Subject(msg.RecipientID)
	if err := d.conn.Publish(subject, data); err != nil {
		return fmt.Errorf(ErrMsgPublishFailed, subject, err)
	}
	return nil
}

// ConnectNATS opens a client connection with reconnects enabled
func ConnectNATS(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(NATSClientName),
		nats.MaxReconnects(NATSMaxReconnects),
		nats.ReconnectWait(NATSReconnectWait),
	)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgNATSConnectFailed, url, err)
	}
	return conn, nil
}
