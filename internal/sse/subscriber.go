package sse

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ShopBot_Go/internal/event"
	"github.com/osse101/ShopBot_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// forwardedTypes are the bus events streamed to SSE clients
var forwardedTypes = []event.Type{
	event.EntityRegistered,
	event.EntityMoved,
	event.PurchaseCompleted,
	event.ChatMessage,
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	names := make([]string, 0, len(forwardedTypes))
	for _, t := range forwardedTypes {
		s.bus.Subscribe(t, s.forward)
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscriberReady, "types", names)
}

// forward broadcasts the event payload under the same type name. A dropped
// broadcast is returned as an error so chat delivery can count it as failed.
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	if err := s.hub.Broadcast(string(evt.Type), evt.Payload); err != nil {
		log.Warn(LogMsgEventDropped, "event_type", evt.Type, "error", err)
		return fmt.Errorf("%s: %w", evt.Type, err)
	}

	log.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "clients", s.hub.ClientCount())
	return nil
}
