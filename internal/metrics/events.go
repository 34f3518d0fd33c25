package metrics

import (
	"context"

	"github.com/osse101/ShopBot_Go/internal/event"
	"github.com/osse101/ShopBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.EntityRegistered,
		event.EntityMoved,
		event.PurchaseCompleted,
		event.ChatMessage,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.EntityRegistered:
		EntitiesRegistered.Inc()

	case event.EntityMoved:
		EntityMoves.Inc()

	case event.PurchaseCompleted:
		payload, err := event.DecodePayload[event.PurchaseCompletedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsBought.WithLabelValues(payload.ItemName).Add(float64(payload.Quantity))
		MoneySpent.Add(payload.Total.InexactFloat64())
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
