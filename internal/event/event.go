package event

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/ShopBot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	EntityRegistered  Type = domain.EventTypeEntityRegistered
	EntityMoved       Type = domain.EventTypeEntityMoved
	PurchaseCompleted Type = domain.EventTypePurchaseCompleted
	ChatMessage       Type = domain.EventTypeChatMessage
)

// Typed event payloads for type safety

// EntityRegisteredPayloadV1 is the typed payload for registration events
type EntityRegisteredPayloadV1 struct {
	EntityID         int64  `json:"entity_id"`
	ExternalIdentity string `json:"external_identity"`
	Name             string `json:"name"`
	LocationID       int64  `json:"location_id"`
	Timestamp        int64  `json:"timestamp"`
}

// EntityMovedPayloadV1 is the typed payload for movement events
type EntityMovedPayloadV1 struct {
	EntityID       int64 `json:"entity_id"`
	FromLocationID int64 `json:"from_location_id"`
	ToLocationID   int64 `json:"to_location_id"`
	Timestamp      int64 `json:"timestamp"`
}

// PurchaseCompletedPayloadV1 is the typed payload for purchase events
type PurchaseCompletedPayloadV1 struct {
	BuyerID           int64           `json:"buyer_id"`
	InventoryRecordID int64           `json:"inventory_record_id"`
	ItemID            int64           `json:"item_id"`
	ItemName          string          `json:"item_name"`
	Quantity          int             `json:"quantity"`
	Total             decimal.Decimal `json:"total"`
	Timestamp         int64           `json:"timestamp"`
}

// ChatMessagePayloadV1 is the typed payload for a chat line addressed to one recipient
type ChatMessagePayloadV1 struct {
	SpeakerID         int64  `json:"speaker_id"`
	SpeakerName       string `json:"speaker_name"`
	LocationID        int64  `json:"location_id"`
	RecipientID       int64  `json:"recipient_id"`
	RecipientIdentity string `json:"recipient_identity"`
	Text              string `json:"text"`
	Message           string `json:"message"`
	Timestamp         int64  `json:"timestamp"`
}

// AudienceIdentity routes the line to streams subscribed for the recipient
func (p ChatMessagePayloadV1) AudienceIdentity() string {
	return p.RecipientIdentity
}

// Type-safe event constructors

// NewEntityRegisteredEvent creates a new registration event
func NewEntityRegisteredEvent(entity *domain.Entity) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EntityRegistered,
		Payload: EntityRegisteredPayloadV1{
			EntityID:         entity.ID,
			ExternalIdentity: entity.Identity(),
			Name:             entity.Name,
			LocationID:       entity.LocationID,
			Timestamp:        time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewEntityMovedEvent creates a new movement event
func NewEntityMovedEvent(entityID, fromLocationID, toLocationID int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EntityMoved,
		Payload: EntityMovedPayloadV1{
			EntityID:       entityID,
			FromLocationID: fromLocationID,
			ToLocationID:   toLocationID,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPurchaseCompletedEvent creates a new purchase event
func NewPurchaseCompletedEvent(result *domain.PurchaseResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PurchaseCompleted,
		Payload: PurchaseCompletedPayloadV1{
			BuyerID:           result.BuyerID,
			InventoryRecordID: result.InventoryRecordID,
			ItemID:            result.Item.ID,
			ItemName:          result.Item.Name,
			Quantity:          result.Quantity,
			Total:             result.Total,
			Timestamp:         time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"buyer_id": result.BuyerID,
		},
	}
}

// NewChatMessageEvent creates a chat event for a single recipient
func NewChatMessageEvent(msg domain.ChatMessage) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ChatMessage,
		Payload: ChatMessagePayloadV1{
			SpeakerID:         msg.SpeakerID,
			SpeakerName:       msg.SpeakerName,
			LocationID:        msg.LocationID,
			RecipientID:       msg.RecipientID,
			RecipientIdentity: msg.RecipientIdentity,
			Text:              msg.Text,
			Message:           msg.Formatted(),
			Timestamp:         time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"recipient_id": msg.RecipientID,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// on the caller's goroutine.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishBestEffort publishes on bus and logs instead of failing. A nil bus is
// allowed so services can run without one in tests.
func PublishBestEffort(ctx context.Context, bus Bus, evt Event, log *slog.Logger) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		log.Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
