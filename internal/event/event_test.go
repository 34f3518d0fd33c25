package event

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopBot_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	if err := bus.Publish(context.Background(), Event{Version: "1.0", Type: EntityMoved}); err != nil {
		t.Errorf("Publish returned error: %v", err)
	}
}

func TestNewPurchaseCompletedEvent(t *testing.T) {
	result := &domain.PurchaseResult{
		BuyerID:           7,
		InventoryRecordID: 3,
		Item:              domain.Item{ID: 1, Name: "Bread"},
		Quantity:          1,
		Total:             decimal.NewFromInt(5),
	}

	evt := NewPurchaseCompletedEvent(result)

	assert.Equal(t, PurchaseCompleted, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, int64(7), evt.GetMetadataValue("buyer_id"))

	payload, err := DecodePayload[PurchaseCompletedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "Bread", payload.ItemName)
	assert.True(t, payload.Total.Equal(decimal.NewFromInt(5)))
}

func TestNewChatMessageEvent(t *testing.T) {
	evt := NewChatMessageEvent(domain.ChatMessage{
		SpeakerID:         1,
		SpeakerName:       "Almond",
		LocationID:        2,
		RecipientID:       3,
		RecipientIdentity: "discord:42",
		Text:              "hi",
	})

	payload, err := DecodePayload[ChatMessagePayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, `Almond said "hi"`, payload.Message)
	assert.Equal(t, "discord:42", payload.RecipientIdentity)
}

func TestDecodePayload_FromMap(t *testing.T) {
	// Payloads that crossed a JSON boundary arrive as maps
	raw := map[string]interface{}{"entity_id": 4, "from_location_id": 1, "to_location_id": 2}

	payload, err := DecodePayload[EntityMovedPayloadV1](raw)

	require.NoError(t, err)
	assert.Equal(t, int64(4), payload.EntityID)
	assert.Equal(t, int64(2), payload.ToLocationID)
}

func TestPublishBestEffort_SwallowsErrors(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(EntityMoved, func(ctx context.Context, event Event) error {
		return errors.New("boom")
	})

	assert.NotPanics(t, func() {
		PublishBestEffort(context.Background(), bus, NewEntityMovedEvent(1, 1, 2), slog.Default())
		PublishBestEffort(context.Background(), nil, NewEntityMovedEvent(1, 1, 2), slog.Default())
	})
}
