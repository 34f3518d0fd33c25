package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/event"
	"github.com/osse101/ShopBot_Go/internal/testing/memstore"
)

// MockDeliverer is a mock implementation of Deliverer
type MockDeliverer struct {
	mock.Mock
}

func (m *MockDeliverer) Deliver(ctx context.Context, msg domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// recordingDeliverer keeps every message and fails for chosen recipients
type recordingDeliverer struct {
	mu      sync.Mutex
	sent    []domain.ChatMessage
	failFor map[int64]bool
}

func (d *recordingDeliverer) Deliver(ctx context.Context, msg domain.ChatMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failFor[msg.RecipientID] {
		return errors.New("recipient unreachable")
	}
	d.sent = append(d.sent, msg)
	return nil
}

func newTavern() (*memstore.Store, domain.Entity, domain.Entity, domain.Entity) {
	store := memstore.New()
	store.AddLocation(1, "Tavern", true)
	store.AddLocation(2, "Baker Barry", false)
	store.AddShopkeeper("Barry", 1)
	almond := store.AddPlayer("discord:almond", "Almond", 1, 40)
	basil := store.AddPlayer("discord:basil", "Basil", 1, 40)
	cumin := store.AddPlayer("discord:cumin", "Cumin", 1, 40)
	store.AddPlayer("discord:dill", "Dill", 2, 40)
	return store, almond, basil, cumin
}

func TestSay(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to co-located players except the speaker", func(t *testing.T) {
		// ARRANGE
		store, almond, basil, cumin := newTavern()
		d := &recordingDeliverer{}
		svc := NewService(store.World(), d)

		// ACT
		result, err := svc.Say(ctx, almond.ID, "hello")

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, &domain.ChatResult{LocationID: 1, Recipients: 2, Delivered: 2}, result)
		require.Len(t, d.sent, 2)
		assert.Equal(t, basil.ID, d.sent[0].RecipientID)
		assert.Equal(t, "discord:basil", d.sent[0].RecipientIdentity)
		assert.Equal(t, cumin.ID, d.sent[1].RecipientID)
		assert.Equal(t, `Almond said "hello"`, d.sent[0].Formatted())
	})

	t.Run("one failed delivery does not stop the rest", func(t *testing.T) {
		store, almond, basil, cumin := newTavern()
		d := &recordingDeliverer{failFor: map[int64]bool{basil.ID: true}}
		svc := NewService(store.World(), d)

		result, err := svc.Say(ctx, almond.ID, "hello")

		require.NoError(t, err)
		assert.Equal(t, 2, result.Recipients)
		assert.Equal(t, 1, result.Delivered)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, d.sent, 1)
		assert.Equal(t, cumin.ID, d.sent[0].RecipientID)
	})

	t.Run("alone at a location", func(t *testing.T) {
		store, _, _, _ := newTavern()
		dill, ok := store.Entity(5)
		require.True(t, ok)
		d := new(MockDeliverer)
		svc := NewService(store.World(), d)

		result, err := svc.Say(ctx, dill.ID, "anyone?")

		require.NoError(t, err)
		assert.Equal(t, 0, result.Recipients)
		d.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)
	})

	t.Run("text is trimmed", func(t *testing.T) {
		store, almond, _, _ := newTavern()
		d := &recordingDeliverer{}
		svc := NewService(store.World(), d)

		_, err := svc.Say(ctx, almond.ID, "  hi there \n")

		require.NoError(t, err)
		require.NotEmpty(t, d.sent)
		assert.Equal(t, "hi there", d.sent[0].Text)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name    string
			text    string
			wantErr error
		}{
			{"empty", "", domain.ErrMessageRequired},
			{"whitespace", "   ", domain.ErrMessageRequired},
			{"too long", strings.Repeat("a", domain.MaxMessageLength+1), domain.ErrMessageTooLong},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				store, almond, _, _ := newTavern()
				d := new(MockDeliverer)
				svc := NewService(store.World(), d)

				_, err := svc.Say(ctx, almond.ID, tt.text)

				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				d.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("message at the length limit", func(t *testing.T) {
		store, almond, _, _ := newTavern()
		svc := NewService(store.World(), &recordingDeliverer{})

		_, err := svc.Say(ctx, almond.ID, strings.Repeat("a", domain.MaxMessageLength))

		assert.NoError(t, err)
	})

	t.Run("unknown speaker", func(t *testing.T) {
		store, _, _, _ := newTavern()
		svc := NewService(store.World(), &recordingDeliverer{})

		_, err := svc.Say(ctx, 99, "hello")

		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})
}

func TestBusDeliverer(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes chat.message", func(t *testing.T) {
		// ARRANGE
		bus := event.NewMemoryBus()
		var got event.ChatMessagePayloadV1
		bus.Subscribe(event.ChatMessage, func(ctx context.Context, evt event.Event) error {
			var err error
			got, err = event.DecodePayload[event.ChatMessagePayloadV1](evt.Payload)
			return err
		})
		d := NewBusDeliverer(bus)

		// ACT
		err := d.Deliver(ctx, domain.ChatMessage{SpeakerID: 1, SpeakerName: "Almond", RecipientID: 2, Text: "hi"})

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.RecipientID)
		assert.Equal(t, `Almond said "hi"`, got.Message)
	})

	t.Run("handler error is returned", func(t *testing.T) {
		bus := event.NewMemoryBus()
		bus.Subscribe(event.ChatMessage, func(ctx context.Context, evt event.Event) error {
			return errors.New("buffer full")
		})
		d := NewBusDeliverer(bus)

		err := d.Deliver(ctx, domain.ChatMessage{RecipientID: 2, Text: "hi"})

		assert.Error(t, err)
	})
}
