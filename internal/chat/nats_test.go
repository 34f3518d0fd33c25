package chat

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/event"
)

type failingPublisher struct{}

func (failingPublisher) Publish(subject string, data []byte) error {
	return errors.New("connection closed")
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "shopbot.entity.42.chat", Subject(42))
}

func TestNATSDeliverer(t *testing.T) {
	// ARRANGE
	ns, err := StartEmbeddedNATS("127.0.0.1", -1)
	require.NoError(t, err)
	t.Cleanup(ns.Shutdown)

	conn, err := ConnectNATS(ns.ClientURL())
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	received := make(chan *nats.Msg, 1)
	sub, err := conn.Subscribe(NATSSubjectWildcard, func(msg *nats.Msg) {
		received <- msg
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Unsubscribe() })
	require.NoError(t, conn.Flush())

	d := NewNATSDeliverer(conn)

	// ACT
	err = d.Deliver(context.Background(), domain.ChatMessage{
		SpeakerID:         1,
		SpeakerName:       "Almond",
		RecipientID:       7,
		RecipientIdentity: "discord:basil",
		Text:              "hello",
	})
	require.NoError(t, err)

	// ASSERT
	select {
	case msg := <-received:
		assert.Equal(t, "shopbot.entity.7.chat", msg.Subject)

		var evt event.Event
		require.NoError(t, json.Unmarshal(msg.Data, &evt))
		assert.Equal(t, event.ChatMessage, evt.Type)

		payload, err := event.DecodePayload[event.ChatMessagePayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, "discord:basil", payload.RecipientIdentity)
		assert.Equal(t, `Almond said "hello"`, payload.Message)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for chat message")
	}
}

func TestNATSDeliverer_PublishError(t *testing.T) {
	d := NewNATSDeliverer(failingPublisher{})

	err := d.Deliver(context.Background(), domain.ChatMessage{RecipientID: 3})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "shopbot.entity.3.chat")
}
