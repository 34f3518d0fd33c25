package discord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopBot_Go/internal/chat"
	"github.com/osse101/ShopBot_Go/internal/domain"
)

func TestNATSListener_RelaysChat(t *testing.T) {
	// ARRANGE
	ns, err := chat.StartEmbeddedNATS("127.0.0.1", -1)
	require.NoError(t, err)
	t.Cleanup(ns.Shutdown)

	conn, err := chat.ConnectNATS(ns.ClientURL())
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	m := newFakeMessenger()
	listener := NewNATSListener(conn, NewChatNotifier(m))
	require.NoError(t, listener.Start())
	t.Cleanup(listener.Stop)
	require.NoError(t, conn.Flush())

	// ACT
	err = chat.NewNATSDeliverer(conn).Deliver(context.Background(), domain.ChatMessage{
		SpeakerID:         1,
		SpeakerName:       "Almond",
		LocationID:        1,
		RecipientID:       7,
		RecipientIdentity: "discord:basil",
		Text:              "hello",
	})
	require.NoError(t, err)

	// ASSERT
	got := waitForDM(t, m)
	assert.Equal(t, dm{userID: "basil", content: "Almond said \"hello\""}, got)
}

func TestNATSListener_IgnoresGarbage(t *testing.T) {
	ns, err := chat.StartEmbeddedNATS("127.0.0.1", -1)
	require.NoError(t, err)
	t.Cleanup(ns.Shutdown)

	conn, err := chat.ConnectNATS(ns.ClientURL())
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	m := newFakeMessenger()
	listener := NewNATSListener(conn, NewChatNotifier(m))
	require.NoError(t, listener.Start())
	t.Cleanup(listener.Stop)

	require.NoError(t, conn.Publish(chat.Subject(7), []byte("not json")))
	require.NoError(t, conn.Publish(chat.Subject(7), []byte(`{"type":"entity.moved","payload":{}}`)))
	require.NoError(t, conn.Flush())

	// A valid line after the garbage still arrives, so earlier ones were dropped
	err = chat.NewNATSDeliverer(conn).Deliver(context.Background(), domain.ChatMessage{
		SpeakerName:       "Almond",
		RecipientID:       7,
		RecipientIdentity: "discord:basil",
		Text:              "ok",
	})
	require.NoError(t, err)

	got := waitForDM(t, m)
	assert.Equal(t, "Almond said \"ok\"", got.content)
	assert.Len(t, m.Sent(), 1)
}
