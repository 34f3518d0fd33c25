package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/osse101/ShopBot_Go/internal/chat"
	"github.com/osse101/ShopBot_Go/internal/event"
)

// NATSListener relays chat lines published on the per-entity NATS subjects
type NATSListener struct {
	conn     *nats.Conn
	notifier *ChatNotifier
	sub      *nats.Subscription
}

// NewNATSListener creates a listener on an open connection
func NewNATSListener(conn *nats.Conn, notifier *ChatNotifier) *NATSListener {
	return &NATSListener{conn: conn, notifier: notifier}
}

// Start subscribes to every entity's chat subject
func (l *NATSListener) Start() error {
	sub, err := l.conn.Subscribe(chat.NATSSubjectWildcard, l.handle)
	if err != nil {
		return fmt.Errorf(ErrMsgNATSSubscribe, chat.NATSSubjectWildcard, err)
	}
	l.sub = sub
	slog.Info(LogMsgNATSListening, "subject", chat.NATSSubjectWildcard)
	return nil
}

// Stop removes the subscription
func (l *NATSListener) Stop() {
	if l.sub != nil {
		_ = l.sub.Unsubscribe()
	}
}

func (l *NATSListener) handle(msg *nats.Msg) {
	var envelope struct {
		Type    event.Type                 `json:"type"`
		Payload event.ChatMessagePayloadV1 `json:"payload"`
	}
	if err := json.Unmarshal(msg.Data, &envelope); err != nil {
		slog.Warn(LogMsgChatDecodeFailed, "subject", msg.Subject, "error", err)
		return
	}
	if envelope.Type != event.ChatMessage {
		return
	}
	_ = l.notifier.Relay(context.Background(), envelope.Payload)
}
