package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/osse101/ShopBot_Go/internal/chat"
	"github.com/osse101/ShopBot_Go/internal/config"
	"github.com/osse101/ShopBot_Go/internal/event"
)

// ChatTransport is the chosen chat deliverer plus whatever it needs closed
// at shutdown
type ChatTransport struct {
	Deliverer chat.Deliverer
	Conn      *nats.Conn
	Embedded  *chat.EmbeddedNATS
}

// InitializeChatTransport picks the chat deliverer. The sse transport
// publishes on the bus; nats publishes per-recipient subjects, starting an
// embedded server when NATS_URL is empty.
func InitializeChatTransport(cfg *config.Config, bus event.Bus) (*ChatTransport, error) {
	if cfg.ChatTransport != config.ChatTransportNATS {
		slog.Info(LogMsgChatTransport, "transport", config.ChatTransportSSE)
		return &ChatTransport{Deliverer: chat.NewBusDeliverer(bus)}, nil
	}

	t := &ChatTransport{}
	url := cfg.NATSURL
	if url == "" {
		embedded, err := chat.StartEmbeddedNATS(EmbeddedNATSHost, EmbeddedNATSPort)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedStartNATS, err)
		}
		t.Embedded = embedded
		url = embedded.ClientURL()
		slog.Info(LogMsgEmbeddedNATSStarted, "url", url)
	}

	conn, err := chat.ConnectNATS(url)
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectNATS, err)
	}
	t.Conn = conn
	t.Deliverer = chat.NewNATSDeliverer(conn)

	slog.Info(LogMsgNATSConnected, "url", url)
	slog.Info(LogMsgChatTransport, "transport", config.ChatTransportNATS)
	return t, nil
}

// Close drains the NATS connection and stops the embedded server
func (t *ChatTransport) Close() {
	if t.Conn != nil {
		if err := t.Conn.Drain(); err != nil {
			slog.Warn(LogMsgNATSDrainFailed, "error", err)
		}
	}
	if t.Embedded != nil {
		t.Embedded.Shutdown()
	}
}
