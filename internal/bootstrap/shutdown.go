package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ShopBot_Go/internal/server"
	"github.com/osse101/ShopBot_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Hub    *sse.Hub
	Chat   *ChatTransport
}

// GracefulShutdown stops the HTTP server first so no new requests arrive,
// then the SSE hub and finally the chat transport. Errors are logged and
// never stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Chat != nil {
		slog.Info(LogMsgClosingChatTransport)
		components.Chat.Close()
	}

	slog.Info(LogMsgServerStopped)
}
