package chat

import (
	"fmt"
	"log/slog"

	"github.com/nats-io/nats-server/v2/server"
)

// EmbeddedNATS is an in-process NATS server used when CHAT_TRANSPORT=nats
// and no NATS_URL is configured
type EmbeddedNATS struct {
	ns *server.Server
}

// StartEmbeddedNATS starts a server on host:port. Port -1 picks a random port.
func StartEmbeddedNATS(host string, port int) (*EmbeddedNATS, error) {
	ns, err := server.NewServer(&server.Options{
		Host:   host,
		Port:   port,
		NoSigs: true, // Let the application handle signals
		NoLog:  true,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgNATSServerFailed, err)
	}

	ns.Start()
	if !ns.ReadyForConnections(NATSStartupTimeout) {
		ns.Shutdown()
		return nil, fmt.Errorf("%s", ErrMsgNATSNotReady)
	}

	slog.Default().Info(LogMsgNATSServerStarted, "url", ns.ClientURL())
	return &EmbeddedNATS{ns: ns}, nil
}

// ClientURL returns the nats:// URL clients should connect to
func (e *EmbeddedNATS) ClientURL() string {
	return e.ns.ClientURL()
}

// Shutdown stops the server and waits for it to exit
func (e *EmbeddedNATS) Shutdown() {
	e.ns.Shutdown()
	e.ns.WaitForShutdown()
}
