package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	Players  *PlayerCache
	AppID    string
	Registry *CommandRegistry
	Notifier *ChatNotifier

	chatStream *SSEClient
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSessionCreate, err)
	}
	s.Identify.Intents = discordgo.IntentsDirectMessages | discordgo.IntentsGuilds

	players := NewPlayerCache(cfg.IdentityCacheSize, cfg.IdentityCacheTTL)

	return &Bot{
		Session:  s,
		Client:   NewAPIClient(cfg.APIURL, cfg.APIKey, players),
		Players:  players,
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
		Notifier: NewChatNotifier(SessionMessenger{Session: s}),
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf(ErrMsgSessionOpen, err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// StartChatStream relays chat lines from the API's event stream
func (b *Bot) StartChatStream(ctx context.Context, apiURL, apiKey string) {
	b.chatStream = NewSSEClient(apiURL, apiKey, []string{SSEEventTypeChatMessage})
	b.chatStream.SetAudience(IdentityFor(""))
	b.Notifier.RegisterHandlers(b.chatStream)
	b.chatStream.Start(ctx)
}

// ChatStreamConnected reports whether the event stream is attached
func (b *Bot) ChatStreamConnected() bool {
	return b.chatStream != nil && b.chatStream.IsConnected()
}

// Stop closes the chat stream and the gateway connection
func (b *Bot) Stop() {
	if b.chatStream != nil {
		b.chatStream.Stop()
	}
	if err := b.Session.Close(); err != nil {
		slog.Warn("Failed to close Discord session", "error", err)
	}
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}
