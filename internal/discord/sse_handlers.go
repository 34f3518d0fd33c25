package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/event"
)

// DirectMessenger sends a private message to a Discord user
type DirectMessenger interface {
	SendDM(userID, content string) error
}

// SessionMessenger sends DMs through a live discordgo session
type SessionMessenger struct {
	Session *discordgo.Session
}

// SendDM opens (or reuses) the DM channel and posts the embed
func (m SessionMessenger) SendDM(userID, content string) error {
	channel, err := m.Session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf(ErrMsgDMChannelFailed, userID, err)
	}
	if _, err := m.Session.ChannelMessageSendEmbed(channel.ID, createEmbed("💬 Chat", content, ColorChat)); err != nil {
		return fmt.Errorf(ErrMsgDMSendFailed, userID, err)
	}
	return nil
}

// ChatNotifier relays chat lines from the API to their Discord recipients
type ChatNotifier struct {
	messenger DirectMessenger
}

// NewChatNotifier creates a notifier that DMs through messenger
func NewChatNotifier(messenger DirectMessenger) *ChatNotifier {
	return &ChatNotifier{messenger: messenger}
}

// RegisterHandlers subscribes the notifier to chat events on the SSE client
func (n *ChatNotifier) RegisterHandlers(client *SSEClient) {
	client.OnEvent(SSEEventTypeChatMessage, n.handleChatEvent)
}

func (n *ChatNotifier) handleChatEvent(ctx context.Context, evt SSEEvent) error {
	var payload event.ChatMessagePayloadV1
	if err := json.Unmarshal(evt.Payload, &payload); err != nil {
		return fmt.Errorf("%s: %w", LogMsgChatDecodeFailed, err)
	}
	return n.Relay(ctx, payload)
}

// Relay DMs one chat line. Recipients without a Discord identity are
// someone else's to deliver and are skipped.
func (n *ChatNotifier) Relay(ctx context.Context, payload event.ChatMessagePayloadV1) error {
	userID, ok := DiscordUserID(payload.RecipientIdentity)
	if !ok {
		slog.Debug(LogMsgChatSkipped, "recipient_identity", payload.RecipientIdentity)
		return nil
	}

	content := payload.Message
	if content == "" {
		content = domain.ChatMessage{SpeakerName: payload.SpeakerName, Text: payload.Text}.Formatted()
	}

	if err := n.messenger.SendDM(userID, content); err != nil {
		slog.Warn(LogMsgChatRelayFailed, "recipient_id", payload.RecipientID, "error", err)
		return err
	}

	slog.Debug(LogMsgChatRelayed, "recipient_id", payload.RecipientID, "speaker_id", payload.SpeakerID)
	return nil
}
