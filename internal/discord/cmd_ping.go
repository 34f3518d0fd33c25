package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Ping replies
const (
	MsgPongHealthy  = "Pong! 🏓 The shops are open."
	MsgPongDegraded = "Pong! 🏓 The shops are closed right now."
)

// PingCommand checks the bot and the API behind it
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot is alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		ctx, cancel := context.WithTimeout(context.Background(), healthProbeTimeout)
		defer cancel()

		content := MsgPongDegraded
		if client != nil && client.Healthy(ctx) {
			content = MsgPongHealthy
		}

		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
			},
		}); err != nil {
			slog.Error(LogMsgRespondFailed, "command", "ping", "error", err)
		}
	}

	return cmd, handler
}
