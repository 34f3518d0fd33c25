package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// SayCommand talks to everyone at the caller's location
func SayCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "say",
		Description: "Say something to the people around you",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "What to say",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		text := optionMap(i)["text"].StringValue()
		handleEmbedResponse(s, i, withPlayer(i, client, func(ctx context.Context, entityID int64) (string, error) {
			result, err := client.Say(ctx, entityID, text)
			if err != nil {
				return "", err
			}
			return FormatChatResult(text, result), nil
		}), ResponseConfig{Title: "💬 Said", Color: ColorChat})
	}

	return cmd, handler
}
