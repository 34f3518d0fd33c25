package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/ShopBot_Go/internal/domain"
)

// StartCommand registers the caller as a player
func StartCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "start",
		Description: "Join the town",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "What the townsfolk call you (default: " + domain.DefaultPlayerName + ")",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (string, error) {
			name := domain.DefaultPlayerName
			if opt, ok := optionMap(i)["name"]; ok && opt.StringValue() != "" {
				name = opt.StringValue()
			}

			entity, created, err := client.Join(ctx, getInteractionUser(i).ID, name)
			if err != nil {
				return "", err
			}
			if !created {
				return fmt.Sprintf(MsgWelcomeBack, entity.Name), nil
			}
			return MsgWelcome, nil
		}, ResponseConfig{Title: "🏘 Welcome", Color: ColorSuccess})
	}

	return cmd, handler
}

// NameCommand renames the caller's player
func NameCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "name",
		Description: "Change your name",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Your new name",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		name := optionMap(i)["name"].StringValue()
		handleEmbedResponse(s, i, withPlayer(i, client, func(ctx context.Context, entityID int64) (string, error) {
			if err := client.Rename(ctx, entityID, name); err != nil {
				return "", err
			}
			return fmt.Sprintf(MsgRenamed, name), nil
		}), ResponseConfig{Title: "📛 Name Changed", Color: ColorSuccess})
	}

	return cmd, handler
}

// StatusCommand shows location, money and backpack
func StatusCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "status",
		Description: "Look at where you are and what you carry",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, withPlayer(i, client, func(ctx context.Context, entityID int64) (string, error) {
			status, err := client.Status(ctx, entityID)
			if err != nil {
				return "", err
			}
			return FormatStatus(status), nil
		}), ResponseConfig{Title: "🎒 Status", Color: ColorInfo})
	}

	return cmd, handler
}
