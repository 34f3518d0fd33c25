package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// WhereCommand lists the places a player can travel to
func WhereCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "where",
		Description: "List the places in town",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (string, error) {
			locations, err := client.ListLocations(ctx)
			if err != nil {
				return "", err
			}
			return FormatLocations(locations), nil
		}, ResponseConfig{Title: "🗺 Places", Color: ColorInfo})
	}

	return cmd, handler
}

// ListCommand shows what is for sale where the caller stands
func ListCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "list",
		Description: "See what is for sale here",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, withPlayer(i, client, func(ctx context.Context, entityID int64) (string, error) {
			status, err := client.Status(ctx, entityID)
			if err != nil {
				return "", err
			}
			desc, err := client.DescribeLocation(ctx, status.LocationID)
			if err != nil {
				return "", err
			}
			return FormatListings(desc), nil
		}), ResponseConfig{Title: "🛒 For Sale", Color: ColorInfo})
	}

	return cmd, handler
}

// GoCommand moves the caller and shows the destination's shop
func GoCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLocation := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "go",
		Description: "Walk somewhere else",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "location",
				Description: "Location number from /where",
				Required:    true,
				MinValue:    &minLocation,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		locationID := optionMap(i)["location"].IntValue()
		handleEmbedResponse(s, i, withPlayer(i, client, func(ctx context.Context, entityID int64) (string, error) {
			if _, err := client.Move(ctx, entityID, locationID); err != nil {
				return "", err
			}
			desc, err := client.DescribeLocation(ctx, locationID)
			if err != nil {
				return "", err
			}
			return "**" + Title(desc.Location.Name) + "**\n" + FormatListings(desc), nil
		}), ResponseConfig{Title: "🚶 On The Move", Color: ColorInfo})
	}

	return cmd, handler
}
