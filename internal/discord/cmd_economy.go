package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// BuyCommand purchases goods from a shop listing
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minOne := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Buy something from the shop you are in",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "item",
				Description: "Listing number from /list",
				Required:    true,
				MinValue:    &minOne,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "quantity",
				Description: "Quantity (default: 1)",
				Required:    false,
				MinValue:    &minOne,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		options := optionMap(i)
		recordID := options["item"].IntValue()
		quantity := 1
		if opt, ok := options["quantity"]; ok {
			quantity = int(opt.IntValue())
		}

		handleEmbedResponse(s, i, withPlayer(i, client, func(ctx context.Context, entityID int64) (string, error) {
			result, err := client.Purchase(ctx, entityID, recordID, quantity)
			if err != nil {
				return "", err
			}
			return FormatPurchase(result), nil
		}), ResponseConfig{Title: "💰 Purchase Complete", Color: ColorSuccess})
	}

	return cmd, handler
}
