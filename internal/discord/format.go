package discord

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/ShopBot_Go/internal/domain"
)

var titleCaser = cases.Title(language.English)

// FormatStatus renders the status sentence with the backpack contents
func FormatStatus(status *domain.EntityStatus) string {
	inventory := MsgEmptyBackpack
	if len(status.Holdings) > 0 {
		lines := make([]string, 0, len(status.Holdings))
		for _, h := range status.Holdings {
			lines = append(lines, fmt.Sprintf("%dx %s", h.Quantity, h.Item.Name))
		}
		inventory = strings.Join(lines, "\n")
	}

	return fmt.Sprintf("You are standing in the middle of %s, with %s gold in your pocket, "+
		"and the following items in your backpack:\n%s",
		status.LocationName, status.Money.String(), inventory)
}

// FormatListings renders a shop's stock, or the nothing-for-sale line
func FormatListings(desc *domain.LocationDescription) string {
	if desc.NothingForSale || len(desc.Listings) == 0 {
		return MsgNothingForSale
	}

	lines := make([]string, 0, len(desc.Listings))
	for _, l := range desc.Listings {
		price := ""
		if l.Record.Price != nil {
			price = l.Record.Price.String()
		}
		lines = append(lines, fmt.Sprintf("%s - %s gold /buy_%d\n\t%s\n", l.Item.Name, price, l.Record.ID, l.Item.Description))
	}
	return strings.Join(lines, "\n")
}

// FormatLocations renders one travel line per location
func FormatLocations(locations []domain.Location) string {
	if len(locations) == 0 {
		return MsgNoLocations
	}

	lines := make([]string, 0, len(locations))
	for _, loc := range locations {
		lines = append(lines, fmt.Sprintf("%s /go_%d", loc.Name, loc.ID))
	}
	return strings.Join(lines, "\n")
}

// FormatPurchase summarizes a completed purchase
func FormatPurchase(result *domain.PurchaseResult) string {
	return fmt.Sprintf(MsgPurchased, result.Quantity, result.Item.Name, result.Total.String(), result.MoneyRemaining.String())
}

// FormatChatResult tells the speaker how far their words carried
func FormatChatResult(text string, result *domain.ChatResult) string {
	said := fmt.Sprintf(MsgSaid, text)
	if result.Recipients == 0 {
		return said + "\n" + MsgNobodyHeard
	}
	return said + "\n" + fmt.Sprintf(MsgHeardBy, result.Delivered, result.Recipients)
}

// Title title-cases embed titles such as location and item names
func Title(s string) string {
	return titleCaser.String(s)
}

// formatFriendlyError turns a command failure into the text shown to the
// player. API errors carry readable messages already; anything else is
// collapsed to a generic line.
func formatFriendlyError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message == "" {
		return MsgGenericError
	}
	if apiErr == ErrNotRegistered {
		return apiErr.Message
	}
	return MsgErrorPrefix + apiErr.Message
}
