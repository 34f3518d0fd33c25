package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCommandRegistry(t *testing.T) {
	registry := NewCommandRegistry()

	cmd := &discordgo.ApplicationCommand{
		Name:        "test",
		Description: "Test command",
	}

	handlerCalled := false
	registry.Register(cmd, func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handlerCalled = true
	})

	assert.NotNil(t, registry.Commands["test"])
	assert.NotNil(t, registry.Handlers["test"])

	before := CommandsReceived()
	registry.Handle(nil, createTestInteraction("test"), nil)
	assert.True(t, handlerCalled)
	assert.Equal(t, before+1, CommandsReceived())

	// Unknown commands are ignored
	registry.Handle(nil, createTestInteraction("missing"), nil)
	assert.Equal(t, before+1, CommandsReceived())
}

func TestCommandRegistry_IgnoresNonCommandInteractions(t *testing.T) {
	registry := NewCommandRegistry()
	called := false
	registry.Register(&discordgo.ApplicationCommand{Name: "test"}, func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		called = true
	})

	i := createTestInteraction("test")
	i.Type = discordgo.InteractionPing
	registry.Handle(nil, i, nil)

	assert.False(t, called)
}

func TestCommandsEqual(t *testing.T) {
	buy, _ := BuyCommand()
	say, _ := SayCommand()
	buyAgain, _ := BuyCommand()
	sayAgain, _ := SayCommand()

	assert.True(t, commandsEqual(
		[]*discordgo.ApplicationCommand{buy, say},
		[]*discordgo.ApplicationCommand{sayAgain, buyAgain},
	))

	changed, _ := BuyCommand()
	changed.Options[1].Description = "How many"
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{buy, say},
		[]*discordgo.ApplicationCommand{changed, sayAgain},
	))

	assert.False(t, commandsEqual([]*discordgo.ApplicationCommand{buy}, []*discordgo.ApplicationCommand{buy, say}))
}

func TestOptionEqual_MinValue(t *testing.T) {
	one, two := 1.0, 2.0
	a := &discordgo.ApplicationCommandOption{Name: "item", MinValue: &one}
	b := &discordgo.ApplicationCommandOption{Name: "item", MinValue: &one}
	c := &discordgo.ApplicationCommandOption{Name: "item", MinValue: &two}
	d := &discordgo.ApplicationCommandOption{Name: "item"}

	assert.True(t, optionEqual(a, b))
	assert.False(t, optionEqual(a, c))
	assert.False(t, optionEqual(a, d))
}

func TestGetInteractionUser(t *testing.T) {
	guild := createTestInteraction("status")
	assert.Equal(t, "test-user-123", getInteractionUser(guild).ID)

	dm := createTestInteraction("status")
	dm.Member = nil
	dm.User = &discordgo.User{ID: "dm-user"}
	assert.Equal(t, "dm-user", getInteractionUser(dm).ID)
}
