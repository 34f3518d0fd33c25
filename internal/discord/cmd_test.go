package discord

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/handler"
)

const testIdentity = "discord:test-user-123"

func run(tc *TestContext, factory CommandFactory, i *discordgo.InteractionCreate) {
	_, h := factory()
	h(tc.Session, i, tc.APIClient)
}

func resolveHandler(entityID int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("external_identity") != testIdentity {
			WriteError(w, http.StatusNotFound, domain.ErrMsgEntityNotFound)
			return
		}
		identity := testIdentity
		WriteJSON(w, http.StatusOK, domain.Entity{ID: entityID, ExternalIdentity: &identity, Name: "Almond", LocationID: 1})
	}
}

func TestStartCommand_NewPlayer(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	var got handler.RegisterRequest
	tc.Mux.HandleFunc("POST /api/v1/entities/register", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		WriteJSON(w, http.StatusCreated, domain.Entity{ID: 5, Name: got.DisplayName, LocationID: 1})
	})

	// ACT
	run(tc, StartCommand, createTestInteraction("start", stringOption("name", "Almond")))

	// ASSERT
	assert.Equal(t, testIdentity, got.ExternalIdentity)
	assert.Equal(t, "Almond", got.DisplayName)
	assert.Equal(t, MsgWelcome, tc.LastEmbed(t).Description)

	id, ok := tc.APIClient.players.Get("test-user-123")
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)

	responses := tc.Responses()
	require.Len(t, responses, 1)
	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, responses[0].Type)
}

func TestStartCommand_DefaultName(t *testing.T) {
	tc := SetupTestContext(t)
	var got handler.RegisterRequest
	tc.Mux.HandleFunc("POST /api/v1/entities/register", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		WriteJSON(w, http.StatusCreated, domain.Entity{ID: 5, Name: got.DisplayName})
	})

	run(tc, StartCommand, createTestInteraction("start"))

	assert.Equal(t, domain.DefaultPlayerName, got.DisplayName)
}

func TestStartCommand_AlreadyRegistered(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("POST /api/v1/entities/register", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusConflict, domain.ErrMsgIdentityTaken)
	})
	tc.Mux.HandleFunc("GET /api/v1/entities/resolve", resolveHandler(9))

	// ACT
	run(tc, StartCommand, createTestInteraction("start"))

	// ASSERT
	assert.Equal(t, fmt.Sprintf(MsgWelcomeBack, "Almond"), tc.LastEmbed(t).Description)
	id, ok := tc.APIClient.players.Get("test-user-123")
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)
}

func TestStatusCommand(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /api/v1/entities/resolve", resolveHandler(2))
	tc.Mux.HandleFunc("GET /api/v1/entities/2/status", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, domain.EntityStatus{
			EntityID:     2,
			Name:         "Almond",
			Money:        decimal.NewFromInt(35),
			LocationID:   2,
			LocationName: "👨 Baker Barry",
			Holdings: []domain.Holding{
				{Item: domain.Item{ID: 1, Name: "Bread"}, Quantity: 1},
			},
		})
	})

	// ACT
	run(tc, StatusCommand, createTestInteraction("status"))

	// ASSERT
	embed := tc.LastEmbed(t)
	assert.Equal(t, "You are standing in the middle of 👨 Baker Barry, with 35 gold in your pocket, "+
		"and the following items in your backpack:\n1x Bread", embed.Description)
	assert.Equal(t, FooterShopBot, embed.Footer.Text)
}

func TestStatusCommand_NotRegistered(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /api/v1/entities/resolve", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, domain.ErrMsgEntityNotFound)
	})

	run(tc, StatusCommand, createTestInteraction("status"))

	assert.Equal(t, MsgNotRegistered, tc.LastContent(t))
}

func TestStatusCommand_UsesCachedPlayer(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	tc.APIClient.players.Set("test-user-123", 2)
	var resolves atomic.Int32
	tc.Mux.HandleFunc("GET /api/v1/entities/resolve", func(w http.ResponseWriter, r *http.Request) {
		resolves.Add(1)
		WriteError(w, http.StatusNotFound, domain.ErrMsgEntityNotFound)
	})
	tc.Mux.HandleFunc("GET /api/v1/entities/2/status", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, domain.EntityStatus{EntityID: 2, LocationName: "🏨 Tavern", Money: decimal.NewFromInt(40)})
	})

	// ACT
	run(tc, StatusCommand, createTestInteraction("status"))

	// ASSERT
	assert.Equal(t, int32(0), resolves.Load())
	assert.Contains(t, tc.LastEmbed(t).Description, "with 40 gold in your pocket")
	assert.Contains(t, tc.LastEmbed(t).Description, "\nnothing")
}

func TestBuyCommand(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	tc.APIClient.players.Set("test-user-123", 2)
	var got handler.PurchaseRequest
	tc.Mux.HandleFunc("POST /api/v1/entities/2/purchase", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		WriteJSON(w, http.StatusOK, domain.PurchaseResult{
			BuyerID:           2,
			InventoryRecordID: 1,
			Item:              domain.Item{ID: 1, Name: "Bread"},
			Quantity:          2,
			UnitPrice:         decimal.NewFromInt(5),
			Total:             decimal.NewFromInt(10),
			MoneyRemaining:    decimal.NewFromInt(30),
			StockRemaining:    14,
		})
	})

	// ACT
	run(tc, BuyCommand, createTestInteraction("buy", intOption("item", 1), intOption("quantity", 2)))

	// ASSERT
	assert.Equal(t, int64(1), got.InventoryRecordID)
	require.NotNil(t, got.Quantity)
	assert.Equal(t, 2, *got.Quantity)
	assert.Equal(t, "You bought 2x Bread for 10 gold. You have 30 gold left.", tc.LastEmbed(t).Description)
}

func TestBuyCommand_InsufficientFunds(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	tc.APIClient.players.Set("test-user-123", 2)
	var calls atomic.Int32
	var got handler.PurchaseRequest
	tc.Mux.HandleFunc("POST /api/v1/entities/2/purchase", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		WriteError(w, http.StatusUnprocessableEntity, domain.ErrMsgInsufficientFunds)
	})

	// ACT
	run(tc, BuyCommand, createTestInteraction("buy", intOption("item", 2)))

	// ASSERT
	assert.Equal(t, int32(1), calls.Load())
	require.NotNil(t, got.Quantity)
	assert.Equal(t, 1, *got.Quantity)
	assert.Equal(t, MsgErrorPrefix+domain.ErrMsgInsufficientFunds, tc.LastContent(t))
}

func TestGoCommand(t *testing.T) {
	// ARRANGE
	tc := SetupTestContext(t)
	tc.APIClient.players.Set("test-user-123", 2)
	var moved handler.MoveRequest
	tc.Mux.HandleFunc("POST /api/v1/entities/2/move", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&moved))
		WriteJSON(w, http.StatusOK, domain.EntityStatus{EntityID: 2, LocationID: 3})
	})
	price := decimal.NewFromInt(50)
	tc.Mux.HandleFunc("GET /api/v1/locations/3/", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, domain.LocationDescription{
			Location: domain.Location{ID: 3, Name: "🛠 old ironworks"},
			Listings: []domain.ForSaleListing{{
				Record: domain.InventoryRecord{ID: 2, EntityID: 3, ItemID: 2, Quantity: 2, Price: &price},
				Item:   domain.Item{ID: 2, Name: "Short Sword", Description: "Stabby"},
			}},
		})
	})

	// ACT
	run(tc, GoCommand, createTestInteraction("go", intOption("location", 3)))

	// ASSERT
	assert.Equal(t, int64(3), moved.DestinationLocationID)
	assert.Equal(t, "**🛠 Old Ironworks**\nShort Sword - 50 gold /buy_2\n\tStabby\n", tc.LastEmbed(t).Description)
}

func TestGoCommand_UnknownLocation(t *testing.T) {
	tc := SetupTestContext(t)
	tc.APIClient.players.Set("test-user-123", 2)
	tc.Mux.HandleFunc("POST /api/v1/entities/2/move", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, domain.ErrMsgLocationNotFound)
	})

	run(tc, GoCommand, createTestInteraction("go", intOption("location", 99)))

	assert.Equal(t, MsgErrorPrefix+domain.ErrMsgLocationNotFound, tc.LastContent(t))
}

func TestListCommand_NothingForSale(t *testing.T) {
	tc := SetupTestContext(t)
	tc.APIClient.players.Set("test-user-123", 2)
	tc.Mux.HandleFunc("GET /api/v1/entities/2/status", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, domain.EntityStatus{EntityID: 2, LocationID: 1})
	})
	tc.Mux.HandleFunc("GET /api/v1/locations/1/", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, domain.LocationDescription{Location: domain.Location{ID: 1}, NothingForSale: true})
	})

	run(tc, ListCommand, createTestInteraction("list"))

	assert.Equal(t, MsgNothingForSale, tc.LastEmbed(t).Description)
}

func TestWhereCommand(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /api/v1/locations", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, []domain.Location{
			{ID: 1, Name: "🏨 Tavern", IsStart: true},
			{ID: 2, Name: "👨 Baker Barry"},
		})
	})

	run(tc, WhereCommand, createTestInteraction("where"))

	assert.Equal(t, "🏨 Tavern /go_1\n👨 Baker Barry /go_2", tc.LastEmbed(t).Description)
}

func TestNameCommand(t *testing.T) {
	tc := SetupTestContext(t)
	tc.APIClient.players.Set("test-user-123", 2)
	var got handler.RenameRequest
	tc.Mux.HandleFunc("PUT /api/v1/entities/2/name", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		WriteJSON(w, http.StatusOK, handler.SuccessResponse{Message: "renamed"})
	})

	run(tc, NameCommand, createTestInteraction("name", stringOption("name", "Basil")))

	assert.Equal(t, "Basil", got.Name)
	assert.Equal(t, fmt.Sprintf(MsgRenamed, "Basil"), tc.LastEmbed(t).Description)
}

func TestSayCommand(t *testing.T) {
	tests := []struct {
		name     string
		result   domain.ChatResult
		expected string
	}{
		{
			name:     "Heard",
			result:   domain.ChatResult{LocationID: 1, Recipients: 2, Delivered: 2},
			expected: "You said \"hello\"\n2 of 2 nearby players heard you.",
		},
		{
			name:     "Alone",
			result:   domain.ChatResult{LocationID: 1},
			expected: "You said \"hello\"\n" + MsgNobodyHeard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := SetupTestContext(t)
			tc.APIClient.players.Set("test-user-123", 2)
			tc.Mux.HandleFunc("POST /api/v1/entities/2/say", func(w http.ResponseWriter, r *http.Request) {
				var req handler.SayRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "hello", req.Text)
				WriteJSON(w, http.StatusOK, tt.result)
			})

			run(tc, SayCommand, createTestInteraction("say", stringOption("text", "hello")))

			assert.Equal(t, tt.expected, tc.LastEmbed(t).Description)
		})
	}
}

func TestPingCommand(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	run(tc, PingCommand, createTestInteraction("ping"))

	responses := tc.Responses()
	require.Len(t, responses, 1)
	require.NotNil(t, responses[0].Data)
	assert.Equal(t, MsgPongHealthy, responses[0].Data.Content)
}
