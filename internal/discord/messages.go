package discord

// MsgWelcome greets a newly registered player
const MsgWelcome = "Welcome to the town. Type /status to begin, and /where to find places to shop. " +
	"Please use `/name Almond` to set your name. When you are in the taven, you can use `/say Blah` to talk to others"

// Player-facing texts
const (
	MsgWelcomeBack    = "You are already in town, %s. Type /status to look around."
	MsgNotRegistered  = "You haven't joined the town yet. Type /start to begin."
	MsgNothingForSale = "There is nothing for sale here. Try /where to shop somewhere else"
	MsgEmptyBackpack  = "nothing"
	MsgNoLocations    = "There is nowhere to go."
	MsgRenamed        = "From now on you are known as **%s**."
	MsgPurchased      = "You bought %dx %s for %s gold. You have %s gold left."
	MsgSaid           = "You said \"%s\""
	MsgNobodyHeard    = "Nobody is around to hear you."
	MsgHeardBy        = "%d of %d nearby players heard you."

	MsgGenericError = "❌ Something went wrong."
	MsgErrorPrefix  = "❌ "
)
