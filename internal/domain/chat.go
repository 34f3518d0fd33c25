package domain

import "fmt"

// ChatMessage is a line of chat addressed to one recipient
type ChatMessage struct {
	SpeakerID         int64  `json:"speaker_id"`
	SpeakerName       string `json:"speaker_name"`
	LocationID        int64  `json:"location_id"`
	RecipientID       int64  `json:"recipient_id"`
	RecipientIdentity string `json:"recipient_identity"`
	Text              string `json:"text"`
}

// Formatted renders the message the way recipients see it
func (m ChatMessage) Formatted() string {
	return fmt.Sprintf("%s said \"%s\"", m.SpeakerName, m.Text)
}

// ChatResult reports how a broadcast went. Failed deliveries do not fail the
// broadcast.
type ChatResult struct {
	LocationID int64 `json:"location_id"`
	Recipients int   `json:"recipients"`
	Delivered  int   `json:"delivered"`
	Failed     int   `json:"failed"`
}
