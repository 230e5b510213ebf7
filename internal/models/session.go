package models

import "time"

// Session is the server-side record of one connected participant.
// The ID is minted when the connection is established and never changes
// for the lifetime of the connection.
type Session struct {
	ID            string
	DisplayName   string
	Gender        string
	Location      string
	ChatStartedAt *time.Time
	PartnerName   string
	VideoReady    bool
	// RoomID is non-empty exactly while the session is a member of a room.
	RoomID string
}

// ResetPairing clears all pairing state, returning the session to the
// state it had before it was matched.
func (s *Session) ResetPairing() {
	s.RoomID = ""
	s.ChatStartedAt = nil
	s.PartnerName = ""
	s.VideoReady = false
}
