package models

import (
	"time"

	"github.com/lib/pq"
)

// Room pairs exactly two sessions into an active chat/video context.
// Rooms never outlive a member's departure.
type Room struct {
	ID        string
	MemberA   string
	MemberB   string
	CreatedAt time.Time
}

// NewRoom builds a room for the two member ids. The room id is the
// concatenation of the ids in arrival order; ids are server-minted UUIDs,
// so the result is unique per pairing.
func NewRoom(requesterID, partnerID string, at time.Time) *Room {
	return &Room{
		ID:        requesterID + "-" + partnerID,
		MemberA:   requesterID,
		MemberB:   partnerID,
		CreatedAt: at,
	}
}

// HasMember reports whether id is one of the two members.
func (r *Room) HasMember(id string) bool {
	return r.MemberA == id || r.MemberB == id
}

// Other returns the member that is not id. The caller must have checked
// membership first.
func (r *Room) Other(id string) string {
	if r.MemberA == id {
		return r.MemberB
	}
	return r.MemberA
}

// RoomRecord is the archived lifecycle row for a room. No message content
// is ever stored here, only when the pairing existed and for how long.
type RoomRecord struct {
	RoomID     string         `gorm:"primaryKey"`
	Members    pq.StringArray `gorm:"type:text[]"`
	IsActive   bool
	StartedAt  time.Time
	EndedAt    time.Time
	DurationMs int64
}
