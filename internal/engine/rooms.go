package engine

import "anonchat/backend/internal/models"

// RoomStore owns the active rooms, indexed by room id and by member id
// for teardown lookups.
type RoomStore struct {
	rooms    map[string]*models.Room
	byMember map[string]string
}

func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms:    make(map[string]*models.Room),
		byMember: make(map[string]string),
	}
}

func (rs *RoomStore) Add(room *models.Room) {
	rs.rooms[room.ID] = room
	rs.byMember[room.MemberA] = room.ID
	rs.byMember[room.MemberB] = room.ID
}

func (rs *RoomStore) Get(roomID string) (*models.Room, bool) {
	r, ok := rs.rooms[roomID]
	return r, ok
}

// ByMember returns the room containing the given session, if any.
func (rs *RoomStore) ByMember(sessionID string) (*models.Room, bool) {
	roomID, ok := rs.byMember[sessionID]
	if !ok {
		return nil, false
	}
	return rs.Get(roomID)
}

func (rs *RoomStore) Remove(roomID string) {
	r, ok := rs.rooms[roomID]
	if !ok {
		return
	}
	delete(rs.byMember, r.MemberA)
	delete(rs.byMember, r.MemberB)
	delete(rs.rooms, roomID)
}

func (rs *RoomStore) Len() int {
	return len(rs.rooms)
}
