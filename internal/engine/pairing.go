package engine

import (
	"time"

	"anonchat/backend/internal/models"
	"anonchat/backend/internal/storage"
)

// FindPartner updates the requester's profile and tries to pair it with
// the first eligible waiting session, strict FIFO. With no eligible
// candidate the requester joins the queue and is told to wait. A stale
// queue entry (candidate disconnected but its id lingered) is discarded
// without surfacing anything to the requester, who falls back to
// waiting as if the queue had been empty.
func (e *Engine) FindPartner(requesterID, name, gender, location string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	requester, ok := e.registry.Get(requesterID)
	if !ok {
		return
	}
	e.registry.UpdateProfile(requesterID, name, gender, location)

	// Already paired: repeated find-partner must not open a second room.
	if requester.RoomID != "" {
		return
	}

	candidateID, found := e.queue.PopFirstOther(requesterID)
	if !found {
		e.enqueueAndWait(requesterID)
		return
	}

	partner, ok := e.registry.Get(candidateID)
	if !ok || partner.RoomID != "" {
		// Tolerated staleness window: the id outlived its session.
		if e.diag != nil {
			e.diag.StalePartnerDropped(requesterID, candidateID)
		}
		e.record(func(r storage.Recorder) error {
			return r.IncrCounter(storage.CounterStalePartners)
		})
		e.enqueueAndWait(requesterID)
		return
	}

	e.pair(requester, partner)
}

// pair forms the room and mutates both sessions in one step.
func (e *Engine) pair(requester, partner *models.Session) {
	// The requester may itself have a lingering queue entry.
	e.queue.Remove(requester.ID)

	now := time.Now()
	room := models.NewRoom(requester.ID, partner.ID, now)
	e.rooms.Add(room)

	for _, s := range []*models.Session{requester, partner} {
		s.RoomID = room.ID
		started := now
		s.ChatStartedAt = &started
		s.VideoReady = false
	}
	requester.PartnerName = partner.DisplayName
	partner.PartnerName = requester.DisplayName

	e.send(requester.ID, models.EventPartnerFound, models.PartnerFoundData{
		RoomID:          room.ID,
		PartnerName:     partner.DisplayName,
		PartnerGender:   partner.Gender,
		PartnerLocation: partner.Location,
	})
	e.send(partner.ID, models.EventPartnerFound, models.PartnerFoundData{
		RoomID:          room.ID,
		PartnerName:     requester.DisplayName,
		PartnerGender:   requester.Gender,
		PartnerLocation: requester.Location,
	})

	members := []string{room.MemberA, room.MemberB}
	e.record(func(r storage.Recorder) error {
		if err := r.RecordRoomStarted(room.ID, members, now); err != nil {
			return err
		}
		return r.IncrCounter(storage.CounterMatches)
	})
}

// enqueueAndWait queues the requester and notifies it, once. Repeated
// find-partner calls before a match are a tolerated no-op.
func (e *Engine) enqueueAndWait(requesterID string) {
	if e.queue.Enqueue(requesterID) {
		e.send(requesterID, models.EventWaiting, nil)
	}
}
