package engine

import (
	"time"

	"anonchat/backend/internal/config"
	"anonchat/backend/internal/models"
	"anonchat/backend/internal/storage"
)

// Next leaves the current room and tells the leaver to wait for a
// rematch; the client re-issues find-partner on its own.
func (e *Engine) Next(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.leave(sessionID, true, true)
}

// End leaves the current room with no requeue.
func (e *Engine) End(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.leave(sessionID, false, true)
}

// leave is the single teardown path for next, end and disconnect.
// notifyLeaver is false on the disconnect path, where the leaver's
// connection is already gone and a summary would be a dead letter.
// Callers hold the engine lock.
func (e *Engine) leave(sessionID string, requeue, notifyLeaver bool) {
	e.queue.Remove(sessionID)

	room, ok := e.rooms.ByMember(sessionID)
	if !ok {
		return
	}

	leaver, leaverOK := e.registry.Get(sessionID)
	partnerID := room.Other(sessionID)
	partner, partnerOK := e.registry.Get(partnerID)

	endedAt := time.Now()
	leaverDur := int64(0)
	if leaverOK && leaver.ChatStartedAt != nil {
		leaverDur = endedAt.Sub(*leaver.ChatStartedAt).Milliseconds()
	}

	if leaverOK && notifyLeaver {
		e.send(sessionID, models.EventChatSummary, summaryOf(partner, leaverDur, endedAt))
	}

	if partnerOK {
		// The partner's own clock, falling back to the leaver's elapsed
		// time if it was never set.
		partnerDur := leaverDur
		if partner.ChatStartedAt != nil {
			partnerDur = endedAt.Sub(*partner.ChatStartedAt).Milliseconds()
		}
		e.send(partnerID, models.EventChatSummary, summaryOf(leaver, partnerDur, endedAt))
		e.send(partnerID, models.EventPartnerLeft, nil)
		partner.VideoReady = false
	}

	if leaverOK {
		leaver.ResetPairing()
	}
	if partnerOK {
		partner.ResetPairing()
	}
	e.rooms.Remove(room.ID)

	roomID := room.ID
	e.record(func(r storage.Recorder) error {
		if err := r.RecordRoomEnded(roomID, endedAt, leaverDur); err != nil {
			return err
		}
		return r.IncrCounter(storage.CounterRoomsClosed)
	})

	if requeue && notifyLeaver {
		e.send(sessionID, models.EventWaiting, nil)
	}
}

// summaryOf builds a session summary about the given partner. A partner
// that already disconnected degrades to Unknown fields rather than
// failing the summary.
func summaryOf(partner *models.Session, durationMs int64, endedAt time.Time) models.ChatSummaryData {
	s := models.ChatSummaryData{
		PartnerName:     "Unknown",
		PartnerGender:   config.DefaultGender,
		PartnerLocation: config.DefaultLocation,
		DurationMs:      durationMs,
		EndedAt:         endedAt.UnixMilli(),
	}
	if partner != nil {
		s.PartnerName = partner.DisplayName
		s.PartnerGender = partner.Gender
		s.PartnerLocation = partner.Location
	}
	return s
}
