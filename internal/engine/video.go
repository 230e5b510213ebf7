package engine

import "anonchat/backend/internal/models"

// StartVideo records the sender's readiness. When both members are
// ready the glare race is resolved by electing the lexicographically
// smaller session id as caller; both members learn their role in the
// same step, before either may create an offer. Election is a pure
// function of the two ids, so duplicate start-video events recompute
// the same roles.
func (e *Engine) StartVideo(senderID, roomID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, err := e.roomFor(senderID, roomID)
	if err != nil {
		return
	}
	sender, ok := e.registry.Get(senderID)
	if !ok {
		return
	}
	sender.VideoReady = true

	partnerID := room.Other(senderID)
	partner, partnerOK := e.registry.Get(partnerID)

	if partnerOK && partner.VideoReady {
		callerID := senderID
		if partnerID < callerID {
			callerID = partnerID
		}
		e.send(senderID, models.EventVideoStart, models.VideoStartData{
			RoomID:       roomID,
			YouAreCaller: callerID == senderID,
		})
		e.send(partnerID, models.EventVideoStart, models.VideoStartData{
			RoomID:       roomID,
			YouAreCaller: callerID == partnerID,
		})
		return
	}

	e.send(senderID, models.EventVideoWaiting, nil)
	if partnerOK {
		e.send(partnerID, models.EventPartnerVideoIntent, nil)
	}
}

// StopVideo ends the call for both sides: one-sided video is not
// supported, so the partner's readiness is reset along with the
// sender's.
func (e *Engine) StopVideo(senderID, roomID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, err := e.roomFor(senderID, roomID)
	if err != nil {
		return
	}
	if sender, ok := e.registry.Get(senderID); ok {
		sender.VideoReady = false
	}
	partnerID := room.Other(senderID)
	if partner, ok := e.registry.Get(partnerID); ok {
		partner.VideoReady = false
	}
	e.send(partnerID, models.EventStopVideo, nil)
}
