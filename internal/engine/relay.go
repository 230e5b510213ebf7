package engine

import (
	"encoding/json"

	"anonchat/backend/internal/models"
)

// The relay is a pure pass-through: payloads are delivered unchanged to
// the other room member, with the sender's identity attached where the
// protocol calls for it. Events citing a room the sender does not
// belong to are dropped without any reply.

// Message relays a chat message to the partner.
func (e *Engine) Message(senderID, roomID, text, name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, err := e.roomFor(senderID, roomID)
	if err != nil {
		return
	}
	e.send(room.Other(senderID), models.EventMessage, models.RelayedMessage{
		From: "partner",
		Name: name,
		Text: text,
	})
}

// FileMessage relays a file attachment, flattening the file fields into
// the delivered payload.
func (e *Engine) FileMessage(senderID, roomID string, file map[string]any, name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, err := e.roomFor(senderID, roomID)
	if err != nil {
		return
	}
	payload := map[string]any{
		"from": "partner",
		"name": name,
	}
	for k, v := range file {
		payload[k] = v
	}
	e.send(room.Other(senderID), models.EventFileMessage, payload)
}

// Offer relays a WebRTC offer, tagged with the sender's display name.
func (e *Engine) Offer(senderID, roomID string, sdp any) {
	e.relaySDP(senderID, roomID, sdp, models.EventWebRTCOffer)
}

// Answer relays a WebRTC answer, tagged with the sender's display name.
func (e *Engine) Answer(senderID, roomID string, sdp any) {
	e.relaySDP(senderID, roomID, sdp, models.EventWebRTCAnswer)
}

func (e *Engine) relaySDP(senderID, roomID string, sdp any, event string) {
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
	e.send(room.Other(senderID), event, models.RelayedSDP{
		From:   sender.DisplayName,
		SDP:    sdp,
		RoomID: roomID,
	})
}

// ICECandidate relays an ICE candidate.
func (e *Engine) ICECandidate(senderID, roomID string, candidate json.RawMessage) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, err := e.roomFor(senderID, roomID)
	if err != nil {
		return
	}
	e.send(room.Other(senderID), models.EventWebRTCICE, models.RelayedICE{
		Candidate: candidate,
		RoomID:    roomID,
	})
}
