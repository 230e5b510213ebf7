package models

import "encoding/json"

// Inbound event names. The transport delivers named events with
// structured payloads; these are the names the engine consumes.
const (
	EventFindPartner  = "find-partner"
	EventMessage      = "message"
	EventFileMessage  = "file-message"
	EventStartVideo   = "start-video"
	EventStopVideo    = "stop-video"
	EventWebRTCOffer  = "webrtc-offer"
	EventWebRTCAnswer = "webrtc-answer"
	EventWebRTCICE    = "webrtc-ice-candidate"
	EventNext         = "next"
	EventEnd          = "end"
)

// Outbound event names.
const (
	EventWaiting            = "waiting"
	EventPartnerFound       = "partner-found"
	EventVideoWaiting       = "video-waiting"
	EventPartnerVideoIntent = "partner-video-intent"
	EventVideoStart         = "video-start"
	EventChatSummary        = "chat-summary"
	EventPartnerLeft        = "partner-left"
)

// ClientEvent is the inbound wire envelope: a named event plus its raw
// payload, decoded further by the engine depending on the event name.
type ClientEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ServerEvent is the outbound wire envelope.
type ServerEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// FindPartnerData carries the requester's profile. Empty fields fall
// back to the session's defaults, never to empty strings.
type FindPartnerData struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Location string `json:"location"`
}

// MessageData is an inbound chat message.
type MessageData struct {
	RoomID  string `json:"roomId"`
	Message string `json:"message"`
	Name    string `json:"name"`
}

// FileMessageData is an inbound file attachment. The file fields are
// opaque to the engine and are flattened into the relayed payload.
type FileMessageData struct {
	RoomID string         `json:"roomId"`
	File   map[string]any `json:"file"`
	Name   string         `json:"name"`
}

// SDPData is an inbound WebRTC offer or answer.
type SDPData struct {
	RoomID string `json:"roomId"`
	SDP    any    `json:"sdp"`
}

// ICEData is an inbound ICE candidate.
type ICEData struct {
	RoomID    string          `json:"roomId"`
	Candidate json.RawMessage `json:"candidate"`
}

// RoomRef is the payload of inbound events that only name a room.
type RoomRef struct {
	RoomID string `json:"roomId"`
}

// PartnerFoundData is delivered symmetrically to both members of a new
// room; each side receives the other's profile.
type PartnerFoundData struct {
	RoomID          string `json:"roomId"`
	PartnerName     string `json:"partnerName"`
	PartnerGender   string `json:"partnerGender"`
	PartnerLocation string `json:"partnerLocation"`
}

// RelayedMessage is a chat message as seen by the receiving member.
type RelayedMessage struct {
	From string `json:"from"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// RelayedSDP is a forwarded offer or answer, tagged with the sender's
// display name.
type RelayedSDP struct {
	From   string `json:"from"`
	SDP    any    `json:"sdp"`
	RoomID string `json:"roomId"`
}

// RelayedICE is a forwarded ICE candidate.
type RelayedICE struct {
	Candidate json.RawMessage `json:"candidate"`
	RoomID    string          `json:"roomId"`
}

// VideoStartData tells a member the handshake resolved and which role
// it was elected into.
type VideoStartData struct {
	RoomID       string `json:"roomId"`
	YouAreCaller bool   `json:"youAreCaller"`
}

// ChatSummaryData is delivered to each member when a room is torn down.
type ChatSummaryData struct {
	PartnerName     string `json:"partnerName"`
	PartnerGender   string `json:"partnerGender"`
	PartnerLocation string `json:"partnerLocation"`
	DurationMs      int64  `json:"durationMs"`
	EndedAt         int64  `json:"endedAt"`
}
