// Package engine implements the matchmaking and session-relay core: the
// waiting queue, atomic pair formation, room lifecycle, in-room event
// relay and the video-call readiness handshake.
package engine

import (
	"encoding/json"
	"log"
	"sync"

	"anonchat/backend/internal/models"
	"anonchat/backend/internal/storage"
)

// Sender delivers an outbound event to a single session. Delivery is
// at-most-once and best-effort; a disconnected recipient simply misses
// the event.
type Sender interface {
	Send(sessionID string, event models.ServerEvent)
}

// DiagnosticSink receives non-protocol diagnostics. Nothing sent here
// is ever visible to clients.
type DiagnosticSink interface {
	StalePartnerDropped(requesterID, staleID string)
}

// Engine serializes every mutation of the registry, queue and room
// store through one mutex, so it is safe no matter how the host runtime
// dispatches connection events. No operation blocks on I/O; archive and
// counter writes drain through a single worker goroutine, which keeps
// them off the lock and in submission order, so a room's end write can
// never overtake its start write.
type Engine struct {
	mu       sync.Mutex
	registry *SessionRegistry
	queue    *WaitingQueue
	rooms    *RoomStore
	sender   Sender
	recordCh chan func(storage.Recorder) error
	diag     DiagnosticSink
}

// NewEngine builds an engine with fresh state structures. recorder may
// be nil; the engine then keeps no archive or counters.
func NewEngine(sender Sender, recorder storage.Recorder) *Engine {
	e := &Engine{
		registry: NewSessionRegistry(),
		queue:    NewWaitingQueue(),
		rooms:    NewRoomStore(),
		sender:   sender,
	}
	if recorder != nil {
		e.recordCh = make(chan func(storage.Recorder) error, 256)
		go e.recordLoop(recorder)
	}
	return e
}

// SetDiagnostics attaches an optional diagnostics sink. Must be called
// before the engine starts receiving events.
func (e *Engine) SetDiagnostics(d DiagnosticSink) {
	e.diag = d
}

// Register creates the session record for a new connection.
func (e *Engine) Register(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.registry.Register(sessionID)
}

// Disconnect performs the atomic cleanup for a lost connection: queue
// removal, room teardown without requeue, and registry removal. The
// departed session gets no summary; its partner's summary still reads
// the leaver's profile, which is removed only after the teardown.
func (e *Engine) Disconnect(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.leave(sessionID, false, false)
	e.registry.Remove(sessionID)
}

// HandleEvent decodes a named inbound event and routes it to the right
// operation. Malformed payloads and unknown events are dropped.
func (e *Engine) HandleEvent(sessionID string, ev models.ClientEvent) {
	switch ev.Event {
	case models.EventFindPartner:
		var d models.FindPartnerData
		if !decode(ev, &d) {
			return
		}
		e.FindPartner(sessionID, d.Name, d.Gender, d.Location)
	case models.EventMessage:
		var d models.MessageData
		if !decode(ev, &d) {
			return
		}
		e.Message(sessionID, d.RoomID, d.Message, d.Name)
	case models.EventFileMessage:
		var d models.FileMessageData
		if !decode(ev, &d) {
			return
		}
		e.FileMessage(sessionID, d.RoomID, d.File, d.Name)
	case models.EventStartVideo:
		var d models.RoomRef
		if !decode(ev, &d) {
			return
		}
		e.StartVideo(sessionID, d.RoomID)
	case models.EventStopVideo:
		var d models.RoomRef
		if !decode(ev, &d) {
			return
		}
		e.StopVideo(sessionID, d.RoomID)
	case models.EventWebRTCOffer:
		var d models.SDPData
		if !decode(ev, &d) {
			return
		}
		e.Offer(sessionID, d.RoomID, d.SDP)
	case models.EventWebRTCAnswer:
		var d models.SDPData
		if !decode(ev, &d) {
			return
		}
		e.Answer(sessionID, d.RoomID, d.SDP)
	case models.EventWebRTCICE:
		var d models.ICEData
		if !decode(ev, &d) {
			return
		}
		e.ICECandidate(sessionID, d.RoomID, d.Candidate)
	case models.EventNext:
		e.Next(sessionID)
	case models.EventEnd:
		e.End(sessionID)
	default:
		log.Printf("dropping unknown event %q from %s", ev.Event, sessionID)
	}
}

// Stats is a point-in-time snapshot of live engine state.
type Stats struct {
	Sessions int `json:"sessions"`
	Waiting  int `json:"waiting"`
	Rooms    int `json:"rooms"`
}

func (e *Engine) Snapshot() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{
		Sessions: e.registry.Len(),
		Waiting:  e.queue.Len(),
		Rooms:    e.rooms.Len(),
	}
}

// roomFor resolves roomID and checks membership. Both failure modes are
// dropped silently by callers; cross-room leakage must never occur.
func (e *Engine) roomFor(senderID, roomID string) (*models.Room, error) {
	room, ok := e.rooms.Get(roomID)
	if !ok {
		return nil, ErrInvalidRoom
	}
	if !room.HasMember(senderID) {
		return nil, ErrNotRoomMember
	}
	return room, nil
}

func (e *Engine) send(sessionID string, event string, data any) {
	e.sender.Send(sessionID, models.ServerEvent{Event: event, Data: data})
}

// record enqueues a best-effort storage write for the worker. A full
// backlog drops the write rather than blocking the engine lock.
func (e *Engine) record(fn func(r storage.Recorder) error) {
	if e.recordCh == nil {
		return
	}
	select {
	case e.recordCh <- fn:
	default:
		log.Printf("recorder backlog full, dropping archive write")
	}
}

func (e *Engine) recordLoop(r storage.Recorder) {
	for fn := range e.recordCh {
		if err := fn(r); err != nil {
			log.Printf("recorder error: %v", err)
		}
	}
}

func decode(ev models.ClientEvent, into any) bool {
	if len(ev.Data) == 0 {
		return false
	}
	if err := json.Unmarshal(ev.Data, into); err != nil {
		log.Printf("malformed %q payload: %v", ev.Event, err)
		return false
	}
	return true
}
