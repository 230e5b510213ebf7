package engine

import (
	"sync"
	"testing"
	"time"

	"anonchat/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSender is the in-package twin of the exported-API test sender.
type captureSender struct {
	mu     sync.Mutex
	events map[string][]models.ServerEvent
}

func newCaptureSender() *captureSender {
	return &captureSender{events: make(map[string][]models.ServerEvent)}
}

func (s *captureSender) Send(sessionID string, event models.ServerEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[sessionID] = append(s.events[sessionID], event)
}

func (s *captureSender) names(sessionID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, ev := range s.events[sessionID] {
		out = append(out, ev.Event)
	}
	return out
}

type staleSpy struct {
	requesterID string
	staleID     string
	calls       int
}

func (d *staleSpy) StalePartnerDropped(requesterID, staleID string) {
	d.requesterID = requesterID
	d.staleID = staleID
	d.calls++
}

// A queue entry whose session vanished without the queue hearing about
// it must be discarded, reported to diagnostics and never surfaced to
// the requester, who simply waits.
func TestFindPartnerDiscardsStaleQueueEntry(t *testing.T) {
	sender := newCaptureSender()
	eng := NewEngine(sender, nil)
	spy := &staleSpy{}
	eng.SetDiagnostics(spy)

	eng.Register("requester")
	// Plant an entry with no backing session.
	eng.queue.Enqueue("ghost")

	eng.FindPartner("requester", "Alice", "", "")

	assert.Equal(t, []string{models.EventWaiting}, sender.names("requester"))
	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, "requester", spy.requesterID)
	assert.Equal(t, "ghost", spy.staleID)
	assert.False(t, eng.queue.Contains("ghost"))
	assert.True(t, eng.queue.Contains("requester"))
	assert.Zero(t, eng.rooms.Len())
}

// An entry whose session is alive but already paired is equally stale.
func TestFindPartnerSkipsAlreadyPairedQueueEntry(t *testing.T) {
	sender := newCaptureSender()
	eng := NewEngine(sender, nil)
	spy := &staleSpy{}
	eng.SetDiagnostics(spy)

	eng.Register("busy")
	eng.Register("requester")
	busy, ok := eng.registry.Get("busy")
	require.True(t, ok)
	busy.RoomID = "some-room"
	eng.queue.Enqueue("busy")

	eng.FindPartner("requester", "Alice", "", "")

	assert.Equal(t, []string{models.EventWaiting}, sender.names("requester"))
	assert.Equal(t, "busy", spy.staleID)
	assert.Zero(t, eng.rooms.Len())
}

// Teardown with the partner's session already gone degrades the
// summary instead of omitting it.
func TestLeaveSummaryDegradesWhenPartnerSessionMissing(t *testing.T) {
	sender := newCaptureSender()
	eng := NewEngine(sender, nil)

	eng.Register("s1")
	started := time.Now().Add(-3 * time.Second)
	s1, ok := eng.registry.Get("s1")
	require.True(t, ok)
	room := models.NewRoom("s1", "vanished", time.Now())
	eng.rooms.Add(room)
	s1.RoomID = room.ID
	s1.ChatStartedAt = &started

	eng.End("s1")

	evs := sender.events["s1"]
	require.Len(t, evs, 1)
	require.Equal(t, models.EventChatSummary, evs[0].Event)
	sum := evs[0].Data.(models.ChatSummaryData)
	assert.Equal(t, "Unknown", sum.PartnerName)
	assert.Equal(t, "Unknown", sum.PartnerGender)
	assert.Equal(t, "Unknown", sum.PartnerLocation)
	assert.GreaterOrEqual(t, sum.DurationMs, int64(3000))
	assert.Zero(t, eng.rooms.Len())
}
