package engine_test

import (
	"sync"
	"time"

	"anonchat/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockSender captures everything the engine emits, keyed by recipient.
type MockSender struct {
	mu     sync.Mutex
	events map[string][]models.ServerEvent
}

func newMockSender() *MockSender {
	return &MockSender{events: make(map[string][]models.ServerEvent)}
}

func (s *MockSender) Send(sessionID string, event models.ServerEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[sessionID] = append(s.events[sessionID], event)
}

// Events returns everything delivered to the given session so far.
func (s *MockSender) Events(sessionID string) []models.ServerEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ServerEvent, len(s.events[sessionID]))
	copy(out, s.events[sessionID])
	return out
}

// Names returns just the event names delivered to the given session.
func (s *MockSender) Names(sessionID string) []string {
	evs := s.Events(sessionID)
	names := make([]string, 0, len(evs))
	for _, ev := range evs {
		names = append(names, ev.Event)
	}
	return names
}

// Last returns the most recent event delivered to the given session.
func (s *MockSender) Last(sessionID string) (models.ServerEvent, bool) {
	evs := s.Events(sessionID)
	if len(evs) == 0 {
		return models.ServerEvent{}, false
	}
	return evs[len(evs)-1], true
}

// Total counts deliveries across all sessions.
func (s *MockSender) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, evs := range s.events {
		n += len(evs)
	}
	return n
}

// Clear forgets all captured events.
func (s *MockSender) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string][]models.ServerEvent)
}

// MockRecorder is a testify mock over the storage.Recorder interface.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordRoomStarted(roomID string, members []string, startedAt time.Time) error {
	args := m.Called(roomID, members, startedAt)
	return args.Error(0)
}

func (m *MockRecorder) RecordRoomEnded(roomID string, endedAt time.Time, durationMs int64) error {
	args := m.Called(roomID, endedAt, durationMs)
	return args.Error(0)
}

func (m *MockRecorder) IncrCounter(name string) error {
	args := m.Called(name)
	return args.Error(0)
}
