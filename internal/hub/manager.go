package hub

import (
	"log"
	"sync"

	"anonchat/backend/internal/engine"
	"anonchat/backend/internal/models"
)

// Inbound is one decoded event from a connection, tagged with the
// session it came from.
type Inbound struct {
	SessionID string
	Event     models.ClientEvent
}

// Manager tracks the live clients and routes their events into the
// engine. Registration is synchronous so a client's session exists
// before its first event can arrive; unregistration and inbound events
// go through the Run loop. Send takes the read lock so the engine can
// deliver from any goroutine.
type Manager struct {
	Clients map[string]Client

	UnregisterCh chan Client
	IncomingCh   chan Inbound

	engine *engine.Engine
	mu     sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		Clients:      make(map[string]Client),
		UnregisterCh: make(chan Client, 16),
		IncomingCh:   make(chan Inbound, 256),
	}
}

// SetEngine attaches the engine. Must be called before Run; the manager
// and the engine reference each other, so wiring happens in two steps.
func (m *Manager) SetEngine(e *engine.Engine) {
	m.engine = e
}

// Register adds the client and creates its engine session. It must
// complete before the client's pumps start, so the connection's first
// event always finds the session registered.
func (m *Manager) Register(client Client) {
	id := client.GetSessionID()
	m.mu.Lock()
	m.Clients[id] = client
	m.mu.Unlock()
	m.engine.Register(id)
	log.Printf("client %s connected", id)
}

// Run is the manager's main loop.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.UnregisterCh:
			id := client.GetSessionID()
			m.mu.Lock()
			_, exists := m.Clients[id]
			if exists {
				delete(m.Clients, id)
			}
			m.mu.Unlock()
			if exists {
				m.engine.Disconnect(id)
				client.Close()
				log.Printf("client %s disconnected", id)
			}

		case in := <-m.IncomingCh:
			m.engine.HandleEvent(in.SessionID, in.Event)
		}
	}
}

// Send implements engine.Sender. Events to unknown sessions are
// dropped; a full outbound buffer drops the event rather than blocking
// the engine behind a slow client.
func (m *Manager) Send(sessionID string, event models.ServerEvent) {
	m.mu.RLock()
	client, ok := m.Clients[sessionID]
	m.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case client.GetSendChannel() <- event:
	default:
		log.Printf("dropping %q for slow client %s", event.Event, sessionID)
	}
}
