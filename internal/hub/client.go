package hub

import "anonchat/backend/internal/models"

// Client is the interface for one connected participant. It abstracts
// the underlying transport so the manager can handle connection types
// uniformly; tests supply in-memory implementations.
type Client interface {
	// GetSessionID returns the server-minted id for this connection.
	GetSessionID() string

	// GetSendChannel returns the channel the manager writes outbound
	// events to for this client.
	GetSendChannel() chan<- models.ServerEvent

	// Run starts the client's read and write pumps.
	Run()

	// Close shuts down the client's outbound channel.
	Close()
}
