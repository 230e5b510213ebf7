package engine

import (
	"anonchat/backend/internal/config"
	"anonchat/backend/internal/models"
)

// SessionRegistry owns the Session records, one per live connection.
// It is not safe for concurrent use on its own; the Engine serializes
// all access.
type SessionRegistry struct {
	sessions map[string]*models.Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*models.Session)}
}

// Register creates a Session with default profile fields for the given
// connection id. Registering an id twice returns the existing record.
func (r *SessionRegistry) Register(connectionID string) *models.Session {
	if s, ok := r.sessions[connectionID]; ok {
		return s
	}
	s := &models.Session{
		ID:          connectionID,
		DisplayName: generatedName(connectionID),
		Gender:      config.DefaultGender,
		Location:    config.DefaultLocation,
	}
	r.sessions[connectionID] = s
	return s
}

// UpdateProfile overwrites the profile fields. Empty values fall back
// to the defaults rather than blanking the field.
func (r *SessionRegistry) UpdateProfile(id, displayName, gender, location string) error {
	s, ok := r.sessions[id]
	if !ok {
		return ErrUnknownSession
	}
	if displayName == "" {
		displayName = generatedName(id)
	}
	if gender == "" {
		gender = config.DefaultGender
	}
	if location == "" {
		location = config.DefaultLocation
	}
	s.DisplayName = displayName
	s.Gender = gender
	s.Location = location
	return nil
}

func (r *SessionRegistry) Get(id string) (*models.Session, bool) {
	s, ok := r.sessions[id]
	return s, ok
}

func (r *SessionRegistry) Remove(id string) {
	delete(r.sessions, id)
}

func (r *SessionRegistry) Len() int {
	return len(r.sessions)
}

func generatedName(id string) string {
	tag := id
	if len(tag) > config.NameTagLength {
		tag = tag[:config.NameTagLength]
	}
	return "User-" + tag
}
