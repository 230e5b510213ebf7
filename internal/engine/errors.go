package engine

import "errors"

// All of these are handled internally with a safe fallback (drop, no-op
// or requeue); none of them ever becomes a user-visible error event.
var (
	ErrUnknownSession = errors.New("unknown session")
	ErrInvalidRoom    = errors.New("invalid room")
	ErrNotRoomMember  = errors.New("sender is not a room member")
)
