// Package domain contains entity without logic, just meta-data
package domain

import "github.com/pkg/errors"

const (
	MaxParticipantIDLen = 36
	MaxUsernameLen      = 36
)

var (
	ErrUsernameTooLong = errors.New("username too long")
	ErrUsernameEmpty   = errors.New("username empty")
)

type ParticipantID string

// Participant is the read-only view of a joined member of a room.
type Participant struct {
	ID        ParticipantID `json:"id"`
	Name      string        `json:"name"`
	Streaming bool          `json:"streaming"`
}

// ValidateUsername keeps display names bounded before they reach the store.
func ValidateUsername(username string) error {
	if len(username) == 0 {
		return ErrUsernameEmpty
	}
	if len(username) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	return nil
}

// Request correlates one client call with its outcome.
type Request struct {
	ParticipantID ParticipantID
	// RequestID is nil when the transport did not supply one.
	RequestID *int
}

func NewRequest(pid ParticipantID, id *int) Request {
	return Request{ParticipantID: pid, RequestID: id}
}
