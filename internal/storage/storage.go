// Package storage records relayed support messages for diagnostics.
package storage

import "time"

// Direction of a relayed message.
const (
	DirUserToOperator = "user_to_operator"
	DirOperatorToUser = "operator_to_user"
)

// Event is one relayed message.
type Event struct {
	Timestamp time.Time `json:"ts"`
	UserID    int64     `json:"user_id"`
	Direction string    `json:"direction"`
	Text      string    `json:"text"`
}

// Recorder persists relay events. Implementations must be safe for
// concurrent use.
type Recorder interface {
	Append(event Event) error
	Load() ([]Event, error)
}
