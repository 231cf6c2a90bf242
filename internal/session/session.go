// Package session tracks which users currently have a live support
// conversation with the operator, and the per-user step of the hand-off flow.
package session

import (
	"sync"
	"time"
)

// State is the support flow step for one user.
type State int

const (
	// StateNone — no support session.
	StateNone State = iota
	// StateAwaitingName — support requested, waiting for the user's name.
	StateAwaitingName
	// StateInChat — live session, messages are relayed to the operator.
	StateInChat
	// StateWaitingFollowup — operator replied and asked whether the user has
	// more questions. Messages are still relayed.
	StateWaitingFollowup
)

// InputMode marks a user who owes the bot a structured value outside of a
// support session (order number, gift card number).
type InputMode int

const (
	InputNone InputMode = iota
	InputOrderNumber
	InputCancelOrderNumber
	InputCardNumber
)

type session struct {
	state   State
	name    string
	input   InputMode
	touched time.Time
}

// Manager owns the session table. All access goes through it; the zero TTL
// keeps sessions open until an explicit close.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*session
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[int64]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Begin puts the user into the name-collection step. It reports false when a
// session is already open for that user.
func (m *Manager) Begin(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s := m.get(userID); s != nil && s.state != StateNone {
		return false
	}
	m.sessions[userID] = &session{state: StateAwaitingName, touched: m.now()}
	return true
}

// Activate marks the user as connected. Used both after the name step and by
// the operator's force-send path, where no name was collected.
func (m *Manager) Activate(userID int64, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	if s == nil {
		s = &session{}
		m.sessions[userID] = s
	}
	s.state = StateInChat
	if name != "" {
		s.name = name
	}
	s.touched = m.now()
}

// Active reports whether the user is in a live session (in chat or in the
// follow-up step).
func (m *Manager) Active(userID int64) bool {
	st := m.State(userID)
	return st == StateInChat || st == StateWaitingFollowup
}

func (m *Manager) State(userID int64) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	if s == nil {
		return StateNone
	}
	s.touched = m.now()
	return s.state
}

func (m *Manager) SetState(userID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	if s == nil {
		return
	}
	s.state = st
	s.touched = m.now()
}

// Name returns the name collected for the user, or "".
func (m *Manager) Name(userID int64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[userID]; ok {
		return s.name
	}
	return ""
}

// Close removes the user's session and any transient sub-state. It reports
// false when there was nothing to close, so callers can answer
// "already closed".
func (m *Manager) Close(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	if s == nil || s.state == StateNone {
		delete(m.sessions, userID)
		return false
	}
	delete(m.sessions, userID)
	return true
}

// SetInput records an input mode for the user. Input modes live outside the
// support session and survive until cleared or replaced.
func (m *Manager) SetInput(userID int64, mode InputMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(userID)
	if s == nil {
		s = &session{touched: m.now()}
		m.sessions[userID] = s
	}
	s.input = mode
}

func (m *Manager) Input(userID int64) InputMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[userID]; ok {
		return s.input
	}
	return InputNone
}

// ClearInput drops the input mode, removing the record entirely when no
// session state remains.
func (m *Manager) ClearInput(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		return
	}
	s.input = InputNone
	if s.state == StateNone {
		delete(m.sessions, userID)
	}
}

// Len returns the number of tracked users.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// get expires idle sessions on access. Callers must hold mu.
func (m *Manager) get(userID int64) *session {
	s, ok := m.sessions[userID]
	if !ok {
		return nil
	}
	if m.ttl > 0 && m.now().Sub(s.touched) > m.ttl {
		delete(m.sessions, userID)
		return nil
	}
	return s
}
