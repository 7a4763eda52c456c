package storage

import uuid "github.com/satori/go.uuid"

// Tracker follows the current session of one frontend. A Tracker built on a
// nil Storage records nothing, so frontends can run without a database.
type Tracker struct {
	st      *Storage
	current *Session
}

// NewTracker returns a tracker writing to st, which may be nil.
func NewTracker(st *Storage) *Tracker {
	return &Tracker{st: st}
}

// Start ends any open session and opens a new one.
func (t *Tracker) Start() error {
	if t.st == nil {
		return nil
	}
	if err := t.End(); err != nil {
		return err
	}
	sess, err := t.st.StartSession()
	if err != nil {
		return err
	}
	t.current = sess
	return nil
}

// Record counts one move in the open session.
func (t *Tracker) Record(capture bool) error {
	if t.current == nil {
		return nil
	}
	return t.st.RecordMove(t.current.ID, capture)
}

// End closes the open session, if any.
func (t *Tracker) End() error {
	if t.current == nil {
		return nil
	}
	id := t.current.ID
	t.current = nil
	return t.st.EndSession(id)
}

// SessionID returns the open session's id, or uuid.Nil.
func (t *Tracker) SessionID() uuid.UUID {
	if t.current == nil {
		return uuid.Nil
	}
	return t.current.ID
}

// Storage returns the underlying store, possibly nil.
func (t *Tracker) Storage() *Storage {
	return t.st
}
