package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	uuid "github.com/satori/go.uuid"
)

// Storage keys
const (
	keyPreferences   = "preferences"
	keySessionPrefix = "session/"
)

// DefaultSquareSize is the side of one board cell in pixels.
const DefaultSquareSize = 80

// Preferences stores user settings shared by both frontends.
type Preferences struct {
	Flipped          bool      `json:"flipped"`
	ShowDestinations bool      `json:"show_destinations"`
	SoundEnabled     bool      `json:"sound_enabled"`
	KingSafety       bool      `json:"king_safety"`
	SquareSize       int       `json:"square_size"`
	LastPlayed       time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		ShowDestinations: true,
		SoundEnabled:     true,
		SquareSize:       DefaultSquareSize,
	}
}

// Session records one game played from a fresh board.
type Session struct {
	ID       uuid.UUID `json:"id"`
	Started  time.Time `json:"started"`
	Ended    time.Time `json:"ended"`
	Moves    int       `json:"moves"`
	Captures int       `json:"captures"`
}

// Duration returns how long the session lasted, or zero while it is open.
func (s *Session) Duration() time.Duration {
	if s.Ended.IsZero() {
		return 0
	}
	return s.Ended.Sub(s.Started)
}

// ErrSessionNotFound is returned for an unknown session id.
var ErrSessionNotFound = errors.New("storage: session not found")

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db  *badger.DB
	now func() time.Time
}

// NewStorage opens the database under the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}
	return &Storage{db: db, now: time.Now}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = s.now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	if _, err := s.get(keyPreferences, prefs); err != nil {
		return prefs, err
	}
	if prefs.SquareSize <= 0 {
		prefs.SquareSize = DefaultSquareSize
	}
	return prefs, nil
}

// StartSession opens a new session record.
func (s *Storage) StartSession() (*Session, error) {
	sess := &Session{
		ID:      uuid.NewV4(),
		Started: s.now(),
	}
	if err := s.put(sessionKey(sess.ID), sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// RecordMove adds one move to an open session.
func (s *Storage) RecordMove(id uuid.UUID, capture bool) error {
	return s.updateSession(id, func(sess *Session) {
		sess.Moves++
		if capture {
			sess.Captures++
		}
	})
}

// EndSession stamps the end time of a session.
func (s *Storage) EndSession(id uuid.UUID) error {
	return s.updateSession(id, func(sess *Session) {
		sess.Ended = s.now()
	})
}

// LoadSession returns the session with the given id.
func (s *Storage) LoadSession(id uuid.UUID) (*Session, error) {
	sess := &Session{}
	found, err := s.get(sessionKey(id), sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

// Sessions returns every recorded session, oldest first.
func (s *Storage) Sessions() ([]*Session, error) {
	var sessions []*Session

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keySessionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			sess := &Session{}
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, sess)
			}); err != nil {
				return err
			}
			sessions = append(sessions, sess)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: sessions: %w", err)
	}

	sortSessions(sessions)
	return sessions, nil
}

func (s *Storage) updateSession(id uuid.UUID, fn func(*Session)) error {
	key := []byte(sessionKey(id))

	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		if err != nil {
			return err
		}

		sess := &Session{}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, sess)
		}); err != nil {
			return err
		}

		fn(sess)

		data, err := json.Marshal(sess)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes the value at key into v and reports whether the key exists.
func (s *Storage) get(key string, v any) (bool, error) {
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
	if err != nil {
		return found, fmt.Errorf("storage: get %s: %w", key, err)
	}
	return found, nil
}

func sessionKey(id uuid.UUID) string {
	return keySessionPrefix + id.String()
}
