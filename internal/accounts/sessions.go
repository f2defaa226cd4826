package accounts

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionTTL is fixed from creation; not sliding.
const SessionTTL = time.Hour

// SessionStore persists session records keyed by their opaque identifier.
type SessionStore interface {
	Save(session Session) error
	FindByID(id string) (Session, error)
	Delete(id string) error
}

type GormSessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{db: db}
}

func (s *GormSessionStore) Save(session Session) error {
	return s.db.Create(&session).Error
}

func (s *GormSessionStore) FindByID(id string) (Session, error) {
	var session Session
	if err := s.db.First(&session, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, err
	}
	return session, nil
}

// Delete is idempotent: deleting a missing id is not an error.
func (s *GormSessionStore) Delete(id string) error {
	return s.db.Delete(&Session{}, "session_id = ?", id).Error
}

// SessionManager owns the session lifecycle. Clients only ever hold the
// opaque identifier, never the record itself.
type SessionManager struct {
	store SessionStore
}

func NewSessionManager(store SessionStore) *SessionManager {
	return &SessionManager{store: store}
}

// Create stores a new session for the user and returns its identifier.
func (m *SessionManager) Create(userID int, email string) (string, error) {
	now := time.Now()
	session := Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	if err := m.store.Save(session); err != nil {
		return "", err
	}
	return session.SessionID, nil
}

// Get returns the session snapshot, or ErrSessionNotFound if the id was
// never created, was destroyed, or has expired. Expired rows are pruned
// when observed.
func (m *SessionManager) Get(id string) (Session, error) {
	session, err := m.store.FindByID(id)
	if err != nil {
		return Session{}, err
	}
	if !session.ExpiresAt.After(time.Now()) {
		_ = m.store.Delete(id)
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Destroy removes the session. Destroying twice, or a nonexistent id, is
// not an error.
func (m *SessionManager) Destroy(id string) error {
	return m.store.Delete(id)
}
