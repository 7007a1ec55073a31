package services

import (
	"strings"
	"sync"
	"time"

	"github.com/terraincognita07/nutritrack/internal/models"
)

type SessionStore interface {
	Load(sessionKey string) (models.AppSession, bool, error)
	Save(session *models.AppSession) error
	Delete(sessionKey string) error
}

// Session holds the identity bound to one session key and mirrors it to a SessionStore.
type Session struct {
	mu          sync.RWMutex
	store       SessionStore
	key         string
	userID      string
	userName    string
	loggedIn    bool
	initialized bool
}

func NewSession(store SessionStore, key string) *Session {
	return &Session{store: store, key: key}
}

func (session *Session) Key() string {
	return session.key
}

// Init restores the persisted identity. Calls after the first are no-ops.
func (session *Session) Init() error {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.initialized {
		return nil
	}
	persisted, found, err := session.store.Load(session.key)
	if err != nil {
		return err
	}
	session.initialized = true
	if !found {
		return nil
	}
	session.userID = persisted.UserID
	session.userName = persisted.UserName
	session.loggedIn = true
	return nil
}

func (session *Session) Login(userID string, userName string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrSessionIdentityBlank
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.store.Save(&models.AppSession{
		SessionKey: session.key,
		UserID:     userID,
		UserName:   userName,
		UpdatedAt:  time.Now().UTC(),
	}); err != nil {
		return err
	}
	session.userID = userID
	session.userName = userName
	session.loggedIn = true
	session.initialized = true
	return nil
}

func (session *Session) Logout() error {
	session.mu.Lock()
	defer session.mu.Unlock()

	if err := session.store.Delete(session.key); err != nil {
		return err
	}
	session.userID = ""
	session.userName = ""
	session.loggedIn = false
	return nil
}

func (session *Session) CurrentIdentity() (string, bool) {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return session.userID, session.loggedIn
}

func (session *Session) CurrentName() (string, bool) {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return session.userName, session.loggedIn
}

// Rename updates the display name of a logged-in session.
func (session *Session) Rename(userName string) error {
	userID, loggedIn := session.CurrentIdentity()
	if !loggedIn {
		return ErrNotLoggedIn
	}
	return session.Login(userID, userName)
}
