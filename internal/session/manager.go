package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"payadmin-backend/internal/apperr"
	"payadmin-backend/internal/remote"
	"payadmin-backend/pkg/logger"
)

type State int

const (
	StateLoggedOut State = iota
	StateValidating
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateLoggedIn:
		return "logged_in"
	default:
		return "logged_out"
	}
}

var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)
	ErrLoginInProgress    = errors.New("login already in progress")
	ErrLoginInterrupted   = errors.New("login interrupted by logout")
)

// ClientMeta describes the browser that submitted a login.
type ClientMeta struct {
	UserAgent string
	IPAddress string
}

type Options struct {
	// GeoLookupURL enriches login audit records; empty disables the lookup.
	GeoLookupURL string
	// Revalidate makes Restore check with the remote API before trusting a
	// persisted credential.
	Revalidate bool
}

// Manager is the single owner of the remote API credential.
type Manager struct {
	client *remote.Client
	store  Store
	opts   Options

	mu         sync.RWMutex
	state      State
	cred       remote.Credential
	sessionID  string
	validating bool
	// gen changes whenever the session is replaced or ended. A login whose
	// validation started under an older gen must not install itself.
	gen uint64

	audits sync.WaitGroup
}

func NewManager(client *remote.Client, store Store, opts Options) *Manager {
	return &Manager{
		client: client,
		store:  store,
		opts:   opts,
	}
}

// State reports Validating only while a login runs with no live session;
// a live session stays LoggedIn until the new credential is confirmed.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.validating && m.state != StateLoggedIn {
		return StateValidating
	}
	return m.state
}

func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateLoggedIn
}

// Credential returns the current credential, or false when not logged in.
func (m *Manager) Credential() (remote.Credential, bool) {
	cred, _, ok := m.Current()
	return cred, ok
}

// Current returns the credential together with the id of the login that
// established it. Browser tokens carry that id.
func (m *Manager) Current() (remote.Credential, string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateLoggedIn {
		return "", "", false
	}
	return m.cred, m.sessionID, true
}

// Login validates the credential with one authenticated request before
// persisting it and returns the id of the new session. Any failure of that
// request is reported as ErrInvalidCredentials and leaves the current
// session untouched.
func (m *Manager) Login(ctx context.Context, username, password string, meta ClientMeta) (string, error) {
	m.mu.Lock()
	if m.validating {
		m.mu.Unlock()
		return "", ErrLoginInProgress
	}
	m.validating = true
	gen := m.gen
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.validating = false
		m.mu.Unlock()
	}()

	cred := EncodeBasic(username, password)
	if err := m.client.VerifyCredential(ctx, cred); err != nil {
		logger.Log.Info("Login rejected", zap.String("username", username), zap.Error(err))
		return "", ErrInvalidCredentials
	}

	sessionID := uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.gen != gen {
		logger.Log.Info("Login interrupted by logout", zap.String("username", username))
		return "", ErrLoginInterrupted
	}

	if err := m.persist(ctx, cred, sessionID); err != nil {
		logger.Log.Error("Failed to persist credential", zap.Error(err))
		if clearErr := m.clearLocked(ctx); clearErr != nil {
			logger.Log.Error("Failed to clear credential", zap.Error(clearErr))
		}
		return "", apperr.Local(err)
	}

	m.install(cred, sessionID)
	logger.Log.Info("Login succeeded", zap.String("username", username))

	m.audits.Add(1)
	go func() {
		defer m.audits.Done()
		m.recordLogin(username, cred, meta)
	}()

	return sessionID, nil
}

// Logout forgets the credential. Calling it while logged out is a no-op
// apart from clearing storage again.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearLocked(ctx)
}

// EndSession logs out only when sessionID names the live session, so a
// token from an earlier login cannot end a newer one.
func (m *Manager) EndSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateLoggedIn || m.sessionID != sessionID {
		return nil
	}
	return m.clearLocked(ctx)
}

// Restore adopts a persisted credential. Without Revalidate it is trusted
// as is; a revoked credential then surfaces as Unauthorized on first use.
func (m *Manager) Restore(ctx context.Context) error {
	token, err := m.store.Get(ctx, TokenKey)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	cred := remote.Credential(token)

	if m.opts.Revalidate {
		if err := m.client.VerifyCredential(ctx, cred); err != nil {
			if apperr.Classify(err) != apperr.Unauthorized {
				return fmt.Errorf("failed to revalidate stored credential: %w", err)
			}
			logger.Log.Warn("Stored credential rejected, clearing it", zap.Error(err))
			return m.Logout(ctx)
		}
	}

	sessionID, err := m.store.Get(ctx, SessionKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		// Tokens issued before the id was stored cannot be matched; start a new one.
		sessionID = uuid.New().String()
		if err := m.store.Set(ctx, SessionKey, sessionID); err != nil {
			logger.Log.Warn("Failed to persist session id", zap.Error(err))
		}
	}

	m.mu.Lock()
	m.install(cred, sessionID)
	m.mu.Unlock()
	return nil
}

// Wait blocks until in-flight login audits finish.
func (m *Manager) Wait() {
	m.audits.Wait()
}

func (m *Manager) persist(ctx context.Context, cred remote.Credential, sessionID string) error {
	if err := m.store.Set(ctx, TokenKey, string(cred)); err != nil {
		return err
	}
	return m.store.Set(ctx, SessionKey, sessionID)
}

// install and clearLocked must be called with mu held.
func (m *Manager) install(cred remote.Credential, sessionID string) {
	m.gen++
	m.state = StateLoggedIn
	m.cred = cred
	m.sessionID = sessionID
}

func (m *Manager) clearLocked(ctx context.Context) error {
	m.gen++
	m.state = StateLoggedOut
	m.cred = ""
	m.sessionID = ""

	for _, key := range []string{TokenKey, SessionKey} {
		if err := m.store.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
			return apperr.Local(err)
		}
	}
	return nil
}
