package client

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"

	"sharenotes/internal/domain/user"
)

// Session is the client's record of an authenticated identity and its
// bearer credential.
type Session struct {
	UserID int64
	Email  string
	Token  string
}

// authClient is the slice of the gateway the session store needs. Bound
// after construction because the gateway itself reads the credential from
// the store.
type authClient interface {
	login(ctx context.Context, creds user.Credentials) (user.LoginResponse, error)
}

// SessionStore owns the credential slot. It is the only writer of the
// slot: Login, Logout and Restore here, plus the gateway's 401 teardown
// which goes through Logout. The token is persisted to a single file so a
// session survives process restarts.
type SessionStore struct {
	log       *slog.Logger
	tokenPath string
	auth      authClient

	mu      sync.RWMutex
	session *Session
}

func NewSessionStore(tokenPath string, log *slog.Logger) *SessionStore {
	return &SessionStore{
		log:       log,
		tokenPath: tokenPath,
	}
}

func (s *SessionStore) bind(auth authClient) {
	s.auth = auth
}

// Login authenticates against the service and, on success, replaces the
// active session and persists the token. On failure the prior session, if
// any, is left untouched.
func (s *SessionStore) Login(ctx context.Context, email, password string) (Session, error) {
	resp, err := s.auth.login(ctx, user.Credentials{Email: email, Password: password})
	if err != nil {
		return Session{}, err
	}

	sess := Session{
		UserID: resp.UserID,
		Email:  resp.Email,
		Token:  resp.Token,
	}
	if sess.Email == "" {
		sess.Email = email
	}

	if err := os.WriteFile(s.tokenPath, []byte(sess.Token), 0600); err != nil {
		return Session{}, fmt.Errorf("could not persist token: %w", err)
	}

	s.mu.Lock()
	s.session = &sess
	s.mu.Unlock()

	s.log.Debug("session established", "email", sess.Email, "userId", sess.UserID)
	return sess, nil
}

// Logout clears the credential slot and removes the persisted token.
// Idempotent: logging out twice is not an error.
func (s *SessionStore) Logout() error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove token: %w", err)
	}
	return nil
}

// Restore adopts a previously persisted token as the active session
// without re-validating it against the service. Identity fields are
// recovered from the token's claims; signature verification stays
// server-side, so the parse here is unverified. A stale token is caught by
// the first authenticated call returning 401.
func (s *SessionStore) Restore() bool {
	raw, err := os.ReadFile(s.tokenPath)
	if err != nil || len(raw) == 0 {
		return false
	}

	token := string(raw)
	sess := Session{Token: token}

	var claims struct {
		UserID int64 `json:"userId"`
		jwt.RegisteredClaims
	}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil {
		sess.UserID = claims.UserID
		sess.Email = claims.Subject
	} else {
		s.log.Debug("token claims not parseable, restoring token only", "error", err)
	}

	s.mu.Lock()
	s.session = &sess
	s.mu.Unlock()

	s.log.Debug("session restored", "email", sess.Email, "userId", sess.UserID)
	return true
}

// Token returns the bearer credential, or empty when unauthenticated.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// Current returns the active session.
func (s *SessionStore) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// Authenticated reports whether a session is active.
func (s *SessionStore) Authenticated() bool {
	_, ok := s.Current()
	return ok
}
