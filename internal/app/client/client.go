package client

import (
	"context"

	"golang.org/x/exp/slog"

	"sharenotes/internal/app/client/config"
	"sharenotes/internal/domain/user"
)

// App is the composition root of the client: one session store, one
// gateway, and the controllers that own the local collections. Each piece
// of shared state has exactly one writer surface; cross-component access
// goes through these public contracts only.
type App struct {
	cfg *config.Config
	log *slog.Logger

	Session  *SessionStore
	Gateway  *Gateway
	Notes    *NoteController
	Requests *RequestController
	Shares   *ShareController
	Export   *ExportController
}

func New(cfg *config.Config, log *slog.Logger) *App {
	session := NewSessionStore(cfg.TokenPath, log)
	gw := NewGateway(cfg, session, log)
	session.bind(gw)

	if session.Restore() {
		log.Debug("previous session adopted from persisted token")
	}

	return &App{
		cfg:      cfg,
		log:      log,
		Session:  session,
		Gateway:  gw,
		Notes:    NewNoteController(gw, session, cfg.PageSize, cfg.DebounceWindow(), log),
		Requests: NewRequestController(gw, session, log),
		Shares:   NewShareController(gw, log),
		Export:   NewExportController(gw, cfg.ExportDir, log),
	}
}

// Login authenticates and establishes the session.
func (a *App) Login(ctx context.Context, email, password string) (Session, error) {
	return a.Session.Login(ctx, email, password)
}

// Logout drops the session and the persisted token.
func (a *App) Logout() error {
	return a.Session.Logout()
}

// Register creates a new account. It does not log the new user in.
func (a *App) Register(ctx context.Context, req user.RegisterRequest) (user.User, error) {
	return a.Gateway.Register(ctx, req)
}

// UpdateProfile replaces the current user's name fields.
func (a *App) UpdateProfile(ctx context.Context, firstName, lastName string) (user.User, error) {
	sess, ok := a.Session.Current()
	if !ok {
		return user.User{}, ErrNotAuthenticated
	}
	return a.Gateway.UpdateUser(ctx, sess.UserID, user.NameUpdate{
		FirstName: firstName,
		LastName:  lastName,
	})
}

// DeleteAccount deletes the current user's account and logs out.
func (a *App) DeleteAccount(ctx context.Context) error {
	sess, ok := a.Session.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	if err := a.Gateway.DeleteUser(ctx, sess.UserID); err != nil {
		return err
	}
	return a.Session.Logout()
}
