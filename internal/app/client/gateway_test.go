package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"sharenotes/internal/app/client/config"
	"sharenotes/internal/domain/note"
	"sharenotes/internal/domain/user"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient wires a session store and gateway against a fake service.
func newTestClient(t *testing.T, h http.Handler) (*Gateway, *SessionStore) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		ServerAddress:  strings.TrimPrefix(srv.URL, "http://"),
		TokenPath:      filepath.Join(t.TempDir(), "token"),
		PageSize:       10,
		DebounceMillis: 20,
		RequestTimeout: 5,
	}

	log := testLogger()
	session := NewSessionStore(cfg.TokenPath, log)
	gw := NewGateway(cfg, session, log)
	session.bind(gw)

	return gw, session
}

// loginHandler serves a fixed successful login.
func loginHandler(token string, userID int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"` + token + `","userId":` + strconv.FormatInt(userID, 10) + `}`))
	}
}

func TestGatewayAttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string

	r := chi.NewRouter()
	r.Post("/login", loginHandler("tok-123", 7))
	r.Get("/notes", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		gotRequestID = req.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	})

	gw, session := newTestClient(t, r)

	_, err := session.Login(context.Background(), "ana@example.com", "pass")
	require.NoError(t, err)

	_, err = gw.ListNotes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestGatewayNoCredentialOnLogin(t *testing.T) {
	var gotAuth string

	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		loginHandler("tok", 1)(w, req)
	})

	_, session := newTestClient(t, r)

	_, err := session.Login(context.Background(), "ana@example.com", "pass")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestGatewayDomainErrorUsesServerMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/requests", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"There is already a request created"}`))
	})

	gw, _ := newTestClient(t, r)

	_, err := gw.SendRequest(context.Background(), sendRequestFixture())
	require.Error(t, err)

	var ge *GatewayError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, KindDomain, ge.Kind)
	assert.Equal(t, "There is already a request created", ge.Message)
}

func TestGatewayDomainErrorFallbackMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/requests", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	})

	gw, _ := newTestClient(t, r)

	_, err := gw.SendRequest(context.Background(), sendRequestFixture())
	var ge *GatewayError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, KindDomain, ge.Kind)
	assert.Equal(t, "could not send request", ge.Message)
}

func TestGatewayUnauthorizedTearsDownSession(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", loginHandler("tok", 1))
	r.Get("/notes", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	gw, session := newTestClient(t, r)

	_, err := session.Login(context.Background(), "ana@example.com", "pass")
	require.NoError(t, err)
	require.True(t, session.Authenticated())

	_, err = gw.ListNotes(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, session.Authenticated(), "401 must force a logout")
	assert.Empty(t, session.Token())
}

func TestGatewayNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := &config.Config{
		ServerAddress:  strings.TrimPrefix(url, "http://"),
		TokenPath:      filepath.Join(t.TempDir(), "token"),
		PageSize:       10,
		DebounceMillis: 20,
		RequestTimeout: 1,
	}
	log := testLogger()
	session := NewSessionStore(cfg.TokenPath, log)
	gw := NewGateway(cfg, session, log)
	session.bind(gw)

	_, err := gw.ListNotes(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
}

func TestLoginRejectedIsAuthError(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, session := newTestClient(t, r)

	_, err := session.Login(context.Background(), "ana@example.com", "wrong")
	require.Error(t, err)

	var ae *AuthError
	require.ErrorAs(t, err, &ae)
	assert.True(t, errors.Is(err, user.ErrBadCredentials))
	assert.False(t, session.Authenticated())
}

func TestGetNoteNotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/notes/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"No note with such id"}`))
	})

	gw, _ := newTestClient(t, r)

	_, err := gw.GetNote(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, note.ErrNotFound))
}

func TestDownloadNoteFilename(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/notes/{id}/download", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="note_Homework_2024-05-01.pdf"`)
		w.Write([]byte("%PDF-fake"))
	})

	gw, _ := newTestClient(t, r)

	data, filename, err := gw.DownloadNote(context.Background(), 1, note.FileTypePDF)
	require.NoError(t, err)
	assert.Equal(t, "note_Homework_2024-05-01.pdf", filename)
	assert.Equal(t, []byte("%PDF-fake"), data)
}

func TestDownloadNoteWithoutDisposition(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/notes/{id}/download", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("plain text"))
	})

	gw, _ := newTestClient(t, r)

	_, filename, err := gw.DownloadNote(context.Background(), 1, note.FileTypeTXT)
	require.NoError(t, err)
	assert.Empty(t, filename)
}
