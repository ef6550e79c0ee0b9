package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharenotes/internal/domain/note"
	"sharenotes/internal/domain/share"
	"sharenotes/internal/domain/user"
)

func TestShareNoteSendsRawEmailBody(t *testing.T) {
	var gotBody, gotContentType string

	r := chi.NewRouter()
	r.Post("/share/{noteId}", func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		gotBody = string(body)
		gotContentType = req.Header.Get("Content-Type")

		json.NewEncoder(w).Encode(share.Share{
			ID:       1,
			Sender:   user.User{ID: 1},
			Receiver: user.User{ID: 2, Email: gotBody},
			Note:     note.Note{ID: 5, Title: "Homework"},
			SentAt:   "2024-05-03",
		})
	})

	gw, _ := newTestClient(t, r)
	ctrl := NewShareController(gw, testLogger())

	created, err := ctrl.Share(context.Background(), 5, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", gotBody, "receiver email travels as the raw body")
	assert.Equal(t, "text/plain", gotContentType)
	assert.Equal(t, "Homework", created.Note.Title)
}

func TestSharesSentAndReceivedFilterByEmail(t *testing.T) {
	var sentQuery, receivedQuery string

	r := chi.NewRouter()
	r.Get("/share/sent", func(w http.ResponseWriter, req *http.Request) {
		sentQuery = req.URL.Query().Get("receiverEmail")
		json.NewEncoder(w).Encode([]share.Share{{ID: 1}})
	})
	r.Get("/share/received", func(w http.ResponseWriter, req *http.Request) {
		receivedQuery = req.URL.Query().Get("senderEmail")
		json.NewEncoder(w).Encode([]share.Share{{ID: 2}, {ID: 3}})
	})

	gw, _ := newTestClient(t, r)
	ctrl := NewShareController(gw, testLogger())

	sent, err := ctrl.Sent(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Len(t, sent, 1)
	assert.Equal(t, "bob@example.com", sentQuery)

	received, err := ctrl.Received(context.Background(), "carol@example.com")
	require.NoError(t, err)
	assert.Len(t, received, 2)
	assert.Equal(t, "carol@example.com", receivedQuery)
}

func TestShareWithNonConnectionSurfacesMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/share/{noteId}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Users are not connected"}`))
	})

	gw, _ := newTestClient(t, r)
	ctrl := NewShareController(gw, testLogger())

	_, err := ctrl.Share(context.Background(), 5, "stranger@example.com")
	require.Error(t, err)

	var ge *GatewayError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, KindDomain, ge.Kind)
	assert.Equal(t, "Users are not connected", ge.Message)
}
