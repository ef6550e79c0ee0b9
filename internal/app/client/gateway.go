package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"sharenotes/internal/app/client/config"
	"sharenotes/internal/domain/note"
	"sharenotes/internal/domain/request"
	"sharenotes/internal/domain/share"
	"sharenotes/internal/domain/user"
)

// tokenSource is the slice of the session store the gateway depends on.
// Logout is invoked when the service answers 401 so the process never
// keeps a credential the service has already rejected.
type tokenSource interface {
	Token() string
	Logout() error
}

// Gateway is the single chokepoint for remote calls. It attaches the
// bearer credential, normalizes every failure into a GatewayError, and
// never retries: each call is attempted exactly once per invocation.
type Gateway struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	session   tokenSource
	userAgent string
}

func NewGateway(cfg *config.Config, session tokenSource, log *slog.Logger) *Gateway {
	client := &http.Client{
		Timeout: cfg.Timeout(),
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &Gateway{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		session:   session,
		userAgent: "sharenotes-client/1.0",
	}
}

func (g *Gateway) doRequest(ctx context.Context, op, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("could not build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if token := g.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	g.log.Debug("sending request",
		"op", op,
		"method", method,
		"url", req.URL.String(),
		"requestId", requestID,
	)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &GatewayError{
			Kind:    KindNetwork,
			Op:      op,
			Message: "service unreachable",
			Err:     err,
		}
	}

	return resp, nil
}

// parseResponse finishes a call: it reads the body, normalizes failures
// and decodes the payload into result when given. fallback is the
// operation's generic message, used when the service sends no structured
// body. A 401 tears the session down before the error is surfaced.
func (g *Gateway) parseResponse(op, fallback string, resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &GatewayError{Kind: KindNetwork, Op: op, Message: fallback, Err: err}
	}

	g.log.Debug("received response", "op", op, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		if err := g.session.Logout(); err != nil {
			g.log.Warn("session teardown after 401 failed", "error", err)
		}
		return &GatewayError{
			Kind:    KindUnauthorized,
			Op:      op,
			Status:  resp.StatusCode,
			Message: "session expired, please log in again",
		}
	}

	if resp.StatusCode >= 400 {
		return &GatewayError{
			Kind:    KindDomain,
			Op:      op,
			Status:  resp.StatusCode,
			Message: serverMessage(body, fallback),
		}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return &GatewayError{Kind: KindDomain, Op: op, Message: fallback, Err: err}
		}
	}

	return nil
}

// serverMessage extracts the structured error message the service puts in
// its JSON error bodies, falling back to the per-operation default.
func serverMessage(body []byte, fallback string) string {
	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return fallback
}

// login is the one operation with its own failure mapping: a 401 here
// means bad credentials, not an expired session, so no teardown happens
// and the caller gets an AuthError.
func (g *Gateway) login(ctx context.Context, creds user.Credentials) (user.LoginResponse, error) {
	resp, err := g.doRequest(ctx, "login", http.MethodPost, "/login", creds)
	if err != nil {
		return user.LoginResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return user.LoginResponse{}, &GatewayError{Kind: KindNetwork, Op: "login", Message: "login failed", Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.LoginResponse{}, &AuthError{
			Message: serverMessage(body, "invalid email or password"),
			Err:     user.ErrBadCredentials,
		}
	}
	if resp.StatusCode >= 400 {
		return user.LoginResponse{}, &AuthError{Message: serverMessage(body, "login failed")}
	}

	var loginResp user.LoginResponse
	if err := json.Unmarshal(body, &loginResp); err != nil {
		return user.LoginResponse{}, &GatewayError{Kind: KindDomain, Op: "login", Message: "login failed", Err: err}
	}

	return loginResp, nil
}

// Register creates a new account. Works without a credential.
func (g *Gateway) Register(ctx context.Context, req user.RegisterRequest) (user.User, error) {
	resp, err := g.doRequest(ctx, "register", http.MethodPost, "/register", req)
	if err != nil {
		return user.User{}, err
	}

	var created user.User
	if err := g.parseResponse("register", "registration failed", resp, &created); err != nil {
		return user.User{}, err
	}
	return created, nil
}

func (g *Gateway) CreateNote(ctx context.Context, req note.Request) (note.Note, error) {
	resp, err := g.doRequest(ctx, "create note", http.MethodPost, "/notes", req)
	if err != nil {
		return note.Note{}, err
	}

	var created note.Note
	if err := g.parseResponse("create note", "could not create note", resp, &created); err != nil {
		return note.Note{}, err
	}
	return created, nil
}

func (g *Gateway) ListNotes(ctx context.Context) ([]note.Note, error) {
	resp, err := g.doRequest(ctx, "list notes", http.MethodGet, "/notes", nil)
	if err != nil {
		return nil, err
	}

	var notes []note.Note
	if err := g.parseResponse("list notes", "could not fetch notes", resp, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// FilterNotes fetches the caller's notes whose titles match the given
// fragment. An empty fragment matches everything.
func (g *Gateway) FilterNotes(ctx context.Context, title string) ([]note.Note, error) {
	path := "/notes/filter?string=" + url.QueryEscape(title)
	resp, err := g.doRequest(ctx, "filter notes", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var notes []note.Note
	if err := g.parseResponse("filter notes", "could not fetch notes", resp, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (g *Gateway) GetNote(ctx context.Context, id int64) (note.Note, error) {
	resp, err := g.doRequest(ctx, "get note", http.MethodGet, fmt.Sprintf("/notes/%d", id), nil)
	if err != nil {
		return note.Note{}, err
	}

	var n note.Note
	if err := g.parseResponse("get note", "could not fetch note", resp, &n); err != nil {
		return note.Note{}, notFound(err, note.ErrNotFound)
	}
	return n, nil
}

func (g *Gateway) UpdateNote(ctx context.Context, id int64, req note.Request) (note.Note, error) {
	resp, err := g.doRequest(ctx, "update note", http.MethodPatch, fmt.Sprintf("/notes/%d", id), req)
	if err != nil {
		return note.Note{}, err
	}

	var updated note.Note
	if err := g.parseResponse("update note", "could not update note", resp, &updated); err != nil {
		return note.Note{}, notFound(err, note.ErrNotFound)
	}
	return updated, nil
}

func (g *Gateway) DeleteNote(ctx context.Context, id int64) error {
	resp, err := g.doRequest(ctx, "delete note", http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil)
	if err != nil {
		return err
	}
	return notFound(g.parseResponse("delete note", "could not delete note", resp, nil), note.ErrNotFound)
}

// DownloadNote fetches the rendered binary for a note in the given format.
// The second return value is the filename the service suggests through
// Content-Disposition; empty when the header is absent or unparseable.
func (g *Gateway) DownloadNote(ctx context.Context, id int64, t note.FileType) ([]byte, string, error) {
	path := fmt.Sprintf("/notes/%d/download?type=%s", id, t)
	resp, err := g.doRequest(ctx, "export note", http.MethodGet, path, nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// Re-route through the common normalization; the body is JSON on
		// failure even for the binary endpoint.
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized {
			if err := g.session.Logout(); err != nil {
				g.log.Warn("session teardown after 401 failed", "error", err)
			}
			return nil, "", &GatewayError{
				Kind:    KindUnauthorized,
				Op:      "export note",
				Status:  resp.StatusCode,
				Message: "session expired, please log in again",
			}
		}
		ge := &GatewayError{
			Kind:    KindDomain,
			Op:      "export note",
			Status:  resp.StatusCode,
			Message: serverMessage(body, "could not export note"),
		}
		return nil, "", notFound(ge, note.ErrNotFound)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &GatewayError{Kind: KindNetwork, Op: "export note", Message: "could not export note", Err: err}
	}

	return data, dispositionFilename(resp.Header.Get("Content-Disposition")), nil
}

// dispositionFilename extracts the filename parameter from a
// Content-Disposition header value. Returns "" when absent.
func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}

func (g *Gateway) UpdateUser(ctx context.Context, id int64, req user.NameUpdate) (user.User, error) {
	resp, err := g.doRequest(ctx, "update profile", http.MethodPatch, fmt.Sprintf("/user/%d", id), req)
	if err != nil {
		return user.User{}, err
	}

	var updated user.User
	if err := g.parseResponse("update profile", "could not update profile", resp, &updated); err != nil {
		return user.User{}, notFound(err, user.ErrNotFound)
	}
	return updated, nil
}

func (g *Gateway) DeleteUser(ctx context.Context, id int64) error {
	resp, err := g.doRequest(ctx, "delete account", http.MethodDelete, fmt.Sprintf("/user/%d", id), nil)
	if err != nil {
		return err
	}
	return notFound(g.parseResponse("delete account", "could not delete account", resp, nil), user.ErrNotFound)
}

// ReceivedRequests lists the caller's incoming pending connection requests.
func (g *Gateway) ReceivedRequests(ctx context.Context) ([]request.Request, error) {
	resp, err := g.doRequest(ctx, "incoming requests", http.MethodGet, "/requests/received", nil)
	if err != nil {
		return nil, err
	}

	var requests []request.Request
	if err := g.parseResponse("incoming requests", "could not fetch incoming requests", resp, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// SentRequests lists the caller's outgoing pending connection requests.
func (g *Gateway) SentRequests(ctx context.Context) ([]request.Request, error) {
	resp, err := g.doRequest(ctx, "outgoing requests", http.MethodGet, "/requests/sent", nil)
	if err != nil {
		return nil, err
	}

	var requests []request.Request
	if err := g.parseResponse("outgoing requests", "could not fetch outgoing requests", resp, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (g *Gateway) AcceptRequest(ctx context.Context, id int64) (request.Request, error) {
	resp, err := g.doRequest(ctx, "accept request", http.MethodPatch, fmt.Sprintf("/requests/%d/accept", id), nil)
	if err != nil {
		return request.Request{}, err
	}

	var accepted request.Request
	if err := g.parseResponse("accept request", "could not accept request", resp, &accepted); err != nil {
		return request.Request{}, notPending(notFound(err, request.ErrNotFound))
	}
	return accepted, nil
}

func (g *Gateway) DeclineRequest(ctx context.Context, id int64) (request.Request, error) {
	resp, err := g.doRequest(ctx, "decline request", http.MethodPatch, fmt.Sprintf("/requests/%d/decline", id), nil)
	if err != nil {
		return request.Request{}, err
	}

	var declined request.Request
	if err := g.parseResponse("decline request", "could not decline request", resp, &declined); err != nil {
		return request.Request{}, notPending(notFound(err, request.ErrNotFound))
	}
	return declined, nil
}

func (g *Gateway) SendRequest(ctx context.Context, req request.SendRequest) (request.Request, error) {
	resp, err := g.doRequest(ctx, "send request", http.MethodPost, "/requests", req)
	if err != nil {
		return request.Request{}, err
	}

	var sent request.Request
	if err := g.parseResponse("send request", "could not send request", resp, &sent); err != nil {
		return request.Request{}, err
	}
	return sent, nil
}

// DeleteRequest cancels a still-pending outgoing request. The service
// rejects deletion of non-pending requests.
func (g *Gateway) DeleteRequest(ctx context.Context, id int64) error {
	resp, err := g.doRequest(ctx, "cancel request", http.MethodDelete, fmt.Sprintf("/requests/%d", id), nil)
	if err != nil {
		return err
	}
	return notPending(notFound(g.parseResponse("cancel request", "could not cancel request", resp, nil), request.ErrNotFound))
}

func (g *Gateway) RemoveFriend(ctx context.Context, friendID int64) error {
	resp, err := g.doRequest(ctx, "remove friend", http.MethodDelete, fmt.Sprintf("/requests/remove-friend/%d", friendID), nil)
	if err != nil {
		return err
	}
	return g.parseResponse("remove friend", "could not remove friend", resp, nil)
}

// ShareNote shares an owned note with an accepted connection. The service
// expects the receiver's email as the raw request body.
func (g *Gateway) ShareNote(ctx context.Context, noteID int64, receiverEmail string) (share.Share, error) {
	path := fmt.Sprintf("/share/%d", noteID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, strings.NewReader(receiverEmail))
	if err != nil {
		return share.Share{}, fmt.Errorf("could not build request: %w", err)
	}

	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := g.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return share.Share{}, &GatewayError{Kind: KindNetwork, Op: "share note", Message: "service unreachable", Err: err}
	}

	var created share.Share
	if err := g.parseResponse("share note", "could not share note", resp, &created); err != nil {
		return share.Share{}, err
	}
	return created, nil
}

func (g *Gateway) SharesSent(ctx context.Context, receiverEmail string) ([]share.Share, error) {
	path := "/share/sent?receiverEmail=" + url.QueryEscape(receiverEmail)
	resp, err := g.doRequest(ctx, "shares sent", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var shares []share.Share
	if err := g.parseResponse("shares sent", "could not fetch shared notes", resp, &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

func (g *Gateway) SharesReceived(ctx context.Context, senderEmail string) ([]share.Share, error) {
	path := "/share/received?senderEmail=" + url.QueryEscape(senderEmail)
	resp, err := g.doRequest(ctx, "shares received", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var shares []share.Share
	if err := g.parseResponse("shares received", "could not fetch received notes", resp, &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

// notFound tags a 404 gateway error with the entity's sentinel so callers
// can use errors.Is without inspecting status codes.
func notFound(err error, sentinel error) error {
	return tagStatus(err, http.StatusNotFound, sentinel)
}

// notPending tags the 400 the service answers with when a lifecycle
// transition is attempted on a request that is no longer pending.
func notPending(err error) error {
	return tagStatus(err, http.StatusBadRequest, request.ErrNotPending)
}

func tagStatus(err error, status int, sentinel error) error {
	if err == nil {
		return nil
	}
	if ge, ok := err.(*GatewayError); ok && ge.Status == status && ge.Err == nil {
		ge.Err = sentinel
	}
	return err
}
