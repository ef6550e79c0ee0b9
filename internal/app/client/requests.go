package client

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"

	"sharenotes/internal/domain/request"
)

// RequestController owns the two local projections of connection
// requests: incoming (as receiver) and outgoing (as sender). The two are
// always fetched independently and never derived from one another.
//
// Accept and decline never flip status locally: the authoritative list is
// re-fetched after a confirmed transition, because acceptance also has a
// server-side connection side effect a local mutation cannot anticipate.
type RequestController struct {
	gw      *Gateway
	session *SessionStore
	log     *slog.Logger

	mu       sync.RWMutex
	incoming []request.Request
	outgoing []request.Request
}

func NewRequestController(gw *Gateway, session *SessionStore, log *slog.Logger) *RequestController {
	return &RequestController{
		gw:      gw,
		session: session,
		log:     log,
	}
}

// Incoming fetches and replaces the incoming projection.
func (c *RequestController) Incoming(ctx context.Context) ([]request.Request, error) {
	fetched, err := c.gw.ReceivedRequests(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.incoming = fetched
	c.mu.Unlock()
	c.log.Debug("incoming requests replaced", "count", len(fetched))

	return snapshot(fetched), nil
}

// Outgoing fetches and replaces the outgoing projection.
func (c *RequestController) Outgoing(ctx context.Context) ([]request.Request, error) {
	fetched, err := c.gw.SentRequests(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.outgoing = fetched
	c.mu.Unlock()
	c.log.Debug("outgoing requests replaced", "count", len(fetched))

	return snapshot(fetched), nil
}

// CachedIncoming returns the incoming projection as of the last fetch,
// without a network call.
func (c *RequestController) CachedIncoming() []request.Request {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot(c.incoming)
}

// CachedOutgoing returns the outgoing projection as of the last fetch.
func (c *RequestController) CachedOutgoing() []request.Request {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot(c.outgoing)
}

// Accept performs the pending -> accepted transition remotely, then
// refreshes the incoming projection from the server. On failure the
// request stays pending locally and no retry is attempted.
func (c *RequestController) Accept(ctx context.Context, id int64) error {
	if _, err := c.gw.AcceptRequest(ctx, id); err != nil {
		return err
	}
	_, err := c.Incoming(ctx)
	return err
}

// Decline performs the pending -> declined transition remotely, then
// refreshes the incoming projection.
func (c *RequestController) Decline(ctx context.Context, id int64) error {
	if _, err := c.gw.DeclineRequest(ctx, id); err != nil {
		return err
	}
	_, err := c.Incoming(ctx)
	return err
}

// Send creates a connection request keyed by the receiver's email.
// Duplicate and self-request rejection is service policy; its message is
// surfaced verbatim as a domain error.
func (c *RequestController) Send(ctx context.Context, receiverEmail string) (request.Request, error) {
	sess, ok := c.session.Current()
	if !ok {
		return request.Request{}, ErrNotAuthenticated
	}

	sent, err := c.gw.SendRequest(ctx, request.SendRequest{
		SenderID:      sess.UserID,
		ReceiverEmail: receiverEmail,
	})
	if err != nil {
		return request.Request{}, err
	}

	if _, err := c.Outgoing(ctx); err != nil {
		return sent, err
	}
	return sent, nil
}

// Cancel deletes a still-pending outgoing request, then refreshes the
// outgoing projection. The service rejects cancellation once the request
// has reached a terminal state.
func (c *RequestController) Cancel(ctx context.Context, id int64) error {
	if err := c.gw.DeleteRequest(ctx, id); err != nil {
		return err
	}
	_, err := c.Outgoing(ctx)
	return err
}

// RemoveFriend severs an established connection.
func (c *RequestController) RemoveFriend(ctx context.Context, friendID int64) error {
	return c.gw.RemoveFriend(ctx, friendID)
}

func snapshot(requests []request.Request) []request.Request {
	out := make([]request.Request, len(requests))
	copy(out, requests)
	return out
}
