package client

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"

	"sharenotes/internal/domain/share"
)

// ShareController reads the two projections of shared notes and shares
// owned notes with accepted connections. Shares are created and resolved
// entirely server-side; the controller only caches the last fetch.
type ShareController struct {
	gw  *Gateway
	log *slog.Logger

	mu       sync.RWMutex
	sent     []share.Share
	received []share.Share
}

func NewShareController(gw *Gateway, log *slog.Logger) *ShareController {
	return &ShareController{gw: gw, log: log}
}

// Share shares the given note with the receiver. The receiver must be an
// accepted connection; anything else comes back as a domain error.
func (c *ShareController) Share(ctx context.Context, noteID int64, receiverEmail string) (share.Share, error) {
	return c.gw.ShareNote(ctx, noteID, receiverEmail)
}

// Sent fetches and replaces the sent projection, optionally narrowed to
// one receiver's email.
func (c *ShareController) Sent(ctx context.Context, receiverEmail string) ([]share.Share, error) {
	fetched, err := c.gw.SharesSent(ctx, receiverEmail)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.sent = fetched
	c.mu.Unlock()
	c.log.Debug("sent shares replaced", "count", len(fetched))

	out := make([]share.Share, len(fetched))
	copy(out, fetched)
	return out, nil
}

// Received fetches and replaces the received projection, optionally
// narrowed to one sender's email.
func (c *ShareController) Received(ctx context.Context, senderEmail string) ([]share.Share, error) {
	fetched, err := c.gw.SharesReceived(ctx, senderEmail)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.received = fetched
	c.mu.Unlock()
	c.log.Debug("received shares replaced", "count", len(fetched))

	out := make([]share.Share, len(fetched))
	copy(out, fetched)
	return out, nil
}
