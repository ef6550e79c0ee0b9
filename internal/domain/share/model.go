package share

import (
	"sharenotes/internal/domain/note"
	"sharenotes/internal/domain/user"
)

// Share records one note having been shared from sender to receiver.
// Shares are created server-side when a note is shared with an accepted
// connection; the client only reads the two projections.
type Share struct {
	ID       int64     `json:"id"`
	Sender   user.User `json:"sender"`
	Receiver user.User `json:"receiver"`
	Note     note.Note `json:"sentNote"`
	SentAt   string    `json:"sentAt"`
}
