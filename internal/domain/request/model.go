package request

import "sharenotes/internal/domain/user"

// Request is a connection request between two users. The same entity is
// projected into the receiver's incoming view and the sender's outgoing
// view; the two projections are never merged client-side.
type Request struct {
	ID       int64     `json:"id"`
	Sender   user.User `json:"sender"`
	Receiver user.User `json:"receiver"`
	Status   Status    `json:"status"`
	SentAt   string    `json:"sentAt"`
}

// SendRequest creates a new connection request keyed by the receiver's
// email address.
type SendRequest struct {
	SenderID      int64  `json:"senderId"`
	ReceiverEmail string `json:"receiverEmail"`
}
