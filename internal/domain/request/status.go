package request

// Status is the closed lifecycle state of a connection request. The only
// legal transitions are PENDING -> ACCEPTED and PENDING -> DECLINED; both
// outcomes are terminal.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusDeclined Status = "DECLINED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// Terminal reports whether no further transition is legal from s.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusDeclined
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle step.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.Terminal()
}
