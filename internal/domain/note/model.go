package note

// Note is the client-side view of a note record. Dates travel as plain
// YYYY-MM-DD strings; the service owns formatting and ordering.
type Note struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Date   string `json:"date"`
	Grade  string `json:"grade"`
}

// Request is the full-record payload for create and update. Updates are
// replace semantics: every field must carry the intended final value,
// there is no partial patch.
type Request struct {
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Date   string `json:"date"`
	Grade  string `json:"grade"`
}

// Validate performs the client-side checks that never reach the network.
func (r Request) Validate() error {
	if r.Title == "" {
		return ErrTitleRequired
	}
	return nil
}
