package user

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginResponse carries the bearer token plus the authenticated user's id.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// NameUpdate is the full payload of a profile update; the service replaces
// both fields.
type NameUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
