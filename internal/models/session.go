package models

// Session carries the identity issued by the auth collaborator. A zero
// UserID means the request is unauthenticated.
type Session struct {
	UserID   string
	Username string
}
