package models

// User is the identity resolved from a verified provider token. The content
// layer never resolves identities itself; this is what the auth middleware
// hands to controllers.
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}
