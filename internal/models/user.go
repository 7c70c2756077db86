package models

// User represents a user record as persisted in the store. The "password"
// field holds the bcrypt hash, never the plaintext; the JSON name matches the
// on-disk document format.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}

// UserSummary is the external view of a user. It carries no password material.
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Summary returns the public view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{Name: u.Name, Email: u.Email}
}
