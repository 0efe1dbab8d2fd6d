package model

// User is a credential record keyed by email in the credential store.
// JSON field names match the backing users document.
type User struct {
	PasswordHash  string  `json:"password" db:"password_hash"`
	RecoveryToken *string `json:"recovery_token" db:"recovery_token"`
	SessionToken  *string `json:"token,omitempty" db:"session_token"`
}

func (u *User) HasSession() bool {
	return u.SessionToken != nil && *u.SessionToken != ""
}
