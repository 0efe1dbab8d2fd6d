// Package mail delivers the transactional mail used by the password
// recovery flow. The concrete provider is selected by configuration.
package mail

// Sender delivers a password recovery code to an account's email address.
type Sender interface {
	SendRecoveryCode(to, code string) error
}
