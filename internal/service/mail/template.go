package mail

import "fmt"

// recoveryEmailTemplate is the fixed subject/body pair sent with every
// recovery code. The clinic frontend expects these exact texts.
func recoveryEmailTemplate(code, appName string) (subject, body string) {
	subject = fmt.Sprintf("Recuperação de Senha - %s", appName)
	body = fmt.Sprintf("Seu código de recuperação é: %s", code)
	return subject, body
}
