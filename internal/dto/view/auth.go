package view

// AuthPage backs the login, register and verify forms, echoing prior
// input after a failed submit.
type AuthPage struct {
	Page
	Email       string
	Name        string
	Role        string
	VerifyEmail string
}
