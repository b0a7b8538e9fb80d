package view

// SupportPage backs the support form, echoing prior input after a failed
// submit.
type SupportPage struct {
	Page
	Form EchoedSupportForm
}

type EchoedSupportForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}
