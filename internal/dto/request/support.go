package request

type SupportForm struct {
	Name    string `form:"name" validate:"required,max=120"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"required,max=160"`
	Message string `form:"message" validate:"required,max=2000"`
}

type ChatbotAsk struct {
	Message string `json:"message" validate:"required,max=500"`
}
