package backend

import (
	"net/http"

	"go.uber.org/zap"
)

// Backend groups the per-resource API clients, one per backend controller.
type Backend struct {
	Auth    *AuthClient
	Room    *RoomClient
	Booking *BookingClient
	Payment *PaymentClient
	Payout  *PayoutClient
	Admin   *AdminClient
	Update  *UpdateClient
	Support *SupportClient
	Chatbot *ChatbotClient
}

func New(baseURL string, httpClient *http.Client, log *zap.Logger) *Backend {
	c := NewClient(baseURL, httpClient, log)
	return &Backend{
		Auth:    &AuthClient{c},
		Room:    &RoomClient{c},
		Booking: &BookingClient{c},
		Payment: &PaymentClient{c},
		Payout:  &PayoutClient{c},
		Admin:   &AdminClient{c},
		Update:  &UpdateClient{c},
		Support: &SupportClient{c},
		Chatbot: &ChatbotClient{c},
	}
}
