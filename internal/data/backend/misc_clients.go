package backend

import (
	"context"
	"net/url"

	"rentoverse-web/internal/data/entity"
)

// UpdateClient reads the renter's recent-updates feed.
type UpdateClient struct {
	c *Client
}

func (u *UpdateClient) Renter(ctx context.Context, email string) ([]*entity.Update, error) {
	query := url.Values{}
	query.Set("email", email)
	var updates []*entity.Update
	if err := u.c.getJSON(ctx, "/api/updates/renter", query, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SupportClient files support tickets.
type SupportClient struct {
	c *Client
}

func (s *SupportClient) CreateTicket(ctx context.Context, name, email, subject, message string) error {
	_, err := s.c.postJSON(ctx, "/api/support-tickets", nil, map[string]string{
		"name":    name,
		"email":   email,
		"subject": subject,
		"message": message,
	})
	return err
}

// ChatbotClient proxies questions to the rentobot endpoint.
type ChatbotClient struct {
	c *Client
}

// Ask returns the bot's plain-text reply.
func (cb *ChatbotClient) Ask(ctx context.Context, message string) (string, error) {
	data, err := cb.c.postJSON(ctx, "/api/chatbot", nil, map[string]any{
		"message": message,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
