package usecase

import (
	"context"
	"fmt"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/dto/request"

	"go.uber.org/zap"
)

type SupportService interface {
	CreateTicket(ctx context.Context, req *request.SupportForm) error
	Ask(ctx context.Context, message string) (string, error)
}

type supportService struct {
	be  *backend.Backend
	log *zap.Logger
}

func NewSupportService(be *backend.Backend, log *zap.Logger) SupportService {
	return &supportService{
		be:  be,
		log: log.With(zap.String("service", "support")),
	}
}

func (s *supportService) CreateTicket(ctx context.Context, req *request.SupportForm) error {
	if err := s.be.Support.CreateTicket(ctx, req.Name, req.Email, req.Subject, req.Message); err != nil {
		s.log.Warn("Ticket rejected", zap.String("email", req.Email), zap.Error(err))
		return fmt.Errorf("create ticket: %w", err)
	}

	s.log.Info("Support ticket filed",
		zap.String("email", req.Email),
		zap.String("subject", req.Subject),
	)
	return nil
}

// Ask relays a chatbot question and returns the bot's plain-text answer.
func (s *supportService) Ask(ctx context.Context, message string) (string, error) {
	answer, err := s.be.Chatbot.Ask(ctx, message)
	if err != nil {
		s.log.Warn("Chatbot request failed", zap.Error(err))
		return "", fmt.Errorf("ask chatbot: %w", err)
	}
	return answer, nil
}
