package usecase

import (
	"context"
	"fmt"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/data/entity"
	"rentoverse-web/internal/data/session"
	"rentoverse-web/internal/dto/request"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginForm) (session.Session, error)
	AdminLogin(ctx context.Context, req *request.LoginForm) (session.Session, error)
	Register(ctx context.Context, req *request.RegisterForm) error
	VerifyCode(ctx context.Context, email, code string) error
}

type authService struct {
	be  *backend.Backend
	log *zap.Logger
}

func NewAuthService(be *backend.Backend, log *zap.Logger) AuthService {
	return &authService{
		be:  be,
		log: log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginForm) (session.Session, error) {
	result, err := s.be.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.log.Warn("Login rejected",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		return session.Session{}, fmt.Errorf("login: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("email", result.Email),
		zap.String("role", result.Role),
	)
	return sessionFromLogin(result), nil
}

// AdminLogin authenticates against the separate admin endpoint. Whatever
// the backend answers, the session is pinned to the ADMIN role.
func (s *authService) AdminLogin(ctx context.Context, req *request.LoginForm) (session.Session, error) {
	result, err := s.be.Auth.AdminLogin(ctx, req.Email, req.Password)
	if err != nil {
		s.log.Warn("Admin login rejected",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		return session.Session{}, fmt.Errorf("admin login: %w", err)
	}

	sess := sessionFromLogin(result)
	sess.Role = string(entity.RoleAdmin)

	s.log.Info("Admin logged in", zap.String("email", result.Email))
	return sess, nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterForm) error {
	if err := s.be.Auth.Register(ctx, req.Name, req.Email, req.Password, req.Role); err != nil {
		s.log.Warn("Registration rejected",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		return fmt.Errorf("register: %w", err)
	}

	s.log.Info("User registered, verification pending",
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)
	return nil
}

func (s *authService) VerifyCode(ctx context.Context, email, code string) error {
	if err := s.be.Auth.VerifyCode(ctx, email, code); err != nil {
		s.log.Warn("Verification failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return fmt.Errorf("verify code: %w", err)
	}

	s.log.Info("Email verified", zap.String("email", email))
	return nil
}

func sessionFromLogin(result *backend.LoginResult) session.Session {
	return session.Session{
		Name:   result.Name,
		Email:  result.Email,
		Role:   string(entity.NormalizeRole(result.Role)),
		UserID: result.UserID,
	}
}
