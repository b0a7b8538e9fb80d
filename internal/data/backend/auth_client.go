package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

type AuthClient struct {
	c *Client
}

// LoginResult is the identity payload a successful login returns. The
// session store keeps exactly these fields.
type LoginResult struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
}

func (a *AuthClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	data, err := a.c.postJSON(ctx, "/api/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var result LoginResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &result, nil
}

func (a *AuthClient) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	data, err := a.c.postJSON(ctx, "/api/admin/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var result LoginResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode admin login response: %w", err)
	}
	return &result, nil
}

func (a *AuthClient) Register(ctx context.Context, name, email, password, role string) error {
	_, err := a.c.postJSON(ctx, "/api/auth/register", nil, map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	})
	return err
}

// VerifyCode submits the emailed verification code. Form-encoded, as the
// backend expects.
func (a *AuthClient) VerifyCode(ctx context.Context, email, code string) error {
	form := url.Values{}
	form.Set("email", email)
	form.Set("code", code)
	_, err := a.c.postForm(ctx, "/api/auth/verify-code", form)
	return err
}
