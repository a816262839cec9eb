package client

import (
	"context"
	"net/http"

	"resqconnect/internal/app/service"
	"resqconnect/internal/domain/model"
)

// Register creates an account and installs the returned session token.
func (c *Client) Register(ctx context.Context, req service.RegisterRequest) (*service.AuthResponse, error) {
	var resp service.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// Login authenticates and installs the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*service.AuthResponse, error) {
	var resp service.AuthResponse
	req := service.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

func (c *Client) Me(ctx context.Context) (*model.PublicUser, error) {
	var resp struct {
		User *model.PublicUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout tells the server (a stateless no-op) and drops the local token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}
