package client

import (
	"context"
	"net/http"

	"resqconnect/internal/app/service"
	"resqconnect/internal/domain/model"
)

// Users lists all accounts; admin only.
func (c *Client) Users(ctx context.Context) ([]model.PublicUser, error) {
	var resp struct {
		Users []model.PublicUser `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) User(ctx context.Context, id string) (*model.PublicUser, error) {
	var resp struct {
		User *model.PublicUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) VerifyUser(ctx context.Context, id string, verified bool) (*model.PublicUser, error) {
	req := service.VerifyUserRequest{Verified: &verified}
	var resp struct {
		User *model.PublicUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/users/"+id+"/verify", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
}
