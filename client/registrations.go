package client

import (
	"context"
	"net/http"

	"resqconnect/internal/domain/model"
)

func (c *Client) RegisterForEvent(ctx context.Context, eventID string) (*model.Registration, error) {
	req := struct {
		EventID string `json:"eventId"`
	}{EventID: eventID}
	var resp struct {
		Registration *model.Registration `json:"registration"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/registrations", req, &resp); err != nil {
		return nil, err
	}
	return resp.Registration, nil
}

func (c *Client) MyRegistrations(ctx context.Context) ([]model.RegistrationWithEvent, error) {
	var resp struct {
		Registrations []model.RegistrationWithEvent `json:"registrations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/registrations/my-registrations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Registrations, nil
}

func (c *Client) IsRegistered(ctx context.Context, eventID string) (bool, error) {
	var resp struct {
		IsRegistered bool `json:"isRegistered"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/registrations/check/"+eventID, nil, &resp); err != nil {
		return false, err
	}
	return resp.IsRegistered, nil
}

func (c *Client) CancelRegistration(ctx context.Context, eventID string) error {
	return c.do(ctx, http.MethodDelete, "/api/registrations/"+eventID, nil, nil)
}

// EventRegistrations lists an event's roster; admin only.
func (c *Client) EventRegistrations(ctx context.Context, eventID string) ([]model.RegistrationWithUser, error) {
	var resp struct {
		Registrations []model.RegistrationWithUser `json:"registrations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/registrations/event/"+eventID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Registrations, nil
}
