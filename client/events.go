package client

import (
	"context"
	"net/http"

	"resqconnect/internal/app/service"
	"resqconnect/internal/domain/model"
)

func (c *Client) Events(ctx context.Context) ([]model.Event, error) {
	var resp struct {
		Events []model.Event `json:"events"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (c *Client) Event(ctx context.Context, id string) (*model.Event, error) {
	var resp struct {
		Event *model.Event `json:"event"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/events/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Event, nil
}

func (c *Client) CreateEvent(ctx context.Context, req service.CreateEventRequest) (*model.Event, error) {
	var resp struct {
		Event *model.Event `json:"event"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/events", req, &resp); err != nil {
		return nil, err
	}
	return resp.Event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, req service.UpdateEventRequest) (*model.Event, error) {
	var resp struct {
		Event *model.Event `json:"event"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/events/"+id, req, &resp); err != nil {
		return nil, err
	}
	return resp.Event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/events/"+id, nil, nil)
}
