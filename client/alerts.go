package client

import (
	"context"
	"net/http"

	"resqconnect/internal/app/service"
	"resqconnect/internal/domain/model"
)

func (c *Client) Alerts(ctx context.Context) ([]model.Alert, error) {
	var resp struct {
		Alerts []model.Alert `json:"alerts"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/alerts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Alerts, nil
}

func (c *Client) Alert(ctx context.Context, id string) (*model.Alert, error) {
	var resp struct {
		Alert *model.Alert `json:"alert"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/alerts/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Alert, nil
}

func (c *Client) CreateAlert(ctx context.Context, req service.CreateAlertRequest) (*model.Alert, error) {
	var resp struct {
		Alert *model.Alert `json:"alert"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/alerts", req, &resp); err != nil {
		return nil, err
	}
	return resp.Alert, nil
}

func (c *Client) UpdateAlert(ctx context.Context, id string, req service.UpdateAlertRequest) (*model.Alert, error) {
	var resp struct {
		Alert *model.Alert `json:"alert"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/alerts/"+id, req, &resp); err != nil {
		return nil, err
	}
	return resp.Alert, nil
}

func (c *Client) DeleteAlert(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/alerts/"+id, nil, nil)
}
