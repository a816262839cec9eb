package client

import (
	"context"
	"net/http"

	"resqconnect/internal/domain/model"
)

func (c *Client) Notifications(ctx context.Context) ([]model.Notification, error) {
	var resp struct {
		Notifications []model.Notification `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) (*model.Notification, error) {
	var resp struct {
		Notification *model.Notification `json:"notification"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/notifications/"+id+"/read", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notification, nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/api/notifications/read-all", nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notifications/"+id, nil, nil)
}

func (c *Client) UnreadNotificationCount(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/notifications/unread/count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
