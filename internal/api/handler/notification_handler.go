package handler

import (
	"net/http"

	"resqconnect/internal/api/middleware"
	"resqconnect/internal/app/service"
	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)

	r.Get("/", h.listNotifications)
	r.Get("/unread/count", h.unreadCount)
	r.Put("/read-all", h.markAllRead)
	r.Put("/{notificationID}/read", h.markRead)
	r.Delete("/{notificationID}", h.deleteNotification)
}

func (h *NotificationHandler) caller(r *http.Request) (string, model.Role, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return "", "", false
	}
	role, ok := middleware.GetUserRoleFromContext(r.Context())
	if !ok {
		return "", "", false
	}
	return userID, role, true
}

func (h *NotificationHandler) listNotifications(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := h.caller(r)
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	notifications := h.notificationService.List(r.Context(), userID, role)
	common.RespondWithJSON(w, http.StatusOK, struct {
		Notifications []model.Notification `json:"notifications"`
	}{Notifications: notifications})
}

func (h *NotificationHandler) markRead(w http.ResponseWriter, r *http.Request) {
	notification, err := h.notificationService.MarkRead(r.Context(), chi.URLParam(r, "notificationID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, struct {
		Notification *model.Notification `json:"notification"`
	}{Notification: notification})
}

func (h *NotificationHandler) markAllRead(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := h.caller(r)
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if err := h.notificationService.MarkAllRead(r.Context(), userID, role); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "All notifications marked as read"})
}

func (h *NotificationHandler) deleteNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationService.Delete(r.Context(), chi.URLParam(r, "notificationID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Notification deleted successfully"})
}

func (h *NotificationHandler) unreadCount(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := h.caller(r)
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	count := h.notificationService.UnreadCount(r.Context(), userID, role)
	common.RespondWithJSON(w, http.StatusOK, struct {
		Count int `json:"count"`
	}{Count: count})
}
