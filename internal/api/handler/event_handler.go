package handler

import (
	"encoding/json"
	"net/http"

	"resqconnect/internal/api/middleware"
	"resqconnect/internal/app/service"
	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)

	r.Get("/", h.listEvents)
	r.Get("/{eventID}", h.getEvent)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Post("/", h.createEvent)
		admin.Put("/{eventID}", h.updateEvent)
		admin.Delete("/{eventID}", h.deleteEvent)
	})
}

func (h *EventHandler) listEvents(w http.ResponseWriter, r *http.Request) {
	events := h.eventService.List(r.Context())
	common.RespondWithJSON(w, http.StatusOK, struct {
		Events []model.Event `json:"events"`
	}{Events: events})
}

func (h *EventHandler) getEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.Get(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, struct {
		Event *model.Event `json:"event"`
	}{Event: event})
}

func (h *EventHandler) createEvent(w http.ResponseWriter, r *http.Request) {
	var req service.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	event, err := h.eventService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, struct {
		Event *model.Event `json:"event"`
	}{Event: event})
}

func (h *EventHandler) updateEvent(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	event, err := h.eventService.Update(r.Context(), chi.URLParam(r, "eventID"), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, struct {
		Event *model.Event `json:"event"`
	}{Event: event})
}

func (h *EventHandler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.eventService.Delete(r.Context(), chi.URLParam(r, "eventID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Event deleted successfully"})
}
