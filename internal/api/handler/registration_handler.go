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

type RegistrationHandler struct {
	registrationService *service.RegistrationService
}

func NewRegistrationHandler(registrationService *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

func (h *RegistrationHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)

	r.Post("/", h.register)
	r.Get("/my-registrations", h.myRegistrations)
	r.Get("/check/{eventID}", h.checkRegistration)
	r.Delete("/{eventID}", h.cancelRegistration)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Get("/event/{eventID}", h.eventRegistrations)
	})
}

func (h *RegistrationHandler) register(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req struct {
		EventID string `json:"eventId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	registration, err := h.registrationService.Register(r.Context(), userID, req.EventID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, struct {
		Message      string              `json:"message"`
		Registration *model.Registration `json:"registration"`
	}{
		Message:      "Successfully registered for event",
		Registration: registration,
	})
}

func (h *RegistrationHandler) myRegistrations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	registrations := h.registrationService.MyRegistrations(r.Context(), userID)
	common.RespondWithJSON(w, http.StatusOK, struct {
		Registrations []model.RegistrationWithEvent `json:"registrations"`
	}{Registrations: registrations})
}

func (h *RegistrationHandler) checkRegistration(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	isRegistered := h.registrationService.IsRegistered(r.Context(), userID, chi.URLParam(r, "eventID"))
	common.RespondWithJSON(w, http.StatusOK, struct {
		IsRegistered bool `json:"isRegistered"`
	}{IsRegistered: isRegistered})
}

func (h *RegistrationHandler) cancelRegistration(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if err := h.registrationService.Cancel(r.Context(), userID, chi.URLParam(r, "eventID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Registration cancelled successfully"})
}

func (h *RegistrationHandler) eventRegistrations(w http.ResponseWriter, r *http.Request) {
	registrations := h.registrationService.EventRegistrations(r.Context(), chi.URLParam(r, "eventID"))
	common.RespondWithJSON(w, http.StatusOK, struct {
		Registrations []model.RegistrationWithUser `json:"registrations"`
	}{Registrations: registrations})
}
