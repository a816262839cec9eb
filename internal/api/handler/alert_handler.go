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

type AlertHandler struct {
	alertService *service.AlertService
}

func NewAlertHandler(alertService *service.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

func (h *AlertHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)

	r.Get("/", h.listAlerts)
	r.Get("/{alertID}", h.getAlert)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Post("/", h.createAlert)
		admin.Put("/{alertID}", h.updateAlert)
		admin.Delete("/{alertID}", h.deleteAlert)
	})
}

func (h *AlertHandler) listAlerts(w http.ResponseWriter, r *http.Request) {
	alerts := h.alertService.List(r.Context())
	common.RespondWithJSON(w, http.StatusOK, struct {
		Alerts []model.Alert `json:"alerts"`
	}{Alerts: alerts})
}

func (h *AlertHandler) getAlert(w http.ResponseWriter, r *http.Request) {
	alert, err := h.alertService.Get(r.Context(), chi.URLParam(r, "alertID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, struct {
		Alert *model.Alert `json:"alert"`
	}{Alert: alert})
}

func (h *AlertHandler) createAlert(w http.ResponseWriter, r *http.Request) {
	var req service.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	alert, err := h.alertService.Create(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, struct {
		Alert *model.Alert `json:"alert"`
	}{Alert: alert})
}

func (h *AlertHandler) updateAlert(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	alert, err := h.alertService.Update(r.Context(), chi.URLParam(r, "alertID"), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, struct {
		Alert *model.Alert `json:"alert"`
	}{Alert: alert})
}

func (h *AlertHandler) deleteAlert(w http.ResponseWriter, r *http.Request) {
	if err := h.alertService.Delete(r.Context(), chi.URLParam(r, "alertID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.MessageResponse{Message: "Alert deleted successfully"})
}
