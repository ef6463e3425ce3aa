package handler

import (
	"errors"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	items, err := h.appointmentUsecase.ListAppointments(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to list appointments")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get appointment")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create appointment")
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.AppointmentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update appointment")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete appointment")
		return
	}

	response.Success(w)
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Not found")
	case errors.Is(err, usecase.ErrMissingIdentity):
		response.Unauthorized(w, "Unauthorized")
	default:
		response.InternalServerError(w, fallback)
	}
}
