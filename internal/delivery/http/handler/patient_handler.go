package handler

import (
	"errors"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	items, err := h.patientUsecase.ListPatients(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to list patients")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get patient")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create patient")
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.PatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.patientUsecase.UpdatePatient(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update patient")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete patient")
		return
	}

	response.Success(w)
}

func (h *PatientHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Not found")
	case errors.Is(err, usecase.ErrMissingIdentity):
		response.Unauthorized(w, "Unauthorized")
	default:
		response.InternalServerError(w, fallback)
	}
}
