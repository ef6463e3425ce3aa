package handler

import (
	"errors"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"
)

type LabTestHandler struct {
	labTestUsecase usecase.LabTestUsecase
	validator      *validator.CustomValidator
}

func NewLabTestHandler(labTestUsecase usecase.LabTestUsecase, validator *validator.CustomValidator) *LabTestHandler {
	return &LabTestHandler{
		labTestUsecase: labTestUsecase,
		validator:      validator,
	}
}

func (h *LabTestHandler) ListLabTests(w http.ResponseWriter, r *http.Request) {
	items, err := h.labTestUsecase.ListLabTests(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to list lab tests")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

func (h *LabTestHandler) GetLabTest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.labTestUsecase.GetLabTest(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get lab test")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *LabTestHandler) CreateLabTest(w http.ResponseWriter, r *http.Request) {
	var req dto.LabTestRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.labTestUsecase.CreateLabTest(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create lab test")
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

func (h *LabTestHandler) UpdateLabTest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.LabTestRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.labTestUsecase.UpdateLabTest(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update lab test")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *LabTestHandler) DeleteLabTest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.labTestUsecase.DeleteLabTest(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete lab test")
		return
	}

	response.Success(w)
}

func (h *LabTestHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrLabTestNotFound):
		response.NotFound(w, "Not found")
	case errors.Is(err, usecase.ErrLabTestForeignDoctor):
		response.Forbidden(w, "Forbidden")
	case errors.Is(err, usecase.ErrMissingIdentity):
		response.Unauthorized(w, "Unauthorized")
	default:
		response.InternalServerError(w, fallback)
	}
}
