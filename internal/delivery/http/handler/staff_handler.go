package handler

import (
	"errors"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"
)

type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	validator    *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		staffUsecase: staffUsecase,
		validator:    validator,
	}
}

func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	items, err := h.staffUsecase.ListStaff(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to list staff")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.staffUsecase.GetStaff(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get staff member")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.StaffRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.staffUsecase.CreateStaff(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create staff member")
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.StaffRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.staffUsecase.UpdateStaff(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update staff member")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.staffUsecase.DeleteStaff(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete staff member")
		return
	}

	response.Success(w)
}

func (h *StaffHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrStaffNotFound):
		response.NotFound(w, "Not found")
	case errors.Is(err, usecase.ErrMissingIdentity):
		response.Unauthorized(w, "Unauthorized")
	default:
		response.InternalServerError(w, fallback)
	}
}
