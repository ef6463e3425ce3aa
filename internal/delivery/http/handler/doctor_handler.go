package handler

import (
	"errors"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	items, err := h.doctorUsecase.ListDoctors(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to list doctors")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.doctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get doctor")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.DoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create doctor")
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.DoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.doctorUsecase.UpdateDoctor(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update doctor")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete doctor")
		return
	}

	response.Success(w)
}

func (h *DoctorHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Not found")
	case errors.Is(err, usecase.ErrMissingIdentity):
		response.Unauthorized(w, "Unauthorized")
	default:
		response.InternalServerError(w, fallback)
	}
}
