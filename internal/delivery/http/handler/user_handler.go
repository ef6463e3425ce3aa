package handler

import (
	"errors"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list users")
		return
	}

	response.JSON(w, http.StatusOK, users)
}

// LinkDoctor sets or clears the Doctor record a doctor account acts as.
func (h *UserHandler) LinkDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.LinkDoctorRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.LinkDoctor(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "Not found")
		case errors.Is(err, usecase.ErrUnknownDoctor):
			response.BadRequest(w, "Unknown doctor")
		case errors.Is(err, usecase.ErrDoctorLinkRole):
			response.BadRequest(w, "doctor_id is only valid for doctor accounts")
		default:
			response.InternalServerError(w, "Failed to link doctor")
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.UserEnvelope{User: user})
}

func (h *UserHandler) BackfillDoctorLinks(w http.ResponseWriter, r *http.Request) {
	result, err := h.userUsecase.BackfillDoctorLinks(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to backfill doctor links")
		return
	}

	response.JSON(w, http.StatusOK, result)
}
