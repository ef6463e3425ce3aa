package handler

import (
	"errors"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/metrics"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	metrics     *metrics.Collector
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, collector *metrics.Collector) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		metrics:     collector,
	}
}

// Register handles account creation by an admin
// @Summary Register a new user
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} dto.UserEnvelope
// @Failure 400 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	// Role is checked before the body so non-admins learn nothing about validation.
	if role, _ := middleware.GetRoleFromContext(r.Context()); role != entity.RoleAdmin {
		response.Forbidden(w, "Forbidden: Admins only")
		return
	}

	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.Conflict(w, "Email already registered")
		case errors.Is(err, usecase.ErrUnknownDoctor):
			response.BadRequest(w, "Unknown doctor")
		case errors.Is(err, usecase.ErrDoctorLinkRole):
			response.BadRequest(w, "doctor_id is only valid for doctor accounts")
		default:
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	response.JSON(w, http.StatusCreated, dto.UserEnvelope{User: user})
}

// Login handles user login
// @Summary Login user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeCredentials(w, r, h.validator, &req) {
		return
	}

	resp, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		h.metrics.RecordAuthAttempt(metrics.AuthFailure)
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	h.metrics.RecordAuthAttempt(metrics.AuthSuccess)
	response.JSON(w, http.StatusOK, resp)
}

func decodeCredentials(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req *dto.LoginRequest) bool {
	if err := decodeJSON(r, req); err != nil || v.Validate(req) != nil {
		response.BadRequest(w, "Missing credentials")
		return false
	}
	return true
}

// Logout revokes the token used for this request
// @Summary Logout user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.SuccessBody
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authUsecase.Logout(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w)
}

// GetCurrentUser handles getting current user info
// @Summary Get current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserEnvelope
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUsecase.GetCurrentUser(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "Not found")
		case errors.Is(err, usecase.ErrMissingIdentity):
			response.Unauthorized(w, "Unauthorized")
		default:
			response.InternalServerError(w, "Failed to get user info")
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.UserEnvelope{User: user})
}
