package handler

import (
	"errors"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"
)

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

func (h *MedicineHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	items, err := h.medicineUsecase.ListMedicines(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to list medicines")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

func (h *MedicineHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.medicineUsecase.GetMedicine(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get medicine")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *MedicineHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var req dto.MedicineRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.medicineUsecase.CreateMedicine(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create medicine")
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

func (h *MedicineHandler) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.MedicineRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.medicineUsecase.UpdateMedicine(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update medicine")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *MedicineHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.medicineUsecase.DeleteMedicine(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete medicine")
		return
	}

	response.Success(w)
}

func (h *MedicineHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrMedicineNotFound):
		response.NotFound(w, "Not found")
	case errors.Is(err, usecase.ErrMissingIdentity):
		response.Unauthorized(w, "Unauthorized")
	default:
		response.InternalServerError(w, fallback)
	}
}
