package handler

import (
	"errors"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"
)

type InvoiceHandler struct {
	invoiceUsecase usecase.InvoiceUsecase
	validator      *validator.CustomValidator
}

func NewInvoiceHandler(invoiceUsecase usecase.InvoiceUsecase, validator *validator.CustomValidator) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUsecase: invoiceUsecase,
		validator:      validator,
	}
}

func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	items, err := h.invoiceUsecase.ListInvoices(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to list invoices")
		return
	}

	response.JSON(w, http.StatusOK, items)
}

func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.invoiceUsecase.GetInvoice(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get invoice")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.InvoiceRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.invoiceUsecase.CreateInvoice(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create invoice")
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

func (h *InvoiceHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.InvoiceRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.invoiceUsecase.UpdateInvoice(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to update invoice")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.invoiceUsecase.DeleteInvoice(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete invoice")
		return
	}

	response.Success(w)
}

// PayInvoice marks an unpaid invoice as paid.
func (h *InvoiceHandler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := h.invoiceUsecase.PayInvoice(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to pay invoice")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

func (h *InvoiceHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		response.NotFound(w, "Not found")
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		response.Conflict(w, "Invoice already paid")
	case errors.Is(err, usecase.ErrMissingIdentity):
		response.Unauthorized(w, "Unauthorized")
	default:
		response.InternalServerError(w, fallback)
	}
}
