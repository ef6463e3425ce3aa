package handler

import (
	"net/http"

	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportUsecase.Summary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build report")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}
