package handler

import (
	"net/http"
	"strconv"

	"self-fitness/internal/usecase"
	"self-fitness/pkg/pagination"
	"self-fitness/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, auditLog)
}

// GetAllAuditLogs lists the newest entries; ?limit overrides the default and
// is capped like a page size.
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit > pagination.MaxSize {
		limit = pagination.MaxSize
	}

	auditLogs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, auditLogs)
}
