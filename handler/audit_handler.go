package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Sifundo-B/BankApi/common"
	"github.com/Sifundo-B/BankApi/model"
	"github.com/Sifundo-B/BankApi/service"
)

type AuditHandler struct {
	service *service.AuditService
}

func NewAuditHandler(s *service.AuditService) *AuditHandler {
	return &AuditHandler{service: s}
}

// GetAccountAuditLogs lists audit entries for one account, newest first.
func (h *AuditHandler) GetAccountAuditLogs(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountNumber := r.PathValue("accountNumber")

	logs, err := h.service.GetAccountAuditLogs(r.Context(), accountNumber)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve audit logs", err)
	}

	writeAuditLogs(w, logs)
	return nil
}

// GetAuditLogsByUser lists audit entries attributed to one actor.
func (h *AuditHandler) GetAuditLogsByUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID := r.PathValue("userId")

	logs, err := h.service.GetAuditLogsByUser(r.Context(), userID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve audit logs", err)
	}

	writeAuditLogs(w, logs)
	return nil
}

// GetAuditLogsByDateRange godoc
// @Summary      Audit entries in a date range
// @Description  Lists audit entries changed within [fromDate, toDate], both bounds inclusive. Admin and Auditor only.
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        fromDate query string true "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param        toDate   query string true "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success      200  {array}   model.AuditLog
// @Failure      400  {object}  common.AppError "Missing or malformed date"
// @Router       /api/audit/by-date [get]
func (h *AuditHandler) GetAuditLogsByDateRange(w http.ResponseWriter, r *http.Request) *common.AppError {
	from, err := parseDateParam(r.URL.Query().Get("fromDate"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid fromDate", err)
	}
	to, err := parseDateParam(r.URL.Query().Get("toDate"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid toDate", err)
	}

	logs, err := h.service.GetAuditLogsByDateRange(r.Context(), from, to)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve audit logs", err)
	}

	writeAuditLogs(w, logs)
	return nil
}

// parseDateParam accepts RFC 3339 timestamps or bare dates.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// writeAuditLogs always renders a list, possibly empty.
func writeAuditLogs(w http.ResponseWriter, logs []*model.AuditLog) {
	if logs == nil {
		logs = []*model.AuditLog{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(logs)
}
