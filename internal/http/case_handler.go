package httpapi

import (
	"net/http"

	"fairchance-workflow/internal/identity"
	"fairchance-workflow/internal/service"

	"go.uber.org/zap"
)

// CaseHandler case conversion endpoint
type CaseHandler struct {
	svc    service.CaseService
	logger *zap.Logger
}

func NewCaseHandler(svc service.CaseService, logger *zap.Logger) *CaseHandler {
	return &CaseHandler{svc: svc, logger: logger}
}

// Open handles POST /api/v1/cases
func (h *CaseHandler) Open(w http.ResponseWriter, req *http.Request, caller identity.Identity) {
	var body service.OpenCaseRequest
	if err := readBodyJSON(req, &body); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	resp, err := h.svc.OpenCase(req.Context(), caller, body)
	if err != nil {
		h.logger.Debug("open case failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
