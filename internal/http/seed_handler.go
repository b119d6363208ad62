package httpapi

import (
	"net/http"

	"fairchance-workflow/internal/identity"
	"fairchance-workflow/internal/service"

	"go.uber.org/zap"
)

// SeedHandler dev data bootstrap endpoint
type SeedHandler struct {
	svc    service.SeedService
	logger *zap.Logger
}

func NewSeedHandler(svc service.SeedService, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{svc: svc, logger: logger}
}

// Seed handles POST /api/v1/dev/seed; seeds into the caller's tenant
func (h *SeedHandler) Seed(w http.ResponseWriter, req *http.Request, caller identity.Identity) {
	result, err := h.svc.SeedDevData(req.Context(), caller.TenantID)
	if err != nil {
		h.logger.Error("dev seed failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
