package httpapi

import (
	"net/http"

	"fairchance-workflow/internal/identity"
	"fairchance-workflow/internal/service"

	"go.uber.org/zap"
)

// ReferralHandler referral intake endpoint
type ReferralHandler struct {
	svc    service.ReferralService
	logger *zap.Logger
}

func NewReferralHandler(svc service.ReferralService, logger *zap.Logger) *ReferralHandler {
	return &ReferralHandler{svc: svc, logger: logger}
}

// Submit handles POST /api/v1/referrals
func (h *ReferralHandler) Submit(w http.ResponseWriter, req *http.Request, caller identity.Identity) {
	var body service.SubmitReferralRequest
	if err := readBodyJSON(req, &body); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	resp, err := h.svc.SubmitReferral(req.Context(), caller, body)
	if err != nil {
		h.logger.Debug("submit referral failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
