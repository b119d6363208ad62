package httpapi

import (
	"net/http"

	"fairchance-workflow/internal/identity"
	"fairchance-workflow/internal/service"

	"go.uber.org/zap"
)

// NoteHandler progress note endpoint
type NoteHandler struct {
	svc    service.NoteService
	logger *zap.Logger
}

func NewNoteHandler(svc service.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, logger: logger}
}

// Record handles POST /api/v1/progress-notes
func (h *NoteHandler) Record(w http.ResponseWriter, req *http.Request, caller identity.Identity) {
	var body service.RecordNoteRequest
	if err := readBodyJSON(req, &body); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	resp, err := h.svc.RecordNote(req.Context(), caller, body)
	if err != nil {
		h.logger.Debug("record progress note failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
