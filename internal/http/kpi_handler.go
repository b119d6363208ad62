package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"fairchance-workflow/internal/identity"
	"fairchance-workflow/internal/service"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// KPIHandler tenant KPI read endpoints
type KPIHandler struct {
	svc    service.KPIService
	logger *zap.Logger
}

func NewKPIHandler(svc service.KPIService, logger *zap.Logger) *KPIHandler {
	return &KPIHandler{svc: svc, logger: logger}
}

// Get handles GET /api/v1/kpis
func (h *KPIHandler) Get(w http.ResponseWriter, req *http.Request, caller identity.Identity) {
	snap, err := h.svc.GetKPIs(req.Context(), caller.TenantID)
	if err != nil {
		h.logger.Error("kpi aggregation failed",
			zap.String("tenant_id", caller.TenantID),
			zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Export handles GET /api/v1/kpis/export, returning the same snapshot as an
// xlsx workbook for coordinators who report outside the API.
func (h *KPIHandler) Export(w http.ResponseWriter, req *http.Request, caller identity.Identity) {
	snap, err := h.svc.GetKPIs(req.Context(), caller.TenantID)
	if err != nil {
		h.logger.Error("kpi aggregation failed",
			zap.String("tenant_id", caller.TenantID),
			zap.Error(err))
		writeError(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "KPIs"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		writeError(w, err)
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	rows := [][]any{
		{"Metric", "Value"},
		{"intake_volume", snap.IntakeVolume},
		{"case_open_count", snap.CaseOpenCount},
		{"employee_engagement_count", snap.EmployeeEngagementCount},
		{"referral_response_rate", snap.ReferralResponseRate},
		{"progress_note_submission_rate", snap.ProgressNoteSubmissionRate},
	}
	for i, row := range rows {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+1)
		if cellErr != nil {
			writeError(w, cellErr)
			return
		}
		if setErr := f.SetSheetRow(sheet, cell, &row); setErr != nil {
			writeError(w, setErr)
			return
		}
	}

	filename := fmt.Sprintf("kpis-%s-%s.xlsx", caller.TenantID, time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(w); err != nil {
		h.logger.Error("kpi export write failed", zap.Error(err))
	}
}
