package httpapi

import (
	"bytes"
	"net/http"
	"testing"

	"fairchance-workflow/internal/domain"
	"fairchance-workflow/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSubmitReferral_OK(t *testing.T) {
	r, svcs := newTestRouter()
	svcs.referrals.resp = &service.SubmitReferralResponse{ReferralID: "ref-1", ReferralStatus: "submitted"}

	rec := doRequest(r, http.MethodPost, "/api/v1/referrals", "coordinator-token",
		`{"intake_path":"referral","source_type":"manager","employee_id":"e-1",
		  "risk_level":"medium","support_category_codes":["housing"]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"ref-1","referral_status":"submitted"}`, rec.Body.String())
	assert.Equal(t, "u-coord", svcs.referrals.caller.UserID)
	assert.Equal(t, "e-1", svcs.referrals.req.EmployeeID)
	assert.Equal(t, []string{"housing"}, svcs.referrals.req.SupportCategoryCodes)
}

func TestSubmitReferral_InvalidJSONBody(t *testing.T) {
	r, _ := newTestRouter()

	rec := doRequest(r, http.MethodPost, "/api/v1/referrals", "coordinator-token", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON body", decodeDetail(t, rec))
}

func TestSubmitReferral_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"validation", domain.NewValidationError("risk_level", "Invalid intake/source/risk enum"), http.StatusBadRequest, "Invalid intake/source/risk enum"},
		{"not found", domain.NewNotFoundError("Employee not found"), http.StatusNotFound, "Employee not found"},
		{"cross tenant", domain.NewTenantMismatchError(), http.StatusForbidden, "Cross-tenant access denied"},
		{"infrastructure", assert.AnError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, svcs := newTestRouter()
			svcs.referrals.err = tt.err

			rec := doRequest(r, http.MethodPost, "/api/v1/referrals", "coordinator-token", `{}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
		})
	}
}

func TestOpenCase_OK(t *testing.T) {
	r, svcs := newTestRouter()
	svcs.cases.resp = &service.OpenCaseResponse{CaseID: "c-1", CaseStatus: "open"}

	rec := doRequest(r, http.MethodPost, "/api/v1/cases", "coordinator-token",
		`{"employee_id":"e-1","assigned_coordinator_id":"u-coord","referral_id":"ref-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"c-1","case_status":"open"}`, rec.Body.String())
	assert.Equal(t, "ref-1", svcs.cases.req.ReferralID)
}

func TestOpenCase_MismatchIsBadRequest(t *testing.T) {
	r, svcs := newTestRouter()
	svcs.cases.err = domain.NewMismatchError("Referral/employee mismatch")

	rec := doRequest(r, http.MethodPost, "/api/v1/cases", "coordinator-token", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Referral/employee mismatch", decodeDetail(t, rec))
}

func TestRecordNote_OK(t *testing.T) {
	r, svcs := newTestRouter()
	svcs.notes.resp = &service.RecordNoteResponse{NoteID: "n-1", Status: "draft"}

	rec := doRequest(r, http.MethodPost, "/api/v1/progress-notes", "coordinator-token",
		`{"employee_id":"e-1","case_id":"c-1","note_type":"coaching_session",
		  "note_start_date":"2026-02-01","interaction_at":"2026-02-01T15:00:00Z",
		  "meeting_location":"office","areas_of_need_codes":["housing"]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"n-1","status":"draft"}`, rec.Body.String())
	assert.Equal(t, "c-1", svcs.notes.req.CaseID)
}

func TestGetKPIs_OK(t *testing.T) {
	r, svcs := newTestRouter()
	svcs.kpis.snap = &service.KPISnapshot{
		IntakeVolume:               3,
		CaseOpenCount:              2,
		EmployeeEngagementCount:    5,
		ReferralResponseRate:       0.5,
		ProgressNoteSubmissionRate: 0.6,
	}

	rec := doRequest(r, http.MethodGet, "/api/v1/kpis", "coordinator-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"intake_volume": 3,
		"case_open_count": 2,
		"employee_engagement_count": 5,
		"referral_response_rate": 0.5,
		"progress_note_submission_rate": 0.6
	}`, rec.Body.String())
	assert.Equal(t, "tenant-acme", svcs.kpis.tenant)
}

func TestExportKPIs_ReturnsWorkbook(t *testing.T) {
	r, svcs := newTestRouter()
	svcs.kpis.snap = &service.KPISnapshot{IntakeVolume: 7, ReferralResponseRate: 0.25}

	rec := doRequest(r, http.MethodGet, "/api/v1/kpis/export", "coordinator-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	metric, err := f.GetCellValue("KPIs", "A2")
	require.NoError(t, err)
	assert.Equal(t, "intake_volume", metric)
	value, err := f.GetCellValue("KPIs", "B2")
	require.NoError(t, err)
	assert.Equal(t, "7", value)
}

func TestSeed_UsesCallerTenant(t *testing.T) {
	r, svcs := newTestRouter()
	svcs.seed.result = &service.SeedResult{Users: 3, Employees: 2}

	rec := doRequest(r, http.MethodPost, "/api/v1/dev/seed", "coordinator-token", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":3,"employees":2}`, rec.Body.String())
	assert.Equal(t, "tenant-acme", svcs.seed.tenant)
}
