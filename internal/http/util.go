package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"fairchance-workflow/internal/domain"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail sends the uniform error body shape: {"detail": "..."}
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeError maps workflow error kinds to status codes. Infrastructure
// errors are reported generically; their detail stays in the logs.
func writeError(w http.ResponseWriter, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindMismatch:
		writeDetail(w, http.StatusBadRequest, detailOf(err))
	case domain.KindNotFound:
		writeDetail(w, http.StatusNotFound, detailOf(err))
	case domain.KindTenantMismatch:
		writeDetail(w, http.StatusForbidden, detailOf(err))
	default:
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func detailOf(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Detail
	}
	return err.Error()
}

func readBodyJSON(r *http.Request, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
