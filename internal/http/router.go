package httpapi

import (
	"net/http"
	"strings"

	"fairchance-workflow/internal/identity"

	"go.uber.org/zap"
)

// Router uses the standard library http.ServeMux to avoid a third-party
// routing dependency for a handful of fixed paths.
type Router struct {
	mux      *http.ServeMux
	resolver identity.Resolver
	logger   *zap.Logger
}

func NewRouter(resolver identity.Resolver, logger *zap.Logger) *Router {
	return &Router{
		mux:      http.NewServeMux(),
		resolver: resolver,
		logger:   logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

type authedHandler func(w http.ResponseWriter, req *http.Request, caller identity.Identity)

// authed resolves the bearer token before dispatching. Every workflow route
// except /health goes through this.
func (r *Router) authed(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		header := req.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeDetail(w, http.StatusUnauthorized, "Missing or invalid bearer token")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		caller, err := r.resolver.Resolve(req.Context(), token)
		if err != nil {
			if err != identity.ErrInvalidToken {
				r.logger.Error("token resolution failed", zap.Error(err))
			}
			writeDetail(w, http.StatusUnauthorized, "Missing or invalid bearer token")
			return
		}
		next(w, req, *caller)
	}
}

func methodOnly(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != method {
			writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h(w, req)
	}
}

// RegisterWorkflowRoutes wires the full API surface. A nil seed handler
// leaves the dev bootstrap route unregistered (SEED_DEV_DATA=false).
func (r *Router) RegisterWorkflowRoutes(
	referrals *ReferralHandler,
	cases *CaseHandler,
	notes *NoteHandler,
	kpis *KPIHandler,
	seed *SeedHandler,
) {
	r.Handle("/health", methodOnly(http.MethodGet, func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))

	r.Handle("/api/v1/me", methodOnly(http.MethodGet, r.authed(
		func(w http.ResponseWriter, req *http.Request, caller identity.Identity) {
			writeJSON(w, http.StatusOK, caller)
		})))

	if seed != nil {
		r.Handle("/api/v1/dev/seed", methodOnly(http.MethodPost, r.authed(seed.Seed)))
	}
	r.Handle("/api/v1/referrals", methodOnly(http.MethodPost, r.authed(referrals.Submit)))
	r.Handle("/api/v1/cases", methodOnly(http.MethodPost, r.authed(cases.Open)))
	r.Handle("/api/v1/progress-notes", methodOnly(http.MethodPost, r.authed(notes.Record)))
	r.Handle("/api/v1/kpis", methodOnly(http.MethodGet, r.authed(kpis.Get)))
	r.Handle("/api/v1/kpis/export", methodOnly(http.MethodGet, r.authed(kpis.Export)))
}
