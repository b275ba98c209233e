package handler

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"cleanbook/pkg/contracts"
	httputil "cleanbook/pkg/http"
	"cleanbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const (
	StatusRunning        = "✅ Running"
	StatusNotAvailable   = "❌ Not Available"
	StatusNotInitialized = "⚠️  Available but not initialized"
	StatusAvailable      = "✅ Available"
	StatusWorking        = "✅ Connected & Working"
	StatusListingError   = "⚠️  Connected but Error: "
	StatusProbeError     = "❌ Error: "
	StatusSet            = "✅ Set"
	StatusNotSet         = "❌ Not Set"
	ConnectionConnected  = "Connected"
	ConnectionNone       = "Not Connected"

	maxListedCollections = 10
	maxErrorChars        = 50
	diagnosticsTimeout   = 5 * time.Second
)

// DiagnosticsResponse is the body of GET /test. Every field is a
// human-readable status; nothing here is meant for machines.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticsEnv names the database variables reported by GET /test. They
// are looked up on every request, so the report follows the live process
// environment.
type DiagnosticsEnv struct {
	DatabaseURLKey  string
	DatabaseNameKey string

	// Lookup defaults to os.LookupEnv.
	Lookup func(key string) (string, bool)
}

func (e DiagnosticsEnv) isSet(key string) bool {
	if key == "" {
		return false
	}
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, ok := lookup(key)
	return ok && v != ""
}

type DiagnosticsHandler struct {
	store contracts.StoreInspector
	env   DiagnosticsEnv
	log   *logger.Logger
}

// NewDiagnosticsHandler accepts a nil store; the endpoint then reports the
// database as not initialized.
func NewDiagnosticsHandler(store contracts.StoreInspector, env DiagnosticsEnv, log *logger.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		store: store,
		env:   env,
		log:   log,
	}
}

// Test always answers 200. Probe failures are folded into the body.
func (h *DiagnosticsHandler) Test(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	resp := h.probe(r.Context())
	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Test", "operation", "WriteSuccess", "error", err)
	}
}

func (h *DiagnosticsHandler) probe(ctx context.Context) (resp DiagnosticsResponse) {
	resp = DiagnosticsResponse{
		Backend:          StatusRunning,
		Database:         StatusNotAvailable,
		DatabaseURL:      presence(h.env.isSet(h.env.DatabaseURLKey)),
		DatabaseName:     presence(h.env.isSet(h.env.DatabaseNameKey)),
		ConnectionStatus: ConnectionNone,
		Collections:      []string{},
	}

	defer func() {
		if rec := recover(); rec != nil {
			h.log.Error("Database diagnostic panicked", "error", rec)
			resp.Database = StatusProbeError + truncate(fmt.Sprint(rec), maxErrorChars)
		}
	}()

	if h.store == nil {
		resp.Database = StatusNotInitialized
		return resp
	}

	resp.Database = StatusAvailable
	resp.ConnectionStatus = ConnectionConnected

	ctx, cancel := context.WithTimeout(ctx, diagnosticsTimeout)
	defer cancel()

	names, err := h.store.ListCollectionNames(ctx, maxListedCollections)
	if err != nil {
		h.log.Warn("Database diagnostic failed to list collections", "error", err)
		resp.Database = StatusListingError + truncate(err.Error(), maxErrorChars)
		return resp
	}

	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	if names != nil {
		resp.Collections = names
	}
	resp.Database = StatusWorking
	return resp
}

func presence(set bool) string {
	if set {
		return StatusSet
	}
	return StatusNotSet
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func (h *DiagnosticsHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/test", h.Test)
}
