package httpapi

import (
	"net/http"
	"sync/atomic"

	"jobscout-engine/internal/provider"
)

type SourcesHandler struct {
	Providers []provider.Registered
	CfgVal    *atomic.Value
}

type sourceInfo struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Enabled  bool   `json:"enabled"`
}

// List reports the active provider registry in registration order.
// Only enabled providers are registered, so Enabled is always true
// here; the field exists so the payload shape matches /config.
func (h SourcesHandler) List(w http.ResponseWriter, r *http.Request) {
	out := make([]sourceInfo, 0, len(h.Providers))
	for _, p := range h.Providers {
		out = append(out, sourceInfo{Name: p.Name(), Priority: p.Priority, Enabled: true})
	}
	writeJSON(w, out)
}
