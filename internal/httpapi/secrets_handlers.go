package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setLookupKeysReq struct {
	Keys []string `json:"keys"`
}

// SetLookupKeys stores the profile lookup credential pool in the OS
// keyring. Keys take effect for clients built after the next restart.
func (h SecretsHandler) SetLookupKeys(w http.ResponseWriter, r *http.Request) {
	var req setLookupKeysReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	keys := req.Keys[:0:0]
	for _, k := range req.Keys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		http.Error(w, "at least one key required", http.StatusBadRequest)
		return
	}

	if err := secrets.SetLookupAPIKeys(keys); err != nil {
		http.Error(w, "failed to store keys: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type setIMAPPasswordReq struct {
	Password string `json:"password"`
}

func (h SecretsHandler) SetIMAPPassword(w http.ResponseWriter, r *http.Request) {
	var req setIMAPPasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	if err := secrets.SetIMAPPassword(cfg, req.Password); err != nil {
		http.Error(w, "failed to store password: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
