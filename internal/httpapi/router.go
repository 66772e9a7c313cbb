package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Search
	sh := SearchHandler{DB: d.DB, Hub: d.Hub, Searcher: d.Searcher}
	mux.HandleFunc("/search", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Run,
	}))
	mux.HandleFunc("/searches", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.History,
	}))
	mux.HandleFunc("/postings", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Recent,
	}))

	// Sources
	srcH := SourcesHandler{Providers: d.Providers, CfgVal: d.CfgVal}
	mux.HandleFunc("/sources", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: srcH.List,
	}))

	// Contacts
	conH := ContactsHandler{Contacts: d.Contacts}
	mux.HandleFunc("/contacts", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: conH.Lookup,
	}))
	mux.HandleFunc("/contacts/search", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: conH.AdvancedLookup,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		Hub:         d.Hub,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	secH := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/lookup", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: secH.SetLookupKeys,
	}))
	mux.HandleFunc("/api/secrets/imap", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: secH.SetIMAPPassword,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
