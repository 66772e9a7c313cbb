package httpapi

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/store"
)

type SearchHandler struct {
	DB       *sql.DB
	Hub      *events.Hub
	Searcher Searcher
}

// Run executes one aggregated search. The response is always a full
// AggregatedResult; provider failures show up in its sources list, not
// as an HTTP error.
func (h SearchHandler) Run(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var criteria domain.SearchCriteria
	if err := dec.Decode(&criteria); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(criteria.Query) == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_query", "query is required")
		return
	}

	if h.Hub != nil {
		h.Hub.SearchStarted(criteria.Query)
	}

	res := h.Searcher.Search(r.Context(), criteria)

	if h.DB != nil {
		// history and posting writes are best-effort
		if _, err := store.InsertSearch(h.DB, criteria, res); err != nil {
			log.Printf("[httpapi] record search: %v", err)
		}
		if err := store.SavePostings(h.DB, res.Jobs); err != nil {
			log.Printf("[httpapi] save postings: %v", err)
		}
	}
	if h.Hub != nil {
		for _, src := range res.Sources {
			h.Hub.SourceSettled(criteria.Query, src.Source, src.Success, len(src.Jobs), src.LatencyMS, src.Error)
		}
		h.Hub.SearchComplete(criteria.Query, res.TotalCount, res.DuplicatesRemoved, res.TookMS)
	}

	writeJSON(w, res)
}

// History lists recent searches, newest first. ?limit=N caps the page.
func (h SearchHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recs, err := store.ListSearches(h.DB, limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	writeJSON(w, recs)
}

// Recent lists stored postings by last_seen descending.
func (h SearchHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	postings, err := store.ListRecentPostings(h.DB, limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	writeJSON(w, postings)
}
