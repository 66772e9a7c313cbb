package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"jobscout-engine/internal/contacts"
)

type ContactsHandler struct {
	Contacts ContactFinder
}

// Lookup handles GET /contacts?company=...&keywords=...&location=...&limit=N.
func (h ContactsHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	company := strings.TrimSpace(q.Get("company"))
	if company == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_company", "company is required")
		return
	}
	limit, _ := strconv.Atoi(q.Get("limit"))

	profiles := h.Contacts.Search(r.Context(), contacts.SearchParams{
		Company:  company,
		Keywords: q.Get("keywords"),
		Location: q.Get("location"),
		Limit:    limit,
	})
	writeJSON(w, profiles)
}

// AdvancedLookup handles POST /contacts/search with filter and sort
// options in the body.
func (h ContactsHandler) AdvancedLookup(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var params contacts.AdvancedParams
	if err := dec.Decode(&params); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(params.Company) == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_company", "company is required")
		return
	}

	profiles := h.Contacts.AdvancedSearch(r.Context(), params)
	writeJSON(w, profiles)
}
