package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout-engine/internal/contacts"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/events"
)

type stubSearcher struct {
	got domain.SearchCriteria
	res domain.AggregatedResult
}

func (s *stubSearcher) Search(ctx context.Context, c domain.SearchCriteria) domain.AggregatedResult {
	s.got = c
	return s.res
}

type stubFinder struct {
	profiles []domain.Profile
}

func (s *stubFinder) Search(ctx context.Context, p contacts.SearchParams) []domain.Profile {
	return s.profiles
}

func (s *stubFinder) AdvancedSearch(ctx context.Context, p contacts.AdvancedParams) []domain.Profile {
	return s.profiles
}

func TestSearchRunReturnsAggregatedResult(t *testing.T) {
	s := &stubSearcher{res: domain.AggregatedResult{
		TotalCount: 1,
		Jobs:       []domain.Posting{{ID: "jsearch-1", Title: "Engineer", Company: "Acme", Source: "jsearch"}},
		Sources:    []domain.SourceResult{{Source: "jsearch", Success: true}},
	}}
	h := SearchHandler{Searcher: s}

	req := httptest.NewRequest(http.MethodPost, "/search",
		strings.NewReader(`{"query":"engineer","city":"Austin"}`))
	rec := httptest.NewRecorder()
	h.Run(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "engineer", s.got.Query)
	assert.Equal(t, "Austin", s.got.City)

	var res domain.AggregatedResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.TotalCount)
	require.Len(t, res.Sources, 1)
	assert.True(t, res.Sources[0].Success)
}

func TestSearchRunRejectsEmptyQuery(t *testing.T) {
	h := SearchHandler{Searcher: &stubSearcher{}}

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query":"  "}`))
	rec := httptest.NewRecorder()
	h.Run(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchRunRejectsUnknownFields(t *testing.T) {
	h := SearchHandler{Searcher: &stubSearcher{}}

	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query":"x","bogus":1}`))
	rec := httptest.NewRecorder()
	h.Run(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactsLookupRequiresCompany(t *testing.T) {
	h := ContactsHandler{Contacts: &stubFinder{}}

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	rec := httptest.NewRecorder()
	h.Lookup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactsLookup(t *testing.T) {
	h := ContactsHandler{Contacts: &stubFinder{profiles: []domain.Profile{
		{FirstName: "Sarah", LastName: "Chen", Company: "SpaceX"},
	}}}

	req := httptest.NewRequest(http.MethodGet, "/contacts?company=SpaceX", nil)
	rec := httptest.NewRecorder()
	h.Lookup(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Chen", got[0].LastName)
}

func TestMethodMuxRejectsWrongMethod(t *testing.T) {
	mux := methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {},
	})

	req := httptest.NewRequest(http.MethodDelete, "/x", nil)
	rec := httptest.NewRecorder()
	mux(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSearchRunEmitsPerSourceEvents(t *testing.T) {
	s := &stubSearcher{res: domain.AggregatedResult{
		Sources: []domain.SourceResult{
			{Source: "jsearch", Success: true, Jobs: []domain.Posting{}, LatencyMS: 40},
			{Source: "adzuna", Success: false, Jobs: []domain.Posting{}, Error: "boom"},
		},
	}}
	hub := events.NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	h := SearchHandler{Searcher: s, Hub: hub}
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query":"engineer"}`))
	h.Run(httptest.NewRecorder(), req)

	types := map[string]int{}
	for {
		select {
		case msg := <-ch:
			var ev events.Event
			require.NoError(t, json.Unmarshal([]byte(msg), &ev))
			types[ev.Type]++
			continue
		default:
		}
		break
	}
	assert.Equal(t, 1, types[events.TypeSearchStarted])
	assert.Equal(t, 2, types[events.TypeSourceSettled])
	assert.Equal(t, 1, types[events.TypeSearchComplete])
}
