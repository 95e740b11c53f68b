package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/ampliy/ampliy/internal/config"
	"github.com/ampliy/ampliy/internal/rest"
	"github.com/ampliy/ampliy/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T, cfg config.Application) http.Handler {
	t.Helper()
	application, err := NewApplicationWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		application.deps.ScheduleStore.Close()
	})
	return application.Handler()
}

func request(handler http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestApplication_CatalogFallbackWhenApiDisabled(t *testing.T) {
	handler := newTestApplication(t, config.Defaults())

	rr := request(handler, "GET", "/api/sidebar", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var body catalog.LinksDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, catalog.FallbackLinks(), body.Links)
}

func TestApplication_RemoteCatalog(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sidebar":
			rest.WriteJSON(w, http.StatusOK, catalog.LinksDTO{Links: []catalog.SidebarLink{{Id: "plans", Label: "Planos"}}})
		case "/api/content":
			rest.WriteJSON(w, http.StatusOK, catalog.ItemsDTO{Items: []catalog.ContentItem{}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	cfg := config.Defaults()
	cfg.Api.Enabled = true
	cfg.Catalog.Source = "remote"
	cfg.Catalog.Upstream = upstream.URL
	handler := newTestApplication(t, cfg)

	rr := request(handler, "GET", "/api/sidebar", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"links":[{"id":"plans","label":"Planos"}]}`, rr.Body.String())
}

func TestApplication_InvalidConfiguration(t *testing.T) {
	cfg := config.Defaults()
	cfg.Api.Enabled = true
	cfg.Catalog.Source = "ftp"
	_, err := NewApplicationWithConfig(context.Background(), cfg)
	assert.ErrorContains(t, err, "unknown catalog source")

	cfg = config.Defaults()
	cfg.Api.Enabled = true
	cfg.Catalog.Source = "remote"
	_, err = NewApplicationWithConfig(context.Background(), cfg)
	assert.ErrorContains(t, err, "catalog.upstream")

	cfg = config.Defaults()
	cfg.KV.Backend = "etcd"
	_, err = NewApplicationWithConfig(context.Background(), cfg)
	assert.ErrorContains(t, err, "unknown kv backend")

	cfg = config.Defaults()
	cfg.Schedule.BaseDate = "yesterday"
	_, err = NewApplicationWithConfig(context.Background(), cfg)
	assert.Error(t, err)
}

func TestApplication_SessionsAreKeptPerHeader(t *testing.T) {
	handler := newTestApplication(t, config.Defaults())

	rr := request(handler, "GET", "/api/schedule", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	sessionId := rr.Header().Get(SessionIdHeader)
	require.NotEmpty(t, sessionId)

	admin := map[string]string{SessionIdHeader: sessionId, RoleHeader: "admin"}
	rr = request(handler, "POST", "/api/schedule/event", `{"title":"Mentoria","date":"2025-11-05","time":"10:00"}`, admin)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, sessionId, rr.Header().Get(SessionIdHeader))

	var own struct {
		Events []json.RawMessage `json:"events"`
	}
	rr = request(handler, "GET", "/api/schedule", "", admin)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&own))
	assert.Len(t, own.Events, 5)

	var other struct {
		Events []json.RawMessage `json:"events"`
	}
	rr = request(handler, "GET", "/api/schedule", "", map[string]string{SessionIdHeader: "someone-else", RoleHeader: "admin"})
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&other))
	assert.Len(t, other.Events, 4)
}

func TestApplication_StudentsCannotMutateSchedule(t *testing.T) {
	handler := newTestApplication(t, config.Defaults())
	student := map[string]string{SessionIdHeader: "s1"}

	rr := request(handler, "POST", "/api/schedule/event", `{"title":"Mentoria","date":"2025-11-05","time":"10:00"}`, student)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = request(handler, "DELETE", "/api/schedule/event/evt-lab-1", "", student)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestApplication_WorkshopsLoginIsPerSession(t *testing.T) {
	handler := newTestApplication(t, config.Defaults())

	rr := request(handler, "POST", "/api/workshops/login", `{"email":"teste@teste.com","password":"123"}`,
		map[string]string{SessionIdHeader: "s1"})
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, http.StatusOK, request(handler, "GET", "/api/workshops/me", "", map[string]string{SessionIdHeader: "s1"}).Code)
	assert.Equal(t, http.StatusUnauthorized, request(handler, "GET", "/api/workshops/me", "", map[string]string{SessionIdHeader: "s2"}).Code)
}

func TestApplication_CorsPreflight(t *testing.T) {
	cfg := config.Defaults()
	handler := newTestApplication(t, cfg)

	rr := request(handler, "OPTIONS", "/api/schedule/event", "", map[string]string{"Origin": cfg.Host})

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, cfg.Host, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), RoleHeader)

	rr = request(handler, "GET", "/api/plans", "", map[string]string{"Origin": "http://evil.example"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
