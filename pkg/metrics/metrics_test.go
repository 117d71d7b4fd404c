package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/widgets/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/widgets/{id}", "418"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/widgets/42", nil))
	after := testutil.ToFloat64(RequestTotal.WithLabelValues("GET", "/widgets/{id}", "418"))

	assert.Equal(t, before+1, after)
}

func TestObserveDBQueryCountsFailures(t *testing.T) {
	before := testutil.ToFloat64(DBErrors.WithLabelValues("select"))
	ObserveDBQuery("select", time.Now(), true)
	ObserveDBQuery("select", time.Now(), false)
	assert.Equal(t, before+1, testutil.ToFloat64(DBErrors.WithLabelValues("select")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	RecordOutcome("user", "create", "ok")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "companyapi_service_outcomes_total")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestRecordOutcomeLabels(t *testing.T) {
	c := ServiceOutcomes.WithLabelValues("order", "create", "bad_request")
	before := testutil.ToFloat64(c)
	RecordOutcome("order", "create", "bad_request")
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestUnmatchedRouteLabel(t *testing.T) {
	h := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))

	c := RequestTotal.WithLabelValues("GET", "unmatched", "200")
	before := testutil.ToFloat64(c)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
