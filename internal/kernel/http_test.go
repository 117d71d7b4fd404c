package kernel

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/companyapi/internal/testdb"
	"github.com/shashiranjanraj/companyapi/pkg/testkit"
)

func seeded(t *testing.T) http.Handler {
	return NewHTTPKernel(testdb.Seeded(t)).Handler()
}

func broken(t *testing.T) http.Handler {
	return NewHTTPKernel(testdb.Broken(t)).Handler()
}

func TestAPIScenarios(t *testing.T) {
	testkit.RunSuite(t, "testdata/test_scenarios.json", seeded)
}

func TestAPIWithDatabaseDown(t *testing.T) {
	testkit.RunSuite(t, "testdata/unavailable_scenarios.json", broken)
}

func TestRoutesListEveryResource(t *testing.T) {
	k := NewHTTPKernel(testdb.Open(t))

	names := map[string]bool{}
	for _, r := range k.Routes() {
		names[r.Name] = true
	}
	for _, resource := range []string{"users", "customers", "products", "orders"} {
		for _, action := range []string{"index", "store", "show", "update", "destroy"} {
			assert.True(t, names[resource+"."+action], resource+"."+action)
		}
	}
	assert.True(t, names["health"])
	assert.True(t, names["metrics"])
}

func TestResponsesCarryRequestID(t *testing.T) {
	h := seeded(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMetricsCountServiceOutcomes(t *testing.T) {
	h := seeded(t)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/99", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `entity="user"`)
	assert.Contains(t, body, `outcome="not_found"`)
}
