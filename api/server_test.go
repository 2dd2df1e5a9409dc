package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestServer(t *testing.T) (*Server, *prometheus.Registry, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zap.DebugLevel)
	reg := prometheus.NewRegistry()
	srv, err := NewServer(Options{
		Version:  "test",
		Registry: reg,
		Logger:   zap.New(core),
	})
	require.NoError(t, err)
	return srv, reg, logs
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestConvert(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/convert", `{"domain":"length","value":10,"from":"miles","to":"Kilometers"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "length", resp.Domain)
	require.Equal(t, "Miles", resp.From)
	require.Equal(t, "Kilometers", resp.To)
	require.InDelta(t, 16.0934, resp.Result, 1e-4)
	require.Equal(t, "16.09340000", resp.Formatted)
	require.Equal(t, rec.Header().Get(RequestIDHeader), resp.RequestID)
}

func TestConvertScenarios(t *testing.T) {
	srv, _, _ := newTestServer(t)

	tests := []struct {
		body string
		want float64
	}{
		{`{"domain":"weight","value":1,"from":"Pounds","to":"Kilograms"}`, 0.453592},
		{`{"domain":"volume","value":1,"from":"Gallons (US)","to":"Liters"}`, 3.78541},
		{`{"domain":"time","value":1,"from":"Years","to":"Days"}`, 365},
		{`{"domain":"temperature","value":100,"from":"Celsius","to":"Fahrenheit"}`, 212},
		{`{"domain":"Temperature","value":-500,"from":"kelvin","to":"celsius"}`, -773.15},
	}

	for _, tt := range tests {
		rec := do(t, srv, http.MethodPost, "/convert", tt.body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp ConvertResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.InDelta(t, tt.want, resp.Result, 1e-9, tt.body)
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"unknown unit", `{"domain":"length","value":5,"from":"Meters","to":"Smoots"}`, "UNKNOWN_UNIT"},
		{"unknown domain", `{"domain":"mass","value":5,"from":"Grams","to":"Kilograms"}`, "UNKNOWN_DOMAIN"},
		{"missing value", `{"domain":"length","from":"Meters","to":"Feet"}`, "INVALID_VALUE"},
		{"overflow", `{"domain":"length","value":1e308,"from":"Miles","to":"Millimeters"}`, "INVALID_VALUE"},
		{"bad json", `{"domain":`, "INVALID_JSON"},
		{"unknown field", `{"domain":"length","value":1,"from":"Meters","to":"Feet","precision":2}`, "INVALID_JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, _ := newTestServer(t)

			rec := do(t, srv, http.MethodPost, "/convert", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tt.code, body.Error.Code)
			require.NotEmpty(t, body.Error.RequestID)
		})
	}
}

func TestUnknownUnitMessageNamesUnit(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/convert", `{"domain":"length","value":5,"from":"Meters","to":"Smoots"}`)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body.Error.Message, "Smoots")
}

func TestTable(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/table", `{"domain":"length","from":"Miles","to":"Kilometers"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.RequestID)
	require.Equal(t, "Miles", resp.From)
	require.Len(t, resp.Rows, 5)
	require.Equal(t, "1,000.00", resp.Rows[4].OriginalFormatted)
	require.Equal(t, "1,609.34", resp.Rows[4].ConvertedFormatted)

	rec = do(t, srv, http.MethodPost, "/table", `{"domain":"time","from":"Seconds","to":"Eons"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDomains(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/domains", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DomainsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Domains, 5)
	require.Equal(t, "length", resp.Domains[0].Name)
	require.Equal(t, "Meters", resp.Domains[0].BaseUnit)
	require.Len(t, resp.Domains[0].Units, 8)
	require.Equal(t, []string{"Celsius", "Fahrenheit", "Kelvin"}, resp.Domains[2].Units)
}

func TestHealthAndVersion(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"healthy"`)

	rec = do(t, srv, http.MethodGet, "/version", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"test"`)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/convert", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestIDPropagation(t *testing.T) {
	srv, _, logs := newTestServer(t)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, id, rec.Header().Get(RequestIDHeader))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	require.Equal(t, id, entries[0].ContextMap()["request_id"])
	require.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])

	// malformed ids are replaced
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	require.NoError(t, err)
}

func TestMetrics(t *testing.T) {
	srv, reg, _ := newTestServer(t)

	do(t, srv, http.MethodPost, "/convert", `{"domain":"time","value":1,"from":"Hours","to":"Minutes"}`)
	do(t, srv, http.MethodPost, "/convert", `{"domain":"time","value":1,"from":"Hours","to":"Fortnights"}`)
	do(t, srv, http.MethodPost, "/convert", `{"domain":"astrology","value":1,"from":"a","to":"b"}`)

	require.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.Conversions.WithLabelValues("time", "success")))
	require.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.Conversions.WithLabelValues("time", "unknown_unit")))
	require.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.Conversions.WithLabelValues("unknown", "error")))

	rec := do(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "unitconv_conversions_total")
	require.Contains(t, string(body), `route="POST /convert"`)

	count, err := testutil.GatherAndCount(reg, "unitconv_http_request_duration_seconds")
	require.NoError(t, err)
	require.Positive(t, count)
}

func TestMetricsCountOverflowAndTables(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/convert", `{"domain":"length","value":1e308,"from":"Miles","to":"Millimeters"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 0.0, testutil.ToFloat64(srv.metrics.Conversions.WithLabelValues("length", "success")))
	require.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.Conversions.WithLabelValues("length", "error")))

	do(t, srv, http.MethodPost, "/table", `{"domain":"weight","from":"Pounds","to":"Kilograms"}`)
	do(t, srv, http.MethodPost, "/table", `{"domain":"weight","from":"Pounds","to":"Stones"}`)
	require.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.Conversions.WithLabelValues("weight", "success")))
	require.Equal(t, 1.0, testutil.ToFloat64(srv.metrics.Conversions.WithLabelValues("weight", "unknown_unit")))
}

func TestOversizedBody(t *testing.T) {
	srv, _, _ := newTestServer(t)

	body := `{"domain":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	for _, path := range []string{"/convert", "/table"} {
		rec := do(t, srv, http.MethodPost, path, body)
		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, path)

		var resp ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "REQUEST_TOO_LARGE", resp.Error.Code)
	}
}
