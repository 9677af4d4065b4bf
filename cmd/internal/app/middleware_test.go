package app

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestRequestLogMeta(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status     int
		wantLevel  slog.Level
		wantResult string
	}{
		{status: 200, wantLevel: slog.LevelInfo, wantResult: "success"},
		{status: 201, wantLevel: slog.LevelInfo, wantResult: "success"},
		{status: 304, wantLevel: slog.LevelInfo, wantResult: "redirect"},
		{status: 401, wantLevel: slog.LevelWarn, wantResult: "client_error"},
		{status: 404, wantLevel: slog.LevelWarn, wantResult: "client_error"},
		{status: 500, wantLevel: slog.LevelError, wantResult: "server_error"},
	}

	for _, tc := range cases {
		level, result := requestLogMeta(tc.status)
		if level != tc.wantLevel || result != tc.wantResult {
			t.Fatalf("requestLogMeta(%d)=(%v,%q) want (%v,%q)",
				tc.status, level, result, tc.wantLevel, tc.wantResult)
		}
	}
}

func TestStatusClass(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		want   string
	}{
		{status: 101, want: "1xx"},
		{status: 200, want: "2xx"},
		{status: 301, want: "3xx"},
		{status: 422, want: "4xx"},
		{status: 503, want: "5xx"},
	}

	for _, tc := range cases {
		if got := statusClass(tc.status); got != tc.want {
			t.Fatalf("statusClass(%d)=%q want=%q", tc.status, got, tc.want)
		}
	}
}

func TestWithRequestIDAssigns(t *testing.T) {
	t.Parallel()

	var seen string
	h := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(requestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/list", nil))

	if seen == "" {
		t.Fatal("handler did not see a request id")
	}
	if _, err := ulid.Parse(seen); err != nil {
		t.Fatalf("request id %q is not a ULID: %v", seen, err)
	}
	if got := rec.Header().Get(requestIDHeader); got != seen {
		t.Fatalf("response header %q != request id %q", got, seen)
	}
}

func TestWithRequestIDPreservesExisting(t *testing.T) {
	t.Parallel()

	const given = "client-supplied-id"

	var seen string
	h := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(requestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, given)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen != given {
		t.Fatalf("handler saw %q, want %q", seen, given)
	}
	if got := rec.Header().Get(requestIDHeader); got != given {
		t.Fatalf("response header %q, want %q", got, given)
	}
}

func TestMetricsRoute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want string
	}{
		{path: "/users/list", want: "/users/list"},
		{path: "/users/insert", want: "/users/insert"},
		{path: "/users/login", want: "/users/login"},
		{path: "/users/update/42", want: "/users/update/{id}"},
		{path: "/users/update/", want: "other"},
		{path: "/metrics", want: "/metrics"},
		{path: "/nope", want: "other"},
	}

	for _, tc := range cases {
		if got := metricsRoute(tc.path); got != tc.want {
			t.Fatalf("metricsRoute(%q)=%q want=%q", tc.path, got, tc.want)
		}
	}
}

func TestWithMetricsRecords(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	h := WithMetrics(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}), m)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/insert", nil))

	// The counter must exist with the observed labels.
	c, err := m.requestsTotal.GetMetricWithLabelValues(http.MethodPost, "/users/insert", "2xx")
	if err != nil {
		t.Fatalf("counter lookup: %v", err)
	}
	if c == nil {
		t.Fatal("counter not registered")
	}
}
