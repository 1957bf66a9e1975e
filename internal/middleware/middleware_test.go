package api_middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lutefd/currency-widget/internal/commons"
	"github.com/Lutefd/currency-widget/internal/metrics"
	api_middleware "github.com/Lutefd/currency-widget/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimitMiddleware(t *testing.T) {
	originalClients := api_middleware.Clients
	api_middleware.Clients = make(map[string]*rate.Limiter)
	defer func() {
		api_middleware.Clients = originalClients
	}()

	tests := []struct {
		name           string
		ip             string
		setupLimiter   func()
		expectedStatus int
	}{
		{
			name: "Under rate limit",
			ip:   "192.168.0.1",
			setupLimiter: func() {
				limiter := rate.NewLimiter(rate.Inf, commons.DefaultAllowedRPS)
				api_middleware.Clients["192.168.0.1"] = limiter
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Exceeds rate limit",
			ip:   "192.168.0.1",
			setupLimiter: func() {
				limiter := rate.NewLimiter(rate.Every(time.Second), 1)
				api_middleware.Clients["192.168.0.1"] = limiter
				_ = api_middleware.Clients["192.168.0.1"].Allow()
			},
			expectedStatus: http.StatusTooManyRequests,
		},
		{
			name:           "New client gets its own limiter",
			ip:             "10.0.0.7:52100",
			setupLimiter:   func() {},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupLimiter()

			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.ip
			rr := httptest.NewRecorder()

			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			handler := api_middleware.RateLimitMiddleware(commons.DefaultAllowedRPS)(nextHandler)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}

	_, ok := api_middleware.Clients["10.0.0.7"]
	assert.True(t, ok)
}

func TestVisitorMiddleware(t *testing.T) {
	existing := uuid.New().String()

	tests := []struct {
		name          string
		cookie        *http.Cookie
		expectNewID   bool
		expectVisitor string
	}{
		{
			name:        "No cookie",
			cookie:      nil,
			expectNewID: true,
		},
		{
			name:          "Valid cookie",
			cookie:        &http.Cookie{Name: commons.VisitorCookieName, Value: existing},
			expectNewID:   false,
			expectVisitor: existing,
		},
		{
			name:        "Malformed cookie",
			cookie:      &http.Cookie{Name: commons.VisitorCookieName, Value: "not-a-uuid"},
			expectNewID: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			var seen string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = api_middleware.VisitorID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			api_middleware.VisitorMiddleware(nextHandler).ServeHTTP(rr, req)

			require.NotEmpty(t, seen)
			cookies := rr.Result().Cookies()
			if tt.expectNewID {
				require.Len(t, cookies, 1)
				assert.Equal(t, commons.VisitorCookieName, cookies[0].Name)
				assert.Equal(t, seen, cookies[0].Value)
				assert.True(t, cookies[0].HttpOnly)
			} else {
				assert.Empty(t, cookies)
				assert.Equal(t, tt.expectVisitor, seen)
			}
		})
	}
}

func TestVisitorID_OutsideMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, "", api_middleware.VisitorID(req.Context()))
	assert.Equal(t, "abc", api_middleware.VisitorID(api_middleware.WithVisitorID(req.Context(), "abc")))
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	router := chi.NewRouter()
	router.Use(api_middleware.MetricsMiddleware(m))
	router.Get("/api/currencies", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/convert", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	for _, path := range []string{"/api/currencies", "/api/currencies", "/api/convert"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest("GET", path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/api/currencies", "GET", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/api/convert", "GET", "4xx")))
}

func TestMetricsMiddleware_NilMetrics(t *testing.T) {
	rr := httptest.NewRecorder()
	handler := api_middleware.MetricsMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
