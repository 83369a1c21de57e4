package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsSeparateRegistries(t *testing.T) {
	// Building metrics twice must not trip duplicate collector registration
	// as long as each set gets its own registry.
	first := newMetrics(prometheus.NewRegistry())
	second := newMetrics(prometheus.NewRegistry())

	if first == nil || second == nil {
		t.Fatal("Expected both metric sets to be created")
	}
}

func TestInstrumentAuthMiddleware(t *testing.T) {
	m := newMetrics(prometheus.NewRegistry())

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := m.InstrumentAuthMiddleware(apiKeyMiddleware("test-key"))(testHandler)

	tests := []struct {
		name      string
		header    string
		expected  int
		successes float64
		errors    float64
	}{
		{
			name:      "accepted key",
			header:    "test-key",
			expected:  http.StatusOK,
			successes: 1,
			errors:    0,
		},
		{
			name:      "rejected key",
			header:    "wrong-key",
			expected:  http.StatusUnauthorized,
			successes: 1,
			errors:    1,
		},
		{
			name:      "missing key",
			header:    "",
			expected:  http.StatusUnauthorized,
			successes: 1,
			errors:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.expected {
				t.Errorf("Expected status %d, got %d", tt.expected, w.Code)
			}

			got := testutil.ToFloat64(m.authRequestsTotal.WithLabelValues(statusSuccess))
			if got != tt.successes {
				t.Errorf("Expected %v auth successes, got %v", tt.successes, got)
			}
			got = testutil.ToFloat64(m.authRequestsTotal.WithLabelValues(statusError))
			if got != tt.errors {
				t.Errorf("Expected %v auth errors, got %v", tt.errors, got)
			}
		})
	}
}
