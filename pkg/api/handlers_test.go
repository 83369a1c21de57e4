package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mkarlsen/cvsym/pkg/cvsym"
	"github.com/mkarlsen/cvsym/pkg/namedex"
)

// testStream holds three records: a using-namespace named "std" at index 0,
// a UDT named "va_list" at index 8, and a scope end at index 24.
func testStream() *cvsym.SymbolTable {
	data := []byte{
		6, 0, 36, 17, 115, 116, 100, 0,
		14, 0, 8, 17, 112, 6, 0, 0, 118, 97, 95, 108, 105, 115, 116, 0,
		2, 0, 6, 0,
	}
	return cvsym.NewSymbolTable(data)
}

// stubNameIndex serves canned lookup results
type stubNameIndex struct {
	entries map[string][]namedex.Entry
	hits    []namedex.Hit
}

func (s *stubNameIndex) Get(name string) ([]namedex.Entry, error) {
	return s.entries[name], nil
}

func (s *stubNameIndex) Scan(prefix string, limit int) ([]namedex.Hit, error) {
	if limit > 0 && len(s.hits) > limit {
		return s.hits[:limit], nil
	}
	return s.hits, nil
}

func setupTestServer(t *testing.T, names NameIndex) *Server {
	t.Helper()
	// A fresh registry per test keeps promauto from seeing the same
	// collectors twice.
	return NewServer(testStream(), names, ServerConfig{}, newMetrics(prometheus.NewRegistry()))
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var response APIResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return response
}

func TestServer_handleHealth(t *testing.T) {
	server := setupTestServer(t, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	server.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	response := decodeResponse(t, w)
	if !response.Success {
		t.Error("Expected success to be true")
	}
	if response.Data == nil {
		t.Error("Expected data to be present")
	}
}

func TestServer_handleListSymbols(t *testing.T) {
	server := setupTestServer(t, nil)

	tests := []struct {
		name          string
		query         string
		expectedCount int
		expectedNext  *uint32
	}{
		{
			name:          "whole stream",
			query:         "",
			expectedCount: 3,
			expectedNext:  nil,
		},
		{
			name:          "limited page",
			query:         "?limit=2",
			expectedCount: 2,
			expectedNext:  func() *uint32 { v := uint32(24); return &v }(),
		},
		{
			name:          "resumed page",
			query:         "?offset=8",
			expectedCount: 2,
			expectedNext:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/symbols"+tt.query, nil)
			w := httptest.NewRecorder()

			server.handleListSymbols(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", w.Code)
			}

			var response struct {
				Success bool       `json:"success"`
				Data    SymbolPage `json:"data"`
			}
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}

			if len(response.Data.Symbols) != tt.expectedCount {
				t.Errorf("Expected %d symbols, got %d", tt.expectedCount, len(response.Data.Symbols))
			}
			if tt.expectedNext == nil {
				if response.Data.Next != nil {
					t.Errorf("Expected no next index, got %d", *response.Data.Next)
				}
			} else if response.Data.Next == nil || *response.Data.Next != *tt.expectedNext {
				t.Errorf("Expected next index %d, got %v", *tt.expectedNext, response.Data.Next)
			}
		})
	}
}

func TestServer_handleListSymbols_InvalidParams(t *testing.T) {
	server := setupTestServer(t, nil)

	for _, query := range []string{"?offset=banana", "?limit=0", "?limit=-3"} {
		req := httptest.NewRequest("GET", "/symbols"+query, nil)
		w := httptest.NewRecorder()

		server.handleListSymbols(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Query %q: expected status 400, got %d", query, w.Code)
		}
	}
}

func TestServer_handleGetSymbol(t *testing.T) {
	server := setupTestServer(t, nil)

	tests := []struct {
		name           string
		index          string
		expectedStatus int
		expectedName   string
	}{
		{
			name:           "first record",
			index:          "0",
			expectedStatus: http.StatusOK,
			expectedName:   "std",
		},
		{
			name:           "hex index",
			index:          "0x8",
			expectedStatus: http.StatusOK,
			expectedName:   "va_list",
		},
		{
			name:           "past end of stream",
			index:          "64",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "mid-record index",
			index:          "3",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not a number",
			index:          "first",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/symbols/"+tt.index, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("index", tt.index)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			server.handleGetSymbol(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var response struct {
				Success bool           `json:"success"`
				Data    SymbolResponse `json:"data"`
			}
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if response.Data.Name == nil || *response.Data.Name != tt.expectedName {
				t.Errorf("Expected name %q, got %v", tt.expectedName, response.Data.Name)
			}
		})
	}
}

func TestServer_handleScopes(t *testing.T) {
	server := setupTestServer(t, nil)

	req := httptest.NewRequest("GET", "/scopes", nil)
	w := httptest.NewRecorder()

	server.handleScopes(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Success bool            `json:"success"`
		Data    []ScopeResponse `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// Both named records sit outside any scope; the stray end is consumed.
	if len(response.Data) != 2 {
		t.Errorf("Expected 2 root scopes, got %d", len(response.Data))
	}
}

func TestServer_handleLookup(t *testing.T) {
	names := &stubNameIndex{
		entries: map[string][]namedex.Entry{
			"va_list": {{Index: cvsym.SymbolIndex(8), Kind: cvsym.S_UDT}},
		},
		hits: []namedex.Hit{
			{Name: "std", Entry: namedex.Entry{Index: 0, Kind: cvsym.S_UNAMESPACE}},
			{Name: "va_list", Entry: namedex.Entry{Index: cvsym.SymbolIndex(8), Kind: cvsym.S_UDT}},
		},
	}
	server := setupTestServer(t, names)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "exact name",
			query:          "?name=va_list",
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "missing name",
			query:          "?name=nope",
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "prefix scan",
			query:          "?prefix=v",
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "prefix scan with limit",
			query:          "?prefix=v&limit=1",
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "no parameters",
			query:          "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/lookup"+tt.query, nil)
			w := httptest.NewRecorder()

			server.handleLookup(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var response struct {
				Success bool             `json:"success"`
				Data    []LookupResponse `json:"data"`
			}
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if len(response.Data) != tt.expectedCount {
				t.Errorf("Expected %d results, got %d", tt.expectedCount, len(response.Data))
			}
		})
	}
}

func TestServer_handleLookup_NoIndex(t *testing.T) {
	server := setupTestServer(t, nil)

	req := httptest.NewRequest("GET", "/lookup?name=std", nil)
	w := httptest.NewRecorder()

	server.handleLookup(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
}
