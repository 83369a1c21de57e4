package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkarlsen/cvsym/pkg/cvsym"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// Server holds the server state
type Server struct {
	table   *cvsym.SymbolTable
	names   NameIndex
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server instance
func NewServer(table *cvsym.SymbolTable, names NameIndex, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		table:   table,
		names:   names,
		config:  config,
		metrics: metrics,
	}
}

// symbolResponse renders one record for the wire. Records that fail to
// decode still come back with their raw kind; Data and Name stay empty.
func symbolResponse(sym cvsym.Symbol) SymbolResponse {
	resp := SymbolResponse{
		Index:       uint32(sym.Index()),
		Kind:        sym.RawKind().String(),
		RawKind:     uint16(sym.RawKind()),
		StartsScope: sym.StartsScope(),
		EndsScope:   sym.EndsScope(),
	}

	parsed, err := sym.Parse()
	if err != nil {
		return resp
	}
	resp.Data = parsed
	if name, ok := cvsym.SymbolName(parsed); ok {
		resp.Name = &name
	}
	return resp
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]interface{}{
		"status":       "healthy",
		"stream_bytes": s.table.Len(),
	})
}

// handleListSymbols returns a page of records starting at the given offset
func (s *Server) handleListSymbols(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	offset := uint64(0)
	if raw := r.URL.Query().Get("offset"); raw != "" {
		var err error
		offset, err = strconv.ParseUint(raw, 0, 32)
		if err != nil {
			sendError(w, http.StatusBadRequest, "Invalid offset parameter")
			return
		}
	}

	limit := defaultPageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			sendError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		if parsed > maxPageLimit {
			parsed = maxPageLimit
		}
		limit = parsed
	}

	page := SymbolPage{Symbols: []SymbolResponse{}}
	iter := s.table.IterAt(cvsym.SymbolIndex(offset))
	for len(page.Symbols) < limit && iter.Next() {
		page.Symbols = append(page.Symbols, symbolResponse(iter.Symbol()))
	}
	if iter.Err() == nil && iter.Next() {
		next := uint32(iter.Symbol().Index())
		page.Next = &next
	}
	if err := iter.Err(); err != nil {
		s.metrics.RecordStreamOperation("list", false, time.Since(start))
		sendError(w, http.StatusInternalServerError, fmt.Sprintf("Malformed symbol stream: %v", err))
		return
	}

	s.metrics.RecordStreamOperation("list", true, time.Since(start))
	sendSuccess(w, page)
}

// handleGetSymbol returns the record stored at one symbol index
func (s *Server) handleGetSymbol(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	index, err := strconv.ParseUint(chi.URLParam(r, "index"), 0, 32)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid symbol index")
		return
	}

	iter := s.table.Iter()
	if !iter.SkipTo(cvsym.SymbolIndex(index)) {
		s.metrics.RecordStreamOperation("get", false, time.Since(start))
		if err := iter.Err(); err != nil {
			sendError(w, http.StatusBadRequest, fmt.Sprintf("No record at index %#x: %v", index, err))
			return
		}
		sendError(w, http.StatusNotFound, "Symbol not found")
		return
	}

	s.metrics.RecordStreamOperation("get", true, time.Since(start))
	sendSuccess(w, symbolResponse(iter.Symbol()))
}

func scopeResponses(nodes []*cvsym.ScopeNode) []ScopeResponse {
	out := make([]ScopeResponse, 0, len(nodes))
	for _, node := range nodes {
		resp := ScopeResponse{
			Index:    uint32(node.Symbol.Index()),
			Kind:     node.Symbol.RawKind().String(),
			Children: scopeResponses(node.Children),
		}
		if name, ok := node.Symbol.Name(); ok {
			resp.Name = &name
		}
		out = append(out, resp)
	}
	return out
}

// handleScopes returns the scope tree of the whole stream
func (s *Server) handleScopes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	roots, err := cvsym.BuildScopeTree(s.table.Iter())
	if err != nil {
		s.metrics.RecordStreamOperation("scopes", false, time.Since(start))
		sendError(w, http.StatusInternalServerError, fmt.Sprintf("Malformed symbol stream: %v", err))
		return
	}

	s.metrics.RecordStreamOperation("scopes", true, time.Since(start))
	sendSuccess(w, scopeResponses(roots))
}

// handleLookup resolves symbols by exact name or name prefix
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if s.names == nil {
		sendError(w, http.StatusServiceUnavailable, "Name index not configured")
		return
	}

	name := r.URL.Query().Get("name")
	prefix := r.URL.Query().Get("prefix")

	switch {
	case name != "":
		entries, err := s.names.Get(name)
		if err != nil {
			s.metrics.RecordLookup(false)
			sendError(w, http.StatusInternalServerError, fmt.Sprintf("Name lookup failed: %v", err))
			return
		}
		results := make([]LookupResponse, 0, len(entries))
		for _, e := range entries {
			results = append(results, LookupResponse{
				Name:  name,
				Index: uint32(e.Index),
				Kind:  e.Kind.String(),
			})
		}
		s.metrics.RecordLookup(true)
		sendSuccess(w, results)

	case prefix != "":
		limit := defaultPageLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				sendError(w, http.StatusBadRequest, "Invalid limit parameter")
				return
			}
			if parsed > maxPageLimit {
				parsed = maxPageLimit
			}
			limit = parsed
		}
		hits, err := s.names.Scan(prefix, limit)
		if err != nil {
			s.metrics.RecordLookup(false)
			sendError(w, http.StatusInternalServerError, fmt.Sprintf("Name scan failed: %v", err))
			return
		}
		results := make([]LookupResponse, 0, len(hits))
		for _, h := range hits {
			results = append(results, LookupResponse{
				Name:  h.Name,
				Index: uint32(h.Entry.Index),
				Kind:  h.Entry.Kind.String(),
			})
		}
		s.metrics.RecordLookup(true)
		sendSuccess(w, results)

	default:
		sendError(w, http.StatusBadRequest, "Missing name or prefix parameter")
	}
}
