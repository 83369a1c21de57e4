package api

import (
	"github.com/mkarlsen/cvsym/pkg/namedex"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string
}

// NameIndex is the lookup surface the server needs; *namedex.Index
// implements it.
type NameIndex interface {
	Get(name string) ([]namedex.Entry, error)
	Scan(prefix string, limit int) ([]namedex.Hit, error)
}

// SymbolResponse is the JSON rendering of one symbol record.
type SymbolResponse struct {
	Index       uint32      `json:"index"`
	Kind        string      `json:"kind"`
	RawKind     uint16      `json:"raw_kind"`
	Name        *string     `json:"name,omitempty"`
	StartsScope bool        `json:"starts_scope,omitempty"`
	EndsScope   bool        `json:"ends_scope,omitempty"`
	Data        interface{} `json:"data,omitempty"`
}

// SymbolPage is a page of symbols plus the index to resume from.
type SymbolPage struct {
	Symbols []SymbolResponse `json:"symbols"`
	// Next is the index of the first record after the page; absent on the
	// last page.
	Next *uint32 `json:"next,omitempty"`
}

// ScopeResponse is the JSON rendering of one scope tree node.
type ScopeResponse struct {
	Index    uint32          `json:"index"`
	Kind     string          `json:"kind"`
	Name     *string         `json:"name,omitempty"`
	Children []ScopeResponse `json:"children,omitempty"`
}

// LookupResponse is the JSON rendering of one name index entry.
type LookupResponse struct {
	Name  string `json:"name"`
	Index uint32 `json:"index"`
	Kind  string `json:"kind"`
}
