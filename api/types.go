// Package api - API types for unit conversion
// These types define the contract for the HTTP endpoints.
// The API is stateless, idempotent, and deterministic.
package api

import "unit-converter/core/output"

// ConvertRequest is the input to POST /convert
type ConvertRequest struct {
	// Domain selects the unit family (length, weight, temperature, volume, time)
	Domain string `json:"domain"`

	// Value is the quantity to convert; required
	Value *float64 `json:"value"`

	// From is the source unit name (case-insensitive)
	From string `json:"from"`

	// To is the target unit name (case-insensitive)
	To string `json:"to"`
}

// ConvertResponse is the output of POST /convert
type ConvertResponse struct {
	RequestID string  `json:"request_id"`
	Domain    string  `json:"domain"`
	Value     float64 `json:"value"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Result    float64 `json:"result"`

	// Formatted is Result with 8 decimal places
	Formatted string `json:"formatted"`
}

// TableRequest is the input to POST /table
type TableRequest struct {
	Domain string `json:"domain"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// TableResponse is the output of POST /table
type TableResponse struct {
	RequestID string `json:"request_id"`
	*output.JSONTable
}

// DomainInfo describes one conversion domain
type DomainInfo struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	BaseUnit string   `json:"base_unit"`
	Units    []string `json:"units"`
}

// DomainsResponse is the output of GET /domains
type DomainsResponse struct {
	Domains []DomainInfo `json:"domains"`
}

// ErrorBody is the payload of every error response
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable code and a human-readable message
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
