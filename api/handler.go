// Package api - HTTP handlers for unit conversion
// Handlers wrap the engine - they contain NO conversion logic.
package api

import (
	"encoding/json"
	stderrors "errors"
	"math"
	"net/http"

	"go.uber.org/zap"

	"unit-converter/core/conversion"
	"unit-converter/core/output"
	"unit-converter/core/reference"
	"unit-converter/core/types"
	"unit-converter/internal/errors"
	"unit-converter/internal/logging"
	"unit-converter/internal/metrics"
)

// maxBodyBytes bounds request bodies; valid requests are a few hundred bytes
const maxBodyBytes = 64 << 10

// handleConvert handles POST /convert
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := RequestIDFromContext(ctx)

	var req ConvertRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeDecodeError(w, r, err)
		return
	}
	if req.Value == nil {
		s.writeError(w, r, "INVALID_VALUE", "value is required", http.StatusBadRequest)
		return
	}

	domain, from, to, err := resolve(req.Domain, req.From, req.To)
	if err != nil {
		s.observe(domainLabel(req.Domain), err)
		s.writeEngineError(w, r, err)
		return
	}

	result, err := conversion.ConvertRequest(domain, types.Request{Value: *req.Value, From: from, To: to})
	if err == nil && (math.IsInf(result.Value, 0) || math.IsNaN(result.Value)) {
		s.metrics.ObserveConversion(domain.String(), metrics.OutcomeError)
		s.writeError(w, r, "INVALID_VALUE", "result is not a finite number", http.StatusBadRequest)
		return
	}
	s.observe(domain.String(), err)
	if err != nil {
		s.writeEngineError(w, r, err)
		return
	}

	logging.FromContext(ctx).Debug("converted",
		zap.Stringer("domain", domain),
		zap.Float64("value", result.Request.Value),
		zap.String("from", from),
		zap.String("to", to),
		zap.Float64("result", result.Value))

	s.writeJSON(w, ConvertResponse{
		RequestID: requestID,
		Domain:    domain.String(),
		Value:     result.Request.Value,
		From:      from,
		To:        to,
		Result:    result.Value,
		Formatted: output.FormatResult(result.Value),
	}, http.StatusOK)
}

// handleTable handles POST /table
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	var req TableRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeDecodeError(w, r, err)
		return
	}

	domain, from, to, err := resolve(req.Domain, req.From, req.To)
	if err != nil {
		s.observe(domainLabel(req.Domain), err)
		s.writeEngineError(w, r, err)
		return
	}

	table, err := reference.Build(domain, from, to)
	s.observe(domain.String(), err)
	if err != nil {
		s.writeEngineError(w, r, err)
		return
	}

	s.writeJSON(w, TableResponse{
		RequestID: RequestIDFromContext(r.Context()),
		JSONTable: output.NewJSONTable(table),
	}, http.StatusOK)
}

// handleDomains handles GET /domains
func (s *Server) handleDomains(w http.ResponseWriter, r *http.Request) {
	resp := DomainsResponse{Domains: make([]DomainInfo, 0, len(types.Domains()))}
	for _, d := range types.Domains() {
		resp.Domains = append(resp.Domains, DomainInfo{
			Name:     d.String(),
			Label:    d.Label(),
			BaseUnit: conversion.BaseUnit(d),
			Units:    conversion.Units(d),
		})
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// resolve parses the domain and maps both unit names to their published form
func resolve(domainName, fromName, toName string) (types.Domain, string, string, error) {
	domain, err := types.ParseDomain(domainName)
	if err != nil {
		return 0, "", "", err
	}
	from, err := conversion.ResolveUnit(domain, fromName)
	if err != nil {
		return 0, "", "", err
	}
	to, err := conversion.ResolveUnit(domain, toName)
	if err != nil {
		return 0, "", "", err
	}
	return domain, from, to, nil
}

// domainLabel keeps metric label values bounded to the known domains
func domainLabel(name string) string {
	if d, err := types.ParseDomain(name); err == nil {
		return d.String()
	}
	return "unknown"
}

func (s *Server) observe(domain string, err error) {
	switch {
	case err == nil:
		s.metrics.ObserveConversion(domain, metrics.OutcomeSuccess)
	case errors.IsType(err, errors.TypeUnknownUnit):
		s.metrics.ObserveConversion(domain, metrics.OutcomeUnknownUnit)
	default:
		s.metrics.ObserveConversion(domain, metrics.OutcomeError)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeEngineError maps typed errors to HTTP responses
func (s *Server) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch t := errors.TypeOf(err); t {
	case errors.TypeUnknownUnit, errors.TypeUnknownDomain, errors.TypeInput:
		e, _ := errors.As(err)
		s.writeError(w, r, string(t), e.Message, http.StatusBadRequest)
	default:
		internal := errors.Internal("conversion failed", err)
		logging.FromContext(r.Context()).Error(internal.Message, zap.Error(internal))
		s.writeError(w, r, string(internal.Type), internal.Message, http.StatusInternalServerError)
	}
}

// writeDecodeError maps request body failures; oversized bodies get 413
func (s *Server) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		s.writeError(w, r, "REQUEST_TOO_LARGE", err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	s.writeError(w, r, "INVALID_JSON", err.Error(), http.StatusBadRequest)
}
