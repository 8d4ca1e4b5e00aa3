// Package jsonutil provides helper functions for JSON API responses.
//
// Every API response carries a success flag so callers can branch on one
// field: {"success": true, "data": ...} on the happy path, and
// {"success": false, "error": "..."} otherwise. List endpoints add a
// pagination block that clients round-trip back as query parameters.
package jsonutil

import (
	"encoding/json"
	"net/http"
)

// Pagination describes one page of a list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes TotalPages from total and limit.
func NewPagination(page, limit int, total int64) Pagination {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// envelope is the wire shape shared by all API responses.
type envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
	Fields     any         `json:"fields,omitempty"`
}

// write encodes v with the given status code.
func write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success writes a 200 response with {"success": true, "data": data}.
func Success(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, envelope{Success: true, Data: data})
}

// Created writes a 201 response with {"success": true, "data": data}.
func Created(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, envelope{Success: true, Data: data})
}

// SuccessNull writes {"success": true, "data": null}. Used when an
// optional document does not exist: the request succeeded, there is
// just nothing saved yet.
func SuccessNull(w http.ResponseWriter) {
	write(w, http.StatusOK, struct {
		Success bool `json:"success"`
		Data    any  `json:"data"`
	}{Success: true})
}

// SuccessList writes a 200 list response including pagination metadata.
func SuccessList(w http.ResponseWriter, data any, pg Pagination) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, Pagination: &pg})
}

// Fail writes {"success": false, "error": message} with the given status.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Success: false, Error: message})
}

// BadRequest writes a 400 failure response.
func BadRequest(w http.ResponseWriter, message string) {
	Fail(w, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 failure response.
func Unauthorized(w http.ResponseWriter, message string) {
	Fail(w, http.StatusUnauthorized, message)
}

// Forbidden writes a 403 failure response.
func Forbidden(w http.ResponseWriter, message string) {
	Fail(w, http.StatusForbidden, message)
}

// NotFound writes a 404 failure response.
func NotFound(w http.ResponseWriter, message string) {
	Fail(w, http.StatusNotFound, message)
}

// InternalError writes a 500 failure response. Do not expose internal
// details to clients - log the actual error separately.
func InternalError(w http.ResponseWriter, message string) {
	Fail(w, http.StatusInternalServerError, message)
}

// ValidationFailed writes a 400 response with per-field messages.
func ValidationFailed(w http.ResponseWriter, fields map[string]string) {
	write(w, http.StatusBadRequest, envelope{
		Success: false,
		Error:   "validation failed",
		Fields:  fields,
	})
}

// Decode reads and decodes JSON from the request body into v.
func Decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
