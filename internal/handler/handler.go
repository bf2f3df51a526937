package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"catalog-api/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a service error to an HTTP response. Validation
// failures surface as 400 with their error code; anything else is a store
// or internal failure and surfaces as 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		if domainErr.Code == model.ErrCodeProductNotFound {
			status = http.StatusNotFound
		}
		logger.Warn().Str("code", domainErr.Code).Str("error", domainErr.Message).Msg("request rejected")
		writeJSON(w, status, model.ErrorResponse{Error: domainErr.Code, Message: domainErr.Message})
		return
	}

	writeError(w, http.StatusInternalServerError, "internal server error", logger)
}

// parsePagination extracts and validates the limit and offset query
// parameters, applying the defaults (limit 10, offset 0). It reports
// ok=false after writing a 400 response when a parameter is not an integer
// or out of range.
func parsePagination(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (limit, offset int, ok bool) {
	limit = 10
	offset = 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		value, err := strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", logger)
			return 0, 0, false
		}
		limit = value
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		value, err := strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset parameter", logger)
			return 0, 0, false
		}
		offset = value
	}

	if limit < 1 {
		writeError(w, http.StatusBadRequest, "limit must be at least 1", logger)
		return 0, 0, false
	}

	if offset < 0 {
		writeError(w, http.StatusBadRequest, "offset must not be negative", logger)
		return 0, 0, false
	}

	return limit, offset, true
}
