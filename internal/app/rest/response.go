package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/francois-poidevin/flightsun/internal/app/apperr"
)

const maxRequestBodySize = 1 << 20

type ctxKey int

const requestIDKey ctxKey = iota

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
}

type errorResponse struct {
	Error ErrorDetail `json:"error"`
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// withRequestID tags each request with the caller's X-Request-ID or a fresh one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":"internal_error","message":"failed to marshal response"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeError maps an apperr code to its status. Foreign errors become a 500
// without leaking their message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	detail := ErrorDetail{
		Code:      string(apperr.CodeInternal),
		Message:   "an unexpected error occurred",
		RequestID: requestID(r.Context()),
	}
	status := http.StatusInternalServerError

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		detail.Code = string(appErr.Code)
		detail.Message = appErr.Message
		detail.Details = appErr.Details
		status = appErr.HTTPStatus()
	}
	writeJSON(w, status, errorResponse{Error: detail})
}

// decodeJSON reads exactly one JSON value, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return apperr.WrapInvalidInput(err, "request body is too large or unreadable")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return apperr.InvalidInput("request body is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.WrapInvalidInput(err, "malformed JSON body: %s", err.Error())
	}
	if dec.More() {
		return apperr.InvalidInput("request body must hold a single JSON value")
	}
	return nil
}
