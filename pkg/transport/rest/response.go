// Package rest holds the HTTP glue every service uses to put the registry's
// envelopes on the wire: response writers, error mapping, request decoding
// and health endpoints. It does not route or listen.
package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/unidict-shared/pkg/ctxutil"
	"github.com/heartmarshall/unidict-shared/pkg/types"
)

// MaxBodyBytes bounds request bodies read by DecodeJSON. It leaves room for
// the largest base64 payload (an OCR image).
const MaxBodyBytes = 32 << 20

// WriteJSON writes v as the JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// WriteOK writes data wrapped in a successful BaseResponse.
func WriteOK[T any](w http.ResponseWriter, status int, data T) {
	WriteJSON(w, status, types.OK(data))
}

// WritePage writes one page of items wrapped in a BaseResponse.
func WritePage[T any](w http.ResponseWriter, items []T, total, page, pageSize int) {
	WriteOK(w, http.StatusOK, types.NewPaginationResponse(items, total, page, pageSize))
}

// WriteError writes e with the status matching its code, stamped with the
// request id from the context.
func WriteError(w http.ResponseWriter, r *http.Request, e *types.APIError) {
	if id := ctxutil.RequestIDFromCtx(r.Context()); id != "" && e.RequestID == nil {
		e = e.WithRequestID(id)
	}
	WriteJSON(w, e.Status(), e)
}

// HandleError maps err to an APIError and writes it. Errors that become
// INTERNAL_ERROR are logged with the original cause.
func HandleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	apiErr := types.APIErrorFromError(err)
	if apiErr.Code == types.ErrCodeInternal {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}
	WriteError(w, r, apiErr)
}

// DecodeJSON reads the request body into v and checks it with
// types.CheckShape. Malformed or oversized bodies yield a *types.ValidationError
// on field "body".
func DecodeJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	switch {
	case len(body) == 0:
		return types.NewValidationError("body", "required")
	case len(body) > MaxBodyBytes:
		return types.NewValidationError("body", "too large")
	}
	return types.CheckShape(body, v)
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header,
// or "" when there is none.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

