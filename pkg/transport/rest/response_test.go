package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/unidict-shared/pkg/ctxutil"
	"github.com/heartmarshall/unidict-shared/pkg/types"
)

func TestWriteOK(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteOK(rec, http.StatusCreated, types.Pronunciation{Type: types.AccentUS, Phonetic: "/wɜːd/"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp types.BaseResponse[types.Pronunciation]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "/wɜːd/", resp.Data.Phonetic)
	assert.NotZero(t, resp.Timestamp)
}

func TestWritePage(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WritePage(rec, []string{"a", "b"}, 25, 3, 10)

	var resp types.BaseResponse[types.PaginationResponse[string]]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"a", "b"}, resp.Data.Items)
	assert.Equal(t, 3, resp.Data.TotalPages)
	assert.Equal(t, 25, resp.Data.Total)

	rec = httptest.NewRecorder()
	WritePage[string](rec, nil, 0, 1, 10)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestWriteError_StampsRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/words/x", nil)
	req = req.WithContext(ctxutil.WithRequestID(req.Context(), "req-42"))
	rec := httptest.NewRecorder()

	WriteError(rec, req, types.NewAPIError(types.ErrCodeNotFound, "word not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var got types.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, types.ErrCodeNotFound, got.Code)
	require.NotNil(t, got.RequestID)
	assert.Equal(t, "req-42", *got.RequestID)
}

func TestWriteError_NoRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	WriteError(rec, req, types.NewAPIError(types.ErrCodeConflict, "conflict"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NotContains(t, rec.Body.String(), "requestId")
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantLogged bool
	}{
		{"validation", types.NewValidationError("query", "required"), http.StatusBadRequest, types.ErrCodeValidation, false},
		{"not found", fmt.Errorf("get word: %w", types.ErrNotFound), http.StatusNotFound, types.ErrCodeNotFound, false},
		{"unauthorized", types.ErrUnauthorized, http.StatusUnauthorized, types.ErrCodeUnauthorized, false},
		{"internal", errors.New("dial tcp: refused"), http.StatusInternalServerError, types.ErrCodeInternal, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/search", nil)
			rec := httptest.NewRecorder()

			HandleError(rec, req, log, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var got types.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantCode, got.Code)

			if tt.wantLogged {
				assert.Contains(t, buf.String(), "dial tcp: refused")
				assert.NotContains(t, rec.Body.String(), "dial tcp")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantErr   bool
		wantField string
	}{
		{"valid", `{"username":"ann","password":"secret"}`, false, ""},
		{"empty body", ``, true, "body"},
		{"malformed", `{"username":`, true, "body"},
		{"missing field", `{"username":"ann"}`, true, "password"},
		{"unknown field", `{"username":"ann","password":"x","otp":"1"}`, true, "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))

			var dst types.LoginRequest
			err := DecodeJSON(req, &dst)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "ann", dst.Username)
				return
			}
			var ve *types.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Errors[0].Field)
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	t.Parallel()

	body := bytes.Repeat([]byte("a"), MaxBodyBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ocr", bytes.NewReader(body))

	var dst types.OCRRequest
	err := DecodeJSON(req, &dst)

	var ve *types.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "too large", ve.Errors[0].Message)
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                   "",
		"Bearer abc.def":     "abc.def",
		"bearer abc":         "abc",
		"Basic dXNlcjpwdw==": "",
		"Bearer":             "",
	}
	for header, want := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		assert.Equal(t, want, BearerToken(req), header)
	}
}
