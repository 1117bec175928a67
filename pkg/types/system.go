package types

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"time"
)

// SystemInfo describes the running build.
type SystemInfo struct {
	Version     string   `json:"version"`
	BuildTime   string   `json:"buildTime"`
	Environment string   `json:"environment"`
	Features    []string `json:"features"`
}

// HealthCheck is a service's health report. Uptime is in seconds.
type HealthCheck struct {
	Status    HealthStatus    `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Services  []ServiceHealth `json:"services"`
	Uptime    int64           `json:"uptime"`
}

// ServiceHealth is the status of one dependency. ResponseTime is in milliseconds.
type ServiceHealth struct {
	Name         string        `json:"name"`
	Status       ServiceStatus `json:"status"`
	ResponseTime int64         `json:"responseTime"`
	LastChecked  time.Time     `json:"lastChecked"`
	Error        *string       `json:"error,omitempty"`
}

// NewHealthCheck derives the overall status from the individual services:
// healthy when every service is up, unhealthy when every service is down,
// degraded otherwise. No services means healthy.
func NewHealthCheck(services []ServiceHealth, uptime time.Duration, now time.Time) HealthCheck {
	if services == nil {
		services = []ServiceHealth{}
	}
	return HealthCheck{
		Status:    OverallStatus(services),
		Timestamp: now,
		Services:  services,
		Uptime:    int64(uptime / time.Second),
	}
}

// OverallStatus aggregates service statuses into a HealthStatus.
func OverallStatus(services []ServiceHealth) HealthStatus {
	up, down := 0, 0
	for _, s := range services {
		switch s.Status {
		case ServiceStatusUp:
			up++
		case ServiceStatusDown:
			down++
		}
	}
	switch {
	case up == len(services):
		return HealthStatusHealthy
	case down == len(services):
		return HealthStatusUnhealthy
	}
	return HealthStatusDegraded
}

// Error codes carried by APIError.
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// APIError is the uniform error body returned by every service.
type APIError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	RequestID *string        `json:"requestId,omitempty"`
}

// NewAPIError creates an APIError stamped with the current time.
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetails returns a copy of e with the given details merged in.
func (e *APIError) WithDetails(details map[string]any) *APIError {
	cp := *e
	cp.Details = make(map[string]any, len(e.Details)+len(details))
	maps.Copy(cp.Details, e.Details)
	maps.Copy(cp.Details, details)
	return &cp
}

// WithRequestID returns a copy of e carrying the request id. An empty id
// leaves the field unset.
func (e *APIError) WithRequestID(id string) *APIError {
	cp := *e
	if id == "" {
		cp.RequestID = nil
	} else {
		cp.RequestID = &id
	}
	return &cp
}

// Status returns the HTTP status matching the error code.
func (e *APIError) Status() int {
	return HTTPStatus(e.Code)
}

// HTTPStatus maps an APIError code to an HTTP status; unknown codes map to 500.
func HTTPStatus(code string) int {
	switch code {
	case ErrCodeBadRequest, ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeAlreadyExists, ErrCodeConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// APIErrorFromError converts any error into an APIError. An *APIError in the
// chain is returned as is; sentinel errors map to their codes; field errors of
// a ValidationError are listed under details["fields"]. Anything else becomes
// an opaque INTERNAL_ERROR so internals never reach the client.
func APIErrorFromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return NewAPIError(ErrCodeValidation, ve.Error()).
			WithDetails(map[string]any{"fields": ve.Errors})
	case errors.Is(err, ErrValidation):
		return NewAPIError(ErrCodeValidation, err.Error())
	case errors.Is(err, ErrUnauthorized):
		return NewAPIError(ErrCodeUnauthorized, "unauthorized")
	case errors.Is(err, ErrForbidden):
		return NewAPIError(ErrCodeForbidden, "forbidden")
	case errors.Is(err, ErrNotFound):
		return NewAPIError(ErrCodeNotFound, "not found")
	case errors.Is(err, ErrAlreadyExists):
		return NewAPIError(ErrCodeAlreadyExists, "already exists")
	case errors.Is(err, ErrConflict):
		return NewAPIError(ErrCodeConflict, "conflict")
	}
	return NewAPIError(ErrCodeInternal, "internal server error")
}

// APIEndpoint documents one HTTP endpoint.
// Responses is keyed by HTTP status code as a string, e.g. "200".
type APIEndpoint struct {
	Method      HTTPMethod     `json:"method" yaml:"method"`
	Path        string         `json:"path" yaml:"path"`
	Description string         `json:"description" yaml:"description"`
	Parameters  []Parameter    `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody any            `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]any `json:"responses" yaml:"responses"`
}

func (e APIEndpoint) Validate() error {
	var errs fieldErrors
	if !e.Method.IsValid() {
		errs.add("method", "invalid value")
	}
	if e.Path == "" || e.Path[0] != '/' {
		errs.add("path", "must start with /")
	}
	if e.Description == "" {
		errs.add("description", "required")
	}
	if len(e.Responses) == 0 {
		errs.add("responses", "at least one required")
	}
	seen := make(map[string]bool, len(e.Parameters))
	for i, p := range e.Parameters {
		if p.Name == "" {
			errs.add(indexPath("parameters", i)+".name", "required")
			continue
		}
		if seen[p.Name] {
			errs.add(indexPath("parameters", i)+".name", "duplicate")
		}
		seen[p.Name] = true
	}
	if e.RequestBody != nil && (e.Method == MethodGet || e.Method == MethodDelete) {
		errs.add("requestBody", "not allowed for "+e.Method.String())
	}
	return errs.err()
}

// Parameter documents one path or query parameter.
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description" yaml:"description"`
	Example     any    `json:"example,omitempty" yaml:"example,omitempty"`
}
