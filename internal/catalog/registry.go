// Package catalog documents the HTTP endpoints that exchange the registry's
// payloads and renders that documentation as JSON or YAML.
package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/unidict-shared/pkg/types"
)

type routeKey struct {
	method types.HTTPMethod
	path   string
}

// Registry holds endpoint descriptors keyed by method and path.
type Registry struct {
	endpoints map[routeKey]types.APIEndpoint
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{endpoints: make(map[routeKey]types.APIEndpoint)}
}

// Add registers e. It fails with types.ErrValidation when e is malformed and
// with types.ErrAlreadyExists when the method and path are taken.
func (r *Registry) Add(e types.APIEndpoint) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("catalog: %s %s: %w", e.Method, e.Path, err)
	}
	if err := checkPathParams(e); err != nil {
		return fmt.Errorf("catalog: %s %s: %w", e.Method, e.Path, err)
	}
	k := routeKey{method: e.Method, path: e.Path}
	if _, ok := r.endpoints[k]; ok {
		return fmt.Errorf("catalog: %s %s: %w", e.Method, e.Path, types.ErrAlreadyExists)
	}
	r.endpoints[k] = e
	return nil
}

// Lookup returns the endpoint registered for method and path.
func (r *Registry) Lookup(method types.HTTPMethod, path string) (types.APIEndpoint, bool) {
	e, ok := r.endpoints[routeKey{method: method, path: path}]
	return e, ok
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int { return len(r.endpoints) }

// Endpoints returns all endpoints sorted by path, then by method in
// GET, POST, PUT, PATCH, DELETE order.
func (r *Registry) Endpoints() []types.APIEndpoint {
	out := make([]types.APIEndpoint, 0, len(r.endpoints))
	for _, e := range r.endpoints {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b types.APIEndpoint) int {
		return cmp.Or(
			strings.Compare(a.Path, b.Path),
			cmp.Compare(methodOrder(a.Method), methodOrder(b.Method)),
		)
	})
	return out
}

func methodOrder(m types.HTTPMethod) int {
	switch m {
	case types.MethodGet:
		return 0
	case types.MethodPost:
		return 1
	case types.MethodPut:
		return 2
	case types.MethodPatch:
		return 3
	}
	return 4
}

// checkPathParams requires every {name} segment of the path to be declared
// as a required parameter.
func checkPathParams(e types.APIEndpoint) error {
	for _, seg := range strings.Split(e.Path, "/") {
		name, ok := strings.CutPrefix(seg, "{")
		if !ok {
			continue
		}
		name = strings.TrimSuffix(name, "}")
		i := slices.IndexFunc(e.Parameters, func(p types.Parameter) bool { return p.Name == name })
		if i < 0 {
			return types.NewValidationError("parameters", fmt.Sprintf("path parameter %q not declared", name))
		}
		if !e.Parameters[i].Required {
			return types.NewValidationError(fmt.Sprintf("parameters[%d].required", i), "path parameters are required")
		}
	}
	return nil
}
