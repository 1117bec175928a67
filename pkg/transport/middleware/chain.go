// Package middleware provides the http.Handler wrappers shared by services:
// request ids, panic recovery, access logging, CORS and bearer
// authentication.
package middleware

import (
	"log/slog"
	"net/http"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(handler) is mw1(mw2(handler)): mw1 runs first.
// Nil entries are skipped.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}

// StandardOptions configures Standard. A nil CORS or Validator leaves that
// layer out.
type StandardOptions struct {
	Logger    *slog.Logger
	CORS      *CORSOptions
	Validator TokenValidator
}

// Standard is the stack every service mounts in front of its routes,
// outermost first: RequestID, Recovery, Logger, CORS, Auth.
func Standard(opts StandardOptions) Middleware {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var cors, auth Middleware
	if opts.CORS != nil {
		cors = CORS(*opts.CORS)
	}
	if opts.Validator != nil {
		auth = Auth(opts.Validator)
	}
	return Chain(RequestID(), Recovery(logger), Logger(logger), cors, auth)
}

// Wrap applies mws to h; Wrap(h, mw1, mw2) is Chain(mw1, mw2)(h).
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	return Chain(mws...)(h)
}
