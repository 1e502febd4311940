// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-commerce-edge/internal/auth"
	"github.com/MKhiriev/go-commerce-edge/internal/logger"
	"github.com/MKhiriev/go-commerce-edge/internal/router"
	"github.com/MKhiriev/go-commerce-edge/internal/utils"
	"github.com/rs/zerolog"
)

// HandlerFunc serves one matched route. It returns either a Response or an
// error; a [*Failure] selects the status and message the client sees.
type HandlerFunc func(r *http.Request, c *Context) (*Response, error)

// Observer is notified once per dispatched request. Pattern is empty when no
// route matched and "OPTIONS" for preflights.
type Observer interface {
	ObserveRequest(method, pattern string, status int, elapsed time.Duration)
}

// Options configure a Dispatcher.
type Options struct {
	// AllowedOrigin is sent as Access-Control-Allow-Origin. Empty means "*".
	AllowedOrigin string

	// ServiceCredential is the Authorization value of the service identity,
	// e.g. "Bearer <token>".
	ServiceCredential string

	// Observer is optional.
	Observer Observer
}

type route struct {
	pattern string
	mode    auth.Mode
	handler HandlerFunc
}

// Dispatcher is an http.Handler that routes requests to HandlerFuncs. Routes
// must all be registered before the first request is served.
type Dispatcher struct {
	routes *router.Tree[route]

	allowedOrigin     string
	serviceCredential string
	observer          Observer

	logger *logger.Logger
}

// New returns a Dispatcher without routes.
func New(opts Options, logger *logger.Logger) *Dispatcher {
	origin := opts.AllowedOrigin
	if origin == "" {
		origin = "*"
	}

	return &Dispatcher{
		routes:            router.New[route](),
		allowedOrigin:     origin,
		serviceCredential: opts.ServiceCredential,
		observer:          opts.Observer,
		logger:            logger,
	}
}

// Handle registers h for method and pattern with the given auth mode.
// Registering the same method and pattern twice keeps the last handler.
func (d *Dispatcher) Handle(method, pattern string, mode auth.Mode, h HandlerFunc) {
	d.routes.Add(method, pattern, route{pattern: pattern, mode: mode, handler: h})
}

// Get registers h for GET requests.
func (d *Dispatcher) Get(pattern string, mode auth.Mode, h HandlerFunc) {
	d.Handle(http.MethodGet, pattern, mode, h)
}

// Post registers h for POST requests.
func (d *Dispatcher) Post(pattern string, mode auth.Mode, h HandlerFunc) {
	d.Handle(http.MethodPost, pattern, mode, h)
}

// Delete registers h for DELETE requests.
func (d *Dispatcher) Delete(pattern string, mode auth.Mode, h HandlerFunc) {
	d.Handle(http.MethodDelete, pattern, mode, h)
}

// ServeHTTP implements http.Handler.
//
// Paths are matched in their escaped form so that an encoded '/' inside a
// variable does not split it. Captured variables are decoded afterwards.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status, pattern := d.serve(w, r)

	if d.observer != nil {
		d.observer.ObserveRequest(r.Method, pattern, status, time.Since(start))
	}
}

func (d *Dispatcher) serve(w http.ResponseWriter, r *http.Request) (int, string) {
	path := r.URL.EscapedPath()
	exempt := isWebhook(path)

	if !exempt && r.Method == http.MethodOptions {
		d.decorate(w.Header())
		w.WriteHeader(http.StatusNoContent)
		return http.StatusNoContent, http.MethodOptions
	}

	match, ok := d.routes.Match(r.Method, path)
	if !ok {
		return d.writeError(w, r, exempt, Fail(http.StatusNotFound, msgNotFound)), ""
	}

	rt := match.Route
	c := &Context{
		Params:            unescapeParams(match.Params),
		Pattern:           rt.pattern,
		Mode:              rt.mode,
		serviceCredential: d.serviceCredential,
	}

	resp, err := invoke(rt.handler, r, c)
	if err == nil && resp == nil {
		err = errNoResponse
	}
	if err != nil {
		return d.writeError(w, r, exempt, err), rt.pattern
	}

	return d.writeResponse(w, r, exempt, resp), rt.pattern
}

// unescapeParams percent-decodes each captured value. A value that is not
// valid escaping is kept as matched.
func unescapeParams(ps router.Params) router.Params {
	if len(ps) == 0 {
		return ps
	}
	out := make(router.Params, len(ps))
	for i, p := range ps {
		if v, err := url.PathUnescape(p.Value); err == nil {
			p.Value = v
		}
		out[i] = p
	}
	return out
}

func invoke(h HandlerFunc, r *http.Request, c *Context) (resp *Response, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			resp, err = nil, fmt.Errorf("%w: %v", errHandlerPanic, rec)
		}
	}()

	return h(r, c)
}

func (d *Dispatcher) writeResponse(w http.ResponseWriter, r *http.Request, exempt bool, resp *Response) int {
	dst := w.Header()
	for k, vv := range resp.Header {
		for _, v := range vv {
			dst.Add(k, v)
		}
	}
	if !exempt {
		d.decorate(dst)
	}

	status := resp.status()
	w.WriteHeader(status)
	if len(resp.Body) > 0 {
		if _, err := w.Write(resp.Body); err != nil {
			d.log(r).Warn().Err(err).Msg("error writing response body")
		}
	}

	return status
}

// writeError is the error boundary: only a Failure's message reaches the
// client, everything else becomes a generic 500.
func (d *Dispatcher) writeError(w http.ResponseWriter, r *http.Request, exempt bool, err error) int {
	status, message := http.StatusInternalServerError, msgInternalServerError

	var failure *Failure
	if errors.As(err, &failure) {
		status, message = failure.Status, failure.Message
		d.log(r).Debug().Int("status", status).Str("path", r.URL.Path).Msg(message)
	} else {
		d.log(r).Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("unhandled error while dispatching request")
	}

	if !exempt {
		d.decorate(w.Header())
	}
	if _, werr := utils.WriteError(w, message, status); werr != nil {
		d.log(r).Warn().Err(werr).Msg("error writing error response")
	}

	return status
}

// log prefers the request-scoped logger set by the trace-id middleware.
func (d *Dispatcher) log(r *http.Request) *logger.Logger {
	l := logger.FromRequest(r)
	if l.GetLevel() == zerolog.Disabled && d.logger != nil {
		return d.logger
	}
	return l
}
