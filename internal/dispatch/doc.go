// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dispatch turns an inbound request into exactly one response.
//
// A [Dispatcher] owns a route table built on [router.Tree]. For every request
// it:
//   - lets paths under [WebhookPrefix] through untouched by CORS;
//   - answers CORS preflights (OPTIONS) on every other path with 204;
//   - resolves the route and calls its [HandlerFunc] with a [Context] that
//     carries the path variables and the route's [auth.Mode];
//   - converts a [*Failure] into a JSON error with its own status, and any
//     other error or panic into a generic 500 whose detail is only logged.
//
// Handlers never write to the http.ResponseWriter themselves: they return a
// [Response] and the dispatcher writes it, so the CORS decoration and error
// boundary apply to every path.
package dispatch
