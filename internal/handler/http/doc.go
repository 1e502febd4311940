// Package http implements the HTTP transport layer of the edge dispatcher.
//
// It wires the route table into a [dispatch.Dispatcher] and mounts it behind
// chi together with the operational endpoints (/healthz, /version, /metrics).
// Request tracing, access logging and the per-request deadline are applied
// as middleware before a request reaches the dispatcher.
package http
