// Package http implements the HTTP transport layer of the events REST
// server.
//
// It exposes route wiring, request handlers, and middleware. Every resource
// route is a read-only GET mounted under the configured namespace; failures
// are reported with the uniform error envelope
//
//	{"code": "...", "message": "...", "data": {"status": 404}}
//
// Cross-cutting concerns such as request tracing, access logging, metrics,
// response compression and request timeouts are handled in this package
// before requests are delegated to the service layer.
package http
