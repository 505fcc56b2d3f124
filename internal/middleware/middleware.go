// Package middleware holds the echo middleware stack and the global error
// handler.
//
// Order matters: the router installs rate limiting, CORS, secure headers,
// request id, tracing, the context enhancer, request logging, metrics and
// finally panic recovery.
package middleware
