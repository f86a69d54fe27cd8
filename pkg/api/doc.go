// Package api exposes the sanitizer over HTTP for the local daemon.
//
// Routes:
//
//	POST /v1/convert/{mode}    convert the request body (text/plain or JSON)
//	POST /v1/clipboard/{mode}  convert the system clipboard in place
//	GET  /v1/mappings/{mode}   list the plain or html table
//	GET  /v1/preferences       current preferences
//	PUT  /v1/preferences       validate and save preferences
//	GET  /health/live          liveness check
//	GET  /health/ready         readiness check
//
// A text/plain body is decoded from its charset parameter (windows-1252,
// latin1, utf-16le and the rest of the WHATWG labels) before conversion.
// Errors are rendered as {"error": "..."} with 400 for an unknown mode or
// charset, 413 for an oversized body, 422 for invalid preferences and 500
// otherwise. With WithRateLimit the /v1 routes answer 429 once a client
// address runs out of tokens.
//
// Usage:
//
//	a := api.New(store, conv,
//	    api.WithLogger(log),
//	    api.WithMaxBodyBytes(cfg.MaxBodyBytes),
//	    api.WithReadinessChecks(redis.Healthcheck(client)),
//	)
//	srv.Run(ctx, a.Handler())
package api
