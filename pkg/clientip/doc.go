// Package clientip resolves the address of the client behind a request.
//
// GetIP uses the TCP peer only. ForwardedIP also honours X-Forwarded-For and
// X-Real-IP and must only be used when the daemon sits behind a proxy that
// sets them. Middleware stores the resolved address on the request context,
// where FromContext and LoggerExtractor read it.
package clientip
