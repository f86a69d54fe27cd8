package clientip

import "net/http"

// Middleware stores the client address on the request context. With
// trustForwarded the proxy headers are honoured.
func Middleware(trustForwarded bool) func(http.Handler) http.Handler {
	resolve := GetIP
	if trustForwarded {
		resolve = ForwardedIP
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), resolve(r))))
		})
	}
}

// KeyFromContext returns the address stored by Middleware. It matches
// ratelimiter.KeyFunc.
func KeyFromContext(r *http.Request) string {
	return FromContext(r.Context())
}
