package clientip

import (
	"net"
	"net/http"
	"strings"
)

// GetIP returns the peer address of r, or "" when it cannot be parsed.
func GetIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

// ForwardedIP returns the first valid address in X-Forwarded-For, then
// X-Real-IP, then the peer address.
func ForwardedIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		for ip := range strings.SplitSeq(fwd, ",") {
			if parsed := normalize(ip); parsed != "" {
				return parsed
			}
		}
	}
	if parsed := normalize(r.Header.Get("X-Real-IP")); parsed != "" {
		return parsed
	}
	return GetIP(r)
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
