// Package client extracts caller metadata (IP, User-Agent, browser family)
// into the request context for logging.
package client

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/mssola/useragent"

	"paynet/pkg/requestcontext"
)

// MaxXFFHeaderLength bounds X-Forwarded-For to prevent header injection.
const MaxXFFHeaderLength = 500

// Metadata resolves client IP and browser, trusting forwarding headers only
// from the configured proxy prefixes.
type Metadata struct {
	trustedProxies []netip.Prefix
}

// NewMetadata returns metadata middleware. With no prefixes, forwarding
// headers are never trusted.
func NewMetadata(trustedProxies []netip.Prefix) *Metadata {
	return &Metadata{trustedProxies: trustedProxies}
}

func (m *Metadata) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.Header.Get("User-Agent")
		ctx := requestcontext.WithClientMetadata(r.Context(), m.clientIP(r), ua)
		ctx = requestcontext.WithBrowser(ctx, Browser(ua))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Browser summarizes a User-Agent as "name/major (os)", or "" for empty input.
func Browser(userAgent string) string {
	if userAgent == "" {
		return ""
	}
	ua := useragent.New(userAgent)
	name, version := ua.Browser()
	if name == "" {
		name = "unknown"
	}
	if major, _, _ := strings.Cut(version, "."); major != "" {
		name += "/" + major
	}
	if os := ua.OS(); os != "" {
		name += " (" + os + ")"
	}
	return name
}

func (m *Metadata) clientIP(r *http.Request) string {
	remote := remoteIP(r.RemoteAddr)
	if remote == "" {
		return "unknown"
	}
	if !m.trusted(remote) {
		return remote
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && len(xff) <= MaxXFFHeaderLength {
		first, _, _ := strings.Cut(xff, ",")
		first = strings.TrimSpace(first)
		if _, err := netip.ParseAddr(first); err == nil {
			return first
		}
		return remote
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		if _, err := netip.ParseAddr(xri); err == nil {
			return xri
		}
	}
	return remote
}

func (m *Metadata) trusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	for _, p := range m.trustedProxies {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteIP(remoteAddr string) string {
	if remoteAddr == "" {
		return ""
	}
	if ap, err := netip.ParseAddrPort(remoteAddr); err == nil {
		return ap.Addr().String()
	}
	return strings.Trim(remoteAddr, "[]")
}
