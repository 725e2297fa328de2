// Package requestmeta resolves request scheme and origin facts used by
// cookie and same-origin checks.
package requestmeta

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// X-Forwarded-Proto is only honoured when TrustForwardedProto is set, which
// should be the case only behind a proxy that overwrites the header.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return Scheme(r, policy) == "https"
}

// Scheme returns "http" or "https" for r under policy.
func Scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		switch forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded {
		case "http", "https":
			return forwarded
		}
	}
	if r.URL != nil {
		switch scheme := strings.ToLower(r.URL.Scheme); scheme {
		case "http", "https":
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// HasSameOriginProofWithPolicy reports whether the Origin header, or the
// Referer when Origin is absent, names the same scheme, host and port as r.
func HasSameOriginProofWithPolicy(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	self := origin{scheme: Scheme(r, policy)}
	self.host, self.port = splitHost(r.Host)
	if self.host == "" && r.URL != nil {
		self.host, self.port = splitHost(r.URL.Host)
	}
	if self.host == "" {
		return false
	}
	self = self.withDefaultPort()

	claimed := strings.TrimSpace(r.Header.Get("Origin"))
	if claimed == "" {
		claimed = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if claimed == "" {
		return false
	}
	parsed, err := url.Parse(claimed)
	if err != nil || parsed.Scheme == "" {
		return false
	}
	other := origin{
		scheme: strings.ToLower(parsed.Scheme),
		host:   strings.ToLower(parsed.Hostname()),
		port:   parsed.Port(),
	}.withDefaultPort()
	return other.port != "" && other == self
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (o origin) withDefaultPort() origin {
	if o.port != "" {
		return o
	}
	switch o.scheme {
	case "https":
		o.port = "443"
	case "http":
		o.port = "80"
	}
	return o
}

func splitHost(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}
	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return strings.ToLower(strings.Trim(raw, "[]")), ""
	}
	return strings.ToLower(host), port
}
