// Package urlnorm holds the normalization rule shared by every
// URL-accepting surface: user-submitted addresses usually arrive
// without a scheme, so https is assumed unless one is present.
package urlnorm

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Normalize trims whitespace and supplies a scheme. Empty input stays
// empty; anything already carrying "://" passes through unchanged;
// scheme-relative input ("//host/...") gains "https:"; everything else
// gains "https://".
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ""
	case strings.Contains(raw, "://"):
		return raw
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	default:
		return "https://" + raw
	}
}

// ParseAbsolute normalizes raw and parses it as an absolute http(s)
// URL. The host must look resolvable: a registered name with at least
// one dot, "localhost", or an IP literal. Bare words such as
// "not-a-url" are rejected rather than silently becoming https hosts.
func ParseAbsolute(raw string) (*url.URL, error) {
	u, err := url.Parse(Normalize(raw))
	if err != nil {
		return nil, err
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return nil, errors.New("missing host")
	}
	if !strings.Contains(host, ".") && host != "localhost" && net.ParseIP(host) == nil {
		return nil, fmt.Errorf("host %q is not resolvable", host)
	}
	return u, nil
}
