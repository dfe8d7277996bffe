// Package requestmeta inspects request origin metadata.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// CrossOrigin reports whether a request carries evidence of a cross-site
// origin. Requests without Origin, Referer or Sec-Fetch-Site carry no
// evidence and are not treated as cross-origin.
func CrossOrigin(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(r.Header.Get("Sec-Fetch-Site"))) {
	case "cross-site", "same-site":
		return true
	case "same-origin", "none":
		return false
	}
	host := requestHost(r)
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		return !sameHost(origin, host)
	}
	if referer := strings.TrimSpace(r.Header.Get("Referer")); referer != "" {
		return !sameHost(referer, host)
	}
	return false
}

// RejectCrossOrigin answers cross-origin mutation requests with 403.
func RejectCrossOrigin(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead && CrossOrigin(r) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestHost(r *http.Request) string {
	host := strings.TrimSpace(r.Host)
	if host == "" && r.URL != nil {
		host = r.URL.Host
	}
	return strings.ToLower(host)
}

func sameHost(raw string, host string) bool {
	if host == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return false
	}
	return strings.EqualFold(parsed.Host, host)
}
