package requestmeta

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCrossOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{name: "no evidence", want: false},
		{name: "same origin header", headers: map[string]string{"Origin": "http://landing.test"}, want: false},
		{name: "foreign origin header", headers: map[string]string{"Origin": "https://evil.test"}, want: true},
		{name: "same referer", headers: map[string]string{"Referer": "http://landing.test/?slide=1"}, want: false},
		{name: "foreign referer", headers: map[string]string{"Referer": "https://evil.test/page"}, want: true},
		{name: "fetch metadata cross site", headers: map[string]string{"Sec-Fetch-Site": "cross-site", "Origin": "http://landing.test"}, want: true},
		{name: "fetch metadata same origin", headers: map[string]string{"Sec-Fetch-Site": "same-origin"}, want: false},
		{name: "opaque origin", headers: map[string]string{"Origin": "null"}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "http://landing.test/carousel/abc/next", nil)
			for key, value := range tc.headers {
				req.Header.Set(key, value)
			}
			if got := CrossOrigin(req); got != tc.want {
				t.Fatalf("CrossOrigin() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRejectCrossOriginOnlyGuardsMutations(t *testing.T) {
	t.Parallel()

	h := RejectCrossOrigin(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "http://landing.test/carousel/abc/next", nil)
	req.Header.Set("Origin", "https://evil.test")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}

	req = httptest.NewRequest(http.MethodGet, "http://landing.test/carousel/stream", nil)
	req.Header.Set("Origin", "https://evil.test")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}
