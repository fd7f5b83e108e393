package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func allowedRequests(rl *RateLimiter, reqs []*http.Request) int {
	allowed := 0
	for _, r := range reqs {
		if rl.Allow(rl.ClientIP(r)) {
			allowed++
		}
	}
	return allowed
}

func TestRateLimiterIgnoresSourcePort(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	var reqs []*http.Request
	for port := 40000; port < 40010; port++ {
		r := httptest.NewRequest(http.MethodPost, "/insights", nil)
		r.RemoteAddr = fmt.Sprintf("203.0.113.7:%d", port)
		reqs = append(reqs, r)
	}

	assert.Equal(t, 2, allowedRequests(rl, reqs))
	assert.Equal(t, "203.0.113.7", rl.ClientIP(reqs[0]))
}

func TestRateLimiterIgnoresForwardedForByDefault(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	var reqs []*http.Request
	for i := 0; i < 10; i++ {
		r := httptest.NewRequest(http.MethodPost, "/insights", nil)
		r.RemoteAddr = "203.0.113.7:40000"
		r.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		reqs = append(reqs, r)
	}

	assert.Equal(t, 2, allowedRequests(rl, reqs))
}

func TestRateLimiterBehindProxyUsesFirstHop(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	rl.TrustProxy = true
	defer rl.Stop()

	r := httptest.NewRequest(http.MethodPost, "/insights", nil)
	r.RemoteAddr = "10.0.0.1:5000"
	r.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.1")
	assert.Equal(t, "198.51.100.9", rl.ClientIP(r))

	r.Header.Del("X-Forwarded-For")
	assert.Equal(t, "10.0.0.1", rl.ClientIP(r))
}

func TestInsightsEndpointLimitsSameHostAcrossConnections(t *testing.T) {
	s := newTestServer(t, stubGenerator{text: "ok"})

	codes := []int{}
	for port := 40000; port < 40004; port++ {
		req := httptest.NewRequest(http.MethodPost, "/insights", nil)
		req.RemoteAddr = fmt.Sprintf("203.0.113.7:%d", port)
		rec := httptest.NewRecorder()
		s.handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusAccepted, http.StatusAccepted, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}
