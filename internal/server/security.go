package server

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ShopBot_Go/internal/logger"
	"github.com/osse101/ShopBot_Go/internal/metrics"
)

// AuthMiddleware requires the shared API key on every non-public path. The
// key is accepted in X-API-Key or as an Authorization bearer token.
func AuthMiddleware(apiKey string, ips *ClientIPResolver, tracker *ActivityTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := providedAPIKey(r)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				ip := ips.Resolve(r)
				failures := tracker.RecordFailedAuth(ip)
				metrics.HTTPRequestsRejected.WithLabelValues(metrics.ReasonUnauthorized).Inc()

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", provided != "",
					"ip", ip,
					"failures", failures)

				writeError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func providedAPIKey(r *http.Request) string {
	if key := r.Header.Get(HeaderAPIKey); key != "" {
		return key
	}
	if token, ok := strings.CutPrefix(r.Header.Get(HeaderAuthorization), BearerPrefix); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// writeError answers with the same {"error": ...} body the handlers use
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware refuses clients that exceed RateLimitPerWindow
// requests inside their current window.
func RateLimitMiddleware(ips *ClientIPResolver, tracker *ActivityTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ips.Resolve(r)
			if ok, retryAfter := tracker.Allow(ip); !ok {
				metrics.HTTPRequestsRejected.WithLabelValues(metrics.ReasonRateLimited).Inc()
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				writeError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type ipActivity struct {
	since      time.Time
	requests   int
	failedAuth int
}

// ActivityTracker counts requests and auth failures per client IP. Each IP
// gets a fixed window starting at its first request; the entry expires with
// the window, and the least recently seen IPs are evicted past MaxTrackedIPs.
type ActivityTracker struct {
	mu      sync.Mutex
	entries *expirable.LRU[string, *ipActivity]
	now     func() time.Time
}

func NewActivityTracker() *ActivityTracker {
	return &ActivityTracker{
		entries: expirable.NewLRU[string, *ipActivity](MaxTrackedIPs, nil, DetectorWindow),
		now:     time.Now,
	}
}

// activity returns the live window for ip. Caller holds the mutex.
func (t *ActivityTracker) activity(ip string) *ipActivity {
	now := t.now()
	if a, ok := t.entries.Get(ip); ok && now.Sub(a.since) < DetectorWindow {
		return a
	}
	a := &ipActivity{since: now}
	t.entries.Add(ip, a)
	return a
}

// RecordFailedAuth counts a failed authentication and returns the number of
// failures from ip in the current window.
func (t *ActivityTracker) RecordFailedAuth(ip string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	a := t.activity(ip)
	a.failedAuth++
	if a.failedAuth == FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", a.failedAuth)
	}
	return a.failedAuth
}

// Allow counts a request from ip. When the limit is exceeded it returns
// false and how long until the window resets.
func (t *ActivityTracker) Allow(ip string) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	a := t.activity(ip)
	a.requests++
	if a.requests <= RateLimitPerWindow {
		return true, 0
	}
	if a.requests%RateLimitLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count", a.requests, "window", DetectorWindow)
	}
	return false, DetectorWindow - t.now().Sub(a.since)
}

// ClientIPResolver finds the client address of a request. X-Forwarded-For
// is only honoured when the direct peer is a trusted proxy, and then the
// rightmost hop that is not itself trusted wins.
type ClientIPResolver struct {
	trusted []netip.Prefix
}

// NewClientIPResolver accepts single addresses and CIDR ranges. Entries that
// parse as neither are logged and skipped.
func NewClientIPResolver(trustedProxies []string) *ClientIPResolver {
	res := &ClientIPResolver{}
	for _, entry := range trustedProxies {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			res.trusted = append(res.trusted, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			res.trusted = append(res.trusted, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
			continue
		}
		slog.Warn(LogMsgInvalidTrustedProxy, "entry", entry)
	}
	return res
}

func (c *ClientIPResolver) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range c.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// Resolve returns the client IP for r
func (c *ClientIPResolver) Resolve(r *http.Request) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}
	if !c.isTrusted(remote) {
		return remote
	}

	hops := strings.Split(r.Header.Get(HeaderForwardedFor), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !c.isTrusted(hop) {
			return hop
		}
	}
	return remote
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
