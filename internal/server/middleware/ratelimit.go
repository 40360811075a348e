package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter ограничивает число запросов с одного адреса за окно времени.
// Счетчик адреса сбрасывается, когда с момента последнего пополнения прошло window.
type RateLimiter struct {
	buckets map[string]*bucket
	logger  *slog.Logger
	now     func() time.Time
	rate    int
	window  time.Duration
	mu      sync.Mutex
}

// bucket хранит остаток запросов для одного адреса
type bucket struct {
	lastRefill time.Time
	tokens     int
}

// NewRateLimiter создает rate limiter.
// rate - максимальное количество запросов за window.
// Неактивные адреса удаляются в фоне, пока не отменен ctx.
func NewRateLimiter(ctx context.Context, rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		logger:  logger,
		now:     time.Now,
		rate:    rate,
		window:  window,
	}

	go rl.cleanup(ctx)

	return rl
}

// cleanup периодически удаляет неактивные buckets
func (rl *RateLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupOldBuckets()
		case <-ctx.Done():
			return
		}
	}
}

// cleanupOldBuckets удаляет buckets, которые не использовались дольше двух окон
func (rl *RateLimiter) cleanupOldBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.lastRefill) > rl.window*2 {
			delete(rl.buckets, key)
		}
	}
}

// Allow проверяет, разрешен ли еще один запрос для key
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok || now.Sub(b.lastRefill) >= rl.window {
		b = &bucket{tokens: rl.rate, lastRefill: now}
		rl.buckets[key] = b
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// Handler возвращает middleware, отвечающий 429 при превышении лимита
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientAddr(r)
		if !rl.Allow(key) {
			rl.logger.Warn("Rate limit exceeded",
				"client", key,
				"method", r.Method,
				"route", routePattern(r),
			)
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			writeError(w, "Rate limit exceeded, please try again later", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientAddr возвращает адрес клиента без порта.
// Заголовки прокси не учитываются: API слушает локальный адрес.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
