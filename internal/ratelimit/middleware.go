package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/pkg/auth"
	"github.com/GlebRadaev/gridbill/pkg/utils"
)

const (
	HeaderLimit      = "X-RateLimit-Limit"
	HeaderRemaining  = "X-RateLimit-Remaining"
	HeaderReset      = "X-RateLimit-Reset"
	HeaderRetryAfter = "Retry-After"
)

// Identity is the authenticated actor when the request carries one, the
// client address otherwise. Run chi's RealIP before this to honour proxies.
func Identity(r *http.Request) string {
	if actor, ok := auth.ActorFromContext(r.Context()); ok {
		return actor.Key()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func Middleware(l *Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := Identity(r)
			d, err := l.Allow(identity, r.URL.Path)

			h := w.Header()
			h.Set(HeaderLimit, strconv.Itoa(d.Limit))
			h.Set(HeaderRemaining, strconv.Itoa(d.Remaining))
			h.Set(HeaderReset, strconv.FormatInt(d.ResetAt.Unix(), 10))

			if err != nil {
				wait := math.Ceil(d.ResetAt.Sub(l.now()).Seconds())
				if wait < 1 {
					wait = 1
				}
				h.Set(HeaderRetryAfter, strconv.Itoa(int(wait)))
				zap.L().Debug("rate limit exceeded",
					zap.String("identity", identity),
					zap.String("class", d.Class),
					zap.String("path", r.URL.Path),
				)
				utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
