package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	rd "github.com/redis/go-redis/v9"
)

// luaRateLimit is an atomic sliding-window counter: drop entries older than
// the window, count the rest, admit and record the request if under the
// limit. Returns -1 when the caller is over the limit.
const luaRateLimit = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local windowStart = tonumber(ARGV[2])
local windowSec = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '0', windowStart)

local count = redis.call('ZCARD', key)

if count < tonumber(ARGV[5]) then
  redis.call('ZADD', key, now, member)
  redis.call('EXPIRE', key, windowSec)
  return count + 1
else
  return -1
end
`

// RateLimit limits requests per authenticated member within a sliding
// window; unauthenticated requests fall back to the remote address. Redis
// errors fail open: throttling is protective, never load-bearing.
func RateLimit(rdb *rd.Client, limit int, window time.Duration) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var key string
			if memberID, ok := MemberID(r.Context()); ok {
				key = fmt.Sprintf("coopmart:rate:member:%d", memberID)
			} else {
				host, _, err := net.SplitHostPort(r.RemoteAddr)
				if err != nil {
					host = r.RemoteAddr
				}
				key = fmt.Sprintf("coopmart:rate:ip:%s", host)
			}

			now := time.Now().Unix()
			windowSec := int64(window.Seconds())
			member := fmt.Sprintf("%d-%d", now, time.Now().UnixNano())

			res, err := rdb.Eval(r.Context(), luaRateLimit, []string{key},
				now, now-windowSec, windowSec, member, limit).Int()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			if res < 0 {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
