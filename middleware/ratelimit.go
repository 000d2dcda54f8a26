package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// SendLimiter throttles anonymous sends per client IP. There is no account
// to rate-limit on, senders are anonymous by design.
func SendLimiter(interval time.Duration, burst int) gin.HandlerFunc {
	return limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Every(interval), burst), time.Hour
	}, func(c *gin.Context) {
		c.String(http.StatusTooManyRequests, "Slow down")
		c.Abort()
	})
}
