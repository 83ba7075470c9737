package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP identifies the caller for rate limiting and request logs. The
// first parseable X-Forwarded-For hop wins, then X-Real-IP, then the socket
// peer. Malformed header values are skipped.
func clientIP(c *gin.Context) string {
	for _, hop := range strings.Split(c.GetHeader("X-Forwarded-For"), ",") {
		if ip := parseIP(hop); ip != "" {
			return ip
		}
	}
	if ip := parseIP(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}

	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

func parseIP(raw string) string {
	ip := net.ParseIP(strings.TrimSpace(raw))
	if ip == nil {
		return ""
	}
	return ip.String()
}
