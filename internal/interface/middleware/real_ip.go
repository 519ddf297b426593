package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyRealIP is where RealIP stores the resolved client address.
const ContextKeyRealIP = "real_ip"

// proxyHeaders are consulted in order; only the left-most entry of each is used.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// RealIP resolves the client address from proxy headers and falls back to
// gin's ClientIP. Rate limiting and access logs key on the stored value.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyRealIP, resolveIP(c))
		c.Next()
	}
}

func resolveIP(c *gin.Context) string {
	for _, h := range proxyHeaders {
		v := c.GetHeader(h)
		if v == "" {
			continue
		}
		first, _, _ := strings.Cut(v, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	return c.ClientIP()
}
