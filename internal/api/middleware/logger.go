package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs each request's method, path, status and latency, in the
// bracketed-tag style used elsewhere in this codebase (e.g. internal/weather).
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		log.Printf("[API] %s %s -> %d (%s)", c.Request.Method, path, c.Writer.Status(), latency)
	}
}
