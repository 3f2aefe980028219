package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryInt parses a positive integer query parameter, falling back to
// def on missing or malformed values rather than rejecting the
// request.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
