package handlers

import (
	"github.com/gin-gonic/gin"
)

// currentUsername reads the subject set by the auth middleware.
func currentUsername(c *gin.Context) (string, bool) {
	v, ok := c.Get("username")
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
