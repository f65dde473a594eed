package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/api/middleware"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/response"
)

// MustGetProfileID extracts the authenticated profile id from the context.
// Writes a 401 and returns false if the auth middleware did not inject it;
// the caller should return immediately on ok=false.
func MustGetProfileID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxProfileID)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the authenticated role from the context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxRole)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}
