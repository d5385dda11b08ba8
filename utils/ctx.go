package utils

import (
	"strconv"

	"backend/entity"

	"github.com/gin-gonic/gin"
)

// FormatID renders a numeric user id the way it appears in token claims.
func FormatID(id uint) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(id), 10)
}

// CurrentIdentity rebuilds the caller's identity from what the auth middleware
// stored on the context. Returns nil when the request is unauthenticated.
func CurrentIdentity(c *gin.Context) *entity.Identity {
	v, ok := c.Get("identity")
	if !ok {
		return nil
	}
	id, ok := v.(*entity.Identity)
	if !ok {
		return nil
	}
	return id
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
