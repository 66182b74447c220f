package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/tinysprout/garbha/backend/pkg/utils"
)

// profileID resolves the caller's profile scope: an explicit header when
// the client has one, otherwise a fingerprint-derived anonymous ID.
func profileID(c *gin.Context) string {
	if id := c.GetHeader("X-Profile-ID"); id != "" {
		return id
	}

	userAgent := c.GetHeader("User-Agent")
	clientIP := c.ClientIP()

	return utils.GenerateProfileID(clientIP + userAgent)
}
