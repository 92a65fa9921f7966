// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/minshop/storefront-api/internal/utils"
)

const SessionCookieName = "sid"

// Session binds every request to an anonymous session. A valid signed cookie
// is reused; anything else (absent, expired, tampered) gets a freshly minted
// session so cart and wishlist snapshots always have a key to live under.
func Session(ttlHours, cookieMaxAge int, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string

		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			if sid, err := utils.ValidateSessionToken(cookie); err == nil {
				sessionID = sid
			}
		}

		if sessionID == "" {
			sessionID = utils.NewSessionID()
			if token, err := utils.GenerateSessionToken(sessionID, ttlHours); err == nil {
				c.SetCookie(SessionCookieName, token, cookieMaxAge, "/", "", secureCookie, true)
			}
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}
