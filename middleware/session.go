package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie names the cookie that scopes a visitor's cart.
const SessionCookie = "cart_session"

const sessionMaxAge = 60 * 60 * 24 * 30

// CartSession issues an anonymous session id per browser and exposes it to
// handlers under "session_id". The cart is scoped to this id only; there is
// no account linkage.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set("session_id", sid)
		c.Next()
	}
}
