package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionGuestKey = "guest_id"
	ctxGuestID      = "guest_id"
)

// GuestID 为每个浏览器会话分配游客 ID，需放在 sessions 中间件之后
func GuestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		guestID, _ := session.Get(sessionGuestKey).(string)
		if guestID == "" {
			guestID = uuid.NewString()
			session.Set(sessionGuestKey, guestID)
			_ = session.Save()
		}
		c.Set(ctxGuestID, guestID)
		c.Next()
	}
}

// GetGuestID 当前会话的游客 ID
func GetGuestID(c *gin.Context) string {
	return c.GetString(ctxGuestID)
}

// ViewerID 已登录返回用户 ID，否则返回游客 ID
func ViewerID(c *gin.Context) string {
	if id := GetUserID(c); id != "" {
		return id
	}
	return GetGuestID(c)
}
