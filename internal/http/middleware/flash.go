package middleware

import (
	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/flash"
	"tokokue.com/admin/pkg/view"
)

const CtxKeyFlash = "flash"

// FlashMiddleware moves a pending flash message from its cookie into the
// request context. The cookie is single use.
func FlashMiddleware(codec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if f := codec.Take(c); f != nil {
			c.Set(CtxKeyFlash, f)
		}
		c.Next()
	}
}

func GetFlash(c *gin.Context) *view.Flash {
	if v, ok := c.Get(CtxKeyFlash); ok {
		if f, ok := v.(*view.Flash); ok {
			return f
		}
	}
	return nil
}
