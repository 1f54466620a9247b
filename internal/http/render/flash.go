package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/flash"
	"tokokue.com/admin/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	codec.Set(c, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusSeeOther, location)
}
