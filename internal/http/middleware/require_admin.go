package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/admincookie"
	"tokokue.com/admin/internal/http/flash"
	"tokokue.com/admin/internal/modules/adminauth"
	"tokokue.com/admin/internal/shared/apperr"
	"tokokue.com/admin/pkg/view"
)

// RequireAdmin:
// - no admin password configured: 403 for everyone (admin disabled)
// - not logged in: JSON 401, SSR redirect to /login with a flash
func RequireAdmin(gate *adminauth.Gate, session *admincookie.Codec, flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Enabled() {
			Fail(c, apperr.ForbiddenErr("Admin access is disabled."))
			return
		}

		if session.Valid(c) {
			c.Next()
			return
		}

		if WantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authentication required",
				"request_id": GetRequestID(c),
			})
			return
		}

		loc := "/login"
		if c.Request.Method == http.MethodGet {
			loc += "?return_to=" + url.QueryEscape(c.Request.URL.RequestURI())
		}
		flashCodec.Set(c, view.Flash{Kind: view.FlashWarning, Message: "Enter the admin password to continue."})
		c.Redirect(http.StatusFound, loc)
		c.Abort()
	}
}
