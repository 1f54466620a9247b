package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/middleware"
	"tokokue.com/admin/internal/http/render"
	"tokokue.com/admin/internal/shared/apperr"
	"tokokue.com/admin/pkg/view"
)

// Save pushes everything to the remote endpoint. The flash says whether the
// server took it or it only landed in the local mirror.
func (h *AdminHandler) Save(c *gin.Context) {
	res, err := h.Site.SaveAll(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"remote": res.Remote, "message": res.Message})
		return
	}
	kind := view.FlashSuccess
	if !res.Remote {
		kind = view.FlashWarning
	}
	render.RedirectWithFlash(c, h.Flash, adminPath, kind, res.Message)
}

func (h *AdminHandler) Payload(c *gin.Context) {
	p, err := h.Site.BuildPayload(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, p)
}
