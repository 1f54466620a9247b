package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/middleware"
	"tokokue.com/admin/internal/shared/apperr"
	"tokokue.com/admin/pkg/view"
)

type slideInput struct {
	Src string `form:"-" json:"src"`
}

func (h *AdminHandler) ListSlides(c *gin.Context) {
	list, err := h.Catalog.Slides(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *AdminHandler) AddSlide(c *gin.Context) {
	var in slideInput
	if c.ContentType() == "application/json" {
		if err := c.ShouldBindJSON(&in); err != nil {
			fail(c, h.Flash, apperr.InvalidErr("Invalid request body.", nil))
			return
		}
	}
	src, err := uploadedImage(c, "image", h.UploadLimit, in.Src)
	if err != nil {
		fail(c, h.Flash, err)
		return
	}

	s, err := h.Catalog.AddSlide(c.Request.Context(), src)
	if err != nil {
		fail(c, h.Flash, err)
		return
	}
	done(c, h.Flash, view.FlashSuccess, "Slide added.", s)
}

func (h *AdminHandler) MoveSlideUp(c *gin.Context) {
	h.moveSlide(c, h.Catalog.MoveSlideUpByID)
}

func (h *AdminHandler) MoveSlideDown(c *gin.Context) {
	h.moveSlide(c, h.Catalog.MoveSlideDownByID)
}

func (h *AdminHandler) moveSlide(c *gin.Context, move func(context.Context, string) error) {
	ctx := c.Request.Context()

	if err := move(ctx, c.Param("id")); err != nil {
		fail(c, h.Flash, err)
		return
	}
	list, err := h.Catalog.Slides(ctx)
	if err != nil {
		fail(c, h.Flash, err)
		return
	}
	done(c, h.Flash, view.FlashSuccess, "Slide order updated.", list)
}

func (h *AdminHandler) DeleteSlide(c *gin.Context) {
	ctx := c.Request.Context()
	if !requireConfirm(c, h.Flash, "Slide") {
		return
	}

	s, err := h.Catalog.RemoveSlideByID(ctx, c.Param("id"))
	if err != nil {
		fail(c, h.Flash, err)
		return
	}
	done(c, h.Flash, view.FlashSuccess, "Slide deleted.", s)
}
