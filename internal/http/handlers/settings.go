package handlers

import (
	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/validation"
	"tokokue.com/admin/internal/modules/site"
	"tokokue.com/admin/internal/shared/apperr"
	"tokokue.com/admin/pkg/view"
)

type settingsInput struct {
	Title        string `form:"title" json:"title" binding:"max=200"`
	Tagline      string `form:"tagline" json:"tagline" binding:"max=300"`
	Logo         string `form:"-" json:"logo"`
	HeroHeadline string `form:"hero_headline" json:"heroHeadline" binding:"max=300"`
	HeroSub      string `form:"hero_sub" json:"heroSub" binding:"max=500"`
	ContactPhone string `form:"contact_phone" json:"contactPhone" binding:"max=50"`
	ContactEmail string `form:"contact_email" json:"contactEmail" binding:"max=200"`
	About        string `form:"about" json:"about" binding:"max=20000"`
}

// SaveSettings overwrites the site settings. An HTML form without a new logo
// file keeps the current logo.
func (h *AdminHandler) SaveSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var in settingsInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		fail(c, h.Flash, apperr.InvalidErr(validation.First(errs), errs))
		return
	}

	fallback := in.Logo
	if c.ContentType() != "application/json" {
		fallback = h.Site.Settings(ctx).Logo
	}
	logo, err := uploadedImage(c, "logo", h.UploadLimit, fallback)
	if err != nil {
		fail(c, h.Flash, err)
		return
	}

	s := site.Settings{
		Title:        in.Title,
		Tagline:      in.Tagline,
		Logo:         logo,
		HeroHeadline: in.HeroHeadline,
		HeroSub:      in.HeroSub,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		About:        in.About,
	}
	if err := h.Site.SaveSettings(ctx, s); err != nil {
		fail(c, h.Flash, err)
		return
	}
	done(c, h.Flash, view.FlashSuccess, "Site settings updated.", h.Site.Settings(ctx))
}
