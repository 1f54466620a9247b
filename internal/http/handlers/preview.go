package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/middleware"
	"tokokue.com/admin/internal/http/render"
	"tokokue.com/admin/internal/shared/apperr"
	"tokokue.com/admin/internal/shared/slug"
	"tokokue.com/admin/pkg/view"
)

func (h *AdminHandler) Preview(c *gin.Context) {
	p, err := h.Site.BuildPayload(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	about, err := h.Renderer.Markdown(p.About)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	vm := view.PreviewPage{
		Title:        p.Site.Title,
		Tagline:      p.Site.Tagline,
		Logo:         p.Site.Logo,
		HeroHeadline: p.Hero.Headline,
		HeroSub:      p.Hero.Sub,
		ContactPhone: p.Contact.Phone,
		ContactEmail: p.Contact.Email,
		About:        about,
		Slides:       make([]string, 0, len(p.Slides)),
		Products:     make([]view.PreviewProduct, 0, len(p.Products)),
	}
	for _, s := range p.Slides {
		vm.Slides = append(vm.Slides, s.Src)
	}
	anchors := map[string]int{}
	for _, pr := range p.Products {
		vm.Products = append(vm.Products, view.PreviewProduct{
			Anchor: slug.Unique(pr.Name, anchors),
			Name:   pr.Name,
			Price:  pr.Price,
			Img:    pr.Img,
		})
	}

	c.Header("Cache-Control", "no-store")
	render.Page(c, http.StatusOK, "preview.tmpl", vm)
}
