package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/middleware"
	"tokokue.com/admin/internal/http/render"
	"tokokue.com/admin/internal/shared/apperr"
	"tokokue.com/admin/pkg/view"
)

func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := h.Catalog.Products(ctx)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	slides, err := h.Catalog.Slides(ctx)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	s := h.Site.Settings(ctx)

	vm := view.AdminPage{
		Title: "Admin",
		Flash: middleware.GetFlash(c),
		Settings: view.SettingsForm{
			Title:        s.Title,
			Tagline:      s.Tagline,
			Logo:         s.Logo,
			HeroHeadline: s.HeroHeadline,
			HeroSub:      s.HeroSub,
			ContactPhone: s.ContactPhone,
			ContactEmail: s.ContactEmail,
			About:        s.About,
		},
		Products: make([]view.AdminProductRow, 0, len(products)),
		Slides:   make([]view.AdminSlideRow, 0, len(slides)),
	}
	if s.Title != "" {
		vm.Title = s.Title + " | Admin"
	}
	for i, p := range products {
		vm.Products = append(vm.Products, view.AdminProductRow{Index: i, ID: p.ID, Name: p.Name, Price: p.Price, Img: p.Img})
	}
	for i, sl := range slides {
		vm.Slides = append(vm.Slides, view.AdminSlideRow{
			Index: i,
			ID:    sl.ID,
			Src:   sl.Src,
			First: i == 0,
			Last:  i == len(slides)-1,
		})
	}

	render.Page(c, http.StatusOK, "admin.tmpl", vm)
}
