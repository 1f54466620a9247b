package handlers

import (
	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/flash"
	"tokokue.com/admin/internal/modules/catalog"
	"tokokue.com/admin/internal/modules/site"
	"tokokue.com/admin/internal/preview"
)

// AdminHandler serves the admin page and every catalog/settings mutation.
type AdminHandler struct {
	Catalog     *catalog.Repo
	Site        *site.Service
	Flash       *flash.Codec
	Renderer    *preview.Renderer
	UploadLimit int64
}

func NewAdminHandler(repo *catalog.Repo, svc *site.Service, f *flash.Codec, p *preview.Renderer, uploadLimit int64) *AdminHandler {
	return &AdminHandler{Catalog: repo, Site: svc, Flash: f, Renderer: p, UploadLimit: uploadLimit}
}

// Mount registers the mutation routes on g. The same routes serve the HTML
// forms under /admin and JSON clients under /api.
func (h *AdminHandler) Mount(g *gin.RouterGroup) {
	g.POST("/settings", h.SaveSettings)

	g.POST("/products", h.AddProduct)
	g.POST("/products/:id", h.UpdateProduct)
	g.POST("/products/:id/delete", h.DeleteProduct)

	g.POST("/slides", h.AddSlide)
	g.POST("/slides/:id/up", h.MoveSlideUp)
	g.POST("/slides/:id/down", h.MoveSlideDown)
	g.POST("/slides/:id/delete", h.DeleteSlide)

	g.POST("/save", h.Save)
}
