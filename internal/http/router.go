package apphttp

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/admincookie"
	"tokokue.com/admin/internal/http/flash"
	"tokokue.com/admin/internal/http/handlers"
	"tokokue.com/admin/internal/http/middleware"
	"tokokue.com/admin/internal/http/render"
	"tokokue.com/admin/internal/modules/adminauth"
	"tokokue.com/admin/internal/modules/catalog"
	"tokokue.com/admin/internal/modules/site"
	"tokokue.com/admin/internal/preview"
	"tokokue.com/admin/internal/shared/apperr"
)

type Deps struct {
	Logger      *slog.Logger
	Catalog     *catalog.Repo
	Site        *site.Service
	Gate        *adminauth.Gate
	Session     *admincookie.Codec
	Flash       *flash.Codec
	Preview     *preview.Renderer
	UploadLimit int64
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(render.Templates())
	// Base64 inflates images by a third; leave room for a few per form.
	r.MaxMultipartMemory = 4 * d.UploadLimit

	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.ErrorHandler(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.FlashMiddleware(d.Flash),
	)

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/admin") })

	login := handlers.NewLoginHandler(d.Gate, d.Session, d.Flash)
	r.GET("/login", login.Get)
	r.POST("/login", login.Post)
	r.POST("/logout", login.Logout)

	guard := middleware.RequireAdmin(d.Gate, d.Session, d.Flash)
	admin := handlers.NewAdminHandler(d.Catalog, d.Site, d.Flash, d.Preview, d.UploadLimit)

	ag := r.Group("/admin", guard)
	ag.GET("", admin.Dashboard)
	ag.GET("/preview", admin.Preview)
	admin.Mount(ag)

	api := r.Group("/api", guard)
	api.GET("/payload", admin.Payload)
	api.GET("/products", admin.ListProducts)
	api.GET("/slides", admin.ListSlides)
	admin.Mount(api)

	r.NoRoute(func(c *gin.Context) {
		middleware.Fail(c, apperr.NotFoundErr("Page not found."))
	})

	return r
}
