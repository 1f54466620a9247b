package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/admincookie"
	"tokokue.com/admin/internal/http/flash"
	"tokokue.com/admin/internal/http/middleware"
	"tokokue.com/admin/internal/http/render"
	"tokokue.com/admin/internal/http/validation"
	"tokokue.com/admin/internal/modules/adminauth"
	"tokokue.com/admin/pkg/view"
)

type loginInput struct {
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginHandler struct {
	Gate    *adminauth.Gate
	Session *admincookie.Codec
	Flash   *flash.Codec
}

func NewLoginHandler(g *adminauth.Gate, s *admincookie.Codec, f *flash.Codec) *LoginHandler {
	return &LoginHandler{Gate: g, Session: s, Flash: f}
}

func (h *LoginHandler) Get(c *gin.Context) {
	returnTo := normalizeReturnTo(c.Query("return_to"))
	if h.Gate.Enabled() && h.Session.Valid(c) {
		c.Redirect(http.StatusSeeOther, destination(returnTo))
		return
	}

	status := http.StatusOK
	if !h.Gate.Enabled() {
		status = http.StatusForbidden
	}
	render.Page(c, status, "login.tmpl", h.page(c, returnTo))
}

func (h *LoginHandler) Post(c *gin.Context) {
	returnTo := normalizeReturnTo(c.PostForm("return_to"))

	if !h.Gate.Enabled() {
		if middleware.WantsJSON(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access is disabled."})
			return
		}
		render.Page(c, http.StatusForbidden, "login.tmpl", h.page(c, returnTo))
		return
	}

	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		if middleware.WantsJSON(c) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.First(errs), "fields": errs})
			return
		}
		vm := h.page(c, returnTo)
		vm.Fields = errs
		render.Page(c, http.StatusBadRequest, "login.tmpl", vm)
		return
	}

	if !h.Gate.Check(in.Password) {
		if middleware.WantsJSON(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong password."})
			return
		}
		vm := h.page(c, returnTo)
		vm.Error = "Wrong password."
		render.Page(c, http.StatusUnauthorized, "login.tmpl", vm)
		return
	}

	h.Session.Issue(c)
	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	render.RedirectWithFlash(c, h.Flash, destination(returnTo), view.FlashSuccess, "Logged in.")
}

func (h *LoginHandler) Logout(c *gin.Context) {
	h.Session.Clear(c)
	render.RedirectWithFlash(c, h.Flash, "/login", view.FlashInfo, "Logged out.")
}

func (h *LoginHandler) page(c *gin.Context, returnTo string) view.LoginPage {
	return view.LoginPage{
		Title:    "Admin login",
		Flash:    middleware.GetFlash(c),
		Disabled: !h.Gate.Enabled(),
		ReturnTo: returnTo,
	}
}

func destination(returnTo string) string {
	if returnTo == "" {
		return adminPath
	}
	return returnTo
}

// normalizeReturnTo keeps only local admin paths, so the login form cannot be
// used as an open redirect.
func normalizeReturnTo(s string) string {
	if !strings.HasPrefix(s, adminPath) {
		return ""
	}
	if strings.Contains(s, "//") || strings.Contains(s, `\`) || strings.Contains(s, "://") {
		return ""
	}
	return s
}
