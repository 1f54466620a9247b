package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/flash"
	"tokokue.com/admin/internal/http/middleware"
	"tokokue.com/admin/internal/http/render"
	"tokokue.com/admin/internal/media"
	"tokokue.com/admin/internal/shared/apperr"
	"tokokue.com/admin/pkg/view"
)

const adminPath = "/admin"

// done finishes a mutation: JSON for API clients, otherwise back to the
// admin page, which re-renders from the store.
func done(c *gin.Context, fc *flash.Codec, kind view.FlashKind, msg string, data any) {
	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"message": msg, "data": data})
		return
	}
	render.RedirectWithFlash(c, fc, adminPath, kind, msg)
}

// fail shows user mistakes (bad input, stale ids) as a flash on the admin
// page. Everything else, and every JSON request, goes to ErrorHandler.
func fail(c *gin.Context, fc *flash.Codec, err error) {
	if !middleware.WantsJSON(c) && (apperr.IsKind(err, apperr.Invalid) || apperr.IsKind(err, apperr.NotFound)) {
		render.RedirectWithFlash(c, fc, adminPath, view.FlashError, apperr.PublicMessage(err))
		return
	}
	middleware.Fail(c, apperr.Wrap(err))
}

// uploadedImage returns the data-URL of the image posted in field. A form
// without that file yields fallback, which JSON clients use to send a
// data-URL directly.
func uploadedImage(c *gin.Context, field string, limit int64, fallback string) (string, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return checkDataURL(fallback)
	}
	if err != nil {
		return "", apperr.InvalidErr("Could not read the uploaded file.", map[string]string{field: err.Error()})
	}

	src, err := media.FromFileHeader(fh, limit)
	switch {
	case errors.Is(err, media.ErrNotImage):
		return "", apperr.InvalidErr("The file is not an image.", map[string]string{field: "Not an image."})
	case errors.Is(err, media.ErrTooLarge):
		return "", apperr.InvalidErr("The image is too large.", map[string]string{field: "Too large."})
	case errors.Is(err, media.ErrEmpty):
		return "", apperr.InvalidErr("The image file is empty.", map[string]string{field: "Empty file."})
	case err != nil:
		return "", err
	}
	return src, nil
}

func checkDataURL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "data:image/") {
		return s, nil
	}
	return "", apperr.InvalidErr("Images must be data:image/ URLs.", map[string]string{"img": "Not an image data-URL."})
}

// confirmed reports whether a destructive action was explicitly confirmed.
func confirmed(c *gin.Context) bool {
	return c.PostForm("confirm") == "1" || c.Query("confirm") == "1"
}

func requireConfirm(c *gin.Context, fc *flash.Codec, what string) bool {
	if confirmed(c) {
		return true
	}
	if middleware.WantsJSON(c) {
		middleware.Fail(c, apperr.InvalidErr("Deletion must be confirmed with confirm=1.", nil))
		return false
	}
	render.RedirectWithFlash(c, fc, adminPath, view.FlashWarning, what+" was not deleted.")
	return false
}
