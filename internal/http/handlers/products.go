package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokokue.com/admin/internal/http/middleware"
	"tokokue.com/admin/internal/modules/catalog"
	"tokokue.com/admin/internal/shared/apperr"
	"tokokue.com/admin/pkg/view"
)

type productInput struct {
	Name  string `form:"name" json:"name"`
	Price string `form:"price" json:"price"`
	Img   string `form:"-" json:"img"`
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	list, err := h.Catalog.Products(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *AdminHandler) AddProduct(c *gin.Context) {
	var in productInput
	if err := c.ShouldBind(&in); err != nil {
		fail(c, h.Flash, apperr.InvalidErr("Invalid form data.", nil))
		return
	}
	img, err := uploadedImage(c, "img", h.UploadLimit, in.Img)
	if err != nil {
		fail(c, h.Flash, err)
		return
	}

	p, err := h.Catalog.AddProduct(c.Request.Context(), catalog.ProductInput{Name: in.Name, Price: in.Price, Img: img})
	if err != nil {
		fail(c, h.Flash, err)
		return
	}
	done(c, h.Flash, view.FlashSuccess, "Product added.", p)
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	var in productInput
	if err := c.ShouldBind(&in); err != nil {
		fail(c, h.Flash, apperr.InvalidErr("Invalid form data.", nil))
		return
	}
	img, err := uploadedImage(c, "img", h.UploadLimit, in.Img)
	if err != nil {
		fail(c, h.Flash, err)
		return
	}

	p, err := h.Catalog.UpdateProductByID(ctx, c.Param("id"), catalog.ProductPatch{Name: in.Name, Price: in.Price, Img: img})
	if err != nil {
		fail(c, h.Flash, err)
		return
	}
	done(c, h.Flash, view.FlashSuccess, "Product updated.", p)
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()
	if !requireConfirm(c, h.Flash, "Product") {
		return
	}

	p, err := h.Catalog.RemoveProductByID(ctx, c.Param("id"))
	if err != nil {
		fail(c, h.Flash, err)
		return
	}
	done(c, h.Flash, view.FlashSuccess, "Product deleted.", p)
}
