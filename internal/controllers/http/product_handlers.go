package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoplink/internal/domain"
)

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	product := &domain.Product{
		ShopID:           req.ShopID,
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		OriginalPrice:    req.OriginalPrice,
		ImageURL:         req.ImageURL,
		StockQuantity:    req.StockQuantity,
		MinOrderQuantity: req.MinOrderQuantity,
		MaxOrderQuantity: req.MaxOrderQuantity,
		SKU:              req.SKU,
		Barcode:          req.Barcode,
		Weight:           req.Weight,
		Dimensions:       req.Dimensions,
		Category:         req.Category,
		Tags:             req.Tags,
		IsFeatured:       req.IsFeatured,
	}
	if product.MinOrderQuantity < 1 {
		product.MinOrderQuantity = 1
	}

	created, err := h.products.Create(c.Request.Context(), currentUserID(c), product)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "product created", created)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "product", product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var upd domain.ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, currentUserID(c), upd)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "product updated", product)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "product deleted", nil)
}
