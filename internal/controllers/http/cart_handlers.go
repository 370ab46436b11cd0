package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCart(c *gin.Context) {
	items, total, err := h.cart.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "cart", CartResponse{Items: items, Total: total})
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.cart.AddItem(c.Request.Context(), currentUserID(c), req.ProductID, req.Quantity); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "item added to cart", nil)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.cart.UpdateItem(c.Request.Context(), currentUserID(c), productID, req.Quantity); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "cart item updated", nil)
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	if err := h.cart.RemoveItem(c.Request.Context(), currentUserID(c), productID); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "cart item removed", nil)
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context(), currentUserID(c)); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "cart cleared", nil)
}
