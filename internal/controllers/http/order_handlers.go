package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoplink/internal/domain"
)

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), currentUserID(c), req.ShopID, req.Items, req.PaymentMethod, req.ShippingAddress)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "order placed", order)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.GetOrder(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "order", order)
}

func (h *Handler) ListMyOrders(c *gin.Context) {
	orders, err := h.orders.ListMyOrders(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "your orders", orders)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, currentUserID(c), domain.OrderStatus(req.Status))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "order status updated", order)
}
