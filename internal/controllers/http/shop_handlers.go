package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoplink/internal/domain"
)

func (h *Handler) CreateShop(c *gin.Context) {
	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	shop := &domain.Shop{
		OwnerID:       currentUserID(c),
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Location:      req.Location,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		BusinessHours: req.BusinessHours,
	}
	if req.IsOnlineSelling != nil {
		shop.IsOnlineSelling = *req.IsOnlineSelling
	} else {
		shop.IsOnlineSelling = true
	}
	if req.IsOfflineSelling != nil {
		shop.IsOfflineSelling = *req.IsOfflineSelling
	}
	if req.AcceptsOnlinePayment != nil {
		shop.AcceptsOnlinePayment = *req.AcceptsOnlinePayment
	} else {
		shop.AcceptsOnlinePayment = true
	}
	if req.AcceptsCash != nil {
		shop.AcceptsCash = *req.AcceptsCash
	} else {
		shop.AcceptsCash = true
	}

	created, err := h.shops.Create(c.Request.Context(), shop)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "shop created", created)
}

func (h *Handler) GetShop(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	shop, err := h.shops.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "shop", shop)
}

func (h *Handler) ListShops(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	shops, err := h.shops.List(c.Request.Context(), c.Query("category"), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "shops", shops)
}

func (h *Handler) UpdateShop(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var upd domain.ShopUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	shop, err := h.shops.Update(c.Request.Context(), id, currentUserID(c), upd)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "shop updated", shop)
}

func (h *Handler) ListShopProducts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	products, err := h.products.ListByShop(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "shop products", products)
}

func (h *Handler) ListShopOrders(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	orders, err := h.orders.ListShopOrders(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "shop orders", orders)
}
