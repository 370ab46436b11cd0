package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ReviewShop(c *gin.Context) {
	shopID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	review, err := h.reviews.ReviewShop(c.Request.Context(), currentUserID(c), shopID, req.Rating, req.Title, req.Body)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "review created", review)
}

func (h *Handler) ListShopReviews(c *gin.Context) {
	shopID, ok := pathID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.reviews.ListShopReviews(c.Request.Context(), shopID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "shop reviews", reviews)
}

func (h *Handler) ReviewProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	review, err := h.reviews.ReviewProduct(c.Request.Context(), currentUserID(c), productID, req.Rating, req.Title, req.Body)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "review created", review)
}

func (h *Handler) ListProductReviews(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.reviews.ListProductReviews(c.Request.Context(), productID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "product reviews", reviews)
}

func (h *Handler) FollowShop(c *gin.Context) {
	shopID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.followers.Follow(c.Request.Context(), shopID, currentUserID(c)); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "shop followed", nil)
}

func (h *Handler) UnfollowShop(c *gin.Context) {
	shopID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.followers.Unfollow(c.Request.Context(), shopID, currentUserID(c)); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "shop unfollowed", nil)
}

func (h *Handler) CheckFollowing(c *gin.Context) {
	shopID, ok := pathID(c, "id")
	if !ok {
		return
	}
	following, err := h.followers.IsFollowing(c.Request.Context(), shopID, currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "follow status", gin.H{"is_following": following})
}

func (h *Handler) ListShopFollowers(c *gin.Context) {
	shopID, ok := pathID(c, "id")
	if !ok {
		return
	}
	followers, err := h.followers.ListFollowers(c.Request.Context(), shopID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "shop followers", followers)
}
