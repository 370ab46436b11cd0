package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
)

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, token, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "account created", AuthResponse{Token: token, User: user})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Credential failures are 401, not the ownership 403.
		if apperr.IsKind(err, apperr.KindUnauthorized) {
			c.JSON(http.StatusUnauthorized, envelope{
				Status:    "error",
				Message:   err.Error(),
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "logged in", AuthResponse{Token: token, User: user})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.auth.Me(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "current user", user)
}

func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.users.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "profile", user)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var upd domain.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), currentUserID(c), upd)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "profile updated", user)
}

func (h *Handler) MyShops(c *gin.Context) {
	shops, err := h.users.MyShops(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "your shops", shops)
}

func (h *Handler) MyEvents(c *gin.Context) {
	events, err := h.users.MyEvents(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "your events", events)
}
