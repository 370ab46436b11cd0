package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	event := &domain.Event{
		Title:        req.Title,
		Description:  req.Description,
		EventType:    req.EventType,
		Category:     req.Category,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ShopID:       req.ShopID,
		Location:     req.Location,
		VenueName:    req.VenueName,
		VenueAddress: req.VenueAddress,
		VenueCity:    req.VenueCity,
		VenueState:   req.VenueState,
		VenueCountry: req.VenueCountry,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		MeetingURL:   req.MeetingURL,
		MaxAttendees: req.MaxAttendees,
		TicketPrice:  req.TicketPrice,
		IsPublished:  req.IsPublished,
	}
	if event.IsPublished {
		event.Status = domain.EventStatusPublished
	}

	created, err := h.events.Create(c.Request.Context(), currentUserID(c), event)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "event created", created)
}

func (h *Handler) GetEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "event", event)
}

func (h *Handler) ListEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.EventFilter{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	}
	if v := c.Query("is_published"); v != "" {
		published := v == "true" || v == "1"
		filter.IsPublished = &published
	}

	events, err := h.events.List(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "events", events)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var upd domain.EventUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	event, err := h.events.Update(c.Request.Context(), id, currentUserID(c), upd)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "event updated", event)
}

func (h *Handler) RegisterForEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.events.Register(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "registered for event", nil)
}

func (h *Handler) ListEventRegistrations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	regs, err := h.events.ListRegistrations(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "event registrations", regs)
}
