package services

import (
	"context"
	"fmt"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/repository"
	"shoplink/internal/slug"
)

type EventService struct {
	events repository.EventRepository
	shops  repository.ShopRepository
}

func NewEventService(events repository.EventRepository, shops repository.ShopRepository) *EventService {
	return &EventService{events: events, shops: shops}
}

func (s *EventService) Create(ctx context.Context, userID uint64, event *domain.Event) (*domain.Event, error) {
	if event.Title == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "event title is required")
	}
	if event.StartDate.IsZero() {
		return nil, apperr.New(apperr.KindInvalidArgument, "start date is required")
	}

	if event.ShopID != nil {
		shop, err := s.shops.FindByID(ctx, *event.ShopID)
		if err != nil {
			return nil, err
		}
		if shop == nil {
			return nil, apperr.New(apperr.KindNotFound, "shop not found")
		}
		if shop.OwnerID != userID {
			return nil, apperr.New(apperr.KindUnauthorized, "not your shop")
		}
	}

	sl, err := s.uniqueSlug(ctx, event.Title, 0)
	if err != nil {
		return nil, err
	}
	event.OrganizerID = userID
	event.Slug = sl
	event.IsFree = event.TicketPrice == 0
	if event.Status == "" {
		event.Status = domain.EventStatusDraft
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Get(ctx context.Context, id uint64) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperr.New(apperr.KindNotFound, "event not found")
	}
	if err := s.events.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	event.ViewsCount++
	return event, nil
}

func (s *EventService) List(ctx context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.events.List(ctx, filter)
}

func (s *EventService) Update(ctx context.Context, id, userID uint64, upd domain.EventUpdate) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperr.New(apperr.KindNotFound, "event not found")
	}
	if event.OrganizerID != userID {
		return nil, apperr.New(apperr.KindUnauthorized, "not your event")
	}

	if upd.Title != nil && *upd.Title != event.Title {
		event.Title = *upd.Title
		sl, err := s.uniqueSlug(ctx, event.Title, event.ID)
		if err != nil {
			return nil, err
		}
		event.Slug = sl
	}
	if upd.Description != nil {
		event.Description = *upd.Description
	}
	if upd.EventType != nil {
		event.EventType = *upd.EventType
	}
	if upd.Category != nil {
		event.Category = *upd.Category
	}
	if upd.StartDate != nil {
		event.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		event.EndDate = upd.EndDate
	}
	if upd.Location != nil {
		event.Location = *upd.Location
	}
	if upd.VenueName != nil {
		event.VenueName = *upd.VenueName
	}
	if upd.VenueAddress != nil {
		event.VenueAddress = *upd.VenueAddress
	}
	if upd.VenueCity != nil {
		event.VenueCity = *upd.VenueCity
	}
	if upd.VenueState != nil {
		event.VenueState = *upd.VenueState
	}
	if upd.VenueCountry != nil {
		event.VenueCountry = *upd.VenueCountry
	}
	if upd.Latitude != nil {
		event.Latitude = *upd.Latitude
	}
	if upd.Longitude != nil {
		event.Longitude = *upd.Longitude
	}
	if upd.MeetingURL != nil {
		event.MeetingURL = *upd.MeetingURL
	}
	if upd.MaxAttendees != nil {
		event.MaxAttendees = upd.MaxAttendees
	}
	if upd.TicketPrice != nil {
		event.TicketPrice = *upd.TicketPrice
		event.IsFree = event.TicketPrice == 0
	}
	if upd.IsFree != nil {
		event.IsFree = *upd.IsFree
	}
	if upd.IsPublished != nil {
		event.IsPublished = *upd.IsPublished
		if event.IsPublished && event.Status == domain.EventStatusDraft {
			event.Status = domain.EventStatusPublished
		}
	}
	if upd.Status != nil {
		event.Status = domain.EventStatus(*upd.Status)
	}

	if err := s.events.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Register(ctx context.Context, eventID, userID uint64) error {
	return s.events.Register(ctx, eventID, userID)
}

func (s *EventService) ListRegistrations(ctx context.Context, eventID, userID uint64) ([]domain.EventRegistration, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperr.New(apperr.KindNotFound, "event not found")
	}
	if event.OrganizerID != userID {
		return nil, apperr.New(apperr.KindUnauthorized, "only the organizer can see registrations")
	}
	return s.events.ListRegistrations(ctx, eventID)
}

func (s *EventService) uniqueSlug(ctx context.Context, title string, excludeID uint64) (string, error) {
	base := slug.Make(title)
	candidate := base
	for i := 2; ; i++ {
		taken, err := s.events.SlugTaken(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
