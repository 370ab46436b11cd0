package services

import (
	"context"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type UserService struct {
	users  repository.UserRepository
	shops  repository.ShopRepository
	events repository.EventRepository
}

func NewUserService(users repository.UserRepository, shops repository.ShopRepository, events repository.EventRepository) *UserService {
	return &UserService{users: users, shops: shops, events: events}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, upd domain.UserUpdate) (*domain.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.FullName != nil {
		user.FullName = *upd.FullName
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}
	if upd.Address != nil {
		user.Address = *upd.Address
	}
	if upd.City != nil {
		user.City = *upd.City
	}
	if upd.State != nil {
		user.State = *upd.State
	}
	if upd.Country != nil {
		user.Country = *upd.Country
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) MyShops(ctx context.Context, userID uint64) ([]domain.Shop, error) {
	return s.shops.ListByOwner(ctx, userID)
}

func (s *UserService) MyEvents(ctx context.Context, userID uint64) ([]domain.Event, error) {
	return s.events.ListByOrganizer(ctx, userID)
}
