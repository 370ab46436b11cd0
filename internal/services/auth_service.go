package services

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"shoplink/internal/apperr"
	"shoplink/internal/auth"
	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

const bcryptCost = 12

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Signup(ctx context.Context, email, password, fullName string) (*domain.User, string, error) {
	if !emailRe.MatchString(email) {
		return nil, "", apperr.New(apperr.KindInvalidArgument, "invalid email address")
	}
	if len(password) < 6 {
		return nil, "", apperr.New(apperr.KindInvalidArgument, "password must be at least 6 characters")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperr.New(apperr.KindInvalidArgument, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:    email,
		Password: string(hash),
		FullName: fullName,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperr.New(apperr.KindUnauthorized, "invalid email or password")
	}
	if !user.IsActive {
		return nil, "", apperr.New(apperr.KindUnauthorized, "account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperr.New(apperr.KindUnauthorized, "invalid email or password")
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return user, nil
}
