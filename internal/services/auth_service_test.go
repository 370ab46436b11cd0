package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shoplink/internal/apperr"
	"shoplink/internal/auth"
	"shoplink/internal/domain"
	"shoplink/internal/mocks"
)

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(*mocks.MockUserRepository)
		wantErr    bool
	}{
		{
			name:     "valid signup",
			email:    "ada@example.com",
			password: "hunter22",
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, nil)
				users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.User).ID = 1
				})
			},
		},
		{
			name:     "malformed email",
			email:    "not-an-email",
			password: "hunter22",
			wantErr:  true,
		},
		{
			name:     "short password",
			email:    "ada@example.com",
			password: "abc",
			wantErr:  true,
		},
		{
			name:     "duplicate email",
			email:    "ada@example.com",
			password: "hunter22",
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "ada@example.com").Return(&domain.User{ID: 1}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUserRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(users)
			}

			svc := NewAuthService(users, testTokens())
			user, token, err := svc.Signup(context.Background(), tt.email, tt.password, "Ada")

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotEqual(t, tt.password, user.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(tt.password)))
			}
			users.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: 1, Email: "ada@example.com", Password: string(hash), IsActive: true}

	t.Run("valid credentials", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", mock.Anything, "ada@example.com").Return(stored, nil)

		svc := NewAuthService(users, testTokens())
		user, token, err := svc.Login(context.Background(), "ada@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", mock.Anything, "ada@example.com").Return(stored, nil)

		svc := NewAuthService(users, testTokens())
		_, _, err := svc.Login(context.Background(), "ada@example.com", "wrong")
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})

	t.Run("unknown email", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		svc := NewAuthService(users, testTokens())
		_, _, err := svc.Login(context.Background(), "ghost@example.com", "hunter22")
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})

	t.Run("deactivated account", func(t *testing.T) {
		inactive := *stored
		inactive.IsActive = false
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", mock.Anything, "ada@example.com").Return(&inactive, nil)

		svc := NewAuthService(users, testTokens())
		_, _, err := svc.Login(context.Background(), "ada@example.com", "hunter22")
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})
}
