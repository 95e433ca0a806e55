package services

import (
	"testing"

	"picboard/models"
	"picboard/repositories"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := repositories.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockUserRepo)

	t.Run("success", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByUsername("alice").Return(nil, gorm.ErrRecordNotFound)
		mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
			func(user *models.User) error {
				user.ID = 1

				// The stored password is a hash, never the plaintext.
				assert.NotEqual(t, "hunter22", user.Password)
				return nil
			})

		response, err := svc.Register(models.RegisterRequest{Username: "alice", Password: "hunter22"})
		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, uint(1), response.User.ID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByUsername("alice").Return(&models.User{ID: 1, Username: "alice"}, nil)

		_, err := svc.Register(models.RegisterRequest{Username: "alice", Password: "hunter22"})
		require.Error(t, err)
		assert.IsType(t, models.ErrorBadRequest{}, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := repositories.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockUserRepo)

	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: 1, Username: "alice", Password: string(hashed)}

	t.Run("success", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByUsername("alice").Return(stored, nil)

		response, err := svc.Login(models.LoginRequest{Username: "alice", Password: "hunter22"})
		require.NoError(t, err)
		assert.NotEmpty(t, response.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByUsername("alice").Return(stored, nil)

		_, err := svc.Login(models.LoginRequest{Username: "alice", Password: "wrong"})
		require.Error(t, err)
		assert.IsType(t, models.ErrorUnauthorized{}, err)
	})

	t.Run("unknown user answers the same as a bad password", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByUsername("mallory").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(models.LoginRequest{Username: "mallory", Password: "hunter22"})
		require.Error(t, err)
		assert.IsType(t, models.ErrorUnauthorized{}, err)
	})
}
