package services

import (
	"errors"
	"testing"

	"picboard/models"
	"picboard/repositories"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("defaults apply when nothing is stored", func(t *testing.T) {
		mockSettingRepo := repositories.NewMockSettingRepository(ctrl)
		mockSettingRepo.EXPECT().All().Return(nil, nil)

		svc, err := NewSettingsService(mockSettingRepo)
		require.NoError(t, err)

		snapshot := svc.Snapshot()
		assert.Equal(t, "Picboard", snapshot.ApplicationName)
		assert.Empty(t, snapshot.BaseURL)
		assert.False(t, snapshot.AgeConfirmation)
	})

	t.Run("stored rows override the defaults", func(t *testing.T) {
		mockSettingRepo := repositories.NewMockSettingRepository(ctrl)
		mockSettingRepo.EXPECT().All().Return([]models.Setting{
			{Key: models.SettingApplicationName, Data: "My Board"},
			{Key: models.SettingBaseURL, Data: "https://board.example.com"},
			{Key: models.SettingAgeConfirmation, Data: "true"},
		}, nil)

		svc, err := NewSettingsService(mockSettingRepo)
		require.NoError(t, err)

		snapshot := svc.Snapshot()
		assert.Equal(t, "My Board", snapshot.ApplicationName)
		assert.Equal(t, "https://board.example.com", snapshot.BaseURL)
		assert.True(t, snapshot.AgeConfirmation)
	})

	t.Run("unreadable rows fail the load", func(t *testing.T) {
		mockSettingRepo := repositories.NewMockSettingRepository(ctrl)
		mockSettingRepo.EXPECT().All().Return(nil, errors.New("db down"))

		_, err := NewSettingsService(mockSettingRepo)
		require.Error(t, err)
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("persists then swaps the snapshot", func(t *testing.T) {
		mockSettingRepo := repositories.NewMockSettingRepository(ctrl)
		mockSettingRepo.EXPECT().All().Return(nil, nil)

		svc, err := NewSettingsService(mockSettingRepo)
		require.NoError(t, err)

		mockSettingRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(
			func(rows []models.Setting) error {
				byKey := map[string]string{}
				for _, row := range rows {
					byKey[row.Key] = row.Data
				}
				require.Equal(t, map[string]string{
					models.SettingApplicationName: "My Board",
					models.SettingBaseURL:         "https://board.example.com",
					models.SettingAgeConfirmation: "true",
				}, byKey)
				return nil
			})

		require.NoError(t, svc.Update(models.UpdateSettingsRequest{
			ApplicationName: "My Board",
			BaseURL:         "https://board.example.com",
			AgeConfirmation: true,
		}))

		snapshot := svc.Snapshot()
		assert.Equal(t, "My Board", snapshot.ApplicationName)
		assert.Equal(t, "https://board.example.com", snapshot.BaseURL)
		assert.True(t, snapshot.AgeConfirmation)
	})

	t.Run("a blank application name keeps the current one", func(t *testing.T) {
		mockSettingRepo := repositories.NewMockSettingRepository(ctrl)
		mockSettingRepo.EXPECT().All().Return([]models.Setting{
			{Key: models.SettingApplicationName, Data: "My Board"},
		}, nil)

		svc, err := NewSettingsService(mockSettingRepo)
		require.NoError(t, err)

		mockSettingRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(
			func(rows []models.Setting) error {
				for _, row := range rows {
					assert.NotEqual(t, models.SettingApplicationName, row.Key)
				}
				return nil
			})

		require.NoError(t, svc.Update(models.UpdateSettingsRequest{BaseURL: "https://elsewhere"}))
		assert.Equal(t, "My Board", svc.Snapshot().ApplicationName)
	})

	t.Run("a failed write leaves the snapshot untouched", func(t *testing.T) {
		mockSettingRepo := repositories.NewMockSettingRepository(ctrl)
		mockSettingRepo.EXPECT().All().Return(nil, nil)

		svc, err := NewSettingsService(mockSettingRepo)
		require.NoError(t, err)

		mockSettingRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("db down"))

		require.Error(t, svc.Update(models.UpdateSettingsRequest{BaseURL: "https://elsewhere"}))
		assert.Empty(t, svc.Snapshot().BaseURL)
	})
}
