package services

import (
	"strconv"
	"sync"

	"picboard/models"
	"picboard/repositories"
)

const defaultApplicationName = "Picboard"

// SettingsService serves runtime configuration as a read-mostly snapshot.
// Reads copy the snapshot under a read lock; Update is the single writer:
// it persists first, then swaps the snapshot in.
type SettingsService interface {
	Snapshot() models.AppSettings
	Update(req models.UpdateSettingsRequest) error
}

type settingsService struct {
	settingRepo repositories.SettingRepository

	mu      sync.RWMutex
	current models.AppSettings
}

func NewSettingsService(settingRepo repositories.SettingRepository) (SettingsService, error) {
	s := &settingsService{
		settingRepo: settingRepo,
		current:     models.AppSettings{ApplicationName: defaultApplicationName},
	}

	rows, err := settingRepo.All()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		switch row.Key {
		case models.SettingApplicationName:
			if row.Data != "" {
				s.current.ApplicationName = row.Data
			}
		case models.SettingBaseURL:
			s.current.BaseURL = row.Data
		case models.SettingAgeConfirmation:
			confirmed, err := strconv.ParseBool(row.Data)
			if err == nil {
				s.current.AgeConfirmation = confirmed
			}
		}
	}
	return s, nil
}

func (s *settingsService) Snapshot() models.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *settingsService) Update(req models.UpdateSettingsRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	rows := []models.Setting{
		{Key: models.SettingBaseURL, Data: req.BaseURL},
		{Key: models.SettingAgeConfirmation, Data: strconv.FormatBool(req.AgeConfirmation)},
	}
	next.BaseURL = req.BaseURL
	next.AgeConfirmation = req.AgeConfirmation
	if req.ApplicationName != "" {
		rows = append(rows, models.Setting{Key: models.SettingApplicationName, Data: req.ApplicationName})
		next.ApplicationName = req.ApplicationName
	}

	if err := s.settingRepo.Upsert(rows); err != nil {
		return err
	}
	s.current = next
	return nil
}
