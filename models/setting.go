package models

// Setting is one runtime configuration row, keyed by name.
type Setting struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Key  string `json:"key" gorm:"uniqueIndex;not null"`
	Data string `json:"data" gorm:"not null"`
}

const (
	SettingApplicationName = "APPLICATION_NAME"
	SettingBaseURL         = "BASE_URL"
	SettingAgeConfirmation = "AGE_CONFIRMATION"
)

// AppSettings is the read-mostly snapshot handed to request handlers.
type AppSettings struct {
	ApplicationName string `json:"application_name"`
	BaseURL         string `json:"base_url"`
	AgeConfirmation bool   `json:"age_confirmation"`
}
