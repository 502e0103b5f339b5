package service

import (
	"github.com/qrforms/qrforms/internal/domain/common/errorz"
	"github.com/qrforms/qrforms/internal/domain/utils/validator"
	"github.com/spf13/viper"
)

type prefsStorage interface {
	GetTheme(clientID string) (string, error)
	SetTheme(clientID string, theme string) error
}

type PrefsService struct {
	storage prefsStorage
}

func NewPrefsService(storage prefsStorage) *PrefsService {
	return &PrefsService{
		storage: storage,
	}
}

// Theme returns the client's stored theme, or the configured default.
func (s *PrefsService) Theme(clientID string) string {
	theme, err := s.storage.GetTheme(clientID)
	if err != nil || theme == "" {
		return defaultTheme()
	}
	return theme
}

func (s *PrefsService) SetTheme(clientID string, theme string) error {
	if !validator.Theme(theme, nil) {
		return errorz.ErrInvalidTheme
	}
	return s.storage.SetTheme(clientID, theme)
}

func defaultTheme() string {
	if theme := viper.GetString("ui.default-theme"); theme != "" {
		return theme
	}
	return "light"
}
