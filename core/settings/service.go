// ABOUTME: Settings service persists user settings as individual store keys
// ABOUTME: Missing keys read as zero values with documented defaults applied

package settings

import (
	"context"
	"encoding/json"
	"errors"

	"markdown-collector-api/core/domain"
	coreerrors "markdown-collector-api/core/errors"
	"markdown-collector-api/core/interfaces"
)

// Store keys for the settings scalars.
const (
	KeyEnableCleanup  = "enableCleanup"
	KeyEnableLLM      = "enableLLM"
	KeyEnableMultitab = "enableMultitab"
	KeyAPIKey         = "apiKey"
	KeyModel          = "model"
	KeyBaseURL        = "baseUrl"
)

// Service reads and writes the user settings.
type Service struct {
	store  interfaces.KeyValueStore
	logger interfaces.Logger
}

// NewService creates a settings service.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		store:  deps.Store,
		logger: deps.Logger,
	}
}

// Load reads all settings. Keys that were never written produce their
// zero value; Model and BaseURL defaults are applied at credential time.
func (s *Service) Load(ctx context.Context) domain.Settings {
	return domain.Settings{
		EnableCleanup:  s.readBool(ctx, KeyEnableCleanup),
		EnableLLM:      s.readBool(ctx, KeyEnableLLM),
		EnableMultitab: s.readBool(ctx, KeyEnableMultitab),
		APIKey:         s.readString(ctx, KeyAPIKey),
		Model:          s.readString(ctx, KeyModel),
		BaseURL:        s.readString(ctx, KeyBaseURL),
	}
}

// Save writes all settings back. An empty API key removes the stored
// credential instead of persisting an empty secret.
func (s *Service) Save(ctx context.Context, settings domain.Settings) error {
	writes := map[string]interface{}{
		KeyEnableCleanup:  settings.EnableCleanup,
		KeyEnableLLM:      settings.EnableLLM,
		KeyEnableMultitab: settings.EnableMultitab,
		KeyModel:          settings.Model,
		KeyBaseURL:        settings.BaseURL,
	}

	for key, value := range writes {
		data, err := json.Marshal(value)
		if err != nil {
			return &coreerrors.StorageError{Key: key, Message: err.Error()}
		}
		if err := s.store.Set(ctx, key, data); err != nil {
			return &coreerrors.StorageError{Key: key, Message: err.Error()}
		}
	}

	if settings.APIKey == "" {
		if err := s.store.Delete(ctx, KeyAPIKey); err != nil {
			return &coreerrors.StorageError{Key: KeyAPIKey, Message: err.Error()}
		}
		return nil
	}

	data, err := json.Marshal(settings.APIKey)
	if err != nil {
		return &coreerrors.StorageError{Key: KeyAPIKey, Message: err.Error()}
	}
	if err := s.store.Set(ctx, KeyAPIKey, data); err != nil {
		return &coreerrors.StorageError{Key: KeyAPIKey, Message: err.Error()}
	}
	return nil
}

// readBool reads one boolean setting. A never-written key is false; a
// backend failure also reads as false but is logged, since it can flip
// feature gates like enableLLM for the current request.
func (s *Service) readBool(ctx context.Context, key string) bool {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrKeyNotFound) {
			s.logger.Error("Failed to read setting, using default", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return false
	}
	var value bool
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warn("Ignoring unreadable setting", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}
	return value
}

func (s *Service) readString(ctx context.Context, key string) string {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrKeyNotFound) {
			s.logger.Error("Failed to read setting, using default", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return ""
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warn("Ignoring unreadable setting", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return ""
	}
	return value
}
