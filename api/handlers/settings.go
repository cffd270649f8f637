// ABOUTME: Settings handlers for the Huma API
// ABOUTME: Read and write the user-facing configuration scalars

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"markdown-collector-api/core/domain"
	"markdown-collector-api/core/settings"
)

// SettingsHandler handles the settings endpoints
type SettingsHandler struct {
	settings *settings.Service
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *settings.Service) *SettingsHandler {
	return &SettingsHandler{settings: settingsService}
}

// RegisterRoutes registers the settings routes
func (h *SettingsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSettings",
		Method:      http.MethodGet,
		Path:        "/settings",
		Summary:     "Get the current settings",
		Tags:        []string{"Settings"},
	}, h.GetSettings)

	huma.Register(api, huma.Operation{
		OperationID: "putSettings",
		Method:      http.MethodPut,
		Path:        "/settings",
		Summary:     "Replace the settings",
		Description: "Writes all settings. An empty API key removes the stored credential.",
		Tags:        []string{"Settings"},
	}, h.PutSettings)
}

// SettingsOutput defines the output for the settings operations
type SettingsOutput struct {
	Body domain.Settings
}

// GetSettings returns the current settings
func (h *SettingsHandler) GetSettings(ctx context.Context, input *struct{}) (*SettingsOutput, error) {
	return &SettingsOutput{Body: h.settings.Load(ctx)}, nil
}

// PutSettingsInput defines the input for the PutSettings operation
type PutSettingsInput struct {
	Body domain.Settings
}

// PutSettings replaces the settings
func (h *SettingsHandler) PutSettings(ctx context.Context, input *PutSettingsInput) (*SettingsOutput, error) {
	if err := h.settings.Save(ctx, input.Body); err != nil {
		return nil, toHumaError(err)
	}
	return &SettingsOutput{Body: h.settings.Load(ctx)}, nil
}
