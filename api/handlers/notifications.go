// ABOUTME: Notification handlers for the Huma API
// ABOUTME: UI clients drain toasts and poll the badge counter

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"markdown-collector-api/api/dto/responses"
	"markdown-collector-api/core/domain"
	"markdown-collector-api/core/notify"
)

// NotificationsHandler handles the notification endpoints
type NotificationsHandler struct {
	sink *notify.Sink
}

// NewNotificationsHandler creates a new notifications handler
func NewNotificationsHandler(sink *notify.Sink) *NotificationsHandler {
	return &NotificationsHandler{sink: sink}
}

// RegisterRoutes registers the notification routes
func (h *NotificationsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "drainNotifications",
		Method:      http.MethodGet,
		Path:        "/notifications",
		Summary:     "Drain queued notifications",
		Description: "Returns and clears the queued toast messages.",
		Tags:        []string{"Notifications"},
	}, h.Drain)

	huma.Register(api, huma.Operation{
		OperationID: "getBadge",
		Method:      http.MethodGet,
		Path:        "/badge",
		Summary:     "Get the badge counter",
		Tags:        []string{"Notifications"},
	}, h.Badge)
}

// DrainOutput defines the output for the Drain operation
type DrainOutput struct {
	Body responses.NotificationsResponse
}

// Drain returns and clears the queued toasts
func (h *NotificationsHandler) Drain(ctx context.Context, input *struct{}) (*DrainOutput, error) {
	notifications := h.sink.Drain()
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return &DrainOutput{Body: responses.NotificationsResponse{Notifications: notifications}}, nil
}

// BadgeOutput defines the output for the Badge operation
type BadgeOutput struct {
	Body responses.BadgeResponse
}

// Badge returns the badge counter
func (h *NotificationsHandler) Badge(ctx context.Context, input *struct{}) (*BadgeOutput, error) {
	return &BadgeOutput{Body: responses.BadgeResponse{Count: h.sink.Badge()}}, nil
}
