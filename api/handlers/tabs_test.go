package handlers

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func TestTabsHandler_RegisterRoutes(t *testing.T) {
	f := newFixture()
	handler := NewTabsHandler(f.registry, f.coord)

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	if openapi.Paths == nil || openapi.Paths["/tabs"] == nil || openapi.Paths["/tabs"].Put == nil {
		t.Error("PUT /tabs endpoint not registered")
	}
	if openapi.Paths["/tabs/activated"] == nil || openapi.Paths["/tabs/activated"].Post == nil {
		t.Error("POST /tabs/activated endpoint not registered")
	}
}

func TestTabsHandler_SyncTabs(t *testing.T) {
	f := newFixture()
	handler := NewTabsHandler(f.registry, f.coord)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Put("/tabs", map[string]interface{}{
		"tabs": []map[string]interface{}{
			{"id": 1, "windowId": 1, "url": "https://a.test", "title": "A", "active": true, "highlighted": true},
			{"id": 2, "windowId": 1, "url": "https://b.test", "title": "B", "active": false, "highlighted": true},
		},
		"focusedWindowId": 1,
	})

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), `"count":2`)

	selected := f.registry.SelectTabs(context.Background(), true)
	assert.Len(t, selected, 2)
}

func TestTabsHandler_TabActivated_InvalidatesPending(t *testing.T) {
	f := awaitingFixture(t)
	handler := NewTabsHandler(f.registry, f.coord)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	// Moving to a foreign tab clears the pending refinement.
	resp := api.Post("/tabs/activated", map[string]interface{}{
		"tabId":    99,
		"windowId": 2,
	})

	assert.Equal(t, 204, resp.Code)

	_, ok := f.coord.Pending()
	assert.False(t, ok)
}

func TestTabsHandler_TabActivated_OriginTabKeepsPending(t *testing.T) {
	f := awaitingFixture(t)
	handler := NewTabsHandler(f.registry, f.coord)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Post("/tabs/activated", map[string]interface{}{
		"tabId":    1,
		"windowId": 1,
	})

	assert.Equal(t, 204, resp.Code)

	pending, ok := f.coord.Pending()
	assert.True(t, ok)
	assert.Equal(t, "https://a.test", pending.URL)
}
