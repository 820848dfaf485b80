package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/rockhound/internal/storage"
	"github.com/jwebster45206/rockhound/pkg/catalog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func testStorage() *storage.MockStorage {
	return storage.NewMockStorage([]catalog.Location{
		{
			ID:       "1",
			Name:     "Topaz Mountain",
			Type:     "Volcanic",
			Minerals: []string{"Topaz", "Red Beryl"},
			Images:   []string{"a", "b", "c"},
		},
		{
			ID:       "2",
			Name:     "Dugway Geode Beds",
			Type:     "Sedimentary",
			Minerals: []string{"Quartz"},
		},
	})
}

func TestLocationsHandler_List(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantIDs []string
	}{
		{
			name:    "no term returns all",
			url:     "/v1/locations",
			wantIDs: []string{"1", "2"},
		},
		{
			name:    "mineral term filters",
			url:     "/v1/locations?q=quartz",
			wantIDs: []string{"2"},
		},
		{
			name:    "term case is irrelevant",
			url:     "/v1/locations?q=VOLCANIC",
			wantIDs: []string{"1"},
		},
		{
			name:    "no match yields empty list",
			url:     "/v1/locations?q=opal",
			wantIDs: []string{},
		},
	}

	handler := NewLocationsHandler(testLogger(), testStorage())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var got []catalog.Location
			err := json.Unmarshal(w.Body.Bytes(), &got)
			assert.NoError(t, err)

			assert.Len(t, got, len(tt.wantIDs))
			for i, id := range tt.wantIDs {
				assert.Equal(t, id, got[i].ID)
			}
		})
	}
}

func TestLocationsHandler_Get(t *testing.T) {
	handler := NewLocationsHandler(testLogger(), testStorage())

	t.Run("known id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/locations/1", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got catalog.Location
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Topaz Mountain", got.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/locations/99", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/locations", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
