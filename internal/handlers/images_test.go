package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/rockhound/pkg/imagecache"
)

func postFailure(t *testing.T, handler http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/images/failures", bytes.NewReader(data))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func resolve(t *testing.T, handler http.Handler, url string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return w.Code, ""
	}
	var resp ImageResolveResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp.URI
}

func TestImagesHandler_FailureThenResolve(t *testing.T) {
	handler := NewImagesHandler(testLogger(), testStorage())

	// Before any failure, the fallback wins.
	code, uri := resolve(t, handler, "/v1/images/resolve?location_id=1&image_index=0&fallback=a")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "a", uri)

	w := postFailure(t, handler, ImageFailureRequest{
		LocationID:  "1",
		ImageIndex:  0,
		DisplayName: "Topaz Mountain",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Same slot now resolves to the recorded placeholder.
	code, uri = resolve(t, handler, "/v1/images/resolve?location_id=1&image_index=0&fallback=a")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, imagecache.PlaceholderURI("Topaz Mountain"), uri)

	// Reporting again changes nothing.
	w = postFailure(t, handler, ImageFailureRequest{
		LocationID:  "1",
		ImageIndex:  0,
		DisplayName: "Topaz Mountain",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	code, again := resolve(t, handler, "/v1/images/resolve?location_id=1&image_index=0&fallback=a")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, uri, again)
}

func TestImagesHandler_ResolveWithoutFallback(t *testing.T) {
	handler := NewImagesHandler(testLogger(), testStorage())

	code, uri := resolve(t, handler, "/v1/images/resolve?location_id=x&image_index=0")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, imagecache.GenericPlaceholderURI, uri)
}

func TestImagesHandler_BadRequests(t *testing.T) {
	handler := NewImagesHandler(testLogger(), testStorage())

	tests := []struct {
		name string
		run  func() *httptest.ResponseRecorder
	}{
		{
			name: "invalid JSON body",
			run: func() *httptest.ResponseRecorder {
				req := httptest.NewRequest(http.MethodPost, "/v1/images/failures", bytes.NewReader([]byte("not json")))
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)
				return w
			},
		},
		{
			name: "empty location id",
			run: func() *httptest.ResponseRecorder {
				return postFailure(t, handler, ImageFailureRequest{ImageIndex: 0, DisplayName: "X"})
			},
		},
		{
			name: "negative image index",
			run: func() *httptest.ResponseRecorder {
				return postFailure(t, handler, ImageFailureRequest{LocationID: "1", ImageIndex: -1, DisplayName: "X"})
			},
		},
		{
			name: "resolve without location id",
			run: func() *httptest.ResponseRecorder {
				req := httptest.NewRequest(http.MethodGet, "/v1/images/resolve?image_index=0", nil)
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)
				return w
			},
		},
		{
			name: "resolve with non-numeric index",
			run: func() *httptest.ResponseRecorder {
				req := httptest.NewRequest(http.MethodGet, "/v1/images/resolve?location_id=1&image_index=abc", nil)
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)
				return w
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, tt.run().Code)
		})
	}
}
