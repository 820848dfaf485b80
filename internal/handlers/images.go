package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jwebster45206/rockhound/internal/storage"
)

// ImageFailureRequest reports one failed image load.
type ImageFailureRequest struct {
	LocationID  string `json:"location_id"`
	ImageIndex  int    `json:"image_index"`
	DisplayName string `json:"display_name"`
}

// ImageResolveResponse carries the display URI for a slot.
type ImageResolveResponse struct {
	URI string `json:"uri"`
}

// ImagesHandler accepts failure reports at POST /v1/images/failures and
// resolves display URIs at GET /v1/images/resolve. A failed load is normal
// input here, not an error: it just transitions the failure cache.
type ImagesHandler struct {
	log     *slog.Logger
	storage storage.Storage
}

func NewImagesHandler(log *slog.Logger, storage storage.Storage) *ImagesHandler {
	return &ImagesHandler{
		log:     log,
		storage: storage,
	}
}

func (h *ImagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/v1/images/failures":
		h.handleFailure(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/v1/images/resolve":
		h.handleResolve(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ImagesHandler) handleFailure(w http.ResponseWriter, r *http.Request) {
	var req ImageFailureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body. Expected JSON with 'location_id', 'image_index' and 'display_name'.", http.StatusBadRequest)
		return
	}

	if req.LocationID == "" {
		http.Error(w, "Invalid request: location_id cannot be empty", http.StatusBadRequest)
		return
	}
	if req.ImageIndex < 0 {
		http.Error(w, "Invalid request: image_index cannot be negative", http.StatusBadRequest)
		return
	}

	if err := h.storage.RecordFailure(r.Context(), req.LocationID, req.ImageIndex, req.DisplayName); err != nil {
		h.log.Error("Failed to record image failure", "error", err,
			"location_id", req.LocationID, "image_index", req.ImageIndex)
		http.Error(w, "Failed to record image failure", http.StatusInternalServerError)
		return
	}

	h.log.Debug("Image failure recorded",
		"location_id", req.LocationID, "image_index", req.ImageIndex)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ImagesHandler) handleResolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	locationID := q.Get("location_id")
	if locationID == "" {
		http.Error(w, "location_id is required", http.StatusBadRequest)
		return
	}

	imageIndex, err := strconv.Atoi(q.Get("image_index"))
	if err != nil || imageIndex < 0 {
		http.Error(w, "image_index must be a non-negative integer", http.StatusBadRequest)
		return
	}

	uri, err := h.storage.Resolve(r.Context(), locationID, imageIndex, q.Get("fallback"))
	if err != nil {
		h.log.Error("Failed to resolve image", "error", err,
			"location_id", locationID, "image_index", imageIndex)
		http.Error(w, "Failed to resolve image", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.log, http.StatusOK, ImageResolveResponse{URI: uri})
}
