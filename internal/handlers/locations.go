package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/rockhound/internal/storage"
	"github.com/jwebster45206/rockhound/pkg/catalog"
)

// LocationsHandler serves the catalog: the filtered list at /v1/locations
// and single locations at /v1/locations/{id}. The q parameter is the search
// term, passed through verbatim; matching handles case folding.
type LocationsHandler struct {
	log     *slog.Logger
	storage storage.Storage
}

func NewLocationsHandler(log *slog.Logger, storage storage.Storage) *LocationsHandler {
	return &LocationsHandler{
		log:     log,
		storage: storage,
	}
}

func (h *LocationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/locations"), "/")
		if id == "" {
			h.handleList(w, r)
			return
		}
		h.handleGet(w, r, id)
	default:
		http.Error(w, "Method not allowed. Only GET is supported at /v1/locations.", http.StatusMethodNotAllowed)
	}
}

func (h *LocationsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locations, err := h.storage.ListLocations(ctx)
	if err != nil {
		h.log.Error("Failed to list locations", "error", err)
		http.Error(w, "Failed to retrieve locations", http.StatusInternalServerError)
		return
	}

	term := r.URL.Query().Get("q")
	filtered := make([]catalog.Location, 0, len(locations))
	for _, loc := range locations {
		if catalog.Matches(loc, term) {
			filtered = append(filtered, loc)
		}
	}

	writeJSON(w, h.log, http.StatusOK, filtered)
}

func (h *LocationsHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	if strings.Contains(id, "/") {
		http.Error(w, "Invalid location id", http.StatusBadRequest)
		return
	}

	loc, err := h.storage.GetLocation(r.Context(), id)
	if err != nil {
		h.log.Error("Failed to get location", "error", err, "id", id)
		http.Error(w, "Failed to retrieve location", http.StatusInternalServerError)
		return
	}
	if loc == nil {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}

	writeJSON(w, h.log, http.StatusOK, loc)
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("Failed to marshal response", "error", err)
		http.Error(w, "Failed to process response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
