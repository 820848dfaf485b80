// Package imagecache remembers which catalog images failed to load and
// substitutes placeholder URIs for them. Entries are keyed by stable
// location id and image index, so a failure recorded while a card was on
// screen survives the card being filtered out and recreated. Entries are
// never removed; a failed image is not re-fetched for the life of the cache.
package imagecache

import (
	"context"
	"net/url"
)

const placeholderBase = "https://placehold.co/600x400"

// GenericPlaceholderURI is shown for slots with no usable source at all,
// e.g. a location with an empty image list.
var GenericPlaceholderURI = PlaceholderURI("No Image")

// Cache records image load failures and resolves display URIs.
type Cache interface {
	// RecordFailure marks (locationID, imageIndex) as failed, storing a
	// placeholder URI derived from displayName. Idempotent: repeated calls
	// with the same key leave the same effective entry.
	RecordFailure(ctx context.Context, locationID string, imageIndex int, displayName string) error

	// Resolve returns the display URI for a slot, evaluated fresh on every
	// call: recorded placeholder first, then the non-empty fallback, then
	// the generic placeholder.
	Resolve(ctx context.Context, locationID string, imageIndex int, fallbackURI string) (string, error)
}

// PlaceholderURI builds the substitute image URI for a display name using
// the placeholder endpoint convention (name query-encoded into the text
// parameter).
func PlaceholderURI(displayName string) string {
	return placeholderBase + "?text=" + url.QueryEscape(displayName)
}

// Fallback applies the lower two tiers of the resolve order for callers
// that have already ruled out a recorded failure.
func Fallback(fallbackURI string) string {
	if fallbackURI != "" {
		return fallbackURI
	}
	return GenericPlaceholderURI
}
