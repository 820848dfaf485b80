// Package card tracks per-location presentation state for the catalog
// browser: whether a card is expanded and which carousel image it shows.
// Each State belongs to exactly one rendered card and is never shared.
package card

// Direction selects which way the image carousel advances.
type Direction int

const (
	Next Direction = iota
	Prev
)

// State is the presentation state for one rendered location card.
// Expanded and the carousel index are orthogonal; any combination is valid.
type State struct {
	LocationID    string
	Expanded      bool
	CarouselIndex int

	imageCount int
}

// NewState creates fresh presentation state for a location with the given
// number of images. Initial state: collapsed, first image.
func NewState(locationID string, imageCount int) *State {
	return &State{
		LocationID: locationID,
		imageCount: imageCount,
	}
}

// ToggleExpanded flips the expanded flag.
func (s *State) ToggleExpanded() {
	s.Expanded = !s.Expanded
}

// AdvanceImage moves the carousel one step in the given direction, wrapping
// cyclically. With fewer than two images this is a no-op.
func (s *State) AdvanceImage(d Direction) {
	if s.imageCount <= 1 {
		return
	}
	switch d {
	case Next:
		s.CarouselIndex = (s.CarouselIndex + 1) % s.imageCount
	case Prev:
		s.CarouselIndex = (s.CarouselIndex - 1 + s.imageCount) % s.imageCount
	}
}

// ImageCount returns the number of images the carousel cycles over.
func (s *State) ImageCount() int {
	return s.imageCount
}
