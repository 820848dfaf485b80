package card

import "github.com/jwebster45206/rockhound/pkg/catalog"

// Deck owns the card states for the currently rendered filtered view, keyed
// by location id. The rendering layer reconciles it against each new
// filtered view: locations leaving the view lose their state, locations
// re-entering get fresh state. The image failure cache lives elsewhere and
// is unaffected by reconciliation.
type Deck struct {
	states map[string]*State
}

// NewDeck creates an empty deck.
func NewDeck() *Deck {
	return &Deck{states: make(map[string]*State)}
}

// Reconcile updates the deck to match the given filtered view. Existing
// states for locations still in view are kept as-is; states for locations
// no longer in view are dropped; locations new to the view get fresh state.
func (d *Deck) Reconcile(visible []catalog.Location) {
	next := make(map[string]*State, len(visible))
	for _, loc := range visible {
		if s, ok := d.states[loc.ID]; ok {
			next[loc.ID] = s
			continue
		}
		next[loc.ID] = NewState(loc.ID, len(loc.Images))
	}
	d.states = next
}

// Get returns the state for a location currently in the deck, or nil if the
// location is not rendered. Callers must not mutate state for torn-down
// cards; late image events go to the failure cache instead.
func (d *Deck) Get(locationID string) *State {
	return d.states[locationID]
}

// Len returns the number of cards currently tracked.
func (d *Deck) Len() int {
	return len(d.states)
}
