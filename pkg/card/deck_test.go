package card

import (
	"testing"

	"github.com/jwebster45206/rockhound/pkg/catalog"
)

func view(ids ...string) []catalog.Location {
	locs := make([]catalog.Location, 0, len(ids))
	for _, id := range ids {
		locs = append(locs, catalog.Location{
			ID:     id,
			Images: []string{"a", "b"},
		})
	}
	return locs
}

func TestDeck_ReconcileCreatesAndDrops(t *testing.T) {
	d := NewDeck()

	d.Reconcile(view("1", "2"))
	if d.Len() != 2 {
		t.Fatalf("deck has %d cards, want 2", d.Len())
	}
	if d.Get("1") == nil || d.Get("2") == nil {
		t.Fatal("expected states for both visible locations")
	}

	d.Reconcile(view("2"))
	if d.Get("1") != nil {
		t.Error("state for filtered-out location should be dropped")
	}
	if d.Get("2") == nil {
		t.Error("state for still-visible location should survive")
	}
}

func TestDeck_SurvivingStateIsKept(t *testing.T) {
	d := NewDeck()
	d.Reconcile(view("1", "2"))

	s := d.Get("1")
	s.ToggleExpanded()
	s.AdvanceImage(Next)

	d.Reconcile(view("1"))

	kept := d.Get("1")
	if !kept.Expanded || kept.CarouselIndex != 1 {
		t.Errorf("surviving card lost state: expanded=%v index=%d", kept.Expanded, kept.CarouselIndex)
	}
}

func TestDeck_ReentryGetsFreshState(t *testing.T) {
	d := NewDeck()
	d.Reconcile(view("1"))

	s := d.Get("1")
	s.ToggleExpanded()
	s.AdvanceImage(Next)

	// Location leaves the filtered view, then comes back.
	d.Reconcile(view())
	d.Reconcile(view("1"))

	fresh := d.Get("1")
	if fresh.Expanded || fresh.CarouselIndex != 0 {
		t.Errorf("re-entering card should start fresh: expanded=%v index=%d", fresh.Expanded, fresh.CarouselIndex)
	}
}
