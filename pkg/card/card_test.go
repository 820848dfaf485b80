package card

import "testing"

func TestState_InitialState(t *testing.T) {
	s := NewState("1", 3)

	if s.Expanded {
		t.Error("new state should start collapsed")
	}
	if s.CarouselIndex != 0 {
		t.Errorf("new state CarouselIndex = %d, want 0", s.CarouselIndex)
	}
}

func TestState_ToggleExpanded(t *testing.T) {
	s := NewState("1", 0)

	s.ToggleExpanded()
	if !s.Expanded {
		t.Error("expected expanded after first toggle")
	}
	s.ToggleExpanded()
	if s.Expanded {
		t.Error("expected collapsed after second toggle")
	}
}

func TestState_AdvanceImage(t *testing.T) {
	tests := []struct {
		name       string
		imageCount int
		steps      []Direction
		want       int
	}{
		{
			name:       "next advances",
			imageCount: 3,
			steps:      []Direction{Next},
			want:       1,
		},
		{
			name:       "next wraps at the end",
			imageCount: 3,
			steps:      []Direction{Next, Next, Next},
			want:       0,
		},
		{
			name:       "prev wraps from zero",
			imageCount: 3,
			steps:      []Direction{Prev},
			want:       2,
		},
		{
			name:       "prev then next cancel out",
			imageCount: 5,
			steps:      []Direction{Prev, Next},
			want:       0,
		},
		{
			name:       "single image is a no-op",
			imageCount: 1,
			steps:      []Direction{Next, Prev, Next},
			want:       0,
		},
		{
			name:       "no images is a no-op",
			imageCount: 0,
			steps:      []Direction{Next, Prev},
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState("1", tt.imageCount)
			for _, d := range tt.steps {
				s.AdvanceImage(d)
			}
			if s.CarouselIndex != tt.want {
				t.Errorf("CarouselIndex = %d, want %d", s.CarouselIndex, tt.want)
			}
		})
	}
}

func TestState_AdvanceImage_FullCycleReturnsToStart(t *testing.T) {
	for _, n := range []int{2, 3, 7} {
		s := NewState("1", n)
		s.AdvanceImage(Next)
		start := s.CarouselIndex
		for i := 0; i < n; i++ {
			s.AdvanceImage(Next)
		}
		if s.CarouselIndex != start {
			t.Errorf("after %d next steps from %d, CarouselIndex = %d", n, start, s.CarouselIndex)
		}
	}
}

func TestState_AdvanceImageDoesNotToggleExpanded(t *testing.T) {
	s := NewState("1", 3)

	s.AdvanceImage(Next)
	if s.Expanded {
		t.Error("AdvanceImage must not change Expanded")
	}

	s.ToggleExpanded()
	s.AdvanceImage(Prev)
	if !s.Expanded {
		t.Error("AdvanceImage must not change Expanded")
	}
}
