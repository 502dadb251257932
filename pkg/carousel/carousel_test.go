package carousel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCarousel_NavigationAndTicks(t *testing.T) {
	c, err := New(letters(5), 3)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if diff := cmp.Diff(letters(3), c.Visible()); diff != "" {
		t.Fatalf("initial window mismatch (-want +got):\n%s", diff)
	}

	if got := c.Tick(); got.Start != 3 || got.Mode != ModeAutoAdvancing {
		t.Fatalf("expected auto tick to start 3, got %+v", got)
	}

	if got := c.Retreat(); got.Start != 0 || got.Mode != ModeManual {
		t.Fatalf("expected manual retreat to start 0, got %+v", got)
	}
	if got := c.Tick(); got.Start != 0 {
		t.Fatalf("expected tick to be ignored in manual mode, got %+v", got)
	}

	c.Retreat()
	snap := c.Snapshot()
	want := []string{letters(5)[2], letters(5)[3], letters(5)[4]}
	if snap.Start != 2 || snap.Mode != ModeManual {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if diff := cmp.Diff(want, snap.Visible); diff != "" {
		t.Fatalf("visible mismatch (-want +got):\n%s", diff)
	}
}
