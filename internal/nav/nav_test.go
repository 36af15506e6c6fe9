package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStartRoute(t *testing.T) {
	tests := []struct {
		width int
		want  Name
	}{
		{0, List},
		{360, List},
		{599, List},
		{600, MultiPaneList},
		{840, MultiPaneList},
	}
	for _, tt := range tests {
		if got := StartRoute(tt.width).Name; got != tt.want {
			t.Fatalf("StartRoute(%d) = %s, want %s", tt.width, got, tt.want)
		}
	}
}

func TestRouteStringRoundTrip(t *testing.T) {
	routes := []Route{
		{Name: List},
		{Name: MultiPaneList},
		{Name: Settings},
		NewNote(),
		EditNote(3),
		ViewNote(12),
	}
	for _, r := range routes {
		got, err := ParseRoute(r.String())
		if err != nil {
			t.Fatalf("ParseRoute(%q): %v", r.String(), err)
		}
		if got != r {
			t.Fatalf("ParseRoute(%q) = %+v, want %+v", r.String(), got, r)
		}
	}
	if EditNote(3).String() != "EditNote?id=3" {
		t.Fatalf("unexpected route string %q", EditNote(3).String())
	}
}

func TestParseRouteRejects(t *testing.T) {
	for _, s := range []string{
		"",
		"Nowhere",
		"ViewNote",
		"ViewNote?id=abc",
		"EditNote?slug=3",
		"NoteList?id=1",
	} {
		if _, err := ParseRoute(s); err == nil {
			t.Fatalf("ParseRoute(%q) expected error", s)
		}
	}
}

func TestControllerBackStack(t *testing.T) {
	c := NewController(StartRoute(320))
	if c.Back() {
		t.Fatalf("Back at root should report false")
	}

	c.NavigateTo(ViewNote(1))
	c.NavigateTo(EditNote(1))
	if c.Depth() != 3 {
		t.Fatalf("depth = %d, want 3", c.Depth())
	}
	if got := c.Current(); got != EditNote(1) {
		t.Fatalf("current = %v", got)
	}

	if !c.Back() || c.Current() != ViewNote(1) {
		t.Fatalf("expected to return to view, got %v", c.Current())
	}
	if !c.Back() || c.Current().Name != List {
		t.Fatalf("expected list root, got %v", c.Current())
	}
}

func TestControllerForget(t *testing.T) {
	c := NewController(Route{Name: MultiPaneList})
	c.NavigateTo(ViewNote(4))
	c.NavigateTo(ViewNote(5))
	c.NavigateTo(EditNote(4))

	c.Forget(4)

	want := []Route{{Name: MultiPaneList}, ViewNote(5)}
	if diff := cmp.Diff(want, c.Stack()); diff != "" {
		t.Fatalf("stack after forget (-want +got):\n%s", diff)
	}
}

func TestControllerForgetKeepsRoot(t *testing.T) {
	c := NewController(Route{Name: List})
	c.NavigateTo(EditNote(7))

	c.Forget(7)

	want := []Route{{Name: List}}
	if diff := cmp.Diff(want, c.Stack()); diff != "" {
		t.Fatalf("stack after forget (-want +got):\n%s", diff)
	}
}
