// Package nav holds the route table and back stack that decide which screen
// is shown. It performs no identifier validation; unknown note ids are the
// store's concern.
package nav

import (
	"fmt"
	"strconv"
	"strings"
)

// Name identifies a destination.
type Name string

const (
	List          Name = "NoteList"
	MultiPaneList Name = "NoteListMultiPane"
	View          Name = "ViewNote"
	Edit          Name = "EditNote"
	Settings      Name = "AppSettings"
)

// MultiPaneMinWidth is the smallest width, in dp, that gets the multi-pane list.
const MultiPaneMinWidth = 600

// Route is a destination plus its optional note id.
type Route struct {
	Name  Name
	ID    int64
	HasID bool
}

// StartRoute picks the first screen for a window widthDP wide.
func StartRoute(widthDP int) Route {
	if widthDP >= MultiPaneMinWidth {
		return Route{Name: MultiPaneList}
	}
	return Route{Name: List}
}

// NewNote is the Edit route without an id.
func NewNote() Route {
	return Route{Name: Edit}
}

// EditNote is the Edit route for an existing note.
func EditNote(id int64) Route {
	return Route{Name: Edit, ID: id, HasID: true}
}

// ViewNote is the View route for an existing note.
func ViewNote(id int64) Route {
	return Route{Name: View, ID: id, HasID: true}
}

// IsList reports whether r is one of the list screens.
func (r Route) IsList() bool {
	return r.Name == List || r.Name == MultiPaneList
}

func (r Route) String() string {
	if r.HasID {
		return fmt.Sprintf("%s?id=%d", r.Name, r.ID)
	}
	return string(r.Name)
}

// ParseRoute parses the form produced by Route.String.
func ParseRoute(s string) (Route, error) {
	s = strings.TrimSpace(s)
	name, query, hasQuery := strings.Cut(s, "?")

	r := Route{Name: Name(name)}
	switch r.Name {
	case List, MultiPaneList, View, Edit, Settings:
	default:
		return Route{}, fmt.Errorf("unknown route %q", name)
	}

	if !hasQuery {
		if r.Name == View {
			return Route{}, fmt.Errorf("route %s requires an id", name)
		}
		return r, nil
	}
	if r.Name != View && r.Name != Edit {
		return Route{}, fmt.Errorf("route %s takes no arguments", name)
	}

	raw, ok := strings.CutPrefix(query, "id=")
	if !ok {
		return Route{}, fmt.Errorf("route %s: unsupported argument %q", name, query)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Route{}, fmt.Errorf("route %s: invalid id %q: %w", name, raw, err)
	}
	r.ID = id
	r.HasID = true
	return r, nil
}

// Controller owns the back stack. The zero value is unusable; use NewController.
type Controller struct {
	stack []Route
}

// NewController starts a stack rooted at start.
func NewController(start Route) *Controller {
	return &Controller{stack: []Route{start}}
}

// NavigateTo pushes r.
func (c *Controller) NavigateTo(r Route) {
	c.stack = append(c.stack, r)
}

// Back pops the current route. It returns false at the root.
func (c *Controller) Back() bool {
	if len(c.stack) <= 1 {
		return false
	}
	c.stack = c.stack[:len(c.stack)-1]
	return true
}

// Current returns the route on top of the stack.
func (c *Controller) Current() Route {
	return c.stack[len(c.stack)-1]
}

// Depth is the number of routes on the stack, root included.
func (c *Controller) Depth() int {
	return len(c.stack)
}

// Forget drops non-root entries that point at id, typically after a delete.
func (c *Controller) Forget(id int64) {
	kept := c.stack[:1]
	for _, r := range c.stack[1:] {
		if r.HasID && r.ID == id {
			continue
		}
		kept = append(kept, r)
	}
	c.stack = kept
}

// Stack returns a copy of the back stack, root first.
func (c *Controller) Stack() []Route {
	out := make([]Route, len(c.stack))
	copy(out, c.stack)
	return out
}
