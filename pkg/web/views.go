// Package web serves server-rendered views from pre-parsed templates.
// A ViewTable maps request paths to views, a TemplateSet renders them, and a
// Router dispatches requests with a fallback for paths the table does not know.
package web

import (
	"fmt"
	"strings"
)

// ViewDef binds a route to the template that renders it.
type ViewDef struct {
	Route    string
	Template string
	Title    string
	Bundle   string
}

// ViewData is passed to every template. BasePath enables portable URLs via {{ .BasePath }}.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	Path     string
	Data     any
}

// ViewTable is an ordered, immutable mapping from exact paths to views with a
// not-found view returned for anything unmatched.
type ViewTable struct {
	views    []ViewDef
	index    map[string]int
	notFound ViewDef
}

// NewViewTable validates views and builds the lookup index. Routes must start
// with "/" and be unique.
func NewViewTable(views []ViewDef, notFound ViewDef) (*ViewTable, error) {
	if notFound.Template == "" {
		return nil, fmt.Errorf("%w: not-found view has no template", ErrInvalidRoute)
	}

	index := make(map[string]int, len(views))
	for i, v := range views {
		if !strings.HasPrefix(v.Route, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRoute, v.Route)
		}
		if v.Template == "" {
			return nil, fmt.Errorf("%w: %q has no template", ErrInvalidRoute, v.Route)
		}
		if _, exists := index[v.Route]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoute, v.Route)
		}
		index[v.Route] = i
	}

	return &ViewTable{
		views:    append([]ViewDef(nil), views...),
		index:    index,
		notFound: notFound,
	}, nil
}

// Resolve returns the view registered for path. When nothing matches it returns
// the not-found view and false.
func (t *ViewTable) Resolve(path string) (ViewDef, bool) {
	if i, ok := t.index[path]; ok {
		return t.views[i], true
	}
	return t.notFound, false
}

// Views returns a copy of the table in declaration order.
func (t *ViewTable) Views() []ViewDef {
	return append([]ViewDef(nil), t.views...)
}

func (t *ViewTable) NotFound() ViewDef {
	return t.notFound
}

// All returns the routed views followed by the not-found view, the set a
// TemplateSet must parse.
func (t *ViewTable) All() []ViewDef {
	return append(t.Views(), t.notFound)
}

// Pattern converts a view route into a ServeMux pattern for GET requests.
// The root route is anchored so it does not match every path.
func Pattern(route string) string {
	if route == "/" {
		return "GET /{$}"
	}
	return "GET " + route
}
