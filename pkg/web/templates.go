package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

// TemplateSet holds one pre-parsed template tree per view. Parsing happens once
// at startup so a bad template fails the process before it serves traffic.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts matching layoutGlob, then clones them for
// each view and parses the view template from viewSubdir on top.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		if _, done := parsed[v.Template]; done {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", v.Template, err)
		}
		parsed[v.Template] = t
	}

	return &TemplateSet{
		views:    parsed,
		basePath: strings.TrimSuffix(basePath, "/"),
	}, nil
}

func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// PageHandler renders view inside layout with status 200.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef) http.HandlerFunc {
	return ts.handler(layout, view, http.StatusOK)
}

// ErrorHandler renders view inside layout with the given status. If rendering
// fails the plain status text is written instead.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return ts.handler(layout, view, status)
}

func (ts *TemplateSet) handler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{
			Title:    view.Title,
			Bundle:   view.Bundle,
			BasePath: ts.basePath,
			Path:     r.URL.Path,
		}
		if err := ts.Render(w, layout, view.Template, status, data); err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// Render executes layout for the named view template. The response is buffered
// so a template error never leaves a half-written page.
func (ts *TemplateSet) Render(w http.ResponseWriter, layout, name string, status int, data ViewData) error {
	t, ok := ts.views[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf strings.Builder
	if err := t.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write([]byte(buf.String()))
	return err
}
