// Package app is the web front end: the view table, its embedded templates
// and the static bundle the views load.
package app

import (
	"embed"
	"net/http"

	"github.com/JaimeStill/design-hub/pkg/module"
	"github.com/JaimeStill/design-hub/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

var publicFiles = []string{
	"favicon.svg",
	"robots.txt",
	"site.webmanifest",
}

var views = []web.ViewDef{
	{Route: "/", Template: "home.html", Title: "Home", Bundle: "app"},
	{Route: "/about", Template: "about.html", Title: "About", Bundle: "app"},
	{Route: "/profile", Template: "profile.html", Title: "Profile", Bundle: "app"},
	{Route: "/group-chats", Template: "group-chats.html", Title: "Group Chats", Bundle: "app"},
	{Route: "/designers", Template: "designers.html", Title: "Designers", Bundle: "app"},
	{Route: "/quiz", Template: "quiz.html", Title: "Quiz", Bundle: "app"},
	{Route: "/competitions", Template: "competitions.html", Title: "Competitions", Bundle: "app"},
}

var notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}

// Table returns the validated view table.
func Table() (*web.ViewTable, error) {
	return web.NewViewTable(views, notFoundView)
}

// NewModule creates the app module mounted at basePath. Templates are parsed
// here so a broken view fails startup rather than the first request.
func NewModule(basePath string) (*module.Module, error) {
	table, err := Table()
	if err != nil {
		return nil, err
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		table.All(),
	)
	if err != nil {
		return nil, err
	}

	return module.New(basePath, buildRouter(table, ts)), nil
}

func buildRouter(table *web.ViewTable, ts *web.TemplateSet) http.Handler {
	r := web.NewRouter()
	r.SetFallback(ts.ErrorHandler(layout, table.NotFound(), http.StatusNotFound))

	for _, view := range table.Views() {
		r.HandleFunc(web.Pattern(view.Route), ts.PageHandler(layout, view))
	}

	r.Handle("GET /dist/", http.FileServer(http.FS(distFS)))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}
