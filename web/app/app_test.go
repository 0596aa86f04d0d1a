package app_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/design-hub/web/app"
)

func TestTable_Resolve(t *testing.T) {
	table, err := app.Table()
	if err != nil {
		t.Fatalf("Table() failed: %v", err)
	}

	tests := []struct {
		path     string
		template string
		title    string
	}{
		{"/", "home.html", "Home"},
		{"/about", "about.html", "About"},
		{"/profile", "profile.html", "Profile"},
		{"/group-chats", "group-chats.html", "Group Chats"},
		{"/designers", "designers.html", "Designers"},
		{"/quiz", "quiz.html", "Quiz"},
		{"/competitions", "competitions.html", "Competitions"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			view, ok := table.Resolve(tt.path)
			if !ok {
				t.Fatalf("Resolve(%q) found no view", tt.path)
			}
			if view.Template != tt.template || view.Title != tt.title {
				t.Errorf("Resolve(%q) = %+v", tt.path, view)
			}
		})
	}

	if len(table.Views()) != len(tests) {
		t.Errorf("len(Views()) = %d, want %d", len(table.Views()), len(tests))
	}

	view, ok := table.Resolve("/nonexistent")
	if ok || view.Template != "404.html" {
		t.Errorf("Resolve(/nonexistent) = %+v, %v; want 404 view", view, ok)
	}
}

func TestNewModule_ServesViews(t *testing.T) {
	m, err := app.NewModule("/")
	if err != nil {
		t.Fatalf("NewModule() failed: %v", err)
	}

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/", http.StatusOK, "<title>Home · Design Hub</title>"},
		{"/about", http.StatusOK, "<h1>About</h1>"},
		{"/profile", http.StatusOK, "<h1>Profile</h1>"},
		{"/group-chats", http.StatusOK, "<h1>Group Chats</h1>"},
		{"/designers", http.StatusOK, "<h1>Designers</h1>"},
		{"/quiz", http.StatusOK, "<h1>Quiz</h1>"},
		{"/competitions", http.StatusOK, "<h1>Competitions</h1>"},
		{"/nonexistent", http.StatusNotFound, "Page not found"},
		{"/dist/app.js", http.StatusOK, "data-endpoint"},
		{"/robots.txt", http.StatusOK, "User-agent"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			m.Serve(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}
		})
	}
}

func TestNewModule_HomeLinksToAuthEndpoints(t *testing.T) {
	m, err := app.NewModule("/")
	if err != nil {
		t.Fatalf("NewModule() failed: %v", err)
	}

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	for _, endpoint := range []string{"/api/auth/signup", "/api/auth/login"} {
		if !strings.Contains(body, endpoint) {
			t.Errorf("home view missing %s", endpoint)
		}
	}
}
