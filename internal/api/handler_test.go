package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/design-hub/internal/api"
	"github.com/JaimeStill/design-hub/internal/config"
	"github.com/JaimeStill/design-hub/pkg/authapi"
	"github.com/JaimeStill/design-hub/pkg/middleware"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAuth struct {
	calls    []string
	response json.RawMessage
	err      error
}

func (f *fakeAuth) Signup(ctx context.Context, username, email, password string) (json.RawMessage, error) {
	f.calls = append(f.calls, "signup:"+username+":"+email+":"+password)
	return f.response, f.err
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (json.RawMessage, error) {
	f.calls = append(f.calls, "login:"+email+":"+password)
	return f.response, f.err
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func newModuleHandler(t *testing.T, auth api.AuthSystem) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.Auth.BaseURL = "http://localhost:3000/api"
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	m := api.NewModule(cfg, auth, testLogger())
	return http.HandlerFunc(m.Serve)
}

func TestHandler_Login(t *testing.T) {
	auth := &fakeAuth{response: json.RawMessage(`{"token":"abc"}`)}
	h := newModuleHandler(t, auth)

	rec := serve(h, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"pw"}`)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != `{"token":"abc"}` {
		t.Errorf("body = %q", rec.Body.String())
	}
	if len(auth.calls) != 1 || auth.calls[0] != "login:a@b.com:pw" {
		t.Errorf("calls = %v", auth.calls)
	}
}

func TestHandler_Signup(t *testing.T) {
	auth := &fakeAuth{response: json.RawMessage(`{"id":"1"}`)}
	h := newModuleHandler(t, auth)

	rec := serve(h, http.MethodPost, "/api/auth/signup", `{"username":"ada","email":"ada@example.com","password":"pw"}`)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if len(auth.calls) != 1 || auth.calls[0] != "signup:ada:ada@example.com:pw" {
		t.Errorf("calls = %v", auth.calls)
	}
}

func TestHandler_RelaysUpstreamStatus(t *testing.T) {
	auth := &fakeAuth{err: &authapi.StatusError{
		Endpoint:   "/login",
		StatusCode: http.StatusUnauthorized,
		Body:       []byte(`{"message":"invalid credentials"}`),
	}}
	h := newModuleHandler(t, auth)

	rec := serve(h, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"bad"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if rec.Body.String() != `{"message":"invalid credentials"}` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandler_TransportError(t *testing.T) {
	auth := &fakeAuth{err: errors.New("dial tcp: connection refused")}
	h := newModuleHandler(t, auth)

	rec := serve(h, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"pw"}`)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if body["error"] != api.ErrAuthUnavailable.Error() {
		t.Errorf("error = %q, want %q", body["error"], api.ErrAuthUnavailable.Error())
	}
	if strings.Contains(rec.Body.String(), "dial tcp") {
		t.Errorf("body leaks the transport error: %s", rec.Body.String())
	}
}

func TestHandler_RelaysUpstreamContentType(t *testing.T) {
	auth := &fakeAuth{err: &authapi.StatusError{
		Endpoint:    "/login",
		StatusCode:  http.StatusServiceUnavailable,
		ContentType: "text/html",
		Body:        []byte("<h1>maintenance</h1>"),
	}}
	h := newModuleHandler(t, auth)

	rec := serve(h, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"pw"}`)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html" {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if rec.Body.String() != "<h1>maintenance</h1>" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandler_BadRequests(t *testing.T) {
	auth := &fakeAuth{}
	h := newModuleHandler(t, auth)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"empty body", "", http.StatusBadRequest},
		{"malformed json", "{", http.StatusBadRequest},
		{"too large", `{"email":"` + strings.Repeat("a", 70000) + `"}`, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, http.MethodPost, "/api/auth/login", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}

	if len(auth.calls) != 0 {
		t.Errorf("auth called for invalid requests: %v", auth.calls)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := newModuleHandler(t, &fakeAuth{})

	rec := serve(h, http.MethodGet, "/api/auth/login", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestModule_EndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"abc"}`))
	}))
	defer upstream.Close()

	client := authapi.New(&authapi.Config{BaseURL: upstream.URL + "/api"})
	h := newModuleHandler(t, client)

	rec := serve(h, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"pw"}`)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != `{"token":"abc"}` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", api.ErrBadRequest, http.StatusBadRequest},
		{"too large", api.ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
		{"upstream status", &authapi.StatusError{StatusCode: http.StatusConflict}, http.StatusConflict},
		{"invalid response", authapi.ErrInvalidResponse, http.StatusBadGateway},
		{"transport", errors.New("boom"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := api.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestModule_TrailingSlashRedirectKeepsPrefix(t *testing.T) {
	h := newModuleHandler(t, &fakeAuth{})

	rec := serve(h, http.MethodPost, "/api/auth/login/", `{}`)
	if rec.Code != http.StatusPermanentRedirect {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusPermanentRedirect)
	}
	if loc := rec.Header().Get("Location"); loc != "/api/auth/login" {
		t.Errorf("Location = %q, want /api/auth/login", loc)
	}
}

func TestModule_RedirectAndPreflightAreLogged(t *testing.T) {
	enabled := true
	cfg := &config.Config{}
	cfg.Auth.BaseURL = "http://localhost:3000/api"
	cfg.CORS.Enabled = &enabled
	cfg.CORS.Origins = []string{"https://app.example.com"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}
	m := api.NewModule(cfg, &fakeAuth{}, testLogger())

	t.Run("redirect", func(t *testing.T) {
		rec := serve(http.HandlerFunc(m.Serve), http.MethodPost, "/api/auth/login/", `{}`)

		if rec.Code != http.StatusPermanentRedirect {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusPermanentRedirect)
		}
		if rec.Header().Get(middleware.RequestIDHeader) == "" {
			t.Error("redirect response has no request id")
		}
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		rec := httptest.NewRecorder()
		m.Serve(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
		if rec.Header().Get(middleware.RequestIDHeader) == "" {
			t.Error("preflight response has no request id")
		}
	})
}
