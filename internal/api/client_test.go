package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MoroniPereira/TIME-SHEET/internal/api"
	"github.com/MoroniPereira/TIME-SHEET/internal/errs"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestBearerInjection(t *testing.T) {
	t.Parallel()
	var gotAuth, gotCT, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		gotReqID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := api.New(srv.URL, 0, staticToken("tok123"), nil)
	if err := c.Get(context.Background(), "/auth/validate", nil); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotCT != "application/json" {
		t.Errorf("Content-Type = %q", gotCT)
	}
	if gotReqID == "" {
		t.Error("X-Request-Id missing")
	}
}

func TestNoBearerWhenSignedOut(t *testing.T) {
	t.Parallel()
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	c := api.New(srv.URL, 0, staticToken(""), nil)
	if err := c.Get(context.Background(), "/x", nil); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none", gotAuth)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"], "method": r.Method})
	}))
	defer srv.Close()

	c := api.New(srv.URL, 0, nil, nil)
	var out map[string]string
	if err := c.Post(context.Background(), "/echo", map[string]string{"msg": "hi"}, &out); err != nil {
		t.Fatal(err)
	}
	if out["echo"] != "hi" || out["method"] != http.MethodPost {
		t.Fatalf("out = %v", out)
	}
}

func TestStatusErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/unauthorized":
			http.Error(w, "bad token", http.StatusUnauthorized)
		case "/missing":
			http.Error(w, "gone", http.StatusNotFound)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := api.New(srv.URL, 0, nil, nil)

	err := c.Get(context.Background(), "/unauthorized", nil)
	if !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("401: err = %v, want ErrUnauthorized", err)
	}

	err = c.Get(context.Background(), "/missing", nil)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("404: err = %v, want ErrNotFound", err)
	}

	err = c.Get(context.Background(), "/boom", nil)
	var se *api.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError {
		t.Fatalf("500: err = %v", err)
	}
	if errors.Is(err, errs.ErrUnauthorized) {
		t.Error("500 must not unwrap to ErrUnauthorized")
	}
}

func TestContextCancellation(t *testing.T) {
	t.Parallel()
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := api.New(srv.URL, 0, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Get(ctx, "/slow", nil); err == nil {
		t.Fatal("want error on canceled context")
	}
}
