package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Config(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 3*time.Second)

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("expected base URL to be set, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", client.GetClient().Timeout)
	}
	if client.GetClient().Jar == nil {
		t.Error("expected a cookie jar")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost:8080", time.Second)
	client2 := NewHTTPClient("http://localhost:8080", time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected independent resty clients")
	}
}

func TestHTTPClient_KeepsSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc", Path: "/", HttpOnly: true})
		case "/me":
			c, err := r.Cookie("token")
			if err != nil || c.Value != "abc" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)

	if _, err := client.R().Post("/login"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if c := client.Cookie("token"); c == nil || c.Value != "abc" {
		t.Fatalf("expected token cookie in jar, got %v", c)
	}

	resp, err := client.R().Get("/me")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode())
	}
}

func TestHTTPClient_SetSessionCookie(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("token"); err == nil {
			got = c.Value
		}
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	client.SetSessionCookie(&http.Cookie{Name: "token", Value: "restored"})

	if _, err := client.R().Get("/api/auth/me"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if got != "restored" {
		t.Errorf("expected restored cookie to be sent, got %q", got)
	}
	if client.Cookie("missing") != nil {
		t.Error("expected nil for unknown cookie")
	}
}
