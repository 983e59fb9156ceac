package utils

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client for the API at baseURL.
//
// The client speaks JSON, applies timeout to every request and keeps cookies
// in an in-memory jar so that a session cookie set by login is sent on
// subsequent calls. Each call returns an independent client.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	// cookiejar.New only fails on a non-nil PublicSuffixList option.
	jar, _ := cookiejar.New(nil)

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetCookieJar(jar).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}

// Cookie returns the cookie named name that the jar would send to the base
// URL, or nil.
func (c *HTTPClient) Cookie(name string) *http.Cookie {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL, nil)
	if err != nil || c.GetClient().Jar == nil {
		return nil
	}

	for _, cookie := range c.GetClient().Jar.Cookies(req.URL) {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// SetSessionCookie installs a previously saved cookie for the base URL.
func (c *HTTPClient) SetSessionCookie(cookie *http.Cookie) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL, nil)
	if err != nil || c.GetClient().Jar == nil {
		return
	}

	c.GetClient().Jar.SetCookies(req.URL, []*http.Cookie{cookie})
}
