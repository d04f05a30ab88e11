// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/food-selector/cliparse"
	"github.com/danielhkuo/food-selector/models"
	"github.com/danielhkuo/food-selector/selector"
	"github.com/danielhkuo/food-selector/session"
	"github.com/danielhkuo/food-selector/store"
)

// NewTestService returns a service over a fresh in-memory store, along with
// the store so tests can inspect what was persisted.
func NewTestService(t *testing.T, opts ...selector.Option) (*selector.Service, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	t.Cleanup(func() { st.Close() })
	return selector.NewService(st, opts...), st
}

// GetTestConfig returns a standard test configuration. Rate limiting is off.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3000,
		StoreType:      "memory",
		RateLimitRPS:   0,
		RateLimitBurst: 1,
	}
}

// MakeRequest creates an HTTP test request. A non-empty visitor is sent as
// the visitorId cookie.
func MakeRequest(method, path string, body interface{}, visitor models.VisitorID) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if visitor != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: session.Encode(string(visitor))})
	}

	return req
}

// VisitorCookie returns the visitorId cookie set on the response, or nil.
func VisitorCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
