// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/food-selector/models"
)

const (
	CookieName = "visitorId"
	MaxAge     = 30 * 24 * time.Hour
)

// Visitor returns the visitor named by the request's cookie, or "" if none.
func Visitor(r *http.Request) models.VisitorID {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	return models.VisitorID(Decode(c.Value))
}

// SetVisitor issues the visitor cookie. It is readable from page scripts
// (not HttpOnly) so the frontend can show the current name.
func SetVisitor(w http.ResponseWriter, name models.VisitorID, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    Encode(string(name)),
		Path:     "/",
		MaxAge:   int(MaxAge / time.Second),
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Encode percent-encodes a name so any text survives as a cookie value.
// Spaces become %20, matching encodeURIComponent.
func Encode(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}

// Decode reverses Encode. Values that are not valid percent-encoding are
// returned unchanged.
func Decode(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}
