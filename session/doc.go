// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session carries the visitor's self-chosen name in a cookie.

This is identification, not authentication: whatever name the browser sends
is trusted, and two browsers that pick the same name act as one visitor.

# Reading

	visitor := session.Visitor(r) // "" when no cookie is set

# Writing

	session.SetVisitor(w, name, cfg.SecureCookie)

The cookie is named visitorId, percent-encoded, lives for 30 days, uses
SameSite=Lax, and is not HttpOnly so the frontend can read it.
*/
package session
