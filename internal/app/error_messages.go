// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// diary's HTTP handlers.
//
// Msg* constants are written into JSON error bodies and detail payloads.
// Error* constants are the query-string codes carried by redirects back to a
// form, which the pages turn into banners.
package app

const (
	// MsgNotFound is returned when a record does not exist, belongs to
	// another account or the category is unknown.
	MsgNotFound = "not found"

	// MsgUnauthorized is returned by JSON routes when the session cookie is
	// missing or invalid.
	MsgUnauthorized = "unauthorized"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoContent replaces an empty memo in record details.
	MsgNoContent = "No content."
)

const (
	// ErrorLoginFailed marks a failed login: /login?error=true.
	ErrorLoginFailed = "true"

	// ErrorUsernameExists marks a signup with a taken username.
	ErrorUsernameExists = "exists"

	// ErrorInvalidSignup marks a signup with an empty username or password.
	ErrorInvalidSignup = "invalid"

	// ErrorMissingFields marks a save with required fields left empty.
	ErrorMissingFields = "missing"
)
