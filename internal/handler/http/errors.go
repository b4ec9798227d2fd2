// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/adhdiary/internal/app"
)

// ErrNoSession is logged by the session middleware when the request carries
// no session cookie.
var ErrNoSession = errors.New("no session cookie")

// errorResponse is the JSON body of failed JSON requests.
type errorResponse struct {
	Error string `json:"error"`
}

var (
	notFoundResponse     = errorResponse{Error: app.MsgNotFound}
	unauthorizedResponse = errorResponse{Error: app.MsgUnauthorized}
)
