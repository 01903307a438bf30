// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors of the authentication middleware.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrInvalidToken               = errors.New("token is expired or invalid")
)

// ErrInvalidQuery is returned for malformed query parameters or request
// bodies.
var ErrInvalidQuery = errors.New("invalid request parameters")
