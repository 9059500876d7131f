// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It hides the router's parameter extraction and resolves the caller's identity
once, at the transport boundary.
*/
package request

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/boardbuddy/internal/platform/apperr"
	"github.com/taibuivan/boardbuddy/internal/platform/constants"
	"github.com/taibuivan/boardbuddy/internal/platform/ctxutil"
	"github.com/taibuivan/boardbuddy/internal/platform/sec"
	"github.com/taibuivan/boardbuddy/internal/platform/validate"
	"github.com/taibuivan/boardbuddy/pkg/query"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ID parses a named URL parameter as a positive int64 identifier.

Returns:
  - error: apperr.ValidationError if the parameter is missing or malformed
*/
func ID(request *http.Request, name string) (int64, error) {
	v := &validate.Validator{}
	id := v.PositiveID(name, chi.URLParam(request, name))
	if err := v.Err(); err != nil {
		return 0, err
	}
	return id, nil
}

/*
Nickname reads a member nickname from a named URL parameter.

Returns:
  - error: apperr.ValidationError if the nickname is blank or longer than the column allows
*/
func Nickname(request *http.Request, name string) (string, error) {
	nickname := chi.URLParam(request, name)
	v := &validate.Validator{}
	if err := v.Required(name, nickname).MaxLen(name, nickname, constants.NicknameMaxLen).Err(); err != nil {
		return "", err
	}
	return nickname, nil
}

/*
Strings returns every value of a repeatable or comma-separated query parameter.
*/
func Strings(request *http.Request, name string) []string {
	return query.Strings(request.URL.Query(), name)
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
Username returns the caller's username, or "" for anonymous requests.
*/
func Username(request *http.Request) string {
	return ctxutil.GetUsername(request.Context())
}

/*
RequiredUsername returns the username of the currently logged-in member.

Returns:
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUsername(request *http.Request) (string, error) {
	username := ctxutil.GetUsername(request.Context())
	if username == "" {
		return "", apperr.Unauthorized("Authentication required")
	}
	return username, nil
}
