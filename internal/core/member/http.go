// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/boardbuddy/internal/platform/constants"
	requestutil "github.com/taibuivan/boardbuddy/internal/platform/request"
	"github.com/taibuivan/boardbuddy/internal/platform/respond"
)

// # Handler Implementation

// Handler exposes rankings, profiles and badges over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a member [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public member endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/rankings", handler.topRankings)
	router.Get("/profiles/{nickname}", handler.getProfile)
	router.Get("/badges/{nickname}", handler.listBadges)

	return router
}

// MyRoutes registers the caller-scoped endpoints on router. The caller is
// expected to have applied authentication.
func (handler *Handler) MyRoutes(router chi.Router) {
	router.Get("/profile", handler.getMyProfile)
}

/*
GET /api/v1/rankings.

Response:
  - 200: []RankingEntry: At most three ranked members, best first
*/
func (handler *Handler) topRankings(writer http.ResponseWriter, request *http.Request) {
	rankings, err := handler.service.TopRankings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rankings, constants.MsgFetched)
}

/*
GET /api/v1/profiles/{nickname}.

Response:
  - 200: ProfileInfo
  - 400: Blank or oversized nickname
  - 404: Member not found
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	nickname, err := requestutil.Nickname(request, "nickname")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.Profile(request.Context(), nickname)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile, constants.MsgFetched)
}

// GET /api/v1/badges/{nickname}.
func (handler *Handler) listBadges(writer http.ResponseWriter, request *http.Request) {
	nickname, err := requestutil.Nickname(request, "nickname")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	badges, err := handler.service.Badges(request.Context(), nickname)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string][]Badge{"badges": badges}, constants.MsgFetched)
}

/*
GET /api/v1/my/profile.

Response:
  - 200: MyProfile
  - 401: Authentication required
*/
func (handler *Handler) getMyProfile(writer http.ResponseWriter, request *http.Request) {
	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.MyProfile(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile, constants.MsgFetched)
}
