// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gathering

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/boardbuddy/internal/core/district"
	"github.com/taibuivan/boardbuddy/internal/platform/constants"
	"github.com/taibuivan/boardbuddy/internal/platform/middleware"
	requestutil "github.com/taibuivan/boardbuddy/internal/platform/request"
	"github.com/taibuivan/boardbuddy/internal/platform/respond"
	"github.com/taibuivan/boardbuddy/pkg/pagination"
	"github.com/taibuivan/boardbuddy/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer for gathering articles.
type Handler struct {
	service *Service
}

// NewHandler constructs a gathering [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the article endpoints.
//
// # Routing Strategy
//
//   - Discovery (Public): Listing, detail and summary. Authentication only
//     enriches the detail with the viewer's status.
//   - Author (Authenticated): The eligible-member lookup.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listArticles)
	router.Get("/{id}", handler.getArticle)
	router.Get("/{id}/summary", handler.getSummary)

	router.Group(func(author chi.Router) {
		author.Use(middleware.RequireAuth)
		author.Get("/{id}/eligible-members", handler.listEligibleMembers)
	})

	return router
}

// MyRoutes registers the caller-scoped endpoints on router. The caller is
// expected to have applied authentication.
func (handler *Handler) MyRoutes(router chi.Router) {
	router.Get("/gather-articles", handler.listMyArticles)
	router.Get("/participations", handler.listMyParticipations)
}

// # Discovery Endpoints

/*
GET /api/v1/gather-articles.

Description: Lists articles newest first, or by start time with sort=soon.
With nearby=true the location sets come from the caller's home district and
radius, which requires authentication.

Request:
  - sido, sgg, emd: []string (repeatable or comma-separated)
  - status: string (open, soon, closed)
  - sort: string (latest, soon)
  - nearby: bool
  - page: int
  - limit: int

Response:
  - 200: []ListingRow with slice metadata
  - 400: Invalid filter token
  - 401: nearby=true without authentication
*/
func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := ListFilter{
		Location: LocationFilter{
			Sidos: district.NormalizeAll(requestutil.Strings(request, FieldSido)),
			Sggs:  district.NormalizeAll(requestutil.Strings(request, FieldSgg)),
			Emds:  district.NormalizeAll(requestutil.Strings(request, FieldEmd)),
		},
		Status: queryParams.Get(FieldStatus),
		Sort:   queryParams.Get(FieldSort),
	}

	var result pagination.Slice[ListingRow]
	var err error

	if query.Bool(queryParams, FieldNearby) {
		username, authErr := requestutil.RequiredUsername(request)
		if authErr != nil {
			respond.Error(writer, request, authErr)
			return
		}
		result, err = handler.service.ListNearby(request.Context(), username, filter, page.Window())
	} else {
		result, err = handler.service.ListArticles(request.Context(), filter, page.Window())
	}

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Slice(writer, result.Items, constants.MsgFetched, pagination.NewSliceMeta(page, result.HasNext))
}

/*
GET /api/v1/gather-articles/{id}.

Response:
  - 200: ArticleDetail (participation status NONE for anonymous viewers)
  - 400: Invalid id
  - 404: Gather article not found
*/
func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetArticle(request.Context(), id, requestutil.Username(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail, constants.MsgFetched)
}

// GET /api/v1/gather-articles/{id}/summary.
func (handler *Handler) getSummary(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.GetSummary(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary, constants.MsgFetched)
}

/*
GET /api/v1/gather-articles/{id}/eligible-members.

Response:
  - 200: []string usernames
  - 403: Caller is not the author
  - 404: Gather article not found
*/
func (handler *Handler) listEligibleMembers(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, FieldID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	usernames, err := handler.service.EligibleMembers(request.Context(), id, username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, usernames, constants.MsgFetched)
}

// # Member-Scoped Endpoints

// GET /api/v1/my/gather-articles.
func (handler *Handler) listMyArticles(writer http.ResponseWriter, request *http.Request) {
	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	articles, err := handler.service.MyArticles(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, articles, constants.MsgMyArticlesFetched)
}

// GET /api/v1/my/participations.
func (handler *Handler) listMyParticipations(writer http.ResponseWriter, request *http.Request) {
	username, err := requestutil.RequiredUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	articles, err := handler.service.MyParticipations(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, articles, constants.MsgParticipationsFetched)
}
