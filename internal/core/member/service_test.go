// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/boardbuddy/internal/core/member"
	"github.com/taibuivan/boardbuddy/internal/platform/apperr"
	"github.com/taibuivan/boardbuddy/internal/platform/constants"
	"github.com/taibuivan/boardbuddy/internal/platform/ctxutil"
	"github.com/taibuivan/boardbuddy/internal/platform/postgres/pgtest"
	"github.com/taibuivan/boardbuddy/internal/platform/sec"
)

func newService(t *testing.T) (*member.Service, pgxmock.PgxPoolIface) {
	mock := pgtest.NewMock(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return member.NewService(member.NewPostgresRepository(mock), logger), mock
}

func TestService_TopRankingsUsesFixedLimit(t *testing.T) {
	service, mock := newService(t)
	mock.ExpectQuery(pgtest.SQL("LIMIT $1")).
		WithArgs(constants.TopRankingLimit).
		WillReturnRows(pgxmock.NewRows(rankingColumns).AddRow("meeple", 1, nil))

	entries, err := service.TopRankings(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestService_AbsenceIsNotFound(t *testing.T) {
	service, mock := newService(t)
	mock.ExpectQuery(pgtest.SQL("WHERE m.nickname = $1")).WithArgs("ghost").WillReturnRows(pgxmock.NewRows(profileColumns))
	mock.ExpectQuery(pgtest.SQL("WHERE m.username = $1")).WithArgs("ghost").WillReturnRows(pgxmock.NewRows(myProfileColumns))
	mock.ExpectQuery(pgtest.SQL("WHERE nickname = $1")).WithArgs("ghost").WillReturnRows(pgxmock.NewRows([]string{"id"}))
	ctx := context.Background()

	_, err := service.Profile(ctx, "ghost")
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	_, err = service.MyProfile(ctx, "ghost")
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	_, err = service.Badges(ctx, "ghost")
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestService_MembersByScore(t *testing.T) {
	service, mock := newService(t)
	mock.ExpectQuery(pgtest.SQL("ORDER BY rankscore DESC")).WillReturnRows(pgxmock.NewRows([]string{"id"}))

	members, err := service.MembersByScore(context.Background())
	require.NoError(t, err)
	assert.Empty(t, members)
}

// # HTTP

func TestHandler_Badges(t *testing.T) {
	service, mock := newService(t)
	mock.ExpectQuery(pgtest.SQL("SELECT id FROM users.member WHERE nickname = $1")).
		WithArgs("meeple").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(pgtest.SQL("FROM users.badgeimage")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(badgeColumns).AddRow("https://cdn.boardbuddy.app/b/1.png", "2025-12"))

	router := chi.NewRouter()
	router.Mount("/", member.NewHandler(service).Routes())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/badges/meeple", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data struct {
			Badges []member.Badge `json:"badges"`
		} `json:"data"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []member.Badge{{ImageURL: "https://cdn.boardbuddy.app/b/1.png", YearMonth: "2025-12"}}, body.Data.Badges)
	assert.Equal(t, constants.MsgFetched, body.Message)
}

func TestHandler_Statuses(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		username string
		expect   func(mock pgxmock.PgxPoolIface)
		want     int
	}{
		{"rankings", "/rankings", "", func(mock pgxmock.PgxPoolIface) {
			mock.ExpectQuery(pgtest.SQL("LIMIT $1")).WithArgs(constants.TopRankingLimit).WillReturnRows(pgxmock.NewRows(rankingColumns))
		}, http.StatusOK},
		{"profile_missing", "/profiles/ghost", "", func(mock pgxmock.PgxPoolIface) {
			mock.ExpectQuery(pgtest.SQL("WHERE m.nickname = $1")).WithArgs("ghost").WillReturnRows(pgxmock.NewRows(profileColumns))
		}, http.StatusNotFound},
		{"profile_oversized_nickname", "/profiles/" + strings.Repeat("n", constants.NicknameMaxLen+1), "", nil, http.StatusBadRequest},
		{"my_profile_anonymous", "/my/profile", "", nil, http.StatusUnauthorized},
		{"my_profile", "/my/profile", "alice", func(mock pgxmock.PgxPoolIface) {
			mock.ExpectQuery(pgtest.SQL("WHERE m.username = $1")).WithArgs("alice").WillReturnRows(pgxmock.NewRows(myProfileColumns).
				AddRow("meeple", "서울특별시", "강남구", "역삼동", "", "REGULAR", nil))
		}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mock := newService(t)
			if tt.expect != nil {
				tt.expect(mock)
			}
			handler := member.NewHandler(service)

			router := chi.NewRouter()
			router.Route("/my", handler.MyRoutes)
			router.Mount("/", handler.Routes())

			request := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.username != "" {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{Username: tt.username}))
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.want, recorder.Code, recorder.Body.String())
		})
	}
}
