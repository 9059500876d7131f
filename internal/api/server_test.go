// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/boardbuddy/internal/api"
	"github.com/taibuivan/boardbuddy/internal/core/district"
	"github.com/taibuivan/boardbuddy/internal/core/gathering"
	"github.com/taibuivan/boardbuddy/internal/core/member"
	"github.com/taibuivan/boardbuddy/internal/platform/config"
	"github.com/taibuivan/boardbuddy/internal/platform/postgres/pgtest"
	"github.com/taibuivan/boardbuddy/internal/platform/sec"
)

type stubVerifier struct {
	claims *sec.AuthClaims
	err    error
}

func (s stubVerifier) VerifyToken(string) (*sec.AuthClaims, error) { return s.claims, s.err }

type fixture struct {
	dbErr    error
	cacheErr error
	expect   func(mock pgxmock.PgxPoolIface)
}

func newServer(t *testing.T, f fixture) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := pgtest.NewMock(t)
	if f.expect != nil {
		f.expect(db)
	}

	members := member.NewPostgresRepository(db)
	gatherings := gathering.NewService(
		gathering.NewPostgresRepository(db), members, district.NewPostgresRepository(db), logger,
	)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error { return f.dbErr },
		CheckCache:    func() error { return f.cacheErr },
	}, logger)

	cfg := &config.Config{ServerPort: "0", Environment: "development"}
	server := api.NewServer(ctx, cfg, logger, api.Auth{
		Verifier: stubVerifier{claims: &sec.AuthClaims{Username: "alice"}},
	}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Gathering: gathering.NewHandler(gatherings),
		Member:    member.NewHandler(member.NewService(members, logger)),
	})
	return server.Handler()
}

// emptyResult expects one statement matching pattern, with argc arguments,
// that returns no rows.
func emptyResult(pattern string, argc int) func(mock pgxmock.PgxPoolIface) {
	args := make([]any, argc)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return func(mock pgxmock.PgxPoolIface) {
		mock.ExpectQuery(pattern).WithArgs(args...).WillReturnRows(pgxmock.NewRows([]string{"id"}))
	}
}

func TestServer_Probes(t *testing.T) {
	tests := []struct {
		name   string
		target string
		f      fixture
		want   int
		status string
	}{
		{"liveness", "/health", fixture{}, http.StatusOK, "ok"},
		{"ready", "/ready", fixture{}, http.StatusOK, "ready"},
		{"database_down", "/ready", fixture{dbErr: errors.New("connection refused")}, http.StatusServiceUnavailable, "degraded"},
		{"cache_down", "/ready", fixture{cacheErr: errors.New("i/o timeout")}, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			newServer(t, tt.f).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.want, recorder.Code)

			var body struct {
				Data struct {
					Status string `json:"status"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Data.Status)
		})
	}
}

func TestServer_Routes(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		token   bool
		expect  func(mock pgxmock.PgxPoolIface)
		want    int
	}{
		{"rankings", "/api/v1/rankings", false, emptyResult(pgtest.SQL("FROM users.member m", "LIMIT $1"), 1), http.StatusOK},
		{"my_profile_anonymous", "/api/v1/my/profile", false, nil, http.StatusUnauthorized},
		{"my_articles_anonymous", "/api/v1/my/gather-articles", false, nil, http.StatusUnauthorized},
		{"my_participations", "/api/v1/my/participations", true, emptyResult(pgtest.SQL("JOIN core.membergatherarticle mga"), 2), http.StatusOK},
		{"article_listing", "/api/v1/gather-articles?sort=soon", false, emptyResult(pgtest.SQL("ORDER BY ga.startdatetime ASC"), 3), http.StatusOK},
		{"article_listing_bad_sort", "/api/v1/gather-articles?sort=oldest", false, nil, http.StatusBadRequest},
		{"unknown_route", "/api/v1/boardgames", false, nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.token {
				request.Header.Set("Authorization", "Bearer dev-token")
			}

			recorder := httptest.NewRecorder()
			newServer(t, fixture{expect: tt.expect}).ServeHTTP(recorder, request)

			assert.Equal(t, tt.want, recorder.Code, recorder.Body.String())
		})
	}
}

func TestServer_PreflightEchoesDevelopmentOrigin(t *testing.T) {
	request := httptest.NewRequest(http.MethodOptions, "/api/v1/rankings", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	request.Header.Set("Access-Control-Request-Method", http.MethodGet)

	recorder := httptest.NewRecorder()
	newServer(t, fixture{}).ServeHTTP(recorder, request)

	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}
