// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gathering_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/boardbuddy/internal/core/district"
	"github.com/taibuivan/boardbuddy/internal/core/gathering"
	"github.com/taibuivan/boardbuddy/internal/core/member"
	"github.com/taibuivan/boardbuddy/internal/platform/apperr"
	"github.com/taibuivan/boardbuddy/pkg/pagination"
)

// # Stubs

type stubRepository struct {
	gathering.Repository

	authors   map[int64]string
	locations map[int64]district.Key
	details   map[int64]gathering.ArticleDetail

	lastFilter gathering.ListFilter
	lastViewer *int64
	lastWindow [2]time.Time
	listCalls  int
	failWith   error
}

func (s *stubRepository) ListArticles(_ context.Context, filter gathering.ListFilter, window pagination.Window) (pagination.Slice[gathering.ListingRow], error) {
	s.listCalls++
	s.lastFilter = filter
	return pagination.Slice[gathering.ListingRow]{Items: []gathering.ListingRow{{ID: 1}}}, window.Validate()
}

func (s *stubRepository) FindAuthoredArticles(_ context.Context, username string) ([]gathering.ArticleInfo, error) {
	articles := make([]gathering.ArticleInfo, 0)
	for id, author := range s.authors {
		if author == username {
			articles = append(articles, gathering.ArticleInfo{ID: id})
		}
	}
	return articles, nil
}

func (s *stubRepository) FindParticipations(_ context.Context, _ string) ([]gathering.ArticleInfo, error) {
	return make([]gathering.ArticleInfo, 0), nil
}

func (s *stubRepository) FindArticleID(_ context.Context, articleID int64) (int64, bool, error) {
	if s.failWith != nil {
		return 0, false, s.failWith
	}
	_, ok := s.locations[articleID]
	return articleID, ok, nil
}

func (s *stubRepository) IsAuthor(_ context.Context, articleID int64, username string) (bool, error) {
	return s.authors[articleID] == username, nil
}

func (s *stubRepository) FindArticleLocation(_ context.Context, articleID int64) (district.Key, bool, error) {
	key, ok := s.locations[articleID]
	return key, ok, nil
}

func (s *stubRepository) FindArticleDetail(_ context.Context, articleID int64, viewer *int64) (gathering.ArticleDetail, bool, error) {
	s.lastViewer = viewer
	detail, ok := s.details[articleID]
	return detail, ok, nil
}

func (s *stubRepository) FindArticleSummary(_ context.Context, articleID int64) (gathering.ArticleSummary, bool, error) {
	detail, ok := s.details[articleID]
	return gathering.ArticleSummary{Title: detail.Title}, ok, nil
}

func (s *stubRepository) CountAuthoredInWindow(_ context.Context, _ int64, start, end time.Time) (int64, error) {
	s.lastWindow = [2]time.Time{start, end}
	return 2, nil
}

type stubMembers map[string]member.LocationWithRadius

func (s stubMembers) FindIDByUsername(_ context.Context, username string) (int64, bool, error) {
	if _, ok := s[username]; !ok {
		return 0, false, nil
	}
	return int64(len(username)), true, nil
}

func (s stubMembers) FindLocationWithRadius(_ context.Context, username string) (member.LocationWithRadius, bool, error) {
	location, ok := s[username]
	return location, ok, nil
}

// stubDistricts answers from an in-memory [district.Index].
type stubDistricts struct {
	index    *district.Index
	homes    map[string]member.LocationWithRadius
	excluded string
}

func (s *stubDistricts) FindEligibleUsernames(_ context.Context, exclude string, target district.Key) ([]string, error) {
	s.excluded = exclude
	usernames := make([]string, 0)
	for _, name := range []string{"alice", "bob", "carol"} {
		home, ok := s.homes[name]
		if ok && name != exclude && s.index.Eligible(home.Location, home.Radius, target) {
			usernames = append(usernames, name)
		}
	}
	return usernames, nil
}

func (s *stubDistricts) FindNearDistricts(_ context.Context, home district.Key, radius int) ([]district.Key, error) {
	return s.index.Near(home, radius), nil
}

// # Fixture

var (
	yeoksam  = district.Key{Sido: "서울특별시", Sgg: "강남구", Emd: "역삼동"}
	samseong = district.Key{Sido: "서울특별시", Sgg: "강남구", Emd: "삼성동"}
	haeundae = district.Key{Sido: "부산광역시", Sgg: "해운대구", Emd: "우동"}
)

type fixture struct {
	service   *gathering.Service
	repo      *stubRepository
	districts *stubDistricts
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	index, err := district.NewIndex([]district.District{
		{Key: yeoksam, X: 127.0365, Y: 37.5006},
		{Key: samseong, X: 127.0565, Y: 37.5140},
		{Key: haeundae, X: 129.1589, Y: 35.1631},
	}, nil)
	require.NoError(t, err)

	homes := stubMembers{
		"alice": {Location: yeoksam, Radius: 5},
		"bob":   {Location: samseong, Radius: 2},
		"carol": {Location: haeundae, Radius: 10},
		"dave":  {Location: district.Key{Sido: "?", Sgg: "?", Emd: "?"}, Radius: 10},
	}

	repo := &stubRepository{
		authors:   map[int64]string{1: "alice"},
		locations: map[int64]district.Key{1: yeoksam},
		details:   map[int64]gathering.ArticleDetail{1: {Title: "Board night", ParticipationStatus: gathering.ApplicationNone}},
	}
	districts := &stubDistricts{index: index, homes: homes}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return fixture{
		service:   gathering.NewService(repo, homes, districts, logger),
		repo:      repo,
		districts: districts,
	}
}

// # Tests

func TestService_ListArticles_DefaultsRoleToAuthor(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ListArticles(context.Background(), gathering.ListFilter{Status: "open"}, pagination.Window{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, gathering.RoleAuthor, f.repo.lastFilter.Role)
	assert.Equal(t, "open", f.repo.lastFilter.Status)
}

func TestService_ListNearby(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ListNearby(context.Background(), "alice", gathering.ListFilter{
		Location: gathering.LocationFilter{Sidos: []string{"부산광역시"}},
	}, pagination.Window{Size: 10})
	require.NoError(t, err)

	// Yeoksam and Samseong are ~2.3 km apart, inside alice's 5 km radius.
	assert.Equal(t, gathering.LocationFilter{
		Sidos: []string{"서울특별시"},
		Sggs:  []string{"강남구"},
		Emds:  []string{"역삼동", "삼성동"},
	}, f.repo.lastFilter.Location)
}

func TestService_ListNearby_UnknownHomeIsEmpty(t *testing.T) {
	f := newFixture(t)

	result, err := f.service.ListNearby(context.Background(), "dave", gathering.ListFilter{}, pagination.Window{Size: 10})
	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Zero(t, f.repo.listCalls)
}

func TestService_ListNearby_UnknownMember(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ListNearby(context.Background(), "mallory", gathering.ListFilter{}, pagination.Window{Size: 10})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestService_GetArticle_Viewer(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name       string
		username   string
		wantViewer bool
	}{
		{"anonymous", "", false},
		{"member", "bob", true},
		{"stale_token", "ghost", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := f.service.GetArticle(context.Background(), 1, tt.username)
			require.NoError(t, err)
			assert.Equal(t, "Board night", detail.Title)
			assert.Equal(t, tt.wantViewer, f.repo.lastViewer != nil)
		})
	}
}

func TestService_GetArticle_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GetArticle(context.Background(), 99, "")
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)

	_, err = f.service.GetSummary(context.Background(), 99)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
}

func TestService_EligibleMembers(t *testing.T) {
	f := newFixture(t)

	usernames, err := f.service.EligibleMembers(context.Background(), 1, "alice")
	require.NoError(t, err)

	// bob's 2 km radius does not reach Yeoksam from Samseong; carol is in Busan.
	assert.Empty(t, usernames)
	assert.Equal(t, "alice", f.districts.excluded)

	f.districts.homes["bob"] = member.LocationWithRadius{Location: samseong, Radius: 5}
	usernames, err = f.service.EligibleMembers(context.Background(), 1, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, usernames)
}

func TestService_EligibleMembers_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.EligibleMembers(context.Background(), 1, "bob")
	assert.Equal(t, 403, apperr.As(err).HTTPStatus)

	_, err = f.service.EligibleMembers(context.Background(), 2, "alice")
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)

	storeErr := apperr.Internal(errors.New("timeout"))
	f.repo.failWith = storeErr
	_, err = f.service.EligibleMembers(context.Background(), 1, "alice")
	assert.ErrorIs(t, err, storeErr)
}

func TestService_CountAuthoredLastMonth(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	count, err := f.service.CountAuthoredLastMonth(context.Background(), 3, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), f.repo.lastWindow[0])
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 999999000, time.UTC), f.repo.lastWindow[1])
}
