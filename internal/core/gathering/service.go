// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gathering

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/boardbuddy/internal/core/district"
	"github.com/taibuivan/boardbuddy/internal/core/member"
	"github.com/taibuivan/boardbuddy/internal/platform/apperr"
	"github.com/taibuivan/boardbuddy/pkg/pagination"
	"github.com/taibuivan/boardbuddy/pkg/pointer"
	"github.com/taibuivan/boardbuddy/pkg/slice"
)

// MemberDirectory is the subset of member lookups the article service needs.
// [member.PostgresRepository] satisfies it.
type MemberDirectory interface {
	FindIDByUsername(ctx context.Context, username string) (int64, bool, error)
	FindLocationWithRadius(ctx context.Context, username string) (member.LocationWithRadius, bool, error)
}

// # Service Layer

// Service composes the article repository with member and district lookups.
//
// It is stateless; the caller's username is always an explicit argument.
type Service struct {
	repo      Repository
	members   MemberDirectory
	districts district.Repository
	logger    *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, members MemberDirectory, districts district.Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		members:   members,
		districts: districts,
		logger:    logger,
	}
}

// # Discovery

/*
ListArticles returns one window of the public listing.

Description: An empty role defaults to AUTHOR so each article is listed once,
alongside its author.

Parameters:
  - context: context.Context
  - filter: ListFilter (location sets, raw status and sort tokens)
  - window: pagination.Window

Returns:
  - pagination.Slice[ListingRow]
  - error: VALIDATION_ERROR for bad filter tokens, INTERNAL_ERROR otherwise
*/
func (service *Service) ListArticles(context context.Context, filter ListFilter, window pagination.Window) (pagination.Slice[ListingRow], error) {
	if filter.Role == "" {
		filter.Role = RoleAuthor
	}
	return service.repo.ListArticles(context, filter, window)
}

/*
ListNearby lists articles held in districts reachable from the caller's home
district within the caller's radius.

Description: Explicit location sets in filter are replaced. A home district
without adjacency rows yields an empty window rather than an unrestricted one.
*/
func (service *Service) ListNearby(context context.Context, username string, filter ListFilter, window pagination.Window) (pagination.Slice[ListingRow], error) {
	home, found, err := service.members.FindLocationWithRadius(context, username)
	if err != nil {
		return pagination.Slice[ListingRow]{}, err
	}
	if !found {
		return pagination.Slice[ListingRow]{}, apperr.NotFound("Member")
	}

	keys, err := service.districts.FindNearDistricts(context, home.Location, home.Radius)
	if err != nil {
		return pagination.Slice[ListingRow]{}, err
	}
	if len(keys) == 0 {
		if err := window.Validate(); err != nil {
			return pagination.Slice[ListingRow]{}, err
		}
		return pagination.Slice[ListingRow]{Items: make([]ListingRow, 0)}, nil
	}

	filter.Location = locationFromKeys(keys)
	return service.ListArticles(context, filter, window)
}

// locationFromKeys flattens district keys into per-level sets.
func locationFromKeys(keys []district.Key) LocationFilter {
	return LocationFilter{
		Sidos: slice.Distinct(slice.Map(keys, func(key district.Key) string { return key.Sido })),
		Sggs:  slice.Distinct(slice.Map(keys, func(key district.Key) string { return key.Sgg })),
		Emds:  slice.Distinct(slice.Map(keys, func(key district.Key) string { return key.Emd })),
	}
}

// # Projections

/*
GetArticle returns the article detail as seen by username.

Description: An empty username, or one no longer matching a member, is treated
as an anonymous viewer whose participation status is NONE.
*/
func (service *Service) GetArticle(context context.Context, articleID int64, username string) (ArticleDetail, error) {
	var viewer *int64
	if username != "" {
		id, found, err := service.members.FindIDByUsername(context, username)
		if err != nil {
			return ArticleDetail{}, err
		}
		if found {
			viewer = pointer.To(id)
		}
	}

	detail, found, err := service.repo.FindArticleDetail(context, articleID, viewer)
	if err != nil {
		return ArticleDetail{}, err
	}
	if !found {
		return ArticleDetail{}, apperr.NotFound("Gather article")
	}
	return detail, nil
}

// GetSummary returns the lightweight projection of an article.
func (service *Service) GetSummary(context context.Context, articleID int64) (ArticleSummary, error) {
	summary, found, err := service.repo.FindArticleSummary(context, articleID)
	if err != nil {
		return ArticleSummary{}, err
	}
	if !found {
		return ArticleSummary{}, apperr.NotFound("Gather article")
	}
	return summary, nil
}

// # Member-Scoped Lists

// MyArticles lists the articles username authored.
func (service *Service) MyArticles(context context.Context, username string) ([]ArticleInfo, error) {
	return service.repo.FindAuthoredArticles(context, username)
}

// MyParticipations lists the articles username joined as a participant.
func (service *Service) MyParticipations(context context.Context, username string) ([]ArticleInfo, error) {
	return service.repo.FindParticipations(context, username)
}

// IsAuthor reports whether username authored the article.
func (service *Service) IsAuthor(context context.Context, articleID int64, username string) (bool, error) {
	return service.repo.IsAuthor(context, articleID, username)
}

// CountAuthoredLastMonth counts the articles memberID authored during the
// calendar month before now.
func (service *Service) CountAuthoredLastMonth(context context.Context, memberID int64, now time.Time) (int64, error) {
	start, end := member.LastMonthWindow(now)
	return service.repo.CountAuthoredInWindow(context, memberID, start, end)
}

// # Proximity

/*
EligibleMembers lists the members to notify about an article: everyone but the
author whose home district reaches the article's district within their radius.

Returns:
  - []string: Usernames, never nil
  - error: NOT_FOUND for a missing article, FORBIDDEN when username is not its author
*/
func (service *Service) EligibleMembers(context context.Context, articleID int64, username string) ([]string, error) {
	if _, found, err := service.repo.FindArticleID(context, articleID); err != nil {
		return nil, err
	} else if !found {
		return nil, apperr.NotFound("Gather article")
	}

	isAuthor, err := service.repo.IsAuthor(context, articleID, username)
	if err != nil {
		return nil, err
	}
	if !isAuthor {
		return nil, apperr.Forbidden("Only the author can list eligible members")
	}

	location, found, err := service.repo.FindArticleLocation(context, articleID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.NotFound("Gather article")
	}

	service.logger.DebugContext(context, "eligible_members_lookup",
		slog.Int64("article_id", articleID),
		slog.String("district", location.String()),
	)

	return service.districts.FindEligibleUsernames(context, username, location)
}
