// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gathering

import (
	"context"
	"time"

	"github.com/taibuivan/boardbuddy/internal/core/district"
	"github.com/taibuivan/boardbuddy/pkg/pagination"
)

// Repository defines the read access to gathering articles.
//
// Absence is reported with found=false, never as an error. Every error
// returned is a store failure.
type Repository interface {
	// FindAuthoredArticles lists the articles the member authored, newest first.
	FindAuthoredArticles(ctx context.Context, username string) ([]ArticleInfo, error)

	// FindParticipations lists the articles the member joined, newest first.
	FindParticipations(ctx context.Context, username string) ([]ArticleInfo, error)

	// IsAuthor reports whether username authored the article.
	IsAuthor(ctx context.Context, articleID int64, username string) (bool, error)

	// CountAuthoredInWindow counts articles the member authored with a creation
	// time within [start, end].
	CountAuthoredInWindow(ctx context.Context, memberID int64, start, end time.Time) (int64, error)

	// FindArticleID reports whether the article exists.
	FindArticleID(ctx context.Context, articleID int64) (int64, bool, error)

	// ListArticles returns one window of the filtered listing.
	ListArticles(ctx context.Context, filter ListFilter, window pagination.Window) (pagination.Slice[ListingRow], error)

	// FindArticleDetail loads the article as seen by viewerMemberID (nil for
	// an anonymous viewer).
	FindArticleDetail(ctx context.Context, articleID int64, viewerMemberID *int64) (ArticleDetail, bool, error)

	// FindArticleSummary loads the lightweight projection.
	FindArticleSummary(ctx context.Context, articleID int64) (ArticleSummary, bool, error)

	// FindArticleLocation loads the district the article is held in.
	FindArticleLocation(ctx context.Context, articleID int64) (district.Key, bool, error)
}
