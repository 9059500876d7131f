// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gathering

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/boardbuddy/internal/core/district"
	"github.com/taibuivan/boardbuddy/internal/platform/dberr"
	"github.com/taibuivan/boardbuddy/internal/platform/postgres"
	"github.com/taibuivan/boardbuddy/pkg/pagination"
	"github.com/taibuivan/boardbuddy/pkg/pointer"
	"github.com/taibuivan/boardbuddy/pkg/predicate"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository constructs a PostgreSQL backed article store.
// db may be a pool, a single connection or a caller-owned transaction.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Role-Scoped Lists

// articleInfoColumns is the select list scanned by [scanArticleInfo].
const articleInfoColumns = `
	ga.id, ga.title, ga.description, ga.meetinglocation,
	ga.maxparticipants, ga.currentparticipants,
	ga.startdatetime, ga.enddatetime, ga.createdat, ga.status`

func scanArticleInfo(row pgx.Row) (ArticleInfo, error) {
	var info ArticleInfo
	err := row.Scan(
		&info.ID, &info.Title, &info.Description, &info.MeetingLocation,
		&info.MaxParticipants, &info.CurrentParticipants,
		&info.StartDateTime, &info.EndDateTime, &info.CreatedAt, &info.Status,
	)
	return info, err
}

// FindAuthoredArticles implements [Repository].
func (repository *PostgresRepository) FindAuthoredArticles(context context.Context, username string) ([]ArticleInfo, error) {
	return repository.findByMemberRole(context, username, RoleAuthor, "find_authored_articles")
}

// FindParticipations implements [Repository].
func (repository *PostgresRepository) FindParticipations(context context.Context, username string) ([]ArticleInfo, error) {
	return repository.findByMemberRole(context, username, RoleParticipant, "find_participations")
}

// findByMemberRole walks member -> membership -> article for one role.
func (repository *PostgresRepository) findByMemberRole(context context.Context, username string, role Role, action string) ([]ArticleInfo, error) {
	args := predicate.NewArgs()
	where := predicate.All(
		predicate.Eq("m.username", username),
		predicate.Eq(membershipColumn("role"), string(role)),
	).Lower(args)

	query := `
		SELECT ` + articleInfoColumns + `
		FROM users.member m
		JOIN core.membergatherarticle mga ON mga.memberid = m.id
		JOIN core.gatherarticle ga ON ga.id = mga.gatherarticleid
		WHERE ` + where + `
		ORDER BY ga.id DESC`

	rows, err := repository.db.Query(context, query, args.Values()...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	articles := make([]ArticleInfo, 0)
	for rows.Next() {
		info, err := scanArticleInfo(rows)
		if err != nil {
			return nil, dberr.Wrap(err, action)
		}
		articles = append(articles, info)
	}

	return articles, dberr.Wrap(rows.Err(), action)
}

// IsAuthor implements [Repository].
func (repository *PostgresRepository) IsAuthor(context context.Context, articleID int64, username string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM core.membergatherarticle mga
			JOIN users.member m ON m.id = mga.memberid
			WHERE mga.gatherarticleid = $1 AND m.username = $2 AND mga.role = $3
		)`

	var exists bool
	if err := repository.db.QueryRow(context, query, articleID, username, string(RoleAuthor)).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "is_author")
	}
	return exists, nil
}

// CountAuthoredInWindow implements [Repository]. Both bounds are inclusive.
func (repository *PostgresRepository) CountAuthoredInWindow(context context.Context, memberID int64, start, end time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM core.membergatherarticle mga
		JOIN core.gatherarticle ga ON ga.id = mga.gatherarticleid
		WHERE mga.memberid = $1 AND mga.role = $2
		  AND ga.createdat BETWEEN $3 AND $4`

	var count int64
	if err := repository.db.QueryRow(context, query, memberID, string(RoleAuthor), start, end).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_authored_in_window")
	}
	return count, nil
}

// FindArticleID implements [Repository].
func (repository *PostgresRepository) FindArticleID(context context.Context, articleID int64) (int64, bool, error) {
	var id int64
	err := repository.db.QueryRow(context, `SELECT id FROM core.gatherarticle WHERE id = $1`, articleID).Scan(&id)
	if dberr.IsNoRows(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, dberr.Wrap(err, "find_article_id")
	}
	return id, true, nil
}

// # Listing

/*
ListArticles composes the location, status and role predicates into one query
and fetches a single window of it.

Description: The author's nickname and rank come from the same join, so a
window costs exactly one round-trip. One extra row is requested to report
whether a next window exists.

Parameters:
  - ctx: context.Context
  - filter: ListFilter
  - window: pagination.Window

Returns:
  - pagination.Slice[ListingRow]: Items (never nil) and HasNext
  - error: Invalid filter tokens, invalid windows or store failures
*/
func (repository *PostgresRepository) ListArticles(ctx context.Context, filter ListFilter, window pagination.Window) (pagination.Slice[ListingRow], error) {
	listQuery, err := BuildListQuery(filter)
	if err != nil {
		return pagination.Slice[ListingRow]{}, err
	}

	return pagination.FetchSlice(ctx, window, func(ctx context.Context, limit, offset int) ([]ListingRow, error) {
		args := predicate.NewArgs()

		var queryBuilder strings.Builder
		queryBuilder.WriteString(`
			SELECT
				ga.id, ga.title, ga.description, m.nickname, m.rank,
				ga.meetinglocation, ga.maxparticipants, ga.currentparticipants,
				ga.startdatetime, ga.enddatetime, ga.createdat, ga.status
			FROM core.gatherarticle ga
			JOIN core.membergatherarticle mga ON mga.gatherarticleid = ga.id
			JOIN users.member m ON m.id = mga.memberid
			WHERE `)
		queryBuilder.WriteString(listQuery.Where.Lower(args))
		queryBuilder.WriteString("\n\t\t\tORDER BY " + listQuery.Sort.OrderBy())
		queryBuilder.WriteString("\n\t\t\tLIMIT " + args.Add(limit) + " OFFSET " + args.Add(offset))

		rows, err := repository.db.Query(ctx, queryBuilder.String(), args.Values()...)
		if err != nil {
			return nil, dberr.Wrap(err, "list_articles")
		}
		defer rows.Close()

		var items []ListingRow
		for rows.Next() {
			var item ListingRow
			if err := rows.Scan(
				&item.ID, &item.Title, &item.Description, &item.Author.Nickname, &item.Author.Rank,
				&item.MeetingLocation, &item.MaxParticipants, &item.CurrentParticipants,
				&item.StartDateTime, &item.EndDateTime, &item.CreatedAt, &item.Status,
			); err != nil {
				return nil, dberr.Wrap(err, "scan_listing_row")
			}
			items = append(items, item)
		}

		return items, dberr.Wrap(rows.Err(), "iterate_listing_rows")
	})
}

// # Projections

// articleDetailQuery joins the single AUTHOR membership and the viewer's own
// PARTICIPANT membership. With a NULL viewer id the viewer join never matches
// and the application status comes back NULL.
const articleDetailQuery = `
	SELECT
		ga.title, ga.description,
		m.nickname, m.rank, pi.s3savedurl, m.description,
		ga.sido, ga.sgg, ga.emd, ga.meetinglocation, ga.x, ga.y,
		ga.maxparticipants, ga.currentparticipants,
		ga.startdatetime, ga.enddatetime, ga.createdat, ga.status,
		pa.status
	FROM core.gatherarticle ga
	JOIN core.membergatherarticle author ON author.gatherarticleid = ga.id AND author.role = 'AUTHOR'
	JOIN users.member m ON m.id = author.memberid
	LEFT JOIN users.profileimage pi ON pi.memberid = m.id
	LEFT JOIN core.membergatherarticle viewer
		ON viewer.gatherarticleid = ga.id AND viewer.memberid = $2 AND viewer.role = 'PARTICIPANT'
	LEFT JOIN core.participationapplication pa ON pa.membergatherarticleid = viewer.id
	WHERE ga.id = $1`

// FindArticleDetail implements [Repository].
func (repository *PostgresRepository) FindArticleDetail(context context.Context, articleID int64, viewerMemberID *int64) (ArticleDetail, bool, error) {
	var detail ArticleDetail
	var participation *ApplicationStatus

	err := repository.db.QueryRow(context, articleDetailQuery, articleID, viewerMemberID).Scan(
		&detail.Title, &detail.Description,
		&detail.Author.Nickname, &detail.Author.Rank, &detail.Author.ProfileImageURL, &detail.Author.Description,
		&detail.Location.Sido, &detail.Location.Sgg, &detail.Location.Emd,
		&detail.MeetingLocation, &detail.X, &detail.Y,
		&detail.MaxParticipants, &detail.CurrentParticipants,
		&detail.StartDateTime, &detail.EndDateTime, &detail.CreatedAt, &detail.Status,
		&participation,
	)
	if dberr.IsNoRows(err) {
		return ArticleDetail{}, false, nil
	}
	if err != nil {
		return ArticleDetail{}, false, dberr.Wrap(err, "find_article_detail")
	}

	detail.ParticipationStatus = pointer.Fallback(participation, ApplicationNone)

	return detail, true, nil
}

// FindArticleSummary implements [Repository].
func (repository *PostgresRepository) FindArticleSummary(context context.Context, articleID int64) (ArticleSummary, bool, error) {
	query := `
		SELECT title, meetinglocation, maxparticipants, currentparticipants, startdatetime, enddatetime
		FROM core.gatherarticle
		WHERE id = $1`

	var summary ArticleSummary
	err := repository.db.QueryRow(context, query, articleID).Scan(
		&summary.Title, &summary.MeetingLocation,
		&summary.MaxParticipants, &summary.CurrentParticipants,
		&summary.StartDateTime, &summary.EndDateTime,
	)
	if dberr.IsNoRows(err) {
		return ArticleSummary{}, false, nil
	}
	if err != nil {
		return ArticleSummary{}, false, dberr.Wrap(err, "find_article_summary")
	}
	return summary, true, nil
}

// FindArticleLocation implements [Repository].
func (repository *PostgresRepository) FindArticleLocation(context context.Context, articleID int64) (district.Key, bool, error) {
	var key district.Key
	err := repository.db.QueryRow(context, `SELECT sido, sgg, emd FROM core.gatherarticle WHERE id = $1`, articleID).
		Scan(&key.Sido, &key.Sgg, &key.Emd)
	if dberr.IsNoRows(err) {
		return district.Key{}, false, nil
	}
	if err != nil {
		return district.Key{}, false, dberr.Wrap(err, "find_article_location")
	}
	return key, true, nil
}
