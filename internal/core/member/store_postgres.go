// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/boardbuddy/internal/platform/constants"
	"github.com/taibuivan/boardbuddy/internal/platform/database/schema"
	"github.com/taibuivan/boardbuddy/internal/platform/dberr"
	"github.com/taibuivan/boardbuddy/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository constructs a PostgreSQL backed member store.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Rankings

// FindTopRanked implements [Repository].
func (repository *PostgresRepository) FindTopRanked(context context.Context, limit int) ([]RankingEntry, error) {
	query := `
		SELECT m.nickname, m.rank, pi.s3savedurl
		FROM users.member m
		LEFT JOIN users.profileimage pi ON pi.memberid = m.id
		WHERE m.rank IS NOT NULL
		ORDER BY m.rank ASC, m.id ASC
		LIMIT $1`

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "find_top_ranked")
	}
	defer rows.Close()

	entries := make([]RankingEntry, 0, limit)
	for rows.Next() {
		var entry RankingEntry
		if err := rows.Scan(&entry.Nickname, &entry.Rank, &entry.ProfileImageURL); err != nil {
			return nil, dberr.Wrap(err, "scan_ranking_entry")
		}
		entries = append(entries, entry)
	}

	return entries, dberr.Wrap(rows.Err(), "iterate_ranking_entries")
}

// memberColumns is the select list scanned into a full [Member].
var memberColumns = strings.Join(schema.Member.Columns(), ", ")

// FindAllOrderedByRankScore implements [Repository].
func (repository *PostgresRepository) FindAllOrderedByRankScore(context context.Context) ([]Member, error) {
	query := `SELECT ` + memberColumns + ` FROM ` + schema.Member.Table +
		` ORDER BY ` + schema.Member.RankScore + ` DESC, ` + schema.Member.ID + ` ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "find_members_by_rank_score")
	}
	defer rows.Close()

	members := make([]Member, 0)
	for rows.Next() {
		var m Member
		if err := rows.Scan(
			&m.ID, &m.Username, &m.Nickname, &m.Role, &m.PhoneNumber, &m.MemberType,
			&m.Location.Sido, &m.Location.Sgg, &m.Location.Emd, &m.Radius,
			&m.Rank, &m.RankScore, &m.JoinCount,
			&m.TotalExcellentCount, &m.TotalGoodCount, &m.TotalBadCount, &m.BuddyScore,
			&m.Description, &m.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_member")
		}
		members = append(members, m)
	}

	return members, dberr.Wrap(rows.Err(), "iterate_members")
}

// # Profiles

/*
FindProfileByNickname composes two fetches: the profile row, then its most
recent badges.

Returns:
  - ProfileInfo: Badges is never nil
  - bool: False when no member has the nickname
  - error: Store failures
*/
func (repository *PostgresRepository) FindProfileByNickname(context context.Context, nickname string) (ProfileInfo, bool, error) {
	query := `
		SELECT m.id, m.nickname, pi.s3savedurl, m.description, m.rank, m.buddyscore,
		       m.joincount, m.totalexcellentcount, m.totalgoodcount, m.totalbadcount
		FROM users.member m
		LEFT JOIN users.profileimage pi ON pi.memberid = m.id
		WHERE m.nickname = $1`

	var memberID int64
	var profile ProfileInfo
	err := repository.db.QueryRow(context, query, nickname).Scan(
		&memberID, &profile.Nickname, &profile.ProfileImageURL, &profile.Description,
		&profile.Rank, &profile.BuddyScore,
		&profile.JoinCount, &profile.TotalExcellentCount, &profile.TotalGoodCount, &profile.TotalBadCount,
	)
	if dberr.IsNoRows(err) {
		return ProfileInfo{}, false, nil
	}
	if err != nil {
		return ProfileInfo{}, false, dberr.Wrap(err, "find_profile_by_nickname")
	}

	profile.Badges, err = repository.findBadgesByMemberID(context, memberID, constants.RecentBadgeLimit)
	if err != nil {
		return ProfileInfo{}, false, err
	}

	return profile, true, nil
}

// FindBadges implements [Repository].
func (repository *PostgresRepository) FindBadges(context context.Context, nickname string) ([]Badge, bool, error) {
	var memberID int64
	err := repository.db.QueryRow(context, `SELECT id FROM users.member WHERE nickname = $1`, nickname).Scan(&memberID)
	if dberr.IsNoRows(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, dberr.Wrap(err, "find_member_id_by_nickname")
	}

	badges, err := repository.findBadgesByMemberID(context, memberID, 0)
	if err != nil {
		return nil, false, err
	}
	return badges, true, nil
}

// findBadgesByMemberID lists badges newest first. A limit of zero means all.
func (repository *PostgresRepository) findBadgesByMemberID(context context.Context, memberID int64, limit int) ([]Badge, error) {
	badge := schema.BadgeImage
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC`,
		badge.SavedURL, badge.YearMonth, badge.Table, badge.MemberID, badge.ID)
	args := []any{memberID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_badges")
	}
	defer rows.Close()

	badges := make([]Badge, 0)
	for rows.Next() {
		var badge Badge
		if err := rows.Scan(&badge.ImageURL, &badge.YearMonth); err != nil {
			return nil, dberr.Wrap(err, "scan_badge")
		}
		badges = append(badges, badge)
	}

	return badges, dberr.Wrap(rows.Err(), "iterate_badges")
}

// FindMyProfile implements [Repository].
func (repository *PostgresRepository) FindMyProfile(context context.Context, username string) (MyProfile, bool, error) {
	query := `
		SELECT m.nickname, m.sido, m.sgg, m.emd, m.phonenumber, m.membertype, pi.s3savedurl
		FROM users.member m
		LEFT JOIN users.profileimage pi ON pi.memberid = m.id
		WHERE m.username = $1`

	var profile MyProfile
	err := repository.db.QueryRow(context, query, username).Scan(
		&profile.Nickname, &profile.Location.Sido, &profile.Location.Sgg, &profile.Location.Emd,
		&profile.PhoneNumber, &profile.MemberType, &profile.ProfileImageURL,
	)
	if dberr.IsNoRows(err) {
		return MyProfile{}, false, nil
	}
	if err != nil {
		return MyProfile{}, false, dberr.Wrap(err, "find_my_profile")
	}
	return profile, true, nil
}

// # Identity Lookups

// FindIDByUsername implements [Repository].
func (repository *PostgresRepository) FindIDByUsername(context context.Context, username string) (int64, bool, error) {
	var id int64
	err := repository.db.QueryRow(context, `SELECT id FROM users.member WHERE username = $1`, username).Scan(&id)
	if dberr.IsNoRows(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, dberr.Wrap(err, "find_member_id_by_username")
	}
	return id, true, nil
}

// FindUsernameByNickname implements [Repository].
func (repository *PostgresRepository) FindUsernameByNickname(context context.Context, nickname string) (string, bool, error) {
	var username string
	err := repository.db.QueryRow(context, `SELECT username FROM users.member WHERE nickname = $1`, nickname).Scan(&username)
	if dberr.IsNoRows(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, dberr.Wrap(err, "find_username_by_nickname")
	}
	return username, true, nil
}

// FindLocationWithRadius implements [Repository].
func (repository *PostgresRepository) FindLocationWithRadius(context context.Context, username string) (LocationWithRadius, bool, error) {
	var location LocationWithRadius
	err := repository.db.QueryRow(context, `SELECT sido, sgg, emd, radius FROM users.member WHERE username = $1`, username).
		Scan(&location.Location.Sido, &location.Location.Sgg, &location.Location.Emd, &location.Radius)
	if dberr.IsNoRows(err) {
		return LocationWithRadius{}, false, nil
	}
	if err != nil {
		return LocationWithRadius{}, false, dberr.Wrap(err, "find_location_with_radius")
	}
	return location, true, nil
}

// # Seeding

// SaveMember implements [Writer].
func (repository *PostgresRepository) SaveMember(context context.Context, fixture Fixture, passwordHash string) (int64, error) {
	query := `
		INSERT INTO users.member (username, nickname, passwordhash, sido, sgg, emd, radius)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (username) DO UPDATE SET
			nickname = EXCLUDED.nickname,
			passwordhash = EXCLUDED.passwordhash,
			sido = EXCLUDED.sido, sgg = EXCLUDED.sgg, emd = EXCLUDED.emd,
			radius = EXCLUDED.radius
		RETURNING id`

	var id int64
	err := repository.db.QueryRow(context, query,
		fixture.Username, fixture.Nickname, passwordHash,
		fixture.Location.Sido, fixture.Location.Sgg, fixture.Location.Emd,
		fixture.Radius,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "save_member")
	}
	return id, nil
}
