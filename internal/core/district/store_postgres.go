// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package district

import (
	"context"
	"fmt"

	"github.com/taibuivan/boardbuddy/internal/platform/database/schema"
	"github.com/taibuivan/boardbuddy/internal/platform/dberr"
	"github.com/taibuivan/boardbuddy/internal/platform/postgres"
)

// PostgresRepository implements [Repository] and [Writer] using pgx.
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository constructs a PostgreSQL backed district store.
// db may be a pool, a single connection or a transaction.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Proximity Queries

// eligibleUsernamesQuery correlates the adjacency lookup with the member's
// own home district; a member is eligible iff some row from that home to the
// target has a band within the member's radius.
var eligibleUsernamesQuery = fmt.Sprintf(`
	SELECT m.%[1]s
	FROM %[2]s m
	WHERE m.%[1]s <> $1
	  AND EXISTS (
		SELECT 1
		FROM %[3]s d
		JOIN %[4]s nd ON nd.%[5]s = d.%[6]s
		WHERE d.%[7]s = m.%[7]s AND d.%[8]s = m.%[8]s AND d.%[9]s = m.%[9]s
		  AND nd.%[7]s = $2 AND nd.%[8]s = $3 AND nd.%[9]s = $4
		  AND m.%[10]s >= nd.%[10]s
	  )
	ORDER BY m.%[6]s`,
	schema.Member.Username, schema.Member.Table,
	schema.District.Table, schema.NearDistrict.Table,
	schema.NearDistrict.DistrictID, schema.District.ID,
	schema.District.Sido, schema.District.Sgg, schema.District.Emd,
	schema.NearDistrict.Radius,
)

/*
FindEligibleUsernames evaluates the adjacency predicate as an EXISTS sub-query.

Parameters:
  - context: context.Context
  - excludeUsername: string
  - target: Key

Returns:
  - []string: Matching usernames (never nil)
  - error: Store failures
*/
func (repository *PostgresRepository) FindEligibleUsernames(context context.Context, excludeUsername string, target Key) ([]string, error) {
	rows, err := repository.db.Query(context, eligibleUsernamesQuery, excludeUsername, target.Sido, target.Sgg, target.Emd)
	if err != nil {
		return nil, dberr.Wrap(err, "find_eligible_usernames")
	}
	defer rows.Close()

	usernames := make([]string, 0)
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, dberr.Wrap(err, "scan_eligible_username")
		}
		usernames = append(usernames, username)
	}

	return usernames, dberr.Wrap(rows.Err(), "iterate_eligible_usernames")
}

// FindNearDistricts lists the targets of home's adjacency rows within radius.
func (repository *PostgresRepository) FindNearDistricts(context context.Context, home Key, radius int) ([]Key, error) {
	query := `
		SELECT nd.sido, nd.sgg, nd.emd
		FROM core.neardistrict nd
		JOIN core.district d ON d.id = nd.districtid
		WHERE d.sido = $1 AND d.sgg = $2 AND d.emd = $3
		  AND nd.radius <= $4
		ORDER BY nd.radius, nd.id`

	rows, err := repository.db.Query(context, query, home.Sido, home.Sgg, home.Emd, radius)
	if err != nil {
		return nil, dberr.Wrap(err, "find_near_districts")
	}
	defer rows.Close()

	keys := make([]Key, 0)
	for rows.Next() {
		var key Key
		if err := rows.Scan(&key.Sido, &key.Sgg, &key.Emd); err != nil {
			return nil, dberr.Wrap(err, "scan_near_district")
		}
		keys = append(keys, key)
	}

	return keys, dberr.Wrap(rows.Err(), "iterate_near_districts")
}

// # Seeding

// SaveDistrict upserts a district by (sido, sgg, emd) and returns its id.
func (repository *PostgresRepository) SaveDistrict(context context.Context, district District) (int64, error) {
	query := `
		INSERT INTO core.district (sido, sgg, emd, x, y)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (sido, sgg, emd) DO UPDATE SET x = EXCLUDED.x, y = EXCLUDED.y
		RETURNING id`

	var id int64
	err := repository.db.QueryRow(context, query,
		district.Key.Sido, district.Key.Sgg, district.Key.Emd, district.X, district.Y,
	).Scan(&id)
	if err != nil {
		return 0, dberr.Wrap(err, "save_district")
	}
	return id, nil
}

// DeleteNearDistricts clears the adjacency rows owned by fromID.
func (repository *PostgresRepository) DeleteNearDistricts(context context.Context, fromID int64) error {
	_, err := repository.db.Exec(context, `DELETE FROM core.neardistrict WHERE districtid = $1`, fromID)
	return dberr.Wrap(err, "delete_near_districts")
}

// SaveNearDistrict upserts an adjacency row, refreshing its band.
func (repository *PostgresRepository) SaveNearDistrict(context context.Context, fromID int64, near NearDistrict) error {
	query := `
		INSERT INTO core.neardistrict (districtid, sido, sgg, emd, radius)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (districtid, sido, sgg, emd) DO UPDATE SET radius = EXCLUDED.radius
		RETURNING id`

	var id int64
	err := repository.db.QueryRow(context, query,
		fromID, near.To.Sido, near.To.Sgg, near.To.Emd, near.Radius,
	).Scan(&id)
	return dberr.Wrap(err, "save_near_district")
}
