// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package district

import "context"

// # District Data Access

// Repository defines the proximity queries over core.district and core.neardistrict.
type Repository interface {

	/*
		FindEligibleUsernames returns the members, other than excludeUsername,
		whose home district reaches target within the member's own radius.

		Parameters:
		  - context: context.Context
		  - excludeUsername: string (usually the article author)
		  - target: Key (the article's district)

		Returns:
		  - []string: Usernames ordered by member id; empty when nobody matches
		  - error: Store failures
	*/
	FindEligibleUsernames(context context.Context, excludeUsername string, target Key) ([]string, error)

	/*
		FindNearDistricts returns the districts reachable from home within radius,
		home itself included when it is a known district.
	*/
	FindNearDistricts(context context.Context, home Key, radius int) ([]Key, error)
}

// Writer persists districts and their adjacency. Only the seed command uses it.
type Writer interface {

	// SaveDistrict upserts a district by key and returns its id.
	SaveDistrict(context context.Context, district District) (int64, error)

	// DeleteNearDistricts removes every adjacency row of the district fromID.
	DeleteNearDistricts(context context.Context, fromID int64) error

	// SaveNearDistrict upserts one adjacency row for the district fromID.
	SaveNearDistrict(context context.Context, fromID int64, near NearDistrict) error
}
