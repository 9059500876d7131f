// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import "context"

// Repository defines the read access to members.
//
// Lookups report absence with found=false. Every error is a store failure.
type Repository interface {
	// FindTopRanked lists ranked members by ascending rank. Unranked members
	// never appear.
	FindTopRanked(ctx context.Context, limit int) ([]RankingEntry, error)

	// FindAllOrderedByRankScore lists every member by descending rank score.
	FindAllOrderedByRankScore(ctx context.Context) ([]Member, error)

	// FindProfileByNickname loads the public profile with its most recent badges.
	FindProfileByNickname(ctx context.Context, nickname string) (ProfileInfo, bool, error)

	FindIDByUsername(ctx context.Context, username string) (int64, bool, error)
	FindLocationWithRadius(ctx context.Context, username string) (LocationWithRadius, bool, error)
	FindMyProfile(ctx context.Context, username string) (MyProfile, bool, error)
	FindUsernameByNickname(ctx context.Context, nickname string) (string, bool, error)

	// FindBadges lists every badge of the member, newest first.
	FindBadges(ctx context.Context, nickname string) ([]Badge, bool, error)
}

// Writer creates members. Only the seed command uses it; accounts are
// otherwise owned by the external auth service.
type Writer interface {
	// SaveMember upserts a member by username and returns its id.
	SaveMember(ctx context.Context, fixture Fixture, passwordHash string) (int64, error)
}
