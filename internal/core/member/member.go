// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package member serves member lookups: rankings, public profiles with badges
and the caller's own profile.

Rank values and the rank-score formula are owned by an external job; this
package only reads them. [LastMonthWindow] supplies the window that job uses
to count last month's authored articles.
*/
package member

import (
	"time"

	"github.com/taibuivan/boardbuddy/internal/core/district"
)

// # Member Records

// Member is a full member row, the password hash excluded.
type Member struct {
	ID                  int64        `json:"id"`
	Username            string       `json:"username"`
	Nickname            string       `json:"nickname"`
	Role                string       `json:"role"`
	PhoneNumber         string       `json:"phone_number"`
	MemberType          string       `json:"member_type"`
	Location            district.Key `json:"location"`
	Radius              int          `json:"radius"`
	Rank                *int         `json:"rank"`
	RankScore           float64      `json:"rank_score"`
	JoinCount           int          `json:"join_count"`
	TotalExcellentCount int          `json:"total_excellent_count"`
	TotalGoodCount      int          `json:"total_good_count"`
	TotalBadCount       int          `json:"total_bad_count"`
	BuddyScore          float64      `json:"buddy_score"`
	Description         *string      `json:"description"`
	CreatedAt           time.Time    `json:"created_at"`
}

// RankingEntry is one line of the public ranking.
type RankingEntry struct {
	Nickname        string  `json:"nickname"`
	Rank            int     `json:"rank"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// Badge is a monthly badge image.
type Badge struct {
	ImageURL  string `json:"image_url"`
	YearMonth string `json:"year_month"`
}

// ProfileInfo is a member's public profile.
type ProfileInfo struct {
	Nickname            string  `json:"nickname"`
	ProfileImageURL     *string `json:"profile_image_url"`
	Description         *string `json:"description"`
	Rank                *int    `json:"rank"`
	BuddyScore          float64 `json:"buddy_score"`
	JoinCount           int     `json:"join_count"`
	TotalExcellentCount int     `json:"total_excellent_count"`
	TotalGoodCount      int     `json:"total_good_count"`
	TotalBadCount       int     `json:"total_bad_count"`
	Badges              []Badge `json:"badges"`
}

// MyProfile is the profile shown to the member themselves.
type MyProfile struct {
	Nickname        string       `json:"nickname"`
	Location        district.Key `json:"location"`
	PhoneNumber     string       `json:"phone_number"`
	MemberType      string       `json:"member_type"`
	ProfileImageURL *string      `json:"profile_image_url"`
}

// LocationWithRadius is a member's home district and notification radius in km.
type LocationWithRadius struct {
	Location district.Key `json:"location"`
	Radius   int          `json:"radius"`
}

// # Ranking Window

// LastMonthWindow returns the first and last instant of the calendar month
// before now, in now's location. The end is inclusive at microsecond
// precision, matching PostgreSQL timestamps.
func LastMonthWindow(now time.Time) (start, end time.Time) {
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start = thisMonth.AddDate(0, -1, 0)
	end = thisMonth.Add(-time.Microsecond)
	return start, end
}

// Fixture describes a development member created by the seed command.
type Fixture struct {
	Username string
	Nickname string
	Password string
	Location district.Key
	Radius   int
}
