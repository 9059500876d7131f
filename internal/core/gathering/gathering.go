// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package gathering serves gathering articles: meetup posts tied to a district
that members author and apply to join.

# Core Responsibility

  - Discovery: Location, status and sort filters composed into one query with
    look-ahead pagination ([Service.ListArticles], [Service.ListNearby]).
  - Roles: Articles a member authored or joined, and the authorship check.
  - Projection: Article detail carrying the viewer's own participation status.
  - Proximity: Members eligible to be notified about an article.

The package is read-only. Every operation takes the caller's username as an
argument; nothing is read from ambient request state.
*/
package gathering

import (
	"time"

	"github.com/taibuivan/boardbuddy/internal/core/district"
)

// # Gathering Enums

// Status is the recruitment state of an article.
type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusSoon   Status = "SOON"
	StatusClosed Status = "CLOSED"
)

// Role is a member's relation to an article.
type Role string

const (
	RoleAuthor      Role = "AUTHOR"
	RoleParticipant Role = "PARTICIPANT"
)

// ApplicationStatus is the state of a member's participation application.
// NONE is never stored; it stands for "no membership" or "no application".
type ApplicationStatus string

const (
	ApplicationNone     ApplicationStatus = "NONE"
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
	ApplicationCanceled ApplicationStatus = "CANCELED"
)

// # Read Projections

// ArticleInfo is the list shape used by "my articles" and "my participations".
type ArticleInfo struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	MeetingLocation     string    `json:"meeting_location"`
	MaxParticipants     int       `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants"`
	StartDateTime       time.Time `json:"start_date_time"`
	EndDateTime         time.Time `json:"end_date_time"`
	CreatedAt           time.Time `json:"created_at"`
	Status              Status    `json:"status"`
}

// AuthorBrief is the author block embedded in listing rows.
type AuthorBrief struct {
	Nickname string `json:"nickname"`
	Rank     *int   `json:"rank"`
}

// ListingRow is one article in the public listing.
type ListingRow struct {
	ID                  int64       `json:"id"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	Author              AuthorBrief `json:"author"`
	MeetingLocation     string      `json:"meeting_location"`
	MaxParticipants     int         `json:"max_participants"`
	CurrentParticipants int         `json:"current_participants"`
	StartDateTime       time.Time   `json:"start_date_time"`
	EndDateTime         time.Time   `json:"end_date_time"`
	CreatedAt           time.Time   `json:"created_at"`
	Status              Status      `json:"status"`
}

// AuthorProfile is the author block embedded in the article detail.
type AuthorProfile struct {
	Nickname        string  `json:"nickname"`
	Rank            *int    `json:"rank"`
	ProfileImageURL *string `json:"profile_image_url"`
	Description     *string `json:"description"`
}

// ArticleDetail is the full article as seen by one viewer.
type ArticleDetail struct {
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Author              AuthorProfile     `json:"author"`
	Location            district.Key      `json:"location"`
	MeetingLocation     string            `json:"meeting_location"`
	X                   float64           `json:"x"`
	Y                   float64           `json:"y"`
	MaxParticipants     int               `json:"max_participants"`
	CurrentParticipants int               `json:"current_participants"`
	StartDateTime       time.Time         `json:"start_date_time"`
	EndDateTime         time.Time         `json:"end_date_time"`
	CreatedAt           time.Time         `json:"created_at"`
	Status              Status            `json:"status"`
	ParticipationStatus ApplicationStatus `json:"participation_application_status"`
}

// ArticleSummary is the lightweight projection shown in chat rooms and
// notifications.
type ArticleSummary struct {
	Title               string    `json:"title"`
	MeetingLocation     string    `json:"meeting_location"`
	MaxParticipants     int       `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants"`
	StartDateTime       time.Time `json:"start_date_time"`
	EndDateTime         time.Time `json:"end_date_time"`
}

// # Field Identifiers

const (
	FieldSido   = "sido"
	FieldSgg    = "sgg"
	FieldEmd    = "emd"
	FieldStatus = "status"
	FieldSort   = "sort"
	FieldRole   = "role"
	FieldNearby = "nearby"
	FieldID     = "id"
)
