// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gathering

import (
	"strings"

	"github.com/taibuivan/boardbuddy/internal/platform/apperr"
	"github.com/taibuivan/boardbuddy/internal/platform/database/schema"
	"github.com/taibuivan/boardbuddy/pkg/predicate"
)

// Table aliases shared by the listing query and its predicates.
const (
	articleAlias    = "ga"
	membershipAlias = "mga"
)

func articleColumn(column string) string    { return articleAlias + "." + column }
func membershipColumn(column string) string { return membershipAlias + "." + column }

// # Filter Input

// LocationFilter restricts articles to administrative districts. Each list is
// matched independently; an empty list places no restriction on its level.
type LocationFilter struct {
	Sidos []string
	Sggs  []string
	Emds  []string
}

// IsZero reports whether the filter restricts nothing.
func (f LocationFilter) IsZero() bool {
	return len(f.Sidos) == 0 && len(f.Sggs) == 0 && len(f.Emds) == 0
}

// ListFilter is the raw criteria of an article listing.
//
// Status and Sort are caller-supplied strings parsed case-insensitively when
// the query is built. An empty Role is treated as [RoleAuthor].
type ListFilter struct {
	Location LocationFilter
	Status   string
	Sort     string
	Role     Role
}

// Sort is the ordering of an article listing.
type Sort int

const (
	// SortLatest lists newest articles first.
	SortLatest Sort = iota
	// SortSoon lists articles by ascending start time.
	SortSoon
)

// OrderBy renders the ORDER BY list for the listing query. Ties are broken by
// id so that offset windows stay stable.
func (s Sort) OrderBy() string {
	if s == SortSoon {
		return articleColumn(schema.GatherArticle.StartDateTime) + " ASC, " + articleColumn(schema.GatherArticle.ID) + " DESC"
	}
	return articleColumn(schema.GatherArticle.ID) + " DESC"
}

// # Domain Predicates

// LocationPredicate builds the conjunction of the three district-level sets.
func LocationPredicate(filter LocationFilter) predicate.Cond {
	return predicate.All(
		predicate.In(articleColumn(schema.GatherArticle.Sido), filter.Sidos),
		predicate.In(articleColumn(schema.GatherArticle.Sgg), filter.Sggs),
		predicate.In(articleColumn(schema.GatherArticle.Emd), filter.Emds),
	)
}

// ParseStatus parses a status case-insensitively. An empty string parses to
// the empty Status, meaning "any".
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	switch status := Status(strings.ToUpper(raw)); status {
	case StatusOpen, StatusSoon, StatusClosed:
		return status, nil
	}
	return "", apperr.InvalidFilter(FieldStatus, "Must be one of OPEN, SOON, CLOSED")
}

// StatusPredicate matches articles in the given status. An empty status
// matches everything.
func StatusPredicate(raw string) (predicate.Cond, error) {
	status, err := ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return predicate.AlwaysTrue{}, nil
	}
	return predicate.Eq(articleColumn(schema.GatherArticle.Status), string(status)), nil
}

// RolePredicate matches the membership row of the given role exactly.
func RolePredicate(role Role) (predicate.Cond, error) {
	switch role {
	case RoleAuthor, RoleParticipant:
		return predicate.Eq(membershipColumn(schema.MemberGatherArticle.Role), string(role)), nil
	}
	return nil, apperr.InvalidFilter(FieldRole, "Must be one of AUTHOR, PARTICIPANT")
}

// ParseSort parses a listing order. Empty and "latest" mean newest first,
// "soon" means earliest start first.
func ParseSort(raw string) (Sort, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "latest":
		return SortLatest, nil
	case "soon":
		return SortSoon, nil
	}
	return SortLatest, apperr.InvalidFilter(FieldSort, "Must be one of latest, soon")
}

// # Query Assembly

// ListQuery is a parsed [ListFilter], ready to be lowered into SQL.
type ListQuery struct {
	Where predicate.Cond
	Sort  Sort
}

// BuildListQuery validates filter and composes its predicates.
func BuildListQuery(filter ListFilter) (ListQuery, error) {
	status, err := StatusPredicate(filter.Status)
	if err != nil {
		return ListQuery{}, err
	}

	role := filter.Role
	if role == "" {
		role = RoleAuthor
	}
	roleCond, err := RolePredicate(role)
	if err != nil {
		return ListQuery{}, err
	}

	sort, err := ParseSort(filter.Sort)
	if err != nil {
		return ListQuery{}, err
	}

	return ListQuery{
		Where: predicate.All(LocationPredicate(filter.Location), status, roleCond),
		Sort:  sort,
	}, nil
}
