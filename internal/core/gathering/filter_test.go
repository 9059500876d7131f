// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gathering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/boardbuddy/internal/core/gathering"
	"github.com/taibuivan/boardbuddy/internal/platform/apperr"
	"github.com/taibuivan/boardbuddy/pkg/predicate"
)

func lower(cond predicate.Cond) (string, []any) {
	args := predicate.NewArgs()
	sql := cond.Lower(args)
	return sql, args.Values()
}

func TestLocationPredicate(t *testing.T) {
	tests := []struct {
		name     string
		filter   gathering.LocationFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "empty_sets_restrict_nothing",
			filter:  gathering.LocationFilter{},
			wantSQL: "TRUE",
		},
		{
			name:     "single_level",
			filter:   gathering.LocationFilter{Sidos: []string{"서울특별시"}},
			wantSQL:  "ga.sido = ANY($1)",
			wantArgs: []any{[]string{"서울특별시"}},
		},
		{
			name: "all_levels",
			filter: gathering.LocationFilter{
				Sidos: []string{"서울특별시"},
				Sggs:  []string{"강남구", "서초구"},
				Emds:  []string{"역삼동"},
			},
			wantSQL:  "(ga.sido = ANY($1) AND ga.sgg = ANY($2) AND ga.emd = ANY($3))",
			wantArgs: []any{[]string{"서울특별시"}, []string{"강남구", "서초구"}, []string{"역삼동"}},
		},
		{
			name:     "empty_middle_level",
			filter:   gathering.LocationFilter{Sidos: []string{"서울특별시"}, Emds: []string{"역삼동"}},
			wantSQL:  "(ga.sido = ANY($1) AND ga.emd = ANY($2))",
			wantArgs: []any{[]string{"서울특별시"}, []string{"역삼동"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := gathering.LocationPredicate(tt.filter)
			sql, args := lower(cond)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
			assert.Equal(t, tt.filter.IsZero(), cond.Trivial())
		})
	}
}

func TestStatusPredicate(t *testing.T) {
	tests := []struct {
		raw      string
		wantSQL  string
		wantArgs []any
	}{
		{"", "TRUE", nil},
		{"OPEN", "ga.status = $1", []any{"OPEN"}},
		{"soon", "ga.status = $1", []any{"SOON"}},
		{" Closed ", "ga.status = $1", []any{"CLOSED"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			cond, err := gathering.StatusPredicate(tt.raw)
			require.NoError(t, err)
			sql, args := lower(cond)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestStatusPredicate_Invalid(t *testing.T) {
	_, err := gathering.StatusPredicate("DONE")
	require.Error(t, err)

	appErr := apperr.As(err)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, gathering.FieldStatus, appErr.Details[0].Field)
}

func TestRolePredicate(t *testing.T) {
	cond, err := gathering.RolePredicate(gathering.RoleParticipant)
	require.NoError(t, err)
	sql, args := lower(cond)
	assert.Equal(t, "mga.role = $1", sql)
	assert.Equal(t, []any{"PARTICIPANT"}, args)

	// Exact match only.
	_, err = gathering.RolePredicate("author")
	assert.Error(t, err)
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw     string
		want    gathering.Sort
		wantErr bool
	}{
		{"", gathering.SortLatest, false},
		{"latest", gathering.SortLatest, false},
		{"LATEST", gathering.SortLatest, false},
		{"soon", gathering.SortSoon, false},
		{"Soon", gathering.SortSoon, false},
		{"popular", gathering.SortLatest, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := gathering.ParseSort(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, gathering.FieldSort, apperr.As(err).Details[0].Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortOrderBy(t *testing.T) {
	assert.Equal(t, "ga.id DESC", gathering.SortLatest.OrderBy())
	assert.Equal(t, "ga.startdatetime ASC, ga.id DESC", gathering.SortSoon.OrderBy())
}

func TestBuildListQuery(t *testing.T) {
	query, err := gathering.BuildListQuery(gathering.ListFilter{
		Location: gathering.LocationFilter{Sidos: []string{"서울특별시"}},
		Status:   "open",
		Sort:     "soon",
	})
	require.NoError(t, err)

	sql, args := lower(query.Where)
	assert.Equal(t, "(ga.sido = ANY($1) AND ga.status = $2 AND mga.role = $3)", sql)
	assert.Equal(t, []any{[]string{"서울특별시"}, "OPEN", "AUTHOR"}, args)
	assert.Equal(t, gathering.SortSoon, query.Sort)
}

func TestBuildListQuery_NoFilters(t *testing.T) {
	query, err := gathering.BuildListQuery(gathering.ListFilter{})
	require.NoError(t, err)

	sql, args := lower(query.Where)
	assert.Equal(t, "mga.role = $1", sql)
	assert.Equal(t, []any{"AUTHOR"}, args)
	assert.Equal(t, gathering.SortLatest, query.Sort)
}

func TestBuildListQuery_RejectsBadTokens(t *testing.T) {
	for _, filter := range []gathering.ListFilter{
		{Status: "archived"},
		{Sort: "random"},
		{Role: "OWNER"},
	} {
		_, err := gathering.BuildListQuery(filter)
		assert.Error(t, err, "%+v", filter)
	}
}
