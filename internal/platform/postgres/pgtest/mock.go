// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pgtest wires repositories to PostgreSQL in tests.

[NewMock] returns a pgxmock pool for unit tests: expectations are matched in
order and any expectation left unmet fails the test at cleanup. [Connect] and
[Tx] open a real, migrated database for integration tests.

Usage:

	mock := pgtest.NewMock(t)
	mock.ExpectQuery(pgtest.SQL("FROM core.gatherarticle", "ORDER BY ga.id DESC")).
		WithArgs("alice", "AUTHOR").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	repo := gathering.NewPostgresRepository(mock)
*/
package pgtest

import (
	"regexp"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/boardbuddy/internal/platform/postgres"
	"github.com/taibuivan/boardbuddy/pkg/slice"
)

var _ postgres.Querier = (pgxmock.PgxPoolIface)(nil)

// NewMock opens a mock pool that is checked and closed when t ends.
func NewMock(t testing.TB) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

// SQL builds a pattern for the default regexp matcher that accepts any
// statement containing every fragment, in order. Keep each fragment on one
// source line of the statement.
func SQL(fragments ...string) string {
	return "(?s)" + strings.Join(slice.Map(fragments, regexp.QuoteMeta), ".*")
}
