// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Absence Is Data
//
// Query repositories report a missing row as found=false, not as an error.
// [IsNoRows] lets them tell absence apart from a store failure; everything else
// goes through [Wrap] and surfaces as an internal error.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/boardbuddy/internal/platform/apperr"
)

// IsNoRows reports whether err means the query matched no row.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Wrap classifies a store failure as an [apperr.AppError] (INTERNAL_ERROR).
//
// The action names the failing operation (e.g. "list_articles") and is kept in
// the cause for server-side logs. Wrap never retries and returns nil for nil.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// Already classified upstream
	if apperr.IsAppError(err) {
		return err
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
