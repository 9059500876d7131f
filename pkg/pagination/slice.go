// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination

import (
	"context"

	"github.com/taibuivan/boardbuddy/internal/platform/apperr"
)

// # Slice Pagination

// Window is an offset-based page request for slice pagination.
type Window struct {
	Offset int
	Size   int
}

// Validate reports a caller error for a negative offset or a non-positive size.
func (w Window) Validate() error {
	if w.Offset < 0 {
		return apperr.ValidationError("Invalid page window", apperr.FieldError{Field: "offset", Message: "Must not be negative"})
	}
	if w.Size <= 0 {
		return apperr.ValidationError("Invalid page window", apperr.FieldError{Field: "limit", Message: "Must be at least 1"})
	}
	return nil
}

// Slice is one window of an ordered result set.
//
// HasNext reports whether at least one more row exists past this window; no
// total count is computed.
type Slice[T any] struct {
	Items   []T
	HasNext bool
}

// FetchFunc runs an ordered query returning at most limit rows starting at offset.
type FetchFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// FetchSlice runs fetch with a one-row look-ahead and trims the extra row.
//
// It requests Size+1 rows: when all of them arrive the last one is dropped and
// HasNext is true. Items is never nil.
func FetchSlice[T any](ctx context.Context, window Window, fetch FetchFunc[T]) (Slice[T], error) {
	if err := window.Validate(); err != nil {
		return Slice[T]{}, err
	}

	rows, err := fetch(ctx, window.Size+1, window.Offset)
	if err != nil {
		return Slice[T]{}, err
	}

	hasNext := false
	if len(rows) > window.Size {
		rows = rows[:window.Size]
		hasNext = true
	}

	if rows == nil {
		rows = make([]T, 0)
	}

	return Slice[T]{Items: rows, HasNext: hasNext}, nil
}

// SliceMeta is the pagination metadata included in slice responses.
type SliceMeta struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasNext bool `json:"has_next"`
}

// NewSliceMeta constructs slice metadata for a response.
func NewSliceMeta(page Page, hasNext bool) SliceMeta {
	return SliceMeta{Page: page.Number, Limit: page.Limit, HasNext: hasNext}
}
