// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer helps with the optional values that nullable columns and
// optional query inputs produce.
package pointer

// To returns a pointer to v, e.g. pointer.To(int64(5)) for an optional viewer id.
func To[T any](v T) *T {
	return &v
}

// Fallback dereferences p, returning fallback when p is nil.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
