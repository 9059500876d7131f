// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses multi-valued URL query parameters.
package query

import (
	"net/url"
	"strings"

	"github.com/taibuivan/boardbuddy/pkg/slice"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Strings collects every value of key, accepting both repeated parameters
// (?sido=a&sido=b) and comma-separated lists (?sido=a,b). Duplicates are
// dropped, order of first appearance is kept.
func Strings(values url.Values, key string) []string {
	var res []string
	for _, raw := range values[key] {
		res = append(res, StringSlice(raw)...)
	}
	return slice.Distinct(res)
}

// Bool reports whether key is set to a truthy value ("true", "1", "yes").
func Bool(values url.Values, key string) bool {
	switch strings.ToLower(strings.TrimSpace(values.Get(key))) {
	case "true", "1", "yes":
		return true
	}
	return false
}
