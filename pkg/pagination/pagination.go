// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination turns the "page" and "limit" query parameters into an
// offset [Window] and fetches look-ahead [Slice] results, so list endpoints
// report has_next without a count query.
package pagination

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	// MaxPage keeps every window offset within a PostgreSQL int4.
	MaxPage = math.MaxInt32/MaxLimit + 1
)

// Page is a 1-based page request. Number and Limit are always valid once
// produced by [FromRequest] or [FromValues].
type Page struct {
	Number int
	Limit  int
}

// Window converts the page into an offset window.
func (p Page) Window() Window {
	return Window{Offset: (p.Number - 1) * p.Limit, Size: p.Limit}
}

// FromRequest reads the page of r's query string. See [FromValues].
func FromRequest(r *http.Request) Page {
	return FromValues(r.URL.Query())
}

// FromValues reads "page" and "limit". Missing or unparsable values fall back
// to the first page and [DefaultLimit]. A limit above [MaxLimit] and a page
// above [MaxPage] are capped.
func FromValues(values url.Values) Page {
	page := Page{Number: 1, Limit: DefaultLimit}

	if n, err := strconv.Atoi(values.Get("page")); err == nil && n > 1 {
		page.Number = min(n, MaxPage)
	}
	if n, err := strconv.Atoi(values.Get("limit")); err == nil && n >= 1 {
		page.Limit = min(n, MaxLimit)
	}

	return page
}
