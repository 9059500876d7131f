// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package district models administrative districts and their precomputed
adjacency, and answers proximity questions for the gathering domain.

# Core Responsibility

  - Identity: A district is addressed by its (sido, sgg, emd) [Key].
  - Adjacency: [Index] buckets centroid distances into radius bands and emits
    the [NearDistrict] rows stored in core.neardistrict.
  - Matching: [Repository] finds the members whose home district reaches a
    target within their own radius.

A member with radius r is eligible for a target district iff an adjacency row
exists from their home to the target with band b <= r. Every district reaches
itself at band 0, so r = 0 matches only the home district.
*/
package district

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/boardbuddy/pkg/slice"
)

// # Core Entities

// Key identifies a district by its three administrative levels.
type Key struct {
	Sido string `json:"sido"`
	Sgg  string `json:"sgg"`
	Emd  string `json:"emd"`
}

// String renders the key as "sido sgg emd".
func (k Key) String() string {
	return k.Sido + " " + k.Sgg + " " + k.Emd
}

// IsZero reports whether no level is set.
func (k Key) IsZero() bool {
	return k.Sido == "" && k.Sgg == "" && k.Emd == ""
}

// District is a named district with its centroid, X = longitude, Y = latitude.
type District struct {
	ID  int64   `json:"id"`
	Key Key     `json:"key"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

// NearDistrict says that To is reachable from From within Radius kilometres.
type NearDistrict struct {
	From   Key `json:"from"`
	To     Key `json:"to"`
	Radius int `json:"radius"`
}

// # Normalization

// Normalize trims a district name and converts it to Unicode NFC, so names
// typed on different keyboards (decomposed Hangul jamo) match stored rows.
func Normalize(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// NormalizeAll applies [Normalize] to every name and drops empty results.
func NormalizeAll(names []string) []string {
	return slice.Filter(slice.Map(names, Normalize), func(name string) bool { return name != "" })
}

// NewKey builds a normalized [Key].
func NewKey(sido, sgg, emd string) Key {
	return Key{Sido: Normalize(sido), Sgg: Normalize(sgg), Emd: Normalize(emd)}
}
