// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package district

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// earthRadiusKm is the mean Earth radius used by [Haversine].
const earthRadiusKm = 6371.0088

// DefaultBands are the radius bands, in kilometres, used when none are configured.
var DefaultBands = []int{2, 5, 10}

// Haversine returns the great-circle distance in kilometres between two
// centroids given as (longitude, latitude) degrees.
func Haversine(x1, y1, x2, y2 float64) float64 {
	const toRad = math.Pi / 180

	dLat := (y2 - y1) * toRad
	dLon := (x2 - x1) * toRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(y1*toRad)*math.Cos(y2*toRad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

// # Proximity Index

// Index is an immutable in-memory adjacency table built from district centroids.
//
// For every ordered pair (from, to) it stores the smallest band that covers
// their distance. Pairs farther apart than the largest band are absent.
// Safe for concurrent reads.
type Index struct {
	bands     []int
	districts map[Key]District
	near      map[Key]map[Key]int
}

// NewIndex builds an Index over districts with the given bands (kilometres).
// Bands are deduplicated and sorted; nil uses [DefaultBands].
func NewIndex(districts []District, bands []int) (*Index, error) {
	if bands == nil {
		bands = DefaultBands
	}

	sorted := slices.Clone(bands)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if len(sorted) == 0 || sorted[0] <= 0 {
		return nil, fmt.Errorf("district: bands must be positive, got %v", bands)
	}

	index := &Index{
		bands:     sorted,
		districts: make(map[Key]District, len(districts)),
		near:      make(map[Key]map[Key]int, len(districts)),
	}

	for _, d := range districts {
		if _, dup := index.districts[d.Key]; dup {
			return nil, fmt.Errorf("district: duplicate district %q", d.Key)
		}
		index.districts[d.Key] = d
	}

	maxBand := float64(sorted[len(sorted)-1])
	for _, from := range districts {
		reach := map[Key]int{from.Key: 0}
		for _, to := range districts {
			if to.Key == from.Key {
				continue
			}
			distance := Haversine(from.X, from.Y, to.X, to.Y)
			if distance > maxBand {
				continue
			}
			reach[to.Key] = index.bandFor(distance)
		}
		index.near[from.Key] = reach
	}

	return index, nil
}

// bandFor returns the smallest band >= distance. Callers guarantee it exists.
func (index *Index) bandFor(distance float64) int {
	position := sort.Search(len(index.bands), func(i int) bool {
		return float64(index.bands[i]) >= distance
	})
	return index.bands[position]
}

// Bands returns the configured bands in ascending order.
func (index *Index) Bands() []int {
	return slices.Clone(index.bands)
}

// Len returns the number of indexed districts.
func (index *Index) Len() int {
	return len(index.districts)
}

// Band returns the adjacency band from one district to another. ok is false
// when either district is unknown or they are farther apart than every band.
func (index *Index) Band(from, to Key) (band int, ok bool) {
	band, ok = index.near[from][to]
	return band, ok
}

// Near returns the districts reachable from home within radius, home first,
// then by band and key.
func (index *Index) Near(home Key, radius int) []Key {
	type entry struct {
		key  Key
		band int
	}

	var entries []entry
	for key, band := range index.near[home] {
		if band <= radius {
			entries = append(entries, entry{key, band})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].band != entries[j].band {
			return entries[i].band < entries[j].band
		}
		return entries[i].key.String() < entries[j].key.String()
	})

	keys := make([]Key, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return keys
}

// Eligible reports whether a member living in home with the given radius may
// be matched with an article located in target.
func (index *Index) Eligible(home Key, radius int, target Key) bool {
	band, ok := index.Band(home, target)
	return ok && radius >= band
}

// Rows returns every adjacency as a [NearDistrict], including the band-0 self
// rows, ordered by source key then band.
func (index *Index) Rows() []NearDistrict {
	froms := make([]Key, 0, len(index.near))
	for key := range index.near {
		froms = append(froms, key)
	}
	sort.Slice(froms, func(i, j int) bool { return froms[i].String() < froms[j].String() })

	var rows []NearDistrict
	for _, from := range froms {
		for _, to := range index.Near(from, index.bands[len(index.bands)-1]) {
			rows = append(rows, NearDistrict{From: from, To: to, Radius: index.near[from][to]})
		}
	}
	return rows
}
