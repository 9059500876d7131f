// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package district

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvHeader is the expected first record of a district file.
var csvHeader = []string{"sido", "sgg", "emd", "x", "y"}

// LoadCSV reads districts from r. The first record must be the header
// "sido,sgg,emd,x,y"; names are normalized.
func LoadCSV(r io.Reader) ([]District, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("district: read header: %w", err)
	}
	for i, column := range csvHeader {
		if strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))) != column {
			return nil, fmt.Errorf("district: unexpected header %v, want %v", header, csvHeader)
		}
	}

	var districts []District
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("district: line %d: %w", line, err)
		}

		x, errX := strconv.ParseFloat(record[3], 64)
		y, errY := strconv.ParseFloat(record[4], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("district: line %d: invalid coordinates %q, %q", line, record[3], record[4])
		}

		key := NewKey(record[0], record[1], record[2])
		if key.Sido == "" || key.Sgg == "" || key.Emd == "" {
			return nil, fmt.Errorf("district: line %d: empty district name", line)
		}

		districts = append(districts, District{Key: key, X: x, Y: y})
	}

	return districts, nil
}

// SeedStats reports what [Seed] wrote.
type SeedStats struct {
	Districts     int
	NearDistricts int
}

// Seed writes every district and replaces its adjacency rows with those of
// index, so pairs that no longer share a band disappear on reseed. Run it
// inside a transaction to swap the table contents atomically.
func Seed(ctx context.Context, writer Writer, districts []District, index *Index) (SeedStats, error) {
	var stats SeedStats
	ids := make(map[Key]int64, len(districts))

	for _, d := range districts {
		id, err := writer.SaveDistrict(ctx, d)
		if err != nil {
			return stats, err
		}
		if err := writer.DeleteNearDistricts(ctx, id); err != nil {
			return stats, err
		}
		ids[d.Key] = id
		stats.Districts++
	}

	for _, row := range index.Rows() {
		fromID, ok := ids[row.From]
		if !ok {
			return stats, fmt.Errorf("district: adjacency source %q was not saved", row.From)
		}
		if err := writer.SaveNearDistrict(ctx, fromID, row); err != nil {
			return stats, err
		}
		stats.NearDistricts++
	}

	return stats, nil
}
