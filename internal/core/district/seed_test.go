// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package district_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/boardbuddy/internal/core/district"
)

func TestLoadCSV(t *testing.T) {
	input := "sido,sgg,emd,x,y\n" +
		"서울특별시,강남구,역삼동,127.0365,37.5006\n" +
		"서울특별시, 강남구 ,삼성동,127.0565,37.5140\n"

	districts, err := district.LoadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, districts, 2)
	assert.Equal(t, district.Key{Sido: "서울특별시", Sgg: "강남구", Emd: "삼성동"}, districts[1].Key)
	assert.InDelta(t, 127.0565, districts[1].X, 1e-9)
}

func TestLoadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong_header", "a,b,c,d,e\n"},
		{"bad_coordinates", "sido,sgg,emd,x,y\nS,G,E,east,north\n"},
		{"missing_column", "sido,sgg,emd,x,y\nS,G,E,1\n"},
		{"blank_name", "sido,sgg,emd,x,y\nS, ,E,1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := district.LoadCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

// tableWriter keeps districts and adjacency rows the way the upserts would.
type tableWriter struct {
	ids     map[district.Key]int64
	near    map[int64]map[district.Key]int
	deletes int
	fail    error
}

func newTableWriter() *tableWriter {
	return &tableWriter{
		ids:  make(map[district.Key]int64),
		near: make(map[int64]map[district.Key]int),
	}
}

func (w *tableWriter) SaveDistrict(_ context.Context, d district.District) (int64, error) {
	if w.fail != nil {
		return 0, w.fail
	}
	id, ok := w.ids[d.Key]
	if !ok {
		id = int64(len(w.ids) + 1)
		w.ids[d.Key] = id
	}
	return id, nil
}

func (w *tableWriter) DeleteNearDistricts(_ context.Context, fromID int64) error {
	w.deletes++
	delete(w.near, fromID)
	return nil
}

func (w *tableWriter) SaveNearDistrict(_ context.Context, fromID int64, near district.NearDistrict) error {
	if w.near[fromID] == nil {
		w.near[fromID] = make(map[district.Key]int)
	}
	w.near[fromID][near.To] = near.Radius
	return nil
}

func TestSeed(t *testing.T) {
	districts := fixtureDistricts()
	index := fixtureIndex(t)
	writer := newTableWriter()

	stats, err := district.Seed(context.Background(), writer, districts, index)
	require.NoError(t, err)

	assert.Equal(t, len(districts), stats.Districts)
	assert.Equal(t, len(index.Rows()), stats.NearDistricts)
	assert.Equal(t, len(districts), writer.deletes)

	// A owns its self row plus B, C and D.
	assert.Equal(t, map[district.Key]int{keyA: 0, keyB: 2, keyC: 5, keyD: 10}, writer.near[writer.ids[keyA]])
}

func TestSeed_ReseedDropsStalePairs(t *testing.T) {
	writer := newTableWriter()
	ctx := context.Background()

	_, err := district.Seed(ctx, writer, fixtureDistricts(), fixtureIndex(t))
	require.NoError(t, err)
	require.Contains(t, writer.near[writer.ids[keyA]], keyD)

	tighter, err := district.NewIndex(fixtureDistricts(), []int{2, 5})
	require.NoError(t, err)

	stats, err := district.Seed(ctx, writer, fixtureDistricts(), tighter)
	require.NoError(t, err)
	assert.Equal(t, len(tighter.Rows()), stats.NearDistricts)

	fromA := writer.near[writer.ids[keyA]]
	assert.NotContains(t, fromA, keyD)
	assert.Equal(t, map[district.Key]int{keyA: 0, keyB: 2, keyC: 5}, fromA)
	assert.NotContains(t, writer.near[writer.ids[keyD]], keyA)
}

func TestSeed_PropagatesWriterErrors(t *testing.T) {
	writer := newTableWriter()
	writer.fail = errors.New("disk full")

	_, err := district.Seed(context.Background(), writer, fixtureDistricts(), fixtureIndex(t))
	assert.ErrorContains(t, err, "disk full")
}
