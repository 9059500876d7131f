// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/boardbuddy/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, slice.Map([]string{"a", "b"}, strings.ToUpper))
	assert.Nil(t, slice.Map[string, string](nil, strings.ToUpper))
}

func TestFilter(t *testing.T) {
	nonEmpty := func(s string) bool { return s != "" }

	assert.Equal(t, []string{"a", "b"}, slice.Filter([]string{"a", "", "b"}, nonEmpty))
	assert.Empty(t, slice.Filter([]string{"", ""}, nonEmpty))
	assert.Nil(t, slice.Filter(nil, nonEmpty))
}

func TestDistinct(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"keeps_first_occurrence", []string{"강남구", "서초구", "강남구"}, []string{"강남구", "서초구"}},
		{"already_distinct", []string{"a", "b"}, []string{"a", "b"}},
		{"empty", []string{}, []string{}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slice.Distinct(tt.input))
		})
	}
}
