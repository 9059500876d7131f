// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/boardbuddy/pkg/query"
)

func TestStrings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"absent", "", nil},
		{"repeated", "sido=Seoul&sido=Busan", []string{"Seoul", "Busan"}},
		{"comma_separated", "sido=Seoul,%20Busan", []string{"Seoul", "Busan"}},
		{"mixed_with_duplicates", "sido=Seoul,Busan&sido=Seoul&sido=", []string{"Seoul", "Busan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, query.Strings(values, "sido"))
		})
	}
}

func TestBool(t *testing.T) {
	for raw, want := range map[string]bool{"nearby=true": true, "nearby=1": true, "nearby=TRUE": true, "nearby=no": false, "": false} {
		values, _ := url.ParseQuery(raw)
		assert.Equal(t, want, query.Bool(values, "nearby"), raw)
	}
}
