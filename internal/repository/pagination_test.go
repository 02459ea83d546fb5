package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		p          Pagination
		defSize    int
		wantLimit  int
		wantOffset int
	}{
		{"zero values fall back to defaults", Pagination{}, 50, 50, 0},
		{"negative page clamps to first", Pagination{Page: -3, PageSize: 10}, 50, 10, 0},
		{"zero page size uses default", Pagination{Page: 2}, 20, 20, 20},
		{"later page offsets by full pages", Pagination{Page: 4, PageSize: 15}, 50, 15, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := tt.p.LimitOffset(tt.defSize)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
