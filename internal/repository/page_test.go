package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	cases := []struct {
		name       string
		requested  int
		totalItems int
		wantPage   int
		wantPages  int
	}{
		{"first page", 1, 25, 1, 3},
		{"middle page", 2, 25, 2, 3},
		{"exact multiple", 3, 30, 3, 3},
		{"past the end clamps to last", 99, 25, 3, 3},
		{"zero clamps to first", 0, 25, 1, 3},
		{"negative clamps to first", -7, 25, 1, 3},
		{"empty listing has one page", 1, 0, 1, 1},
		{"empty listing clamps high request", 5, 0, 1, 1},
		{"single item", 1, 1, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, pages := ClampPage(tc.requested, tc.totalItems, DefaultPageSize)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPages, pages)
		})
	}
}

func TestClampPageBadSize(t *testing.T) {
	page, pages := ClampPage(2, 25, 0)
	assert.Equal(t, 2, page, "invalid size falls back to the default")
	assert.Equal(t, 3, pages)
}
