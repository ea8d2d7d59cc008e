package helper_util

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query   string
		page    int
		perPage int
		wantErr bool
	}{
		{"", 0, 0, false},
		{"?page=2&per_page=50", 2, 50, false},
		{"?per_page=500", 0, MaxPerPage, false},
		{"?page=abc", 0, 0, true},
		{"?per_page=-1", 0, 0, true},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/users"+tt.query, nil)

		page, perPage, err := GetPaginationParams(c)
		if tt.wantErr {
			assert.Error(t, err, tt.query)
			continue
		}
		require.NoError(t, err, tt.query)
		assert.Equal(t, tt.page, page, tt.query)
		assert.Equal(t, tt.perPage, perPage, tt.query)
	}
}

func TestParseTimeRange(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	start, end, err := ParseTimeRange("", "", now, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now, end)
	assert.Equal(t, now.Add(-24*time.Hour), start)

	start, end, err = ParseTimeRange("2026-02-01T00:00:00Z", "2026-02-02T00:00:00Z", now, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), end)

	_, _, err = ParseTimeRange("2026-02-03T00:00:00Z", "2026-02-02T00:00:00Z", now, time.Hour)
	assert.Error(t, err)

	_, _, err = ParseTimeRange("yesterday", "", now, time.Hour)
	assert.Error(t, err)
}
