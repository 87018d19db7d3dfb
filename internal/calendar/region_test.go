package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegionSource_US(t *testing.T) {
	src, err := NewRegionSource("US")
	require.NoError(t, err)

	holidays, err := src.Holidays(context.Background(), 2025)
	require.NoError(t, err)

	dates := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		dates[h.Date.Format("2006-01-02")] = true
	}

	assert.True(t, dates["2025-07-04"], "Independence Day")
	assert.True(t, dates["2025-11-27"], "Thanksgiving")
	assert.True(t, dates["2025-12-25"], "Christmas")
}

func TestRegionSource_Unknown(t *testing.T) {
	_, err := NewRegionSource("atlantis")
	assert.ErrorContains(t, err, "us")
}

func TestRegionSource_Increment(t *testing.T) {
	src, err := NewRegionSource("us")
	require.NoError(t, err)

	cal := New(zap.NewNop())
	require.NoError(t, cal.SetWorkWindow(
		time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC)))
	require.NoError(t, Import(context.Background(), cal, src, 2025))

	// Wednesday before Thanksgiving, one workday later is Friday
	result, err := cal.GetWorkdayIncrement(time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)
	want := time.Date(2025, 11, 28, 9, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(result), "got %v, want %v", result, want)
}
