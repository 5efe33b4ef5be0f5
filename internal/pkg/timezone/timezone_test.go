package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegion_ValidOffsets(t *testing.T) {
	tests := []struct {
		offset  string
		seconds int
	}{
		{"+04:00", 4 * 3600},
		{"+05:30", 5*3600 + 30*60},
		{"-03:00", -3 * 3600},
		{"+00:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.offset, func(t *testing.T) {
			region, err := NewRegion(tt.offset)
			require.NoError(t, err)

			_, gotSeconds := time.Now().In(region.Location()).Zone()
			assert.Equal(t, tt.seconds, gotSeconds)
		})
	}
}

func TestNewRegion_InvalidOffsets(t *testing.T) {
	for _, offset := range []string{"", "04:00", "+4:00", "+04.00", "+25:00", "garbage"} {
		t.Run(offset, func(t *testing.T) {
			_, err := NewRegion(offset)
			assert.ErrorIs(t, err, ErrInvalidInstant)
		})
	}
}

func TestRegion_RoundTrip(t *testing.T) {
	region, err := NewRegion("+04:00")
	require.NoError(t, err)

	instant := time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC)

	local := region.ToRegional(instant)
	assert.Equal(t, 9, local.Hour())

	back := region.ToInstant(local)
	assert.True(t, instant.Equal(back))
}

func TestRegion_DateOf_CrossesMidnight(t *testing.T) {
	region, err := NewRegion("+04:00")
	require.NoError(t, err)

	// 22:30 UTC is already 02:30 next day in the region.
	instant := time.Date(2024, 3, 15, 22, 30, 0, 0, time.UTC)
	date := region.DateOf(instant)

	assert.Equal(t, 16, date.Day())
	assert.Equal(t, 0, date.Hour())
}

func TestRegion_At(t *testing.T) {
	region, err := NewRegion("+04:00")
	require.NoError(t, err)

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, region.Location())
	clock := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)

	got := region.At(date, clock)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 15, got.Day())
	assert.Equal(t, region.Location(), got.Location())
}

func TestRegion_ParseInstant(t *testing.T) {
	region, err := NewRegion("+04:00")
	require.NoError(t, err)

	got, err := region.ParseInstant("2024-03-15T09:00:00+04:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC), got.UTC())

	_, err = region.ParseInstant("not-a-timestamp")
	assert.ErrorIs(t, err, ErrInvalidInstant)
}

func TestRegion_ParseDate(t *testing.T) {
	region, err := NewRegion("+04:00")
	require.NoError(t, err)

	got, err := region.ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, region.Location(), got.Location())

	_, err = region.ParseDate("15/03/2024")
	assert.ErrorIs(t, err, ErrInvalidInstant)
}
