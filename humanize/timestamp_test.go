package humanize

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantConstructors(t *testing.T) {
	want := int64(1704067200)

	assert.Equal(t, want, Unix(want).Unix())
	assert.Equal(t, want, UnixFloat(1704067200.999).Unix())
	assert.Equal(t, int64(-1), UnixFloat(-1.7).Unix())

	loc := time.FixedZone("UTC+2", 2*3600)
	assert.Equal(t, want, FromTime(time.Date(2024, 1, 1, 2, 0, 0, 500_000_000, loc)).Unix())
}

func TestUnixFloat_OutOfRange(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{math.NaN(), 0},
		{math.Inf(1), math.MaxInt64},
		{math.Inf(-1), math.MinInt64},
		{1e300, math.MaxInt64},
		{-1e300, math.MinInt64},
		{math.MaxInt64, math.MaxInt64},
		{math.MinInt64, math.MinInt64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, UnixFloat(tt.in).Unix(), "UnixFloat(%v)", tt.in)
	}
}

func TestInstantTime(t *testing.T) {
	got := Unix(1704067200).Time()
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2024-01-01T00:00:00Z", Unix(1704067200).String())
}

func TestInstantCompare(t *testing.T) {
	a, b := Unix(1), Unix(2)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(UnixFloat(1.9)))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(FromTime(time.Unix(1, 999))))
}

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"2024-01-01T00:00:00Z", 1704067200},
		{"2024-01-01T02:00:00+02:00", 1704067200},
		{"2023-12-31T19:00:00-05:00", 1704067200},
		{"2024-01-01T00:00:00.750Z", 1704067200},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseISO8601(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Unix())
		})
	}
}

func TestParseISO8601_Invalid(t *testing.T) {
	for _, in := range []string{"", "2024-01-01", "2024-01-01T00:00:00", "yesterday", "1704067200"} {
		_, err := ParseISO8601(in)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, in)
		assert.Equal(t, "Invalid timestamp format: "+in, perr.Msg)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1704067200", 1704067200},
		{" 1704067200 ", 1704067200},
		{"-86400", -86400},
		{"1704067200.9", 1704067200},
		{"-0.5", 0},
		{"2024-01-01T00:00:00Z", 1704067200},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Unix())
		})
	}

	for _, in := range []string{"NaN", "Inf", "0x1p4", "1e9", "", "tomorrow"} {
		_, err := ParseTimestamp(in)
		assert.Error(t, err, in)
	}
}
