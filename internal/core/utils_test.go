package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/06/2021")
	assert.Error(t, err)
}

func TestFormatDateRoundTrip(t *testing.T) {
	d := time.Date(2022, time.November, 3, 0, 0, 0, 0, time.UTC)
	parsed, err := ParseDate(FormatDate(d))
	require.NoError(t, err)
	assert.Equal(t, d, parsed)
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2023, time.April, 13, 17, 42, 9, 120, time.UTC)
	assert.Equal(t, time.Date(2023, time.April, 13, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}

func TestParseDateSpecExact(t *testing.T) {
	d, err := ParseDateSpec("2023-02-02")
	require.NoError(t, err)
	assert.Equal(t, "2023-02-02", FormatDate(d))
}

func TestParseDateSpecRelative(t *testing.T) {
	today := Today()

	cases := map[string]time.Time{
		"d-7": today.AddDate(0, 0, -7),
		"w-2": today.AddDate(0, 0, -14),
		"m-3": today.AddDate(0, -3, 0),
		"y-1": today.AddDate(-1, 0, 0),
	}
	for spec, want := range cases {
		got, err := ParseDateSpec(spec)
		require.NoError(t, err, spec)
		assert.Equal(t, want, got, spec)
	}
}

func TestParseDateSpecInvalid(t *testing.T) {
	for _, spec := range []string{"", "q-3", "d+7", "next tuesday"} {
		_, err := ParseDateSpec(spec)
		assert.Error(t, err, spec)
	}
}
