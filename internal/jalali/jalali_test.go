package jalali

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGregorian(t *testing.T) {
	got, err := ToGregorian("1404-01-18")
	require.NoError(t, err)
	assert.Equal(t, "2025-04-07", got)

	// Nowruz 1403
	got, err = ToGregorian("1403-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-20", got)
}

func TestToJalali(t *testing.T) {
	got, err := ToJalali("2025-04-07")
	require.NoError(t, err)
	assert.Equal(t, "1404-01-18", got)

	got, err = ToJalali("2024-03-20")
	require.NoError(t, err)
	assert.Equal(t, "1403-01-01", got)
}

func TestRoundTrip(t *testing.T) {
	dates := []string{
		"1400-01-01",
		"1402-06-31",
		"1403-12-30", // leap year end
		"1404-11-22",
	}

	for _, d := range dates {
		g, err := ToGregorian(d)
		require.NoError(t, err, "jalali %s", d)

		back, err := ToJalali(g)
		require.NoError(t, err, "gregorian %s", g)
		assert.Equal(t, d, back)
	}
}

func TestInvalidInputReturnsOriginal(t *testing.T) {
	tests := []string{
		"not-a-date",
		"1404/01/18",
		"1404-13-01",
		"1404-01-45",
		"",
	}

	for _, d := range tests {
		got, err := ToGregorian(d)
		assert.Error(t, err, "input %q", d)
		assert.Equal(t, d, got, "input must pass through unchanged")
	}
}

func TestDateFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		wantDate string
		wantCal  Calendar
		wantOK   bool
	}{
		{"2025-03-18_report.pdf", "2025-03-18", CalendarGregorian, true},
		{"photo_1404.01.18.jpg", "1404-01-18", CalendarJalali, true},
		{"scan-1403_12_30.png", "1403-12-30", CalendarJalali, true},
		{"14040118.jpg", "1404-01-18", CalendarJalali, true},
		{"IMG_20250318.jpg", "2025-03-18", CalendarGregorian, true},
		{"13990705-invoice.pdf", "1399-07-05", CalendarJalali, true},
		{"report.pdf", "", "", false},
		{"v2.3.1-release.txt", "", "", false},
		{"20251490.jpg", "", "", false}, // month 14 is not a date
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, cal, ok := DateFromFilename(tc.name)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantDate, date)
			assert.Equal(t, tc.wantCal, cal)
		})
	}
}

func TestDateFromFilenameSeparatedBeatsCompact(t *testing.T) {
	// Both patterns could match; the separated form is the intended one
	date, cal, ok := DateFromFilename("backup_2025-01-05_140401180000.zip")
	require.True(t, ok)
	assert.Equal(t, "2025-01-05", date)
	assert.Equal(t, CalendarGregorian, cal)
}
