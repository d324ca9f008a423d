// Package jalali converts dates between the Persian (Jalali) and Gregorian
// calendars and extracts plausible dates from free-form filenames.
package jalali

import (
	"fmt"
	"regexp"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Calendar tags which system a YYYY-MM-DD string belongs to
type Calendar string

const (
	CalendarJalali    Calendar = "jalali"
	CalendarGregorian Calendar = "gregorian"
)

const dateLayout = "2006-01-02"

// ToGregorian converts a Jalali YYYY-MM-DD string to its Gregorian
// equivalent. On invalid input the original string is returned along with the
// error, so callers that must stay silent can ignore the error and keep the
// input unchanged.
func ToGregorian(date string) (string, error) {
	y, m, d, err := splitDate(date)
	if err != nil {
		return date, err
	}
	// Noon avoids DST edges around the Tehran offset changes
	pt := ptime.Date(y, ptime.Month(m), d, 12, 0, 0, 0, ptime.Iran())
	if pt.Year() != y || int(pt.Month()) != m || pt.Day() != d {
		return date, fmt.Errorf("invalid jalali date %q", date)
	}
	return pt.Time().Format(dateLayout), nil
}

// ToJalali converts a Gregorian YYYY-MM-DD string to its Jalali equivalent.
// Same fallback contract as ToGregorian.
func ToJalali(date string) (string, error) {
	t, err := time.ParseInLocation(dateLayout, date, ptime.Iran())
	if err != nil {
		return date, err
	}
	pt := ptime.New(t.Add(12 * time.Hour))
	return fmt.Sprintf("%04d-%02d-%02d", pt.Year(), int(pt.Month()), pt.Day()), nil
}

// Today returns the current Jalali date as YYYY-MM-DD
func Today() string {
	pt := ptime.Now()
	return fmt.Sprintf("%04d-%02d-%02d", pt.Year(), int(pt.Month()), pt.Day())
}

// YearMonth returns the current Jalali year and month, used for serial keys
func YearMonth() (int, int) {
	pt := ptime.Now()
	return pt.Year(), int(pt.Month())
}

var (
	separatedDateRe = regexp.MustCompile(`(13\d{2}|14\d{2}|20\d{2})[-_./](\d{1,2})[-_./](\d{1,2})`)
	compactDateRe   = regexp.MustCompile(`(13\d{2}|14\d{2}|20\d{2})(\d{2})(\d{2})`)
)

// DateFromFilename scans a filename for a digit run that looks like a date:
// a 4-digit year prefixed 13/14/20 followed by month and day, with optional
// separators. Years in [1300,1499] classify as Jalali, anything else as
// Gregorian. Matches with month outside 1-12 or day outside 1-31 are skipped.
func DateFromFilename(name string) (string, Calendar, bool) {
	for _, re := range []*regexp.Regexp{separatedDateRe, compactDateRe} {
		for _, m := range re.FindAllStringSubmatch(name, -1) {
			y := atoi(m[1])
			month := atoi(m[2])
			day := atoi(m[3])
			if month < 1 || month > 12 || day < 1 || day > 31 {
				continue
			}
			cal := CalendarGregorian
			if y >= 1300 && y <= 1499 {
				cal = CalendarJalali
			}
			return fmt.Sprintf("%04d-%02d-%02d", y, month, day), cal, true
		}
	}
	return "", "", false
}

func splitDate(date string) (year, month, day int, err error) {
	if _, scanErr := fmt.Sscanf(date, "%4d-%2d-%2d", &year, &month, &day); scanErr != nil {
		return 0, 0, 0, fmt.Errorf("malformed date %q: expected YYYY-MM-DD", date)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("date %q out of range", date)
	}
	return year, month, day, nil
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
