package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"email-meeting-triage/internal/model"
	"email-meeting-triage/pkg/datemath"
)

// DateTimeExtractor parses free-form date/time expressions embedded in email
// text into a normalized human-readable string. It never fails; when nothing
// matches it returns model.NotSpecified.
type DateTimeExtractor struct {
	dates *datemath.Parser
	now   func() time.Time
}

// NewDateTimeExtractor creates an extractor. now may be nil (defaults to
// time.Now); tests inject a fixed clock.
func NewDateTimeExtractor(dates *datemath.Parser, now func() time.Time) *DateTimeExtractor {
	if now == nil {
		now = time.Now
	}
	return &DateTimeExtractor{dates: dates, now: now}
}

// dateTimeStrategy is one named pattern in the cascade. Strategies are tried
// in order; the first one that matches wins. Earlier entries are strictly
// more specific than later ones.
type dateTimeStrategy struct {
	name string
	fn   func(e *DateTimeExtractor, text string) (string, bool)
}

var dateTimeStrategies = []dateTimeStrategy{
	{"labeled-date-and-time", (*DateTimeExtractor).fromLabeledDateTime},
	{"month-day-at-time", (*DateTimeExtractor).fromMonthDayAtTime},
	{"month-day-year-labeled-time", (*DateTimeExtractor).fromMonthDayYearLabeledTime},
	{"available-on", (*DateTimeExtractor).fromAvailableOn},
	{"month-day-year-time", (*DateTimeExtractor).fromMonthDayYearTime},
	{"tomorrow-at-time", (*DateTimeExtractor).fromTomorrowAt},
	{"next-week-on-weekday", (*DateTimeExtractor).fromNextWeekOn},
	{"month-day-year", (*DateTimeExtractor).fromMonthDayYear},
	{"bare-relative", (*DateTimeExtractor).fromBareRelative},
	{"time-only", (*DateTimeExtractor).fromTimeOnly},
}

// Extract runs the strategy cascade over text.
func (e *DateTimeExtractor) Extract(text string) string {
	for _, s := range dateTimeStrategies {
		if out, ok := s.fn(e, text); ok {
			return out
		}
	}
	return model.NotSpecified
}

const monthGroup = `(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`

var (
	labeledDateTimeRe  = regexp.MustCompile(`(?is)Date:\s*` + monthGroup + `\s+(\d{1,2})(?:st|nd|rd|th)?,?\s*(\d{4}).*?Time:\s*(\d{1,2}):(\d{2})\s*(AM|PM)`)
	monthDayAtTimeRe   = regexp.MustCompile(`(?i)` + monthGroup + `\s+(\d{1,2})(?:st|nd|rd|th)?\s+at\s+(\d{1,2})[:.](\d{2})\s*(AM|PM|GMT[+-]?\d{1,2})?`)
	labeledTimeRe      = regexp.MustCompile(`(?is)` + monthGroup + `\s+(\d{1,2})(?:st|nd|rd|th)?,\s*(\d{4}).*?Time:\s*(\d{1,2}):(\d{2})\s*(AM|PM)`)
	availableOnRe      = regexp.MustCompile(`(?is)available on\s+` + monthGroup + `\s+(\d{1,2})(?:st|nd|rd|th)?,\s*(\d{4}).*?(\d{1,2}):(\d{2})\s*(AM|PM)`)
	monthDayYearTimeRe = regexp.MustCompile(`(?i)` + monthGroup + `\s+(\d{1,2})(?:st|nd|rd|th)?,\s*(\d{4})\s*(?:at|,|-|from)?\s*(\d{1,2}):(\d{2})\s*(AM|PM)`)
	monthDayYearRe     = regexp.MustCompile(`(?i)` + monthGroup + `\s+(\d{1,2})(?:st|nd|rd|th)?,\s*(\d{4})`)
	tomorrowAtRe       = regexp.MustCompile(`(?i)\btomorrow\s+at\s+(\d{1,2})(?::(\d{2}))?\s*(AM|PM)`)
	nextWeekOnRe       = regexp.MustCompile(`(?i)\bnext week\s+on\s+(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\s+at\s+(\d{1,2})(?::(\d{2}))?\s*(AM|PM)`)
	tomorrowRe         = regexp.MustCompile(`(?i)\btomorrow\b`)
	nextWeekRe         = regexp.MustCompile(`(?i)\bnext week\b`)
	clockTimeRe        = regexp.MustCompile(`(?i)\b(\d{1,2})[:.](\d{2})\s*(AM|PM)?\b`)
	hourAmPmRe         = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(AM|PM)\b`)
)

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// "Date: January 15, 2024 ... Time: 2:00 PM"
func (e *DateTimeExtractor) fromLabeledDateTime(text string) (string, bool) {
	m := labeledDateTimeRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return formatMonthDayYearTime(m[1], m[2], m[3], m[4], m[5], m[6]), true
}

// "June 5 at 2.30 PM" / "June 5 at 14:30 GMT+2" with no year stated. The year
// is the current one, or next year if the stated month has already passed.
func (e *DateTimeExtractor) fromMonthDayAtTime(text string) (string, bool) {
	m := monthDayAtTimeRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	month, ok := monthNames[strings.ToLower(m[1])]
	if !ok {
		return "", false
	}

	now := e.now()
	year := now.Year()
	if month < now.Month() {
		year++
	}

	timePart := displayClock(m[3], m[4], m[5])
	return fmt.Sprintf("%s %s, %d at %s", canonicalMonth(m[1]), m[2], year, timePart), true
}

// "January 15, 2024 ... Time: 2:00 PM"
func (e *DateTimeExtractor) fromMonthDayYearLabeledTime(text string) (string, bool) {
	m := labeledTimeRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return formatMonthDayYearTime(m[1], m[2], m[3], m[4], m[5], m[6]), true
}

// "available on January 15, 2024 ... 2:00 PM"
func (e *DateTimeExtractor) fromAvailableOn(text string) (string, bool) {
	m := availableOnRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return formatMonthDayYearTime(m[1], m[2], m[3], m[4], m[5], m[6]), true
}

// "January 15th, 2024 at 2:00 PM", the common inline form.
func (e *DateTimeExtractor) fromMonthDayYearTime(text string) (string, bool) {
	m := monthDayYearTimeRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return formatMonthDayYearTime(m[1], m[2], m[3], m[4], m[5], m[6]), true
}

// "January 15, 2024" with no usable time nearby, producing date-only output.
func (e *DateTimeExtractor) fromMonthDayYear(text string) (string, bool) {
	m := monthDayYearRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s %s, %s", canonicalMonth(m[1]), m[2], m[3]), true
}

// "tomorrow at 2:00 PM", resolved against the clock at evaluation time.
func (e *DateTimeExtractor) fromTomorrowAt(text string) (string, bool) {
	m := tomorrowAtRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	day, _ := e.dates.Parse("tomorrow", e.now())
	minutes := m[2]
	if minutes == "" {
		minutes = "00"
	}
	return fmt.Sprintf("%s at %s", day.Format("January 2, 2006"), displayClock(m[1], minutes, m[3])), true
}

// "next week on Friday at 3:00 PM". Resolved as +7 days; the stated weekday
// is not located precisely. Kept for compatibility with the original
// behavior; the approximation is pinned by tests.
func (e *DateTimeExtractor) fromNextWeekOn(text string) (string, bool) {
	m := nextWeekOnRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	day, _ := e.dates.Parse("next week", e.now())
	minutes := m[2]
	if minutes == "" {
		minutes = "00"
	}
	return fmt.Sprintf("%s at %s", day.Format("January 2, 2006"), displayClock(m[1], minutes, m[3])), true
}

// Bare "tomorrow" / "next week": date only, no time component.
func (e *DateTimeExtractor) fromBareRelative(text string) (string, bool) {
	var phrase string
	switch {
	case tomorrowRe.MatchString(text):
		phrase = "tomorrow"
	case nextWeekRe.MatchString(text):
		phrase = "next week"
	default:
		return "", false
	}

	day, err := e.dates.Parse(phrase, e.now())
	if err != nil {
		return "", false
	}
	return day.Format("January 2, 2006"), true
}

// A lone clock time with meridiem and no date context.
func (e *DateTimeExtractor) fromTimeOnly(text string) (string, bool) {
	m := clockTimeRe.FindStringSubmatch(text)
	if m == nil || m[3] == "" {
		return "", false
	}
	return "Today at " + displayClock(m[1], m[2], m[3]), true
}

// ExtractClockTime pulls the first concrete time out of text and returns it
// as a 24-hour "HH:MM" string. Used for slot comparison, where 12-hour
// display conventions do not apply.
func (e *DateTimeExtractor) ExtractClockTime(text string) (string, bool) {
	if m := clockTimeRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return to24Hour(hour, minute, m[3]), true
	}
	if m := hourAmPmRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return to24Hour(hour, 0, m[2]), true
	}
	return "", false
}

func to24Hour(hour, minute int, meridiem string) string {
	switch strings.ToUpper(meridiem) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func formatMonthDayYearTime(month, day, year, hour, minute, meridiem string) string {
	return fmt.Sprintf("%s %s, %s at %s", canonicalMonth(month), day, year, displayClock(hour, minute, meridiem))
}

// displayClock preserves the 12-hour display convention of the source text.
// suffix may be "AM"/"PM", a "GMT+X" offset, or empty.
func displayClock(hour, minute, suffix string) string {
	h := strings.TrimLeft(hour, "0")
	if h == "" {
		h = "0"
	}
	out := h + ":" + minute
	if suffix != "" {
		out += " " + strings.ToUpper(suffix)
	}
	return out
}

// canonicalMonth expands abbreviations and fixes case: "jan" -> "January".
func canonicalMonth(name string) string {
	if m, ok := monthNames[strings.ToLower(name)]; ok {
		return m.String()
	}
	return name
}
