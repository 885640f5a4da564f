package extraction

import (
	"regexp"
	"strings"
	"time"

	"github.com/johnquangdev/teamsync/internal/domain/entities"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// normalizeDueDate converts whatever due-date string the model produced into a
// concrete date. The prompt asks for YYYY-MM-DD, but the model sometimes
// returns relative phrases anyway; those degrade gracefully and anything
// unparseable becomes nil rather than an error.
func normalizeDueDate(raw string, today time.Time) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	today = entities.DateOnly(today)

	if isoDatePattern.MatchString(raw) {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return nil
		}
		return &parsed
	}

	lower := strings.ToLower(raw)

	switch {
	case lower == "today":
		return &today
	case lower == "tomorrow":
		tomorrow := today.AddDate(0, 0, 1)
		return &tomorrow
	case strings.Contains(lower, "next week"):
		nextWeek := today.AddDate(0, 0, 7)
		return &nextWeek
	}

	if target, ok := weekdays[lower]; ok {
		date := nextWeekday(today, target)
		return &date
	}

	return nil
}

// nextWeekday returns the next future occurrence of the weekday; a mention of
// today's own weekday means next week, not today
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDate(0, 0, daysUntil)
}
