package validation

import (
	"strconv"
	"strings"
)

// Year bounds accepted by ValidDate.
const (
	MinYear = 1900
	MaxYear = 2024
)

// ValidTime checks an HH:MM military time on a 15 minute grid. 24:00 is only
// accepted as a closing time or as a booking end time (isEndTime).
func ValidTime(t string, isEndTime bool) (string, error) {
	t, err := ValidStr(t, "time")
	if err != nil {
		return "", err
	}
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return "", Errorf("%s has incorrect number of :'s", t)
	}
	if len(parts[0]) != 2 {
		return "", Errorf("%s hour string has length %d", parts[0], len(parts[0]))
	}
	if len(parts[1]) != 2 {
		return "", Errorf("%s minute string has length %d", parts[1], len(parts[1]))
	}
	hour, err := digits(parts[0])
	if err != nil {
		return "", err
	}
	minute, err := digits(parts[1])
	if err != nil {
		return "", err
	}

	if hour > 24 {
		return "", Errorf("%d out of range 0 to 24", hour)
	}
	if minute > 59 {
		return "", Errorf("%d out of range 0 to 59", minute)
	}
	if minute%15 != 0 {
		return "", Errorf("%d not in typical 15 minute intervals", minute)
	}
	if hour == 24 && minute > 0 {
		return "", Errorf("%s out of range", t)
	}
	if hour == 24 && !isEndTime {
		return "", Errorf("%s is only a valid time if it is a closing time", t)
	}
	return t, nil
}

// ValidTimeInRange checks that a booking [start, end) fits inside the
// opening hours [opening, closing]. All four values must already have passed
// ValidTime.
func ValidTimeInRange(start, end, opening, closing string) error {
	sh, sm := splitClock(start)
	eh, em := splitClock(end)
	oh, om := splitClock(opening)
	ch, cm := splitClock(closing)

	if oh > sh || sh > eh || eh > ch {
		return Errorf("hours %d, %d, %d, %d are not in nondecreasing order", oh, sh, eh, ch)
	}
	if oh == sh && om > sm {
		return Errorf("%s minute is greater than %s minute", opening, start)
	}
	if sh == eh && sm >= em {
		return Errorf("%s minute is greater than or equal to %s minute", start, end)
	}
	if eh == ch && em > cm {
		return Errorf("%s minute is greater than %s minute", end, closing)
	}
	return nil
}

// ValidDate checks a fixed width MM/DD/YYYY date. Days are not checked
// against the month length.
func ValidDate(date string) (string, error) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return "", Errorf("date %q must be in MM/DD/YYYY format", date)
	}
	if len(parts[0]) != 2 {
		return "", Errorf("month string length too big or small")
	}
	if len(parts[1]) != 2 {
		return "", Errorf("day string length too big or small")
	}
	if len(parts[2]) != 4 {
		return "", Errorf("year string length too big or small")
	}
	month, err := digits(parts[0])
	if err != nil {
		return "", err
	}
	day, err := digits(parts[1])
	if err != nil {
		return "", err
	}
	year, err := digits(parts[2])
	if err != nil {
		return "", err
	}

	if month < 1 || month > 12 {
		return "", Errorf("month out of range")
	}
	if day < 1 || day > 31 {
		return "", Errorf("day out of range")
	}
	if year < MinYear || year > MaxYear {
		return "", Errorf("year out of range")
	}
	return date, nil
}

// digits parses s, allowing only ASCII digits (no sign, no spaces).
func digits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, Errorf("%c is not a number", r)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, Errorf("%s is not a number", s)
	}
	return n, nil
}

// splitClock parses a time that already passed ValidTime.
func splitClock(t string) (hour, minute int) {
	h, m, _ := strings.Cut(t, ":")
	hour, _ = strconv.Atoi(h)
	minute, _ = strconv.Atoi(m)
	return hour, minute
}
