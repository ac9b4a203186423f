package scheduling

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ClockMinutes converts a wall-clock string to minutes since midnight.
// The stored format is "hh:mm AM/PM"; a bare 24-hour "HH:MM" is also
// accepted. 12 AM maps to hour 0 and PM adds 12 hours except for 12 PM.
func ClockMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time")
	}

	var meridiem string
	if fields := strings.Fields(s); len(fields) == 2 {
		s = fields[0]
		meridiem = strings.ToUpper(fields[1])
		if meridiem != "AM" && meridiem != "PM" {
			return 0, fmt.Errorf("invalid meridiem %q", fields[1])
		}
	} else if len(fields) != 1 {
		return 0, fmt.Errorf("invalid time %q", s)
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour %q", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute %q", parts[1])
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range: %d", minute)
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour out of range: %d", hour)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour out of range: %d", hour)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("hour out of range: %d", hour)
		}
	}

	return hour*60 + minute, nil
}

// DateParts splits a DD/MM/YYYY date into numeric day, month, and year,
// validating that the result is a real calendar date.
func DateParts(date string) (day, month, year int, err error) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q, want DD/MM/YYYY", date)
	}
	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid day %q", parts[0])
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month %q", parts[1])
	}
	year, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year %q", parts[2])
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("month out of range: %d", month)
	}
	if day < 1 || day > daysInMonth(month, year) {
		return 0, 0, 0, fmt.Errorf("day out of range: %d", day)
	}
	if year < 1900 || year > 2200 {
		return 0, 0, 0, fmt.Errorf("year out of range: %d", year)
	}
	return day, month, year, nil
}

func daysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// SortAppointments orders appointments by date descending (newest day
// first), then by time ascending within a day. Dates compare numerically by
// year, month, day; rows with malformed dates or times sort after
// well-formed ones.
func SortAppointments(appts []*Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		di, mi, yi, erri := DateParts(appts[i].Date)
		dj, mj, yj, errj := DateParts(appts[j].Date)
		if erri != nil || errj != nil {
			return erri == nil && errj != nil
		}
		if yi != yj {
			return yi > yj
		}
		if mi != mj {
			return mi > mj
		}
		if di != dj {
			return di > dj
		}

		ti, erri := ClockMinutes(appts[i].Time)
		tj, errj := ClockMinutes(appts[j].Time)
		if erri != nil || errj != nil {
			return erri == nil && errj != nil
		}
		return ti < tj
	})
}
