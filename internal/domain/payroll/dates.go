package payroll

import "time"

const workDateLayout = "2006-01-02"

// ParseWorkDate parses a YYYY-MM-DD string anchored at noon local time.
// The noon anchor keeps calendar-date comparisons stable when the host
// timezone differs from the locale the dates were logged in.
func ParseWorkDate(value string) (time.Time, bool) {
	parsed, err := time.ParseInLocation(workDateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.Add(12 * time.Hour), true
}

// DateWithinEventPeriod reports whether date falls inside the event's
// inclusive [start, end] range. Malformed dates are treated as outside.
func DateWithinEventPeriod(date string, period EventPeriod) bool {
	day, ok := ParseWorkDate(date)
	if !ok {
		return false
	}
	start, ok := ParseWorkDate(period.StartDate)
	if !ok {
		return false
	}
	end, ok := ParseWorkDate(period.EndDate)
	if !ok {
		return false
	}
	return !day.Before(start) && !day.After(end)
}

// ValidWorkDatesForAllocation clamps an allocation's work days to the event
// period. This is the write-time validation step; the payroll filter itself
// does not clamp unless CalcOptions says so.
func ValidWorkDatesForAllocation(workDays []string, period EventPeriod) []string {
	valid := make([]string, 0, len(workDays))
	for _, day := range workDays {
		if DateWithinEventPeriod(day, period) {
			valid = append(valid, day)
		}
	}
	return valid
}

// DateInAllocation reports whether date is one of the allocation's work days.
func DateInAllocation(date string, workDays []string) bool {
	for _, day := range workDays {
		if day == date {
			return true
		}
	}
	return false
}

// RecordsForAllocation filters candidate work records down to those that
// count toward the allocation: matching person, matching event, and a work
// date inside the allocation's day set. Records with malformed dates are
// dropped rather than erred.
func RecordsForAllocation(alloc Allocation, records []WorkRecord, period EventPeriod, opts CalcOptions) []WorkRecord {
	workDays := alloc.WorkDays
	if opts.ClampToEventPeriod {
		workDays = ValidWorkDatesForAllocation(workDays, period)
	}

	matched := make([]WorkRecord, 0, len(records))
	for _, record := range records {
		if record.EmployeeID != alloc.PersonnelID || record.EventID != alloc.EventID {
			continue
		}
		if _, ok := ParseWorkDate(record.WorkDate); !ok {
			continue
		}
		if !DateInAllocation(record.WorkDate, workDays) {
			continue
		}
		matched = append(matched, record)
	}
	return matched
}
