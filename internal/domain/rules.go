package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// MaxPrivateDuration is the longest allowed private booking.
	MaxPrivateDuration = 3 * time.Hour
	// RolloverCutoffMinutes is the latest end clock-time (01:00) of a booking that crosses midnight.
	RolloverCutoffMinutes = 60
	// DefaultQuietSampleStep is the sampling step of the legacy quiet-hours check.
	DefaultQuietSampleStep = 15 * time.Minute
)

// ValidationCode names a scheduling rule that a candidate broke.
type ValidationCode string

const (
	CodeEmptyTitle              ValidationCode = "empty_title"
	CodeMissingOwnerContact     ValidationCode = "missing_owner_contact"
	CodeInvalidRoom             ValidationCode = "invalid_room"
	CodeInvalidRollover         ValidationCode = "invalid_rollover"
	CodeInvalidDateTime         ValidationCode = "invalid_date_time"
	CodeEndBeforeStart          ValidationCode = "end_before_start"
	CodePrivateTooLong          ValidationCode = "private_too_long"
	CodePrivateDuringQuietHours ValidationCode = "private_during_quiet_hours"
)

var validationMessages = map[ValidationCode]string{
	CodeEmptyTitle:              "Fill in the title.",
	CodeMissingOwnerContact:     "Provide a contact for the booking owner.",
	CodeInvalidRoom:             "Pick one of rooms 21, 132 or 256.",
	CodeInvalidRollover:         "Crossing midnight is only allowed on Friday or Saturday, ending by 01:00.",
	CodeInvalidDateTime:         "Enter a valid date and time.",
	CodeEndBeforeStart:          "The end time must be later than the start time.",
	CodePrivateTooLong:          "A private booking cannot last longer than 3 hours.",
	CodePrivateDuringQuietHours: "Private bookings are unavailable from 23:00 to 06:00 (until 01:00 on Fri-Sat and Sat-Sun nights).",
}

// ValidationError reports a candidate that breaks a scheduling rule.
// Validation errors are produced locally and never sent to the store.
type ValidationError struct {
	Code ValidationCode
}

func (e *ValidationError) Error() string {
	if msg, ok := validationMessages[e.Code]; ok {
		return msg
	}
	return string(e.Code)
}

func invalid(code ValidationCode) error {
	return &ValidationError{Code: code}
}

// IsQuietHour reports whether private bookings are disallowed at t's local wall-clock time.
// Quiet hours run 23:00-06:00, except that Friday and Saturday nights stay open until 01:00.
func IsQuietHour(t time.Time) bool {
	h := t.Hour()
	wd := t.Weekday()
	if h < 23 && h >= 6 {
		return false
	}
	if h >= 23 && (wd == time.Friday || wd == time.Saturday) {
		return false
	}
	if h == 0 && (wd == time.Saturday || wd == time.Sunday) {
		return false
	}
	return true
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("clock %q: missing ':'", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("clock %q: %w", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q: out of range", s)
	}
	return h*60 + m, nil
}

// ResolveInterval turns a day key and two HH:MM clock-times into instants in loc.
// An end clock-time earlier than the start crosses midnight; that is only allowed when
// the day is Friday or Saturday and the end is at or before 01:00, and then the end
// moves forward by 24 hours.
func ResolveInterval(date, startTime, endTime string, loc *time.Location) (Interval, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(DayKeyLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return Interval{}, invalid(CodeInvalidDateTime)
	}
	startMin, err := parseClock(startTime)
	if err != nil {
		return Interval{}, invalid(CodeInvalidDateTime)
	}
	endMin, err := parseClock(endTime)
	if err != nil {
		return Interval{}, invalid(CodeInvalidDateTime)
	}

	y, m, d := day.Date()
	start := time.Date(y, m, d, startMin/60, startMin%60, 0, 0, loc)
	end := time.Date(y, m, d, endMin/60, endMin%60, 0, 0, loc)

	if endMin < startMin {
		if !IsFridayOrSaturday(day) || endMin > RolloverCutoffMinutes {
			return Interval{}, invalid(CodeInvalidRollover)
		}
		end = end.Add(24 * time.Hour)
	}
	return Interval{Start: start, End: end}, nil
}

// Rules validates candidates. SampleStep selects the quiet-hours check: zero checks the
// interval exactly, a positive step samples instants from Start (inclusive) to End
// (exclusive) and may miss quiet time between samples.
type Rules struct {
	SampleStep time.Duration
}

// Validate applies the booking rules in order and returns the resolved interval.
// Times are interpreted as wall-clock values in loc.
func (r Rules) Validate(c Candidate, loc *time.Location) (Interval, error) {
	if strings.TrimSpace(c.Title) == "" {
		return Interval{}, invalid(CodeEmptyTitle)
	}
	if strings.TrimSpace(c.OwnerContact) == "" {
		return Interval{}, invalid(CodeMissingOwnerContact)
	}
	if !IsValidRoom(c.Room) {
		return Interval{}, invalid(CodeInvalidRoom)
	}
	iv, err := ResolveInterval(c.Date, c.StartTime, c.EndTime, loc)
	if err != nil {
		return Interval{}, err
	}
	if !iv.End.After(iv.Start) {
		return Interval{}, invalid(CodeEndBeforeStart)
	}
	if c.IsPrivate {
		if iv.Duration() > MaxPrivateDuration {
			return Interval{}, invalid(CodePrivateTooLong)
		}
		if r.touchesQuietHours(iv) {
			return Interval{}, invalid(CodePrivateDuringQuietHours)
		}
	}
	return iv, nil
}

func (r Rules) touchesQuietHours(iv Interval) bool {
	if r.SampleStep > 0 {
		for t := iv.Start; t.Before(iv.End); t = t.Add(r.SampleStep) {
			if IsQuietHour(t) {
				return true
			}
		}
		return false
	}
	// Quiet status only changes on whole hours, so the start instant and every
	// hour boundary inside the interval cover it exactly.
	if IsQuietHour(iv.Start) {
		return true
	}
	for t := nextHour(iv.Start); t.Before(iv.End); t = nextHour(t) {
		if IsQuietHour(t) {
			return true
		}
	}
	return false
}

// nextHour returns the next whole wall-clock hour after t in t's location.
func nextHour(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour()+1, 0, 0, 0, t.Location())
}

// RulesSummary lists the booking rules as shown to users.
func RulesSummary() []string {
	return []string{
		"Rooms 21, 132 and 256 can be booked.",
		"A booking must end after it starts.",
		"A booking may cross midnight only from Friday or Saturday, and must end by 01:00.",
		"Private bookings last at most 3 hours.",
		"Private bookings are not allowed from 23:00 to 06:00; on Friday and Saturday nights the limit starts at 01:00.",
		"Only the owner or an administrator can delete a booking.",
	}
}
