// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package recurrence expands recurring events into concrete occurrences.
//
// The recurrence rule of an event is stored in four columns
// (recurrence_freq, recurrence_interval, recurrence_byday and
// recurrence_end). [Expander] converts them into an RFC 5545 rule with
// github.com/teambition/rrule-go and returns every occurrence that starts
// inside the requested window.
package recurrence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/MKhiriev/go-events-rest/models"
)

// DefaultMaxOccurrences caps a single expansion.
const DefaultMaxOccurrences = 5000

var (
	// ErrNotRecurring is returned for an event without a recurrence id.
	ErrNotRecurring = errors.New("event is not recurring")

	// ErrInvalidRange is returned when the window end is before its start.
	ErrInvalidRange = errors.New("range end is before range start")

	// ErrInvalidRule is returned when the stored rule cannot be turned into
	// an rrule (unknown frequency, weekday out of 0..6, interval < 1).
	ErrInvalidRule = errors.New("invalid recurrence rule")
)

var frequencies = map[string]rrule.Frequency{
	"daily":   rrule.DAILY,
	"weekly":  rrule.WEEKLY,
	"monthly": rrule.MONTHLY,
	"yearly":  rrule.YEARLY,
}

// weekdays is indexed by the stored day number, Sunday = 0.
var weekdays = []rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// Expander turns recurring events into occurrences.
type Expander struct {
	maxOccurrences int
}

// Option configures an [Expander].
type Option func(*Expander)

// WithMaxOccurrences overrides [DefaultMaxOccurrences]. Values below one
// are ignored.
func WithMaxOccurrences(n int) Option {
	return func(x *Expander) {
		if n > 0 {
			x.maxOccurrences = n
		}
	}
}

// NewExpander returns an [Expander] with the given options applied.
func NewExpander(opts ...Option) *Expander {
	x := &Expander{maxOccurrences: DefaultMaxOccurrences}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Expand returns the occurrences of event starting within [from, to], in
// chronological order. The result is truncated to the configured maximum.
//
// An event whose recurrence rule columns are all empty is an instance that
// already has a concrete date: it yields itself when it falls in the window.
// Times are reported in the event's timezone, falling back to UTC when the
// timezone name is unknown.
func (x *Expander) Expand(event models.Event, from, to time.Time) ([]models.Occurrence, error) {
	if !event.IsRecurring() {
		return nil, ErrNotRecurring
	}
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	loc := location(event.Timezone)
	start := event.Start.In(loc)
	duration := event.End.Sub(event.Start)
	if duration < 0 {
		duration = 0
	}

	if event.RecurrenceFreq == nil || *event.RecurrenceFreq == "" {
		if start.Before(from) || start.After(to) {
			return []models.Occurrence{}, nil
		}
		return []models.Occurrence{newOccurrence(event, start, duration)}, nil
	}

	option, err := ruleOption(event, start)
	if err != nil {
		return nil, err
	}

	rule, err := rrule.NewRRule(option)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}

	starts := rule.Between(from.In(loc), to.In(loc), true)
	if len(starts) > x.maxOccurrences {
		starts = starts[:x.maxOccurrences]
	}

	occurrences := make([]models.Occurrence, 0, len(starts))
	for _, s := range starts {
		occurrences = append(occurrences, newOccurrence(event, s, duration))
	}

	return occurrences, nil
}

// ruleOption maps the stored rule columns onto an rrule option anchored at
// start.
func ruleOption(event models.Event, start time.Time) (rrule.ROption, error) {
	freq, ok := frequencies[strings.ToLower(strings.TrimSpace(*event.RecurrenceFreq))]
	if !ok {
		return rrule.ROption{}, fmt.Errorf("%w: unknown frequency %q", ErrInvalidRule, *event.RecurrenceFreq)
	}

	interval := 1
	if event.RecurrenceInterval != nil {
		interval = *event.RecurrenceInterval
	}
	if interval < 1 {
		return rrule.ROption{}, fmt.Errorf("%w: interval %d", ErrInvalidRule, interval)
	}

	option := rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  start,
	}

	if event.RecurrenceByDay != nil && *event.RecurrenceByDay != "" {
		days, err := parseByDay(*event.RecurrenceByDay)
		if err != nil {
			return rrule.ROption{}, err
		}
		option.Byweekday = days
	}

	if event.RecurrenceEnd != nil {
		// occurrences may start at any time on the last day
		end := event.RecurrenceEnd.In(start.Location())
		option.Until = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, start.Location())
	}

	return option, nil
}

func parseByDay(s string) ([]rrule.Weekday, error) {
	parts := strings.Split(s, ",")
	days := make([]rrule.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n >= len(weekdays) {
			return nil, fmt.Errorf("%w: weekday %q", ErrInvalidRule, p)
		}
		days = append(days, weekdays[n])
	}
	return days, nil
}

func newOccurrence(event models.Event, start time.Time, duration time.Duration) models.Occurrence {
	end := start.Add(duration)
	if event.AllDay {
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		end = start.AddDate(0, 0, 1)
	}

	return models.Occurrence{
		EventID:      event.EventID,
		RecurrenceID: *event.RecurrenceID,
		Name:         event.Name,
		Start:        start,
		End:          end,
		AllDay:       event.AllDay,
	}
}

func location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RuleString renders the stored rule of event as an RFC 5545 RRULE value
// (without the "RRULE:" prefix). It returns an empty string when the event
// carries no rule.
func RuleString(event models.Event) (string, error) {
	if !event.IsRecurring() || event.RecurrenceFreq == nil || *event.RecurrenceFreq == "" {
		return "", nil
	}

	option, err := ruleOption(event, event.Start.In(location(event.Timezone)))
	if err != nil {
		return "", err
	}

	return option.RRuleString(), nil
}
