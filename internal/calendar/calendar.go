// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package calendar renders events as an iCalendar (RFC 5545) feed.
package calendar

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/MKhiriev/go-events-rest/internal/recurrence"
	"github.com/MKhiriev/go-events-rest/models"
)

// DefaultProductID identifies the feed producer in PRODID.
const DefaultProductID = "-//go-events-rest//events feed//EN"

// Feed builds iCalendar documents.
type Feed struct {
	productID string
	domain    string
}

// NewFeed returns a Feed whose event UIDs are scoped to domain
// ("event-<id>@<domain>").
func NewFeed(domain string) *Feed {
	if domain == "" {
		domain = "localhost"
	}
	return &Feed{
		productID: DefaultProductID,
		domain:    domain,
	}
}

// Render serialises events into a VCALENDAR. Locations are looked up by
// location_id to fill the LOCATION property. A recurrence template (an event
// whose recurrence_id points at itself and that carries a rule) is emitted
// with its RRULE. A generated instance of a template present in events shares
// the template's UID and names the occurrence it stands for in RECURRENCE-ID,
// so clients merge it with the expanded rule instead of showing it twice.
func (f *Feed) Render(events []models.Event, locations map[int64]models.Location) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(f.productID)

	series := make(map[int64]bool)
	for _, e := range events {
		if !isTemplate(e) {
			continue
		}
		rule, err := recurrence.RuleString(e)
		if err != nil {
			return "", fmt.Errorf("event %d: %w", e.EventID, err)
		}
		series[e.EventID] = rule != ""
	}

	for _, e := range events {
		if err := f.addEvent(cal, e, locations, series); err != nil {
			return "", fmt.Errorf("event %d: %w", e.EventID, err)
		}
	}

	return cal.Serialize(), nil
}

func (f *Feed) uid(id int64) string {
	return fmt.Sprintf("event-%d@%s", id, f.domain)
}

func (f *Feed) addEvent(cal *ical.Calendar, e models.Event, locations map[int64]models.Location, series map[int64]bool) error {
	var vevent *ical.VEvent
	if isInstance(e) && series[*e.RecurrenceID] {
		vevent = cal.AddEvent(f.uid(*e.RecurrenceID))
		if e.AllDay {
			vevent.SetProperty(ical.ComponentPropertyRecurrenceId, e.Start.Format("20060102"), ical.WithValue(string(ical.ValueDataTypeDate)))
		} else {
			vevent.SetProperty(ical.ComponentPropertyRecurrenceId, e.Start.UTC().Format("20060102T150405Z"))
		}
	} else {
		vevent = cal.AddEvent(f.uid(e.EventID))
	}

	stamp := e.DateCreated
	if e.DateModified != nil {
		stamp = *e.DateModified
		vevent.SetModifiedAt(*e.DateModified)
	}
	vevent.SetDtStampTime(stamp)
	vevent.SetCreatedTime(e.DateCreated)

	if e.AllDay {
		vevent.SetAllDayStartAt(e.Start)
		// DTEND is exclusive for all-day events
		vevent.SetAllDayEndAt(e.End.AddDate(0, 0, 1))
	} else {
		vevent.SetStartAt(e.Start.In(time.UTC))
		vevent.SetEndAt(e.End.In(time.UTC))
	}

	vevent.SetSummary(e.Name)
	if content := strings.TrimSpace(e.Content); content != "" {
		vevent.SetDescription(content)
	}

	if e.LocationID != nil {
		if l, ok := locations[*e.LocationID]; ok {
			vevent.SetLocation(locationText(l))
			if l.Latitude != nil && l.Longitude != nil {
				vevent.SetGeo(*l.Latitude, *l.Longitude)
			}
		}
	}

	if isTemplate(e) {
		rule, err := recurrence.RuleString(e)
		if err != nil {
			return err
		}
		if rule != "" {
			vevent.AddRrule(rule)
		}
	}

	return nil
}

func isTemplate(e models.Event) bool {
	return e.IsRecurring() && *e.RecurrenceID == e.EventID
}

func isInstance(e models.Event) bool {
	return e.IsRecurring() && *e.RecurrenceID != e.EventID
}

func locationText(l models.Location) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{l.Name, l.Address, l.Town, l.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
