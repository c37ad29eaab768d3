package payload

import (
	"fmt"
	"strings"
	"time"

	"github.com/ebelikov/go-qr-studio/models"
)

// prodID identifies this encoder in generated calendars.
const prodID = "-//go-qr-studio//event//EN"

// eventTimeLayouts are tried in order when parsing timed start/end values.
// Form inputs arrive either as full RFC 3339 timestamps or as the shorter
// datetime-local format without a zone, which is treated as UTC.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// EncodeEvent emits a single-VEVENT iCalendar payload.
//
// now supplies the DTSTAMP value and the uniqueness component of the UID;
// injecting it keeps the encoder testable despite being the one documented
// source of non-determinism in the encoding layer.
//
// All-day events carry bare YYYYMMDD dates with a VALUE=DATE parameter;
// timed events carry UTC YYYYMMDDTHHMMSSZ timestamps. ORGANIZER is emitted
// only when both the name and the email are present.
func EncodeEvent(ev models.CalendarEvent, now time.Time) string {
	lines := make([]string, 0, 14)
	lines = append(lines,
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:"+prodID,
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%d@go-qr-studio", now.UTC().UnixNano()),
		"DTSTAMP:"+now.UTC().Format("20060102T150405Z"),
	)

	if ev.Title != "" {
		lines = append(lines, "SUMMARY:"+ev.Title)
	}
	if ev.Description != "" {
		lines = append(lines, "DESCRIPTION:"+EscapeICal(ev.Description))
	}
	if ev.Location != "" {
		lines = append(lines, "LOCATION:"+ev.Location)
	}
	if ev.StartDate != "" {
		lines = append(lines, dateProperty("DTSTART", ev.StartDate, ev.AllDay))
	}
	if ev.EndDate != "" {
		lines = append(lines, dateProperty("DTEND", ev.EndDate, ev.AllDay))
	}
	if ev.OrganizerName != "" && ev.OrganizerEmail != "" {
		lines = append(lines, fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s", ev.OrganizerName, ev.OrganizerEmail))
	}

	lines = append(lines, "END:VEVENT", "END:VCALENDAR")

	return strings.Join(lines, "\n")
}

// dateProperty formats a DTSTART/DTEND line, switching between the all-day
// date form and the UTC timestamp form.
func dateProperty(name, value string, allDay bool) string {
	if allDay {
		return name + ";VALUE=DATE:" + icalDate(value)
	}

	return name + ":" + icalDateTime(value)
}

// icalDate reduces a form date to bare YYYYMMDD. Values that do not parse
// are passed through with the separators stripped rather than rejected.
func icalDate(value string) string {
	if t, err := time.Parse("2006-01-02", truncateDate(value)); err == nil {
		return t.Format("20060102")
	}

	return strings.NewReplacer("-", "", ":", "").Replace(value)
}

// icalDateTime normalises a form timestamp to UTC YYYYMMDDTHHMMSSZ.
func icalDateTime(value string) string {
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format("20060102T150405Z")
		}
	}

	return strings.NewReplacer("-", "", ":", "").Replace(value)
}

// truncateDate keeps only the date part of a possibly longer timestamp.
func truncateDate(value string) string {
	if len(value) > 10 {
		return value[:10]
	}

	return value
}
