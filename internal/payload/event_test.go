package payload

import (
	"strings"
	"testing"
	"time"

	"github.com/ebelikov/go-qr-studio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func TestEncodeEvent_TimedEvent(t *testing.T) {
	got := EncodeEvent(models.CalendarEvent{
		Title:     "Team sync",
		StartDate: "2024-06-01T10:00:00Z",
		EndDate:   "2024-06-01T11:00:00Z",
	}, fixedNow)

	assert.Contains(t, got, "BEGIN:VCALENDAR")
	assert.Contains(t, got, "VERSION:2.0")
	assert.Contains(t, got, "PRODID:"+prodID)
	assert.Contains(t, got, "SUMMARY:Team sync")
	assert.Contains(t, got, "DTSTART:20240601T100000Z")
	assert.Contains(t, got, "DTEND:20240601T110000Z")
	assert.Contains(t, got, "DTSTAMP:20240601T093000Z")
	assert.Contains(t, got, "END:VEVENT\nEND:VCALENDAR")
}

func TestEncodeEvent_AllDayUsesValueDate(t *testing.T) {
	got := EncodeEvent(models.CalendarEvent{
		Title:     "Company holiday",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-02",
		AllDay:    true,
	}, fixedNow)

	assert.Contains(t, got, "DTSTART;VALUE=DATE:20240601")
	assert.Contains(t, got, "DTEND;VALUE=DATE:20240602")
	assert.NotContains(t, got, "DTSTART:")
}

func TestEncodeEvent_DescriptionEscaped(t *testing.T) {
	got := EncodeEvent(models.CalendarEvent{
		Title:       "Standup",
		Description: "topics:\n- a, b; c",
		StartDate:   "2024-06-01T10:00:00Z",
	}, fixedNow)

	assert.Contains(t, got, `DESCRIPTION:topics:\n- a\, b\; c`)
}

func TestEncodeEvent_OrganizerRequiresNameAndEmail(t *testing.T) {
	base := models.CalendarEvent{Title: "Call", StartDate: "2024-06-01T10:00:00Z"}

	withBoth := base
	withBoth.OrganizerName = "Alice"
	withBoth.OrganizerEmail = "alice@example.com"
	assert.Contains(t, EncodeEvent(withBoth, fixedNow), "ORGANIZER;CN=Alice:mailto:alice@example.com")

	nameOnly := base
	nameOnly.OrganizerName = "Alice"
	assert.NotContains(t, EncodeEvent(nameOnly, fixedNow), "ORGANIZER")

	emailOnly := base
	emailOnly.OrganizerEmail = "alice@example.com"
	assert.NotContains(t, EncodeEvent(emailOnly, fixedNow), "ORGANIZER")
}

func TestEncodeEvent_OptionalLinesOmitted(t *testing.T) {
	got := EncodeEvent(models.CalendarEvent{Title: "Bare", StartDate: "2024-06-01T10:00:00Z"}, fixedNow)

	assert.NotContains(t, got, "DESCRIPTION:")
	assert.NotContains(t, got, "LOCATION:")
	assert.NotContains(t, got, "DTEND")
}

func TestEncodeEvent_UIDUniquePerClockTick(t *testing.T) {
	ev := models.CalendarEvent{Title: "X", StartDate: "2024-06-01T10:00:00Z"}

	first := EncodeEvent(ev, fixedNow)
	second := EncodeEvent(ev, fixedNow.Add(time.Nanosecond))

	uid := func(s string) string {
		for _, line := range strings.Split(s, "\n") {
			if strings.HasPrefix(line, "UID:") {
				return line
			}
		}
		return ""
	}

	require.NotEmpty(t, uid(first))
	assert.NotEqual(t, uid(first), uid(second))
	assert.True(t, strings.HasSuffix(uid(first), "@go-qr-studio"))
}

func TestEncodeEvent_DeterministicUnderFixedClock(t *testing.T) {
	ev := models.CalendarEvent{Title: "X", StartDate: "2024-06-01T10:00:00Z"}
	assert.Equal(t, EncodeEvent(ev, fixedNow), EncodeEvent(ev, fixedNow))
}

func TestEncodeEvent_DatetimeLocalInputTreatedAsUTC(t *testing.T) {
	got := EncodeEvent(models.CalendarEvent{Title: "X", StartDate: "2024-06-01T10:00"}, fixedNow)
	assert.Contains(t, got, "DTSTART:20240601T100000Z")
}

func TestEncodeEvent_UnparseableDatePassedThroughStripped(t *testing.T) {
	got := EncodeEvent(models.CalendarEvent{Title: "X", StartDate: "junk-value", AllDay: true}, fixedNow)
	assert.Contains(t, got, "DTSTART;VALUE=DATE:junkvalue")
}
