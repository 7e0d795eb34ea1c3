// Package clock converts game timestamps into the strings printed on a
// scorecard.
//
// Timestamps are stored as instants. The venue's IANA zone decides how they
// are displayed. Data feeds mark games without a known first pitch with a
// placeholder time (23:33 or midnight, US Eastern); such games are shown
// with a date only.
package clock

import (
	"sync"
	"time"
	_ "time/tzdata" // zone data for hosts without a zoneinfo database
)

// SentinelZone is the zone in which placeholder start times are detected.
const SentinelZone = "America/New_York"

// Display layouts.
const (
	DateLayout = "Mon Jan 02 2006"
	TimeLayout = "3:04 PM"
	ZoneLayout = "MST"
)

// Stamps are the raw instants of one game and the venue zone.
type Stamps struct {
	Start    time.Time // actual first pitch; zero when unknown
	Expected time.Time // scheduled first pitch; zero when unknown
	End      time.Time // final out; zero when unknown
	Zone     string    // venue IANA zone; UTC when empty or unknown
}

// Display holds display-ready strings in the venue zone.
type Display struct {
	Known       bool   // at least one start instant exists
	TimeUnknown bool   // the start is a placeholder; only Date is meaningful
	Range       bool   // both the actual start and the end are known
	Date        string // "Sun Jul 04 2021"
	Start       string // "1:15 PM"; the actual start when Range, else the first known start
	End         string // "4:02 PM" when Range
	Zone        string // abbreviation at End when Range, else at Start
}

// LocalizedClock turns game instants into display strings.
type LocalizedClock interface {
	Describe(Stamps) Display
}

// Clock is the default [LocalizedClock].
type Clock struct {
	sentinel *time.Location

	mu    sync.Mutex
	zones map[string]*time.Location
}

// New returns a Clock using the embedded zone database.
func New() *Clock {
	c := &Clock{zones: make(map[string]*time.Location)}
	c.sentinel = c.location(SentinelZone)
	return c
}

// Describe implements [LocalizedClock].
func (c *Clock) Describe(s Stamps) Display {
	first := s.Start
	if first.IsZero() {
		first = s.Expected
	}
	if first.IsZero() {
		return Display{}
	}

	loc := c.location(s.Zone)
	local := first.In(loc)
	d := Display{
		Known: true,
		Date:  local.Format(DateLayout),
	}

	if IsPlaceholder(first.In(c.sentinel)) {
		d.TimeUnknown = true
		return d
	}

	if !s.Start.IsZero() && !s.End.IsZero() {
		end := s.End.In(loc)
		d.Range = true
		d.Start = s.Start.In(loc).Format(TimeLayout)
		d.End = end.Format(TimeLayout)
		d.Zone = end.Format(ZoneLayout)
		return d
	}

	scheduled := s.Expected
	if scheduled.IsZero() {
		scheduled = s.Start
	}
	scheduled = scheduled.In(loc)
	d.Date = scheduled.Format(DateLayout)
	d.Start = scheduled.Format(TimeLayout)
	d.Zone = scheduled.Format(ZoneLayout)
	return d
}

// IsPlaceholder reports whether t (already in the sentinel zone) carries one
// of the feed's "time to be determined" values.
func IsPlaceholder(t time.Time) bool {
	h, m := t.Hour(), t.Minute()
	return (h == 23 && m == 33) || (h == 0 && m == 0)
}

func (c *Clock) location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if loc, ok := c.zones[name]; ok {
		return loc
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc = time.UTC
	}
	c.zones[name] = loc
	return loc
}
