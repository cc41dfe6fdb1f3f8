// Package clock provides an injectable calendar so date formatting never
// reads hidden global state.
package clock

import "time"

// Clock yields the current time in a fixed zone.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

// JST returns a clock pinned to UTC+9, the calendar the ranking runs on.
func JST() Clock {
	return Clock{now: time.Now, loc: time.FixedZone("JST", 9*60*60)}
}

// Frozen returns a clock that always reports t, for tests and date overrides.
func Frozen(t time.Time) Clock {
	return Clock{now: func() time.Time { return t }, loc: t.Location()}
}

// Today formats the clock's current date as YYYY/MM/DD.
func (c Clock) Today() string {
	return c.now().In(c.loc).Format("2006/01/02")
}
