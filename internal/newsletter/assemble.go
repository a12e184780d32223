package newsletter

import (
	"time"

	"ichinichi/internal/dateutil"
	"ichinichi/pkg/events"
	"ichinichi/pkg/media"
	"ichinichi/pkg/weather"
)

// Context carries everything one issue needs, fully resolved. Assemble
// is the only producer; rendering reads it without touching the network.
type Context struct {
	Date         time.Time
	IssueNumber  int
	Weekday      string
	WeekdayTheme string

	Weather       weather.Record
	HealthMessage string
	MoonLabel     string

	Schedule []events.Event
	Promos   []events.Event
	Media    *media.Summary
}

// Assemble builds the issue context from already-fetched inputs. It is
// deterministic: equal inputs produce an equal Context.
func Assemble(date time.Time, rec weather.Record, healthMessage, moonLabel string, schedule, promos []events.Event, summary *media.Summary) Context {
	// Sort copies; the caller's slices stay untouched.
	schedule = append([]events.Event(nil), schedule...)
	promos = append([]events.Event(nil), promos...)
	events.Sort(schedule)
	events.Sort(promos)

	return Context{
		Date:          date,
		IssueNumber:   dateutil.IssueNumber(date),
		Weekday:       dateutil.WeekdayLabel(date),
		WeekdayTheme:  dateutil.WeekdayTheme(date),
		Weather:       rec,
		HealthMessage: healthMessage,
		MoonLabel:     moonLabel,
		Schedule:      schedule,
		Promos:        promos,
		Media:         summary,
	}
}
