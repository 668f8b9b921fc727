package schedule

import (
	"sort"
	"time"

	"github.com/LeHPhuc/GymApp/internal/gymapi"

	log "github.com/sirupsen/logrus"
)

const statusCancelled = "cancelled"

// Entry is a session record with its derived sortable timestamp
// (calendar date combined with start time).
type Entry struct {
	Record    gymapi.SessionRecord
	Timestamp time.Time
}

// SelectUpcoming picks the one session to surface on the home screen:
// the soonest session from today onwards, or, when nothing is booked
// ahead, the most recent past one so the card is never empty while
// history exists. Cancelled sessions never qualify. The full ordered
// candidate list is returned alongside for reuse.
func SelectUpcoming(records []gymapi.SessionRecord, now time.Time) (*Entry, []Entry) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var future, past []Entry
	for _, record := range records {
		if record.Status == statusCancelled {
			continue
		}
		entry := Entry{
			Record:    record,
			Timestamp: combineDateTime(record.SessionDate, record.StartTime, now.Location()),
		}
		if !entry.Timestamp.Before(today) {
			future = append(future, entry)
		} else {
			past = append(past, entry)
		}
	}

	if len(future) > 0 {
		sort.Slice(future, func(i, j int) bool {
			if !future[i].Timestamp.Equal(future[j].Timestamp) {
				return future[i].Timestamp.Before(future[j].Timestamp)
			}
			return future[i].Record.ID < future[j].Record.ID
		})
		return &future[0], future
	}

	if len(past) > 0 {
		sort.Slice(past, func(i, j int) bool {
			if !past[i].Timestamp.Equal(past[j].Timestamp) {
				return past[i].Timestamp.After(past[j].Timestamp)
			}
			return past[i].Record.ID < past[j].Record.ID
		})
		return &past[0], past
	}

	return nil, nil
}

// combineDateTime builds the sortable timestamp from the upstream
// date and HH:MM:SS start time. A missing or malformed start time
// falls back to midnight so the entry still sorts by its date.
func combineDateTime(date, startTime string, loc *time.Location) time.Time {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		log.Tracef("schedule: parse session date %q: %s", date, err)
		return time.Time{}
	}

	clock, err := time.Parse("15:04:05", startTime)
	if err != nil {
		return day
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		loc,
	)
}
