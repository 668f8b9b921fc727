package subscriptions

import (
	"sort"
	"time"

	"github.com/LeHPhuc/GymApp/internal/gymapi"
)

const statusActive = "active"

// Active picks the subscription to present as the member's current
// plan: the most recently started among the active ones. Returns nil
// when no record is active, which is a legitimate "no plan yet" state,
// not an error.
func Active(records []gymapi.SubscriptionRecord) *gymapi.SubscriptionRecord {
	var active []gymapi.SubscriptionRecord
	for _, record := range records {
		if record.Status == statusActive {
			active = append(active, record)
		}
	}
	if len(active) == 0 {
		return nil
	}

	sort.Slice(active, func(i, j int) bool {
		startI := parseDate(active[i].StartDate)
		startJ := parseDate(active[j].StartDate)
		if !startI.Equal(startJ) {
			return startI.After(startJ)
		}
		// equal start dates: higher ID wins, it was created later
		return active[i].ID > active[j].ID
	})

	return &active[0]
}

// parseDate accepts the upstream date-only format, falling back to
// RFC3339 timestamps. Unparseable input yields the zero time, which
// sorts last among active records.
func parseDate(value string) time.Time {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Time{}
}
