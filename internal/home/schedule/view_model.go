package schedule

import (
	"fmt"
	"time"
)

const sessionTypePT = "pt_session"

// ViewModel is the upcoming-session card in display form.
type ViewModel struct {
	ID         int           `json:"id"`
	Date       string        `json:"date"`
	Time       string        `json:"time"`
	Type       string        `json:"type"`
	PTName     string        `json:"ptName,omitempty"`
	Status     string        `json:"status"`
	StatusText StatusDisplay `json:"statusDisplay"`
	Notes      string        `json:"notes,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}

func BuildViewModel(entry Entry) ViewModel {
	record := entry.Record

	sessionType := "Tự tập"
	if record.SessionType == sessionTypePT {
		sessionType = "Với Trainer"
	}

	return ViewModel{
		ID:         record.ID,
		Date:       FormatDate(record.SessionDate),
		Time:       fmt.Sprintf("%s - %s", FormatTime(record.StartTime), FormatTime(record.EndTime)),
		Type:       sessionType,
		PTName:     record.TrainerName,
		Status:     record.Status,
		StatusText: DisplayForStatus(record.Status),
		Notes:      record.Notes,
		Timestamp:  entry.Timestamp,
	}
}

func BuildViewModels(entries []Entry) []ViewModel {
	viewModels := make([]ViewModel, 0, len(entries))
	for _, entry := range entries {
		viewModels = append(viewModels, BuildViewModel(entry))
	}
	return viewModels
}
