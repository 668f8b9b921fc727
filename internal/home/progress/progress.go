// Package progress derives the training-progress overview from the
// raw upstream history: latest and previous snapshots, per-metric
// deltas with a direction-of-good flag, optional BMI, and a bounded
// chart series.
package progress

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/LeHPhuc/GymApp/internal/gymapi"
)

// Measurements are the body circumference values of one snapshot, in cm.
type Measurements struct {
	Chest  float64 `json:"chest"`
	Waist  float64 `json:"waist"`
	Hips   float64 `json:"hips"`
	Thighs float64 `json:"thighs"`
	Arms   float64 `json:"arms"`
}

// Fitness holds the performance values of one snapshot.
type Fitness struct {
	CardioEndurance  float64 `json:"cardioEndurance"`
	StrengthBench    float64 `json:"strengthBench"`
	StrengthSquat    float64 `json:"strengthSquat"`
	StrengthDeadlift float64 `json:"strengthDeadlift"`
}

// Snapshot is one progress record, normalized for derivation. Height
// is optional and read from the raw payload when the typed record
// does not carry it.
type Snapshot struct {
	ID                int          `json:"id"`
	Date              string       `json:"date"`
	Weight            float64      `json:"weight"`
	BodyFatPercentage float64      `json:"bodyFatPercentage"`
	MuscleMass        float64      `json:"muscleMass"`
	Measurements      Measurements `json:"measurements"`
	Fitness           Fitness      `json:"fitness"`
	Notes             string       `json:"notes,omitempty"`
	MemberUsername    string       `json:"memberUsername,omitempty"`
	TrainerUsername   string       `json:"trainerUsername,omitempty"`
	WorkoutSession    *int         `json:"workoutSession,omitempty"`
	CreatedAt         string       `json:"createdAt,omitempty"`
	Height            *float64     `json:"-"`
}

// FromRecords normalizes the raw history and sorts it newest-first by
// date, which is the order all derivation below assumes.
func FromRecords(records []gymapi.ProgressRecord) []Snapshot {
	snapshots := make([]Snapshot, 0, len(records))
	for _, record := range records {
		snapshots = append(snapshots, Snapshot{
			ID:                record.ID,
			Date:              record.Date,
			Weight:            record.Weight,
			BodyFatPercentage: record.BodyFatPercentage,
			MuscleMass:        record.MuscleMass,
			Measurements: Measurements{
				Chest:  record.Chest,
				Waist:  record.Waist,
				Hips:   record.Hips,
				Thighs: record.Thighs,
				Arms:   record.Arms,
			},
			Fitness: Fitness{
				CardioEndurance:  record.CardioEndurance,
				StrengthBench:    record.StrengthBench,
				StrengthSquat:    record.StrengthSquat,
				StrengthDeadlift: record.StrengthDeadlift,
			},
			Notes:           record.Notes,
			MemberUsername:  record.MemberUsername,
			TrainerUsername: record.TrainerUsername,
			WorkoutSession:  record.WorkoutSession,
			CreatedAt:       record.CreatedAt,
			Height:          heightOf(record),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		di, dj := parseDate(snapshots[i].Date), parseDate(snapshots[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return snapshots[i].ID > snapshots[j].ID
	})

	return snapshots
}

// heightOf prefers the typed height field and otherwise digs it out
// of the retained raw payload, since some upstream versions only
// include it there.
func heightOf(record gymapi.ProgressRecord) *float64 {
	if record.Height != nil {
		return record.Height
	}
	if len(record.Raw) == 0 {
		return nil
	}
	var extra struct {
		Height *float64 `json:"height"`
	}
	if err := json.Unmarshal(record.Raw, &extra); err != nil {
		return nil
	}
	return extra.Height
}

func parseDate(date string) time.Time {
	if parsed, err := time.Parse("2006-01-02", date); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(time.RFC3339, date); err == nil {
		return parsed
	}
	return time.Time{}
}
