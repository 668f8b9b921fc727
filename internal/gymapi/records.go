package gymapi

import "encoding/json"

// Records carry the raw upstream field names; all derivation and
// display formatting happens in the home packages.

type SubscriptionRecord struct {
	ID                  int         `json:"id"`
	PackageName         string      `json:"package_name"`
	DiscountedPrice     string      `json:"discounted_price"`
	Package             PackageInfo `json:"package"`
	RemainingPTSessions int         `json:"remaining_pt_sessions"`
	StartDate           string      `json:"start_date"`
	EndDate             string      `json:"end_date"`
	RemainingDays       int         `json:"remaining_days"`
	Status              string      `json:"status"`
}

type PackageInfo struct {
	Benefits    []Benefit   `json:"benefits"`
	PackageType PackageType `json:"package_type"`
}

type Benefit struct {
	Name string `json:"name"`
}

type PackageType struct {
	DurationMonths int `json:"duration_months"`
}

type subscriptionsResponse struct {
	Results []SubscriptionRecord `json:"results"`
}

type SessionRecord struct {
	ID          int    `json:"id"`
	SessionDate string `json:"session_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	SessionType string `json:"session_type"`
	TrainerName string `json:"trainer_name"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

type ProgressRecord struct {
	ID                int      `json:"id"`
	Date              string   `json:"date"`
	Weight            float64  `json:"weight"`
	BodyFatPercentage float64  `json:"body_fat_percentage"`
	MuscleMass        float64  `json:"muscle_mass"`
	Chest             float64  `json:"chest"`
	Waist             float64  `json:"waist"`
	Hips              float64  `json:"hips"`
	Thighs            float64  `json:"thighs"`
	Arms              float64  `json:"arms"`
	CardioEndurance   float64  `json:"cardio_endurance"`
	StrengthBench     float64  `json:"strength_bench"`
	StrengthSquat     float64  `json:"strength_squat"`
	StrengthDeadlift  float64  `json:"strength_deadlift"`
	Notes             string   `json:"notes"`
	MemberUsername    string   `json:"member_username"`
	TrainerUsername   string   `json:"trainer_username"`
	WorkoutSession    *int     `json:"workout_session"`
	CreatedAt         string   `json:"created_at"`
	Height            *float64 `json:"height"`

	// Raw keeps the source payload for optional derived fields the
	// typed struct does not enumerate.
	Raw json.RawMessage `json:"-"`
}

type PaymentRequest struct {
	PackageID     int     `json:"package_id"`
	PaymentMethod string  `json:"payment_method"`
	BankCode      *string `json:"bank_code"`
}
