package progress

// Direction says which way a metric should move for the change to
// count as an improvement. It travels with the metric definition so
// callers never hardcode it.
type Direction string

const (
	DecreaseIsGood Direction = "decrease"
	IncreaseIsGood Direction = "increase"
)

// metricDef binds a tracked metric to its display label, unit,
// improvement direction and value extractor.
type metricDef struct {
	Key       string
	Label     string
	Unit      string
	Direction Direction
	Value     func(s Snapshot) float64
}

var primaryMetrics = []metricDef{
	{
		Key: "weight", Label: "Cân nặng", Unit: "kg",
		Direction: DecreaseIsGood,
		Value:     func(s Snapshot) float64 { return s.Weight },
	},
	{
		Key: "body_fat", Label: "Tỷ lệ mỡ", Unit: "%",
		Direction: DecreaseIsGood,
		Value:     func(s Snapshot) float64 { return s.BodyFatPercentage },
	},
	{
		Key: "muscle_mass", Label: "Tỷ lệ cơ", Unit: "%",
		Direction: IncreaseIsGood,
		Value:     func(s Snapshot) float64 { return s.MuscleMass },
	},
}

var measurementMetrics = []metricDef{
	{
		Key: "chest", Label: "Ngực", Unit: "cm",
		Direction: IncreaseIsGood,
		Value:     func(s Snapshot) float64 { return s.Measurements.Chest },
	},
	{
		Key: "waist", Label: "Eo", Unit: "cm",
		Direction: DecreaseIsGood,
		Value:     func(s Snapshot) float64 { return s.Measurements.Waist },
	},
	{
		Key: "hips", Label: "Hông", Unit: "cm",
		Direction: DecreaseIsGood,
		Value:     func(s Snapshot) float64 { return s.Measurements.Hips },
	},
	{
		Key: "thighs", Label: "Đùi", Unit: "cm",
		Direction: DecreaseIsGood,
		Value:     func(s Snapshot) float64 { return s.Measurements.Thighs },
	},
	{
		Key: "arms", Label: "Cánh tay", Unit: "cm",
		Direction: IncreaseIsGood,
		Value:     func(s Snapshot) float64 { return s.Measurements.Arms },
	},
}

// MetricTrend is one tracked metric on the overview card: its latest
// value, the change against the previous snapshot (nil when no usable
// previous value exists, never coerced to zero) and whether that
// change moved in the metric's good direction.
type MetricTrend struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Unit      string    `json:"unit"`
	Direction Direction `json:"direction"`
	Value     float64   `json:"value"`
	Delta     *float64  `json:"delta,omitempty"`
	Improved  *bool     `json:"improved,omitempty"`
}

// delta returns latest-previous, or nil when there is no previous
// snapshot or its value is zero (treated as not recorded).
func delta(latest float64, previous *Snapshot, value func(Snapshot) float64) *float64 {
	if previous == nil {
		return nil
	}
	prev := value(*previous)
	if prev == 0 {
		return nil
	}
	d := latest - prev
	return &d
}

func buildTrends(defs []metricDef, latest Snapshot, previous *Snapshot) []MetricTrend {
	trends := make([]MetricTrend, 0, len(defs))
	for _, def := range defs {
		trend := MetricTrend{
			Key:       def.Key,
			Label:     def.Label,
			Unit:      def.Unit,
			Direction: def.Direction,
			Value:     def.Value(latest),
		}
		if d := delta(trend.Value, previous, def.Value); d != nil {
			trend.Delta = d
			improved := *d > 0
			if def.Direction == DecreaseIsGood {
				improved = *d < 0
			}
			trend.Improved = &improved
		}
		trends = append(trends, trend)
	}
	return trends
}
