package progress

import "fmt"

const chartMaxPoints = 6

// chart series colors, weight / body fat / muscle mass
const (
	colorWeight     = "rgba(26, 115, 232, 1)"
	colorBodyFat    = "rgba(255, 99, 132, 1)"
	colorMuscleMass = "rgba(75, 192, 192, 1)"
)

// BMITrend is present only when the latest snapshot carries a height;
// the delta additionally needs a height on the previous snapshot.
type BMITrend struct {
	Value float64  `json:"value"`
	Delta *float64 `json:"delta,omitempty"`
}

type Dataset struct {
	Data        []float64 `json:"data"`
	Color       string    `json:"color"`
	StrokeWidth int       `json:"strokeWidth"`
}

// Chart holds the oldest-first bounded series the line chart renders.
type Chart struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Legend   []string  `json:"legend"`
}

// Overview is the derived progress section: latest and previous
// snapshots, trend rows and the chart series.
type Overview struct {
	Latest       Snapshot      `json:"latest"`
	Previous     *Snapshot     `json:"previous,omitempty"`
	Metrics      []MetricTrend `json:"metrics"`
	Measurements []MetricTrend `json:"measurements"`
	BMI          *BMITrend     `json:"bmi,omitempty"`
	Chart        Chart         `json:"chart"`
}

// Analyze derives the overview from a newest-first history, as
// produced by FromRecords. Returns nil for an empty history.
func Analyze(snapshots []Snapshot) *Overview {
	if len(snapshots) == 0 {
		return nil
	}

	latest := snapshots[0]
	var previous *Snapshot
	if len(snapshots) > 1 {
		previous = &snapshots[1]
	}

	return &Overview{
		Latest:       latest,
		Previous:     previous,
		Metrics:      buildTrends(primaryMetrics, latest, previous),
		Measurements: buildTrends(measurementMetrics, latest, previous),
		BMI:          computeBMI(latest, previous),
		Chart:        buildChart(snapshots),
	}
}

func computeBMI(latest Snapshot, previous *Snapshot) *BMITrend {
	if latest.Height == nil || *latest.Height == 0 {
		return nil
	}
	trend := &BMITrend{Value: bmiValue(latest.Weight, *latest.Height)}

	if previous != nil && previous.Height != nil && *previous.Height != 0 {
		d := trend.Value - bmiValue(previous.Weight, *previous.Height)
		trend.Delta = &d
	}
	return trend
}

// bmiValue takes height in centimeters.
func bmiValue(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// buildChart takes the newest chartMaxPoints snapshots and reverses
// them so the time axis runs left to right.
func buildChart(snapshots []Snapshot) Chart {
	count := len(snapshots)
	if count > chartMaxPoints {
		count = chartMaxPoints
	}

	chart := Chart{
		Labels: make([]string, 0, count),
		Datasets: []Dataset{
			{Data: make([]float64, 0, count), Color: colorWeight, StrokeWidth: 2},
			{Data: make([]float64, 0, count), Color: colorBodyFat, StrokeWidth: 2},
			{Data: make([]float64, 0, count), Color: colorMuscleMass, StrokeWidth: 2},
		},
		Legend: []string{"Cân nặng", "Tỷ lệ mỡ", "Tỷ lệ cơ"},
	}

	for i := count - 1; i >= 0; i-- {
		snapshot := snapshots[i]
		date := parseDate(snapshot.Date)
		chart.Labels = append(chart.Labels, fmt.Sprintf("%d/%d", date.Day(), int(date.Month())))
		chart.Datasets[0].Data = append(chart.Datasets[0].Data, snapshot.Weight)
		chart.Datasets[1].Data = append(chart.Datasets[1].Data, snapshot.BodyFatPercentage)
		chart.Datasets[2].Data = append(chart.Datasets[2].Data, snapshot.MuscleMass)
	}

	return chart
}
