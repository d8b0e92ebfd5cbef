package models

// Indicator is one of the headline metrics shown on the dashboard.
type Indicator string

const (
	IndicatorPopulation Indicator = "population"
	IndicatorIncome     Indicator = "income"
	IndicatorEducation  Indicator = "education"
	IndicatorHealth     Indicator = "health"
)

// Indicators lists the tracked indicators in panel order.
var Indicators = []Indicator{
	IndicatorPopulation,
	IndicatorIncome,
	IndicatorEducation,
	IndicatorHealth,
}

type TrendPolarity string

const (
	TrendPositive TrendPolarity = "positive"
	TrendNegative TrendPolarity = "negative"
	TrendNeutral  TrendPolarity = "neutral"
)

// Metric is the display state of one indicator for one year.
type Metric struct {
	Value    string        `json:"value"`
	Trend    string        `json:"trend"`
	Polarity TrendPolarity `json:"polarity"`
}

// MetricSnapshot holds the precomputed headline metrics for one year.
type MetricSnapshot struct {
	Year            YearKey              `json:"year"`
	Metrics         map[Indicator]Metric `json:"metrics"`
	PopulationCount int                  `json:"populationCount"`
}
