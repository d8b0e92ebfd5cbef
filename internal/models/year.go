package models

import "github.com/GregMSThompson/village-dashboard/internal/errs"

// YearKey identifies one yearly dataset variant.
type YearKey string

const (
	Year2023 YearKey = "2023"
	Year2024 YearKey = "2024"
)

// SupportedYears is the closed set of selectable years, oldest first.
var SupportedYears = []YearKey{Year2023, Year2024}

// LatestYear is the initial value of every year selector.
func LatestYear() YearKey {
	return SupportedYears[len(SupportedYears)-1]
}

func (y YearKey) Supported() bool {
	for _, s := range SupportedYears {
		if s == y {
			return true
		}
	}
	return false
}

// ParseYear validates a raw selector value.
func ParseYear(raw string) (YearKey, error) {
	y := YearKey(raw)
	if !y.Supported() {
		return "", errs.NewUnsupportedYearError(raw)
	}
	return y, nil
}
