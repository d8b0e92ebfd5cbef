package models

type NamedSeries struct {
	Name string    `json:"name,omitempty"`
	Data []float64 `json:"data"`
}

// SeriesBundle is the raw data behind one chart.
type SeriesBundle struct {
	Categories []string      `json:"categories,omitempty"`
	Series     []NamedSeries `json:"series,omitempty"`
	Points     []Point       `json:"points,omitempty"`
}

// First returns the data of the first series, or nil.
func (b SeriesBundle) First() []float64 {
	if len(b.Series) == 0 {
		return nil
	}
	return b.Series[0].Data
}

// ChartDataset bundles the series feeding one page's charts for one year,
// keyed by chart container id. YearIndependent datasets serve every year.
type ChartDataset struct {
	Page            PageID                  `json:"page"`
	Year            YearKey                 `json:"year,omitempty"`
	YearIndependent bool                    `json:"yearIndependent"`
	Charts          map[string]SeriesBundle `json:"charts"`
}

func (d ChartDataset) Bundle(chartID string) (SeriesBundle, bool) {
	b, ok := d.Charts[chartID]
	return b, ok
}
