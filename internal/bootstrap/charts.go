package bootstrap

import (
	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/view"
)

// knownChartEngines are the chart libraries the front-end can load.
var knownChartEngines = map[string]bool{
	"apexcharts": true,
}

func InitChartEngine(name string) (*view.ChartEngine, error) {
	if !knownChartEngines[name] {
		return nil, errs.NewChartEngineUnavailableError(name)
	}
	return view.NewChartEngine(name), nil
}
