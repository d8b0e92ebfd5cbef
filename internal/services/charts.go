package services

import (
	"github.com/GregMSThompson/village-dashboard/internal/models"
	"github.com/GregMSThompson/village-dashboard/pkg/helpers"
)

var palette = []string{"#4e73df", "#1cc88a", "#36b9cc", "#f6c23e", "#e74a3b", "#5a5c69"}

const (
	colorBlue   = "#4e73df"
	colorGreen  = "#1cc88a"
	colorCyan   = "#36b9cc"
	colorYellow = "#f6c23e"
	colorRed    = "#e74a3b"
	colorGrey   = "#5a5c69"

	sparklineHeight = 100
)

// chartBuilder turns the raw series of one chart into its configuration.
type chartBuilder func(b models.SeriesBundle) models.ChartConfig

type chartOption func(cfg *models.ChartConfig)

func seriesOf(b models.SeriesBundle) []models.Series {
	out := make([]models.Series, len(b.Series))
	for i, s := range b.Series {
		out[i] = models.Series{Name: s.Name, Data: s.Data}
	}
	return out
}

func apply(cfg models.ChartConfig, opts []chartOption) models.ChartConfig {
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// axisChart builds line, area, bar and radar charts from named series.
func axisChart(typ models.ChartType, height int, opts ...chartOption) chartBuilder {
	return func(b models.SeriesBundle) models.ChartConfig {
		return apply(models.ChartConfig{
			Type:       typ,
			Height:     height,
			Series:     seriesOf(b),
			Categories: b.Categories,
		}, opts)
	}
}

// pieChart builds pie, donut and radial charts: the first series becomes the
// values, the categories the labels.
func pieChart(typ models.ChartType, height int, opts ...chartOption) chartBuilder {
	return func(b models.SeriesBundle) models.ChartConfig {
		return apply(models.ChartConfig{
			Type:   typ,
			Height: height,
			Values: b.First(),
			Labels: b.Categories,
		}, opts)
	}
}

func treemapChart(height int, opts ...chartOption) chartBuilder {
	return func(b models.SeriesBundle) models.ChartConfig {
		return apply(models.ChartConfig{
			Type:   models.ChartTreemap,
			Height: height,
			Series: []models.Series{{Points: b.Points}},
		}, opts)
	}
}

// sparkline is a small chart without axes, used in the stat cards.
func sparkline(typ models.ChartType, opts ...chartOption) chartBuilder {
	opts = append([]chartOption{sparklineOn}, opts...)
	if typ == models.ChartDonut || typ == models.ChartPie {
		return pieChart(typ, sparklineHeight, opts...)
	}
	return axisChart(typ, sparklineHeight, opts...)
}

func sparklineOn(cfg *models.ChartConfig) { cfg.Sparkline = true }
func smooth(cfg *models.ChartConfig)      { cfg.Smooth = true }
func stacked(cfg *models.ChartConfig)     { cfg.Stacked = true }
func horizontal(cfg *models.ChartConfig)  { cfg.Horizontal = true }

func colors(c ...string) chartOption {
	return func(cfg *models.ChartConfig) { cfg.Colors = c }
}

func title(t string) chartOption {
	return func(cfg *models.ChartConfig) { cfg.Title = t }
}

func tooltip(f models.ValueFormat) chartOption {
	return func(cfg *models.ChartConfig) { cfg.Tooltip = f }
}

func dataLabels(f models.ValueFormat) chartOption {
	return func(cfg *models.ChartConfig) { cfg.DataLabels = f }
}

func legend(position string) chartOption {
	return func(cfg *models.ChartConfig) { cfg.Legend = position }
}

func xAxis(a models.Axis) chartOption {
	return func(cfg *models.ChartConfig) { cfg.XAxis = &a }
}

func yAxis(axes ...models.Axis) chartOption {
	return func(cfg *models.ChartConfig) { cfg.YAxis = axes }
}

// mixed sets the per-series type of a combined column/line chart.
func mixed(types ...models.ChartType) chartOption {
	return func(cfg *models.ChartConfig) {
		for i := range cfg.Series {
			if i < len(types) {
				cfg.Series[i].Type = types[i]
			}
		}
	}
}

func bounds(min, max float64) (*float64, *float64) {
	return helpers.Ptr(min), helpers.Ptr(max)
}

func percentAxis(axisTitle string) models.Axis {
	lo, hi := bounds(0, 100)
	return models.Axis{Title: axisTitle, Min: lo, Max: hi, Format: models.FormatPercent}
}
