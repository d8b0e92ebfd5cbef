package models

type ChartType string

const (
	ChartLine      ChartType = "line"
	ChartArea      ChartType = "area"
	ChartBar       ChartType = "bar"
	ChartPie       ChartType = "pie"
	ChartDonut     ChartType = "donut"
	ChartRadialBar ChartType = "radialBar"
	ChartRadar     ChartType = "radar"
	ChartTreemap   ChartType = "treemap"
	ChartColumn    ChartType = "column" // series type inside mixed charts
)

// ValueFormat names a formatting callback the front-end applies to values.
type ValueFormat string

const (
	FormatNone           ValueFormat = ""
	FormatPercent        ValueFormat = "percent"        // 82 -> "82%"
	FormatPercentFixed1  ValueFormat = "percentFixed1"  // 48.2 -> "48.2%"
	FormatPeople         ValueFormat = "people"         // 3542 -> "3542 orang"
	FormatAbsolute       ValueFormat = "absolute"       // -300 -> "300"
	FormatAbsolutePeople ValueFormat = "absolutePeople" // -300 -> "300 orang"
	FormatCases          ValueFormat = "cases"          // 150 -> "150 kasus"
	FormatMillionRupiah  ValueFormat = "millionRupiah"  // 300 -> "Rp 300 juta"
	FormatRupiah         ValueFormat = "rupiah"         // 1500000 -> "Rp 1.500.000"
	FormatScore          ValueFormat = "score"          // 75.2 -> "75.2"
	FormatSeriesPercent  ValueFormat = "seriesPercent"  // label "SD - 22%"
	FormatTotalAverage   ValueFormat = "totalAverage"   // radial total label
)

// Point is an x/y pair, used by treemaps.
type Point struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

type Series struct {
	Name   string    `json:"name,omitempty"`
	Type   ChartType `json:"type,omitempty"`
	Data   []float64 `json:"data,omitempty"`
	Points []Point   `json:"points,omitempty"`
}

type Axis struct {
	Title    string      `json:"title,omitempty"`
	Min      *float64    `json:"min,omitempty"`
	Max      *float64    `json:"max,omitempty"`
	Format   ValueFormat `json:"format,omitempty"`
	Opposite bool        `json:"opposite,omitempty"`
}

// ChartConfig is the declarative configuration handed to the chart
// rendering collaborator. Axis charts use Series; pie-like charts use Values
// with Labels.
type ChartConfig struct {
	Type       ChartType   `json:"type"`
	Height     int         `json:"height"`
	Title      string      `json:"title,omitempty"`
	Stacked    bool        `json:"stacked,omitempty"`
	Horizontal bool        `json:"horizontal,omitempty"`
	Sparkline  bool        `json:"sparkline,omitempty"`
	Smooth     bool        `json:"smooth,omitempty"`
	Series     []Series    `json:"series,omitempty"`
	Values     []float64   `json:"values,omitempty"`
	Labels     []string    `json:"labels,omitempty"`
	Categories []string    `json:"categories,omitempty"`
	Colors     []string    `json:"colors,omitempty"`
	XAxis      *Axis       `json:"xaxis,omitempty"`
	YAxis      []Axis      `json:"yaxis,omitempty"`
	Tooltip    ValueFormat `json:"tooltip,omitempty"`
	DataLabels ValueFormat `json:"dataLabels,omitempty"`
	Legend     string      `json:"legend,omitempty"`
}
