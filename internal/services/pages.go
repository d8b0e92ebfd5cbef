package services

import (
	"github.com/GregMSThompson/village-dashboard/internal/models"
	"github.com/GregMSThompson/village-dashboard/internal/view"
)

// PopulationTableID is the container of the year-dependent population table.
const PopulationTableID = "populationTable"

// PopulationTableSpec configures the population table widget.
var PopulationTableSpec = models.TableSpec{
	Columns:    models.PopulationColumns,
	Buttons:    []string{"copy", "csv", "excel", "pdf", "print", "colvis"},
	Responsive: true,
	Language:   models.IndonesianTableLanguage,
}

type chartSpec struct {
	id    string
	build chartBuilder
}

// pageSpec lists what a page initializer renders. Tables and blocks are
// looked up in the catalog by container id.
type pageSpec struct {
	page         models.PageID
	yearSelector string
	yearAware    bool
	charts       []chartSpec
	tables       []string
	blocks       []string
}

func (p pageSpec) chartIDs() []string {
	ids := make([]string, len(p.charts))
	for i, c := range p.charts {
		ids[i] = c.id
	}
	return ids
}

var pageSpecs = []pageSpec{
	{
		page:         models.PageDashboard,
		yearSelector: "year-select",
		yearAware:    true,
		charts: []chartSpec{
			{"populationChart", axisChart(models.ChartLine, 300, smooth, colors(colorBlue),
				yAxis(models.Axis{Title: "Jumlah Penduduk"}), tooltip(models.FormatPeople))},
			{"ageDistributionChart", axisChart(models.ChartBar, 300, stacked, horizontal, colors(colorBlue, colorRed),
				xAxis(func() models.Axis {
					lo, hi := bounds(-600, 600)
					return models.Axis{Title: "Jumlah Penduduk", Min: lo, Max: hi, Format: models.FormatAbsolute}
				}()),
				yAxis(models.Axis{Title: "Kelompok Usia"}), tooltip(models.FormatAbsolutePeople))},
			{"educationChart", pieChart(models.ChartPie, 300, colors(palette...), legend("bottom"))},
			{"unemploymentChart", pieChart(models.ChartRadialBar, 300, colors(colorGreen), dataLabels(models.FormatPercent))},
			{"incomeChart", pieChart(models.ChartDonut, 300, colors(palette[:5]...), legend("bottom"), tooltip(models.FormatPercent))},
			{"infrastructureChart", axisChart(models.ChartBar, 300, colors(colorBlue, colorGreen, colorCyan, colorYellow),
				yAxis(percentAxis("Persentase (%)")), tooltip(models.FormatPercent), legend("top"))},
			{"budgetChart", treemapChart(300, colors(palette...), dataLabels(models.FormatPercent))},
		},
	},
	{
		page: models.PageStatistics,
		charts: []chartSpec{
			{"densityChart", sparkline(models.ChartArea, smooth, colors(colorBlue))},
			{"genderRatioChart", sparkline(models.ChartDonut, colors(colorBlue, colorRed))},
			{"developmentIndexChart", sparkline(models.ChartLine, colors(colorGreen))},
			{"birthRateChart", sparkline(models.ChartBar, colors(colorYellow))},
			{"yearComparisonChart", axisChart(models.ChartRadar, 350, colors(colorBlue, colorGreen),
				yAxis(percentAxis("")), legend("bottom"))},
			{"populationProjectionChart", axisChart(models.ChartLine, 300, smooth, colors(colorCyan),
				title("Proyeksi 5 Tahun Ke Depan"), tooltip(models.FormatPeople))},
			{"marriageStatsChart", pieChart(models.ChartPie, 300, colors(colorBlue, colorGreen, colorYellow, colorRed), legend("bottom"))},
			{"welfareIndicatorsChart", axisChart(models.ChartBar, 300, colors(colorGreen),
				yAxis(percentAxis("")), tooltip(models.FormatPercent))},
			{"educationIncomeChart", axisChart(models.ChartBar, 300, colors(colorBlue),
				yAxis(models.Axis{Title: "Pendapatan (Rp)", Format: models.FormatRupiah}), tooltip(models.FormatRupiah))},
		},
	},
	{
		page:         models.PagePenduduk,
		yearSelector: "penduduk-year-select",
		charts: []chartSpec{
			{"komposisiPendudukChart", pieChart(models.ChartDonut, 350, colors(colorBlue, colorRed),
				dataLabels(models.FormatPercentFixed1), legend("bottom"))},
			{"perkembanganBulananChart", axisChart(models.ChartLine, 350, smooth, colors(colorBlue),
				yAxis(models.Axis{Title: "Jumlah Penduduk"}), tooltip(models.FormatPeople))},
		},
		blocks: []string{"pendudukMap"},
	},
	{
		page: models.PagePemerintahan,
		charts: []chartSpec{
			{"programPrioritasChart", axisChart(models.ChartBar, 300, horizontal, colors(colorBlue),
				xAxis(percentAxis("")), dataLabels(models.FormatPercent))},
			{"anggaranRealisasiChart", axisChart(models.ChartBar, 300, colors(colorBlue, colorGreen),
				yAxis(models.Axis{Title: "Juta Rupiah"}), tooltip(models.FormatMillionRupiah), legend("top"))},
		},
		blocks: []string{"orgChart"},
	},
	{
		page:         models.PageEkonomi,
		yearSelector: "economy-year-select",
		charts: []chartSpec{
			{"pertanianChart", sparkline(models.ChartArea, smooth, colors(colorGreen))},
			{"industriChart", sparkline(models.ChartArea, smooth, colors(colorBlue))},
			{"perdaganganChart", sparkline(models.ChartArea, smooth, colors(colorYellow))},
			{"jasaChart", sparkline(models.ChartArea, smooth, colors(colorRed))},
			{"perkembanganEkonomiChart", axisChart(models.ChartLine, 350, colors(colorBlue, colorGreen),
				mixed(models.ChartColumn, models.ChartLine),
				title("PDRB dan Pertumbuhan Ekonomi"),
				yAxis(models.Axis{Title: "PDRB (Miliar Rp)"}, models.Axis{Title: "Pertumbuhan (%)", Opposite: true, Format: models.FormatPercent}))},
			{"pendapatanDistribusiChart", axisChart(models.ChartBar, 350, stacked, colors(colorBlue, colorGreen),
				xAxis(models.Axis{Title: "Kelompok Pendapatan (Rp)"}),
				yAxis(models.Axis{Title: "Persentase Penduduk (%)"}), legend("top"))},
		},
		tables: []string{"umkmTable"},
	},
	{
		page:         models.PagePendidikan,
		yearSelector: "pendidikan-year-select",
		charts: []chartSpec{
			{"tingkatPendidikanChart", pieChart(models.ChartPie, 350, colors(palette...), legend("bottom"))},
			{"trendPendidikanChart", axisChart(models.ChartLine, 350, colors(colorGrey, colorYellow, colorBlue, colorGreen),
				title("Trend Pendidikan 2021-2024"), dataLabels(models.FormatSeriesPercent),
				yAxis(models.Axis{Title: "Persentase (%)", Format: models.FormatPercent}))},
			{"rataRataNilaiChart", axisChart(models.ChartBar, 350, colors(colorCyan),
				yAxis(func() models.Axis {
					lo, hi := bounds(0, 100)
					return models.Axis{Title: "Nilai", Min: lo, Max: hi}
				}()), tooltip(models.FormatScore))},
		},
	},
	{
		page:         models.PageKesehatan,
		yearSelector: "kesehatan-year-select",
		charts: []chartSpec{
			{"harapanHidupChart", sparkline(models.ChartArea, smooth, colors(colorGreen))},
			{"kematianBayiChart", sparkline(models.ChartArea, smooth, colors(colorRed))},
			{"cakupanVaksinasiChart", sparkline(models.ChartArea, smooth, colors(colorBlue))},
			{"angkaKesakitanChart", sparkline(models.ChartArea, smooth, colors(colorYellow))},
			{"polaPenyakitChart", axisChart(models.ChartBar, 350, colors(colorRed, colorBlue),
				yAxis(models.Axis{Title: "Jumlah Kasus"}), tooltip(models.FormatCases), legend("top"))},
			{"programKesehatanChart", pieChart(models.ChartRadialBar, 350,
				colors(colorBlue, colorGreen, colorYellow, colorRed, colorCyan), dataLabels(models.FormatTotalAverage))},
		},
	},
	{
		page:         models.PageInfrastruktur,
		yearSelector: "infrastruktur-year-select",
		charts: []chartSpec{
			{"cakupanInfrastrukturChart", axisChart(models.ChartRadar, 350, colors(colorBlue, colorGreen),
				title("Cakupan Infrastruktur Dasar"), yAxis(percentAxis("")), legend("bottom"))},
			{"pembangunanTahunanChart", axisChart(models.ChartLine, 350, colors(colorBlue, colorGreen),
				mixed(models.ChartColumn, models.ChartLine),
				yAxis(
					models.Axis{Title: "Anggaran (Juta Rp)", Format: models.FormatMillionRupiah},
					func() models.Axis {
						lo, hi := bounds(80, 100)
						return models.Axis{Title: "Realisasi (%)", Min: lo, Max: hi, Format: models.FormatPercent, Opposite: true}
					}(),
				))},
		},
		blocks: []string{"infrastrukturMap"},
	},
	{
		page:         models.PageGeografi,
		yearSelector: "geografi-year-select",
		charts: []chartSpec{
			{"curahHujanChart", axisChart(models.ChartBar, 350, colors(colorCyan),
				yAxis(models.Axis{Title: "Curah Hujan (mm)"}))},
			{"suhuRataRataChart", axisChart(models.ChartLine, 350, smooth, colors(colorYellow),
				yAxis(models.Axis{Title: "Suhu (°C)"}))},
		},
		blocks: []string{"topografiMap"},
	},
	{
		page:         models.PageIndustri,
		yearSelector: "industri-year-select",
		charts: []chartSpec{
			{"sektorIndustriChart", pieChart(models.ChartPie, 350, colors(palette[:5]...), legend("bottom"))},
			{"pertumbuhanIndustriChart", axisChart(models.ChartLine, 350, smooth, colors(colorBlue, colorGreen),
				title("Pertumbuhan Sektor Industri"),
				yAxis(models.Axis{Title: "Jumlah Unit Usaha"}, models.Axis{Title: "Nilai Produksi (Miliar Rp)", Opposite: true}))},
			{"tenagaKerjaIndustriChart", axisChart(models.ChartBar, 350, colors(colorBlue, colorGreen),
				yAxis(models.Axis{Title: "Jumlah Tenaga Kerja"}), tooltip(models.FormatPeople), legend("top"))},
		},
		tables: []string{"industriTable"},
	},
	{
		page:         models.PagePerdagangan,
		yearSelector: "perdagangan-year-select",
		charts: []chartSpec{
			{"komoditasChart", pieChart(models.ChartPie, 350, colors(palette[:5]...), legend("bottom"))},
			{"usahaDagangChart", axisChart(models.ChartLine, 350, smooth, colors(colorBlue),
				title("Pertumbuhan Usaha Dagang"))},
			{"sektorPerdaganganChart", axisChart(models.ChartBar, 350, colors(colorBlue, colorGreen),
				yAxis(models.Axis{Title: "Persentase Transaksi"}), tooltip(models.FormatPercent), legend("top"))},
		},
		tables: []string{"perdaganganTable"},
	},
}

// DefaultLayout is the full dashboard document: every page with its menu
// entry, year selector and containers, plus the four metric panels.
func DefaultLayout() view.Layout {
	layout := view.Layout{
		Menu:         append([]models.PageID(nil), models.Pages...),
		MetricPanels: append([]models.Indicator(nil), models.Indicators...),
	}
	for _, spec := range pageSpecs {
		pl := view.PageLayout{
			Page:         spec.page,
			YearSelector: spec.yearSelector,
			Charts:       spec.chartIDs(),
			Tables:       append([]string(nil), spec.tables...),
			Blocks:       append([]string(nil), spec.blocks...),
		}
		if spec.page == models.PagePenduduk {
			pl.Tables = append(pl.Tables, PopulationTableID)
		}
		layout.Pages = append(layout.Pages, pl)
	}
	return layout
}
