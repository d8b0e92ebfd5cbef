package store

import "github.com/GregMSThompson/village-dashboard/internal/models"

var metricSnapshots = map[models.YearKey]models.MetricSnapshot{
	models.Year2023: {
		Year: models.Year2023,
		Metrics: map[models.Indicator]models.Metric{
			models.IndicatorPopulation: {Value: "3,542", Trend: "+3.2%", Polarity: models.TrendPositive},
			models.IndicatorIncome:     {Value: "Rp 2.7 juta", Trend: "+5.8%", Polarity: models.TrendPositive},
			models.IndicatorEducation:  {Value: "78%", Trend: "+2.1%", Polarity: models.TrendPositive},
			models.IndicatorHealth:     {Value: "92%", Trend: "+4.5%", Polarity: models.TrendPositive},
		},
		PopulationCount: 3542,
	},
	models.Year2024: {
		Year: models.Year2024,
		Metrics: map[models.Indicator]models.Metric{
			models.IndicatorPopulation: {Value: "3,721", Trend: "+5.1%", Polarity: models.TrendPositive},
			models.IndicatorIncome:     {Value: "Rp 3.1 juta", Trend: "+14.8%", Polarity: models.TrendPositive},
			models.IndicatorEducation:  {Value: "83%", Trend: "+6.4%", Polarity: models.TrendPositive},
			models.IndicatorHealth:     {Value: "95%", Trend: "+3.3%", Polarity: models.TrendPositive},
		},
		PopulationCount: 3721,
	},
}

var (
	ageGroups       = []string{"65+", "55-64", "45-54", "35-44", "25-34", "18-24", "0-17"}
	educationLevels = []string{"Tidak Sekolah", "SD", "SMP", "SMA", "D3/S1", "S2/S3"}
	incomeSectors   = []string{"Pertanian", "Perdagangan", "Jasa", "Industri", "Lainnya"}
	infraCategories = []string{"Jalan", "Air Bersih", "Listrik", "Internet", "Fasilitas Umum"}
	genders         = []string{"Laki-laki", "Perempuan"}
	yearsTo2024     = []string{"2020", "2021", "2022", "2023", "2024"}
	monthsID        = []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Ags", "Sep", "Okt", "Nov", "Des"}
	industrySectors = []string{"Pengolahan Pangan", "Kerajinan", "Tekstil", "Elektronik", "Lainnya"}
)

func single(name string, categories []string, data ...float64) models.SeriesBundle {
	return models.SeriesBundle{
		Categories: categories,
		Series:     []models.NamedSeries{{Name: name, Data: data}},
	}
}

var chartDatasets = []models.ChartDataset{
	{
		Page: models.PageDashboard,
		Year: models.Year2023,
		Charts: map[string]models.SeriesBundle{
			"populationChart": single("Jumlah Penduduk", []string{"2019", "2020", "2021", "2022", "2023"}, 3100, 3200, 3320, 3410, 3542),
			"ageDistributionChart": {
				Categories: ageGroups,
				Series: []models.NamedSeries{
					{Name: "Laki-laki", Data: []float64{-300, -450, -500, -400, -320, -200, -100}},
					{Name: "Perempuan", Data: []float64{280, 420, 520, 410, 350, 210, 120}},
				},
			},
			"educationChart":    single("", educationLevels, 15, 25, 35, 10, 12, 3),
			"unemploymentChart": single("", []string{"Tingkat Pekerjaan"}, 75),
			"incomeChart":       single("", incomeSectors, 45, 25, 15, 10, 5),
			"infrastructureChart": {
				Categories: infraCategories,
				Series: []models.NamedSeries{
					{Name: "2021", Data: []float64{65, 75, 45, 80, 55}},
					{Name: "2022", Data: []float64{70, 80, 55, 85, 65}},
					{Name: "2023", Data: []float64{82, 88, 72, 92, 78}},
				},
			},
			"budgetChart": {
				Points: []models.Point{
					{X: "Pembangunan", Y: 40},
					{X: "Pendidikan", Y: 20},
					{X: "Kesehatan", Y: 15},
					{X: "Administrasi", Y: 10},
					{X: "Sosial", Y: 8},
					{X: "Lingkungan", Y: 7},
				},
			},
		},
	},
	{
		Page: models.PageDashboard,
		Year: models.Year2024,
		Charts: map[string]models.SeriesBundle{
			"populationChart": single("Jumlah Penduduk", yearsTo2024, 3200, 3320, 3410, 3542, 3721),
			"ageDistributionChart": {
				Categories: ageGroups,
				Series: []models.NamedSeries{
					{Name: "Laki-laki", Data: []float64{-310, -470, -520, -450, -340, -220, -110}},
					{Name: "Perempuan", Data: []float64{290, 440, 540, 430, 370, 230, 140}},
				},
			},
			"educationChart":    single("", educationLevels, 10, 22, 38, 13, 14, 3),
			"unemploymentChart": single("", []string{"Tingkat Pekerjaan"}, 82),
			"incomeChart":       single("", incomeSectors, 40, 28, 18, 9, 5),
			"infrastructureChart": {
				Categories: infraCategories,
				Series: []models.NamedSeries{
					{Name: "2021", Data: []float64{65, 75, 45, 80, 55}},
					{Name: "2022", Data: []float64{70, 80, 55, 85, 65}},
					{Name: "2023", Data: []float64{82, 88, 72, 92, 78}},
					{Name: "2024", Data: []float64{89, 92, 82, 95, 85}},
				},
			},
			"budgetChart": {
				Points: []models.Point{
					{X: "Pembangunan", Y: 35},
					{X: "Pendidikan", Y: 25},
					{X: "Kesehatan", Y: 18},
					{X: "Administrasi", Y: 8},
					{X: "Sosial", Y: 9},
					{X: "Lingkungan", Y: 5},
				},
			},
		},
	},
	{
		Page:            models.PageStatistics,
		YearIndependent: true,
		Charts: map[string]models.SeriesBundle{
			"densityChart":          single("Kepadatan", nil, 98, 105, 112, 118, 124),
			"genderRatioChart":      single("", genders, 102, 100),
			"developmentIndexChart": single("IPD", nil, 0.62, 0.65, 0.68, 0.7, 0.72),
			"birthRateChart":        single("Rate", nil, 1.9, 2.0, 2.1, 2.0, 2.1),
			"yearComparisonChart": {
				Categories: []string{"Ekonomi", "Pendidikan", "Kesehatan", "Infrastruktur", "Sosial", "Lingkungan"},
				Series: []models.NamedSeries{
					{Name: "2023", Data: []float64{65, 72, 58, 80, 68, 74}},
					{Name: "2024", Data: []float64{72, 80, 65, 86, 75, 82}},
				},
			},
			"populationProjectionChart": single("Proyeksi", []string{"2024", "2025", "2026", "2027", "2028"}, 3721, 3890, 4050, 4200, 4350),
			"marriageStatsChart":        single("", []string{"Kawin", "Belum Kawin", "Cerai Hidup", "Cerai Mati"}, 65, 20, 10, 5),
			"welfareIndicatorsChart":    single("Indikator", []string{"Perumahan", "Sanitasi", "Air Bersih", "Listrik", "Akses Jalan"}, 78, 85, 72, 65, 88),
			"educationIncomeChart":      single("Pendapatan Rata-rata (Rp)", educationLevels, 1500000, 2000000, 2800000, 3500000, 5000000, 7000000),
		},
	},
	{
		Page:            models.PagePenduduk,
		YearIndependent: true,
		Charts: map[string]models.SeriesBundle{
			"komposisiPendudukChart": single("", genders, 48.2, 51.8),
			"perkembanganBulananChart": single("Jumlah Penduduk",
				[]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
				3542, 3558, 3567, 3579, 3598, 3610, 3625, 3642, 3659, 3678, 3697, 3721),
		},
	},
	{
		Page:            models.PagePemerintahan,
		YearIndependent: true,
		Charts: map[string]models.SeriesBundle{
			"programPrioritasChart": single("", []string{"Pembangunan Jalan", "Revitalisasi Pasar", "Irigasi", "Renovasi Sekolah", "Posyandu"}, 78, 65, 82, 55, 70),
			"anggaranRealisasiChart": {
				Categories: []string{"Infrastruktur", "Pendidikan", "Kesehatan", "Sosial", "Administrasi", "Lainnya"},
				Series: []models.NamedSeries{
					{Name: "Anggaran", Data: []float64{300, 450, 200, 150, 100, 80}},
					{Name: "Realisasi", Data: []float64{280, 420, 190, 140, 90, 70}},
				},
			},
		},
	},
	{
		Page:            models.PageEkonomi,
		YearIndependent: true,
		Charts: map[string]models.SeriesBundle{
			"pertanianChart":   single("Pertumbuhan", nil, 41, 42, 44, 45, 45),
			"industriChart":    single("Pertumbuhan", nil, 18, 19, 20, 21, 22),
			"perdaganganChart": single("Pertumbuhan", nil, 15, 16, 17, 18, 18),
			"jasaChart":        single("Pertumbuhan", nil, 12, 13, 13, 14, 15),
			"perkembanganEkonomiChart": {
				Categories: yearsTo2024,
				Series: []models.NamedSeries{
					{Name: "PDRB Desa", Data: []float64{6.2, 6.8, 7.5, 8.1, 8.7}},
					{Name: "Pertumbuhan (%)", Data: []float64{5.2, 6.0, 7.2, 6.8, 8.2}},
				},
			},
			"pendapatanDistribusiChart": {
				Categories: []string{"<1 juta", "1-2 juta", "2-3 juta", "3-5 juta", ">5 juta"},
				Series: []models.NamedSeries{
					{Name: "2023", Data: []float64{20, 35, 25, 15, 5}},
					{Name: "2024", Data: []float64{15, 30, 30, 20, 5}},
				},
			},
		},
	},
	{
		Page:            models.PagePendidikan,
		YearIndependent: true,
		Charts: map[string]models.SeriesBundle{
			"tingkatPendidikanChart": single("", educationLevels, 10, 22, 38, 13, 14, 3),
			"trendPendidikanChart": {
				Categories: []string{"2021", "2022", "2023", "2024"},
				Series: []models.NamedSeries{
					{Name: "Tidak Sekolah", Data: []float64{15, 14, 12, 10}},
					{Name: "SD", Data: []float64{30, 28, 25, 22}},
					{Name: "SMP", Data: []float64{35, 36, 37, 38}},
					{Name: "SMA+", Data: []float64{20, 22, 26, 30}},
				},
			},
			"rataRataNilaiChart": single("Rata-rata Nilai",
				[]string{"Bahasa Indonesia", "Matematika", "IPA", "IPS", "Bahasa Inggris", "Kewarganegaraan"},
				75.2, 78.5, 73.8, 82.4, 79.6, 76.3),
		},
	},
	{
		Page:            models.PageKesehatan,
		YearIndependent: true,
		Charts: map[string]models.SeriesBundle{
			"harapanHidupChart":     single("Harapan Hidup", nil, 68.4, 69.2, 70.5, 71.8, 72.5),
			"kematianBayiChart":     single("Kematian Bayi", nil, 4.2, 3.8, 3.2, 2.5, 2.1),
			"cakupanVaksinasiChart": single("Vaksinasi", nil, 82, 85, 90, 93, 95),
			"angkaKesakitanChart":   single("Kesakitan", nil, 6.8, 6.2, 5.5, 4.8, 4.2),
			"polaPenyakitChart": {
				Categories: []string{"ISPA", "Diare", "Hipertensi", "Diabetes", "Gigi & Mulut", "Kulit", "Mata"},
				Series: []models.NamedSeries{
					{Name: "2023", Data: []float64{150, 130, 90, 80, 60, 40, 20}},
					{Name: "2024", Data: []float64{120, 100, 85, 95, 65, 30, 15}},
				},
			},
			"programKesehatanChart": single("", []string{"Imunisasi", "Kesehatan Ibu", "Gizi", "Sanitasi", "Kesehatan Lansia"}, 85, 92, 78, 88, 95),
		},
	},
	{
		Page:            models.PageInfrastruktur,
		YearIndependent: true,
		Charts: map[string]models.SeriesBundle{
			"cakupanInfrastrukturChart": {
				Categories: []string{"Jalan", "Air Bersih", "Listrik", "Internet", "Sanitasi"},
				Series: []models.NamedSeries{
					{Name: "2023", Data: []float64{80, 85, 95, 75, 90}},
					{Name: "2024", Data: []float64{89, 92, 98, 85, 95}},
				},
			},
			"pembangunanTahunanChart": {
				Categories: yearsTo2024,
				Series: []models.NamedSeries{
					{Name: "Anggaran (Juta Rp)", Data: []float64{450, 650, 850, 1050, 1250}},
					{Name: "Realisasi (%)", Data: []float64{92, 90, 95, 93, 97}},
				},
			},
		},
	},
	{
		Page:            models.PageGeografi,
		YearIndependent: true,
		Charts: map[string]models.SeriesBundle{
			"curahHujanChart":   single("Curah Hujan (mm)", monthsID, 50, 80, 120, 150, 180, 160, 120, 100, 90, 70, 60, 55),
			"suhuRataRataChart": single("Suhu (°C)", monthsID, 25, 26, 27, 28, 29, 28, 27, 26, 27, 28, 27, 26),
		},
	},
	{
		Page:            models.PageIndustri,
		YearIndependent: true,
		Charts: map[string]models.SeriesBundle{
			"sektorIndustriChart": single("", industrySectors, 35, 25, 20, 12, 8),
			"pertumbuhanIndustriChart": {
				Categories: yearsTo2024,
				Series: []models.NamedSeries{
					{Name: "Jumlah Unit Usaha", Data: []float64{25, 30, 35, 37, 42}},
					{Name: "Nilai Produksi (Miliar Rp)", Data: []float64{5.5, 6.8, 8.2, 9.5, 11.2}},
				},
			},
			"tenagaKerjaIndustriChart": {
				Categories: industrySectors,
				Series: []models.NamedSeries{
					{Name: "2023", Data: []float64{150, 120, 90, 60, 40}},
					{Name: "2024", Data: []float64{180, 140, 110, 75, 50}},
				},
			},
		},
	},
	{
		Page:            models.PagePerdagangan,
		YearIndependent: true,
		Charts: map[string]models.SeriesBundle{
			"komoditasChart":   single("", []string{"Pertanian", "Perikanan", "Peternakan", "Kerajinan", "Lainnya"}, 35, 25, 20, 12, 8),
			"usahaDagangChart": single("Jumlah Usaha", yearsTo2024, 25, 30, 35, 37, 42),
			"sektorPerdaganganChart": {
				Categories: []string{"Retail", "Kuliner", "Jasa", "Online", "Lainnya"},
				Series: []models.NamedSeries{
					{Name: "2023", Data: []float64{45, 35, 25, 15, 10}},
					{Name: "2024", Data: []float64{50, 40, 30, 20, 15}},
				},
			},
		},
	},
}
