package services

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/GregMSThompson/village-dashboard/internal/models"
)

// PopulationTableSize is the number of rows shown in the population table.
const PopulationTableSize = 100

const (
	seed2024    = 12345
	seedDefault = 54321

	baseIncomeStep = 500000
)

var incomeGrowth2024 = decimal.RequireFromString("1.15")

var (
	sampleNames = []string{
		"Budi Santoso", "Siti Rahma", "Ahmad Hidayat", "Dewi Putri", "Joko Widodo",
		"Sri Wahyuni", "Agus Priyanto", "Lina Susanti", "Hendra Kurniawan", "Rina Wati",
		"Dodi Pratama", "Nina Sari", "Rudi Hermawan", "Lia Anggraini", "Hadi Sucipto",
	}
	sampleGenders    = []string{"Laki-laki", "Perempuan"}
	sampleEducations = []string{"SD", "SMP", "SMA", "D3", "S1", "S2", "S3", "Tidak Sekolah"}
	sampleJobs       = []string{
		"Petani", "Guru", "Wiraswasta", "PNS", "Dokter", "Perawat",
		"Ibu Rumah Tangga", "Buruh", "Pedagang", "Pensiunan", "Tidak Bekerja", "Lainnya",
	}
	sampleStatuses = []string{"Kawin", "Belum Kawin", "Cerai Hidup", "Cerai Mati"}
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

func populationSeed(year models.YearKey) int {
	if year == models.Year2024 {
		return seed2024
	}
	return seedDefault
}

// GenerateSamplePopulationData builds count deterministic population records
// for year. The same inputs always produce the same records. Unknown year
// keys share the 2023 seed.
func GenerateSamplePopulationData(count int, year models.YearKey) []models.PopulationRecord {
	if count <= 0 {
		return []models.PopulationRecord{}
	}

	seed := populationSeed(year)
	out := make([]models.PopulationRecord, 0, count)
	for i := 1; i <= count; i++ {
		m := (i * seed) % 97
		out = append(out, models.PopulationRecord{
			Index:         i,
			Name:          sampleNames[(m*13)%len(sampleNames)],
			Gender:        sampleGenders[(m*3)%len(sampleGenders)],
			Age:           15 + m%70,
			Education:     sampleEducations[(m*5)%len(sampleEducations)],
			Occupation:    sampleJobs[(m*7)%len(sampleJobs)],
			Income:        formatRupiah(sampleIncome(m, year)),
			MaritalStatus: sampleStatuses[(m*11)%len(sampleStatuses)],
		})
	}
	return out
}

func sampleIncome(m int, year models.YearKey) int64 {
	income := decimal.NewFromInt(int64((m%9)+1) * baseIncomeStep)
	if year == models.Year2024 {
		income = income.Mul(incomeGrowth2024).Round(0)
	}
	return income.IntPart()
}

// formatRupiah renders an amount with Indonesian digit grouping,
// e.g. 5175000 -> "Rp 5.175.000".
func formatRupiah(amount int64) string {
	return "Rp " + rupiahPrinter.Sprintf("%d", amount)
}
