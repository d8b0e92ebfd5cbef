package store

import "github.com/GregMSThompson/village-dashboard/internal/models"

var exportButtons = []string{"copy", "csv", "excel", "pdf", "print"}

func businessSpec(columns ...string) models.TableSpec {
	return models.TableSpec{
		Columns:    columns,
		Buttons:    exportButtons,
		Responsive: true,
		Language:   models.IndonesianTableLanguage,
	}
}

var staticTables = []models.StaticTable{
	{
		ID:   "umkmTable",
		Spec: businessSpec("No", "Nama Usaha", "Jenis Usaha", "Tenaga Kerja", "Omzet", "Status"),
		Rows: []models.TableRow{
			{1, "Tani Makmur", "Pertanian", 12, "Rp 350 juta", "Aktif"},
			{2, "Batik Nusantara", "Kerajinan", 8, "Rp 280 juta", "Aktif"},
			{3, "Warung Sejahtera", "Kuliner", 5, "Rp 180 juta", "Aktif"},
			{4, "Bengkel Jaya", "Jasa", 3, "Rp 120 juta", "Aktif"},
			{5, "Toko Bangunan Abadi", "Perdagangan", 7, "Rp 420 juta", "Aktif"},
			{6, "Jamu Tradisional", "Pengolahan", 4, "Rp 150 juta", "Aktif"},
			{7, "Kreasi Bambu", "Kerajinan", 6, "Rp 200 juta", "Aktif"},
			{8, "Peternakan Sapi", "Peternakan", 5, "Rp 250 juta", "Aktif"},
			{9, "Budidaya Ikan", "Perikanan", 4, "Rp 180 juta", "Aktif"},
			{10, "Tukang Jahit Rapi", "Jasa", 2, "Rp 90 juta", "Aktif"},
		},
	},
	{
		ID:   "industriTable",
		Spec: businessSpec("No", "Nama Industri", "Sektor", "Nilai Produksi", "Lokasi", "Status"),
		Rows: []models.TableRow{
			{1, "Olahan Pangan Mandiri", "Pengolahan Pangan", "Rp 350 juta", "Dusun Utara", "Aktif"},
			{2, "Kerajinan Bambu Sejahtera", "Kerajinan", "Rp 280 juta", "Dusun Timur", "Aktif"},
			{3, "Batik Tradisional", "Tekstil", "Rp 420 juta", "Dusun Selatan", "Aktif"},
			{4, "Elektronik Lokal", "Elektronik", "Rp 190 juta", "Dusun Barat", "Aktif"},
			{5, "Industri Rumah Tangga Kreatif", "Lainnya", "Rp 150 juta", "Pusat Desa", "Aktif"},
		},
	},
	{
		ID:   "perdaganganTable",
		Spec: businessSpec("No", "Nama Usaha", "Jenis", "Omzet", "Lokasi", "Status"),
		Rows: []models.TableRow{
			{1, "Warung Berkah", "Retail", "Rp 350 juta", "Dusun Utara", "Aktif"},
			{2, "Resto Keluarga", "Kuliner", "Rp 420 juta", "Dusun Timur", "Aktif"},
			{3, "Jasa Bengkel", "Servis", "Rp 280 juta", "Dusun Selatan", "Aktif"},
			{4, "Toko Online", "E-commerce", "Rp 190 juta", "Dusun Barat", "Aktif"},
			{5, "Koperasi Desa", "Multipihak", "Rp 500 juta", "Pusat Desa", "Aktif"},
		},
	},
}

var staticBlocks = map[string]models.Block{
	"orgChart": {
		Heading: "Struktur Pemerintahan Desa",
		OrgLevels: [][]models.OrgUnit{
			{{Title: "Kepala Desa", Name: "Ahmad Sutanto"}},
			{{Title: "Sekretaris Desa", Name: "Siti Rahayu"}},
			{
				{Title: "Kaur Keuangan", Name: "Dodi Prakoso"},
				{Title: "Kaur Perencanaan", Name: "Nina Wati"},
				{Title: "Kaur Umum", Name: "Budi Santoso"},
			},
			{
				{Title: "Kasi Pemerintahan", Name: "Hendro Wijaya"},
				{Title: "Kasi Kesejahteraan", Name: "Rina Anggraini"},
				{Title: "Kasi Pelayanan", Name: "Irfan Hakim"},
			},
		},
	},
	"pendudukMap": {
		Heading:     "Peta Sebaran Penduduk Desa",
		Description: "Peta interaktif sebaran penduduk berdasarkan wilayah desa",
	},
	"infrastrukturMap": {
		Heading:     "Peta Infrastruktur Desa",
		Description: "Peta interaktif sebaran infrastruktur desa",
	},
	"topografiMap": {
		Heading:     "Peta Topografi Desa",
		Description: "Peta interaktif topografi wilayah desa",
	},
}
