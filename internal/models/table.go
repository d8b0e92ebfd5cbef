package models

// TableRow is one fixed-width tuple handed to the table collaborator.
type TableRow []any

// TableLanguage carries the fixed Indonesian strings of the table widget.
type TableLanguage struct {
	Search       string        `json:"search"`
	LengthMenu   string        `json:"lengthMenu"`
	ZeroRecords  string        `json:"zeroRecords"`
	Info         string        `json:"info"`
	InfoEmpty    string        `json:"infoEmpty"`
	InfoFiltered string        `json:"infoFiltered"`
	Paginate     TablePaginate `json:"paginate"`
}

type TablePaginate struct {
	First    string `json:"first"`
	Last     string `json:"last"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
}

// IndonesianTableLanguage is the only locale the dashboard ships.
var IndonesianTableLanguage = TableLanguage{
	Search:       "Cari:",
	LengthMenu:   "Tampilkan _MENU_ data per halaman",
	ZeroRecords:  "Tidak ada data yang cocok",
	Info:         "Menampilkan _START_ sampai _END_ dari _TOTAL_ data",
	InfoEmpty:    "Tidak ada data yang tersedia",
	InfoFiltered: "(difilter dari _MAX_ total data)",
	Paginate: TablePaginate{
		First:    "Pertama",
		Last:     "Terakhir",
		Next:     "Selanjutnya",
		Previous: "Sebelumnya",
	},
}

// TableSpec is the column and localization configuration of a table widget.
type TableSpec struct {
	Columns    []string      `json:"columns"`
	Buttons    []string      `json:"buttons"`
	Responsive bool          `json:"responsive"`
	Language   TableLanguage `json:"language"`
}

// StaticTable is a table whose rows never change.
type StaticTable struct {
	ID   string     `json:"id"`
	Spec TableSpec  `json:"spec"`
	Rows []TableRow `json:"rows"`
}
