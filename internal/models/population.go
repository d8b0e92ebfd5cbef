package models

// PopulationRecord is one synthesized row of the sample population table.
type PopulationRecord struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	Age           int    `json:"age"`
	Education     string `json:"education"`
	Occupation    string `json:"occupation"`
	Income        string `json:"income"`
	MaritalStatus string `json:"maritalStatus"`
}

// PopulationColumns are the headers of the population table.
var PopulationColumns = []string{
	"No", "Nama", "Jenis Kelamin", "Usia", "Pendidikan", "Pekerjaan", "Penghasilan", "Status",
}

// Row converts the record to the tuple layout of the population table.
func (r PopulationRecord) Row() TableRow {
	return TableRow{r.Index, r.Name, r.Gender, r.Age, r.Education, r.Occupation, r.Income, r.MaritalStatus}
}

func PopulationRows(records []PopulationRecord) []TableRow {
	rows := make([]TableRow, len(records))
	for i, r := range records {
		rows[i] = r.Row()
	}
	return rows
}
