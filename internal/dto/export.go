package dto

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"
)

type ExportQuery struct {
	Format string `validate:"required,oneof=csv xlsx"`
}

// ExportFile is a rendered table download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
