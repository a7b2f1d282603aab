package models

// FileFormat identifies the content-parsing strategy for a data file.
type FileFormat string

const (
	FileFormatCSV         FileFormat = "csv"
	FileFormatTSV         FileFormat = "tsv"
	FileFormatJSON        FileFormat = "json"
	FileFormatUnsupported FileFormat = "unsupported"
)

// Delimiter returns the cell delimiter for delimited formats, or 0 for
// formats that are not delimiter-based.
func (f FileFormat) Delimiter() rune {
	switch f {
	case FileFormatCSV:
		return ','
	case FileFormatTSV:
		return '\t'
	default:
		return 0
	}
}
