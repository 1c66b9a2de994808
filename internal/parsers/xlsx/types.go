package xlsx

// Options represents XLSX parser options
type Options struct {
	// Sheet is the sheet name to read; empty means SheetIndex
	Sheet string `json:"sheet,omitempty"`
	// SheetIndex is the 0-based sheet index (default: first sheet)
	SheetIndex int `json:"sheetIndex,omitempty"`
}
