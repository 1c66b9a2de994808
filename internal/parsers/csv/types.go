package csv

// Delimiter represents a field delimiter
type Delimiter rune

const (
	DelimiterComma     Delimiter = ','
	DelimiterSemicolon Delimiter = ';'
	DelimiterTab       Delimiter = '\t'
)

// Options represents CSV parser options
type Options struct {
	Delimiter Delimiter `json:"delimiter,omitempty"`
	QuoteChar rune      `json:"quoteChar,omitempty"`
}

// DefaultOptions returns default CSV parser options
func DefaultOptions() Options {
	return Options{
		Delimiter: DelimiterComma,
		QuoteChar: '"',
	}
}

// Row is one tokenized data line
type Row struct {
	// Line is the 1-based line number in the source text
	Line   int
	Fields []string
}
