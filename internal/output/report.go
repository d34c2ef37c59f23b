package output

import (
	"github.com/fincalc/fincalc/internal/domain"
)

// Formatter renders loan results in one output format.
type Formatter interface {
	// Format renders the results to a byte slice ready for stdout or a file.
	Format(results *domain.LoanResults) ([]byte, error)
	// Name is the format name used on the command line.
	Name() string
}

// GetFormatterByName returns the formatter registered under the given name,
// or nil when the name is unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console", "":
		return &ConsoleFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "xlsx":
		return &XLSXFormatter{}
	case "pdf":
		return &PDFFormatter{}
	default:
		return nil
	}
}

// FormatterNames lists the registered format names for help text.
func FormatterNames() []string {
	return []string{"console", "csv", "json", "xlsx", "pdf"}
}
