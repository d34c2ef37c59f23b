package output

import (
	"encoding/json"

	"github.com/fincalc/fincalc/internal/domain"
)

// JSONFormatter marshals the full results, schedule included.
type JSONFormatter struct {
	Pretty bool
}

// Name implements Formatter.
func (jf *JSONFormatter) Name() string { return "json" }

// Format implements Formatter.
func (jf *JSONFormatter) Format(results *domain.LoanResults) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(results, "", "  ")
	}
	return json.Marshal(results)
}
