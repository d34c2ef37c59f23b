package compare

import "encoding/json"

// JSONFormatter formats comparison results as JSON.
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output for the whole comparison set.
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	var (
		data []byte
		err  error
	)
	if jf.Pretty {
		data, err = json.MarshalIndent(compSet, "", "  ")
	} else {
		data, err = json.Marshal(compSet)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
