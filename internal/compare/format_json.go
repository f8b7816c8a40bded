package compare

import "encoding/json"

// JSONFormatter renders a comparison set as indented JSON.
type JSONFormatter struct{}

// Format marshals the set.
func (jf *JSONFormatter) Format(set *ComparisonSet) (string, error) {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
