// Package output renders scan reports as text, JSON, or YAML.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xlscan/pkg/xlscan/models"
	"gopkg.in/yaml.v3"
)

// ToJSON serializes a report to JSON.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	return marshalJSON(report, pretty)
}

// SheetToJSON serializes a single sheet report to JSON.
func SheetToJSON(sheet *models.SheetReport, pretty bool) ([]byte, error) {
	return marshalJSON(sheet, pretty)
}

// ToYAML serializes a report to YAML.
func ToYAML(report *models.Report) ([]byte, error) {
	return yaml.Marshal(report)
}

func marshalJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
