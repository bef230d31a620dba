// Package output serializes extraction results.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
)

// ToJSON encodes v as JSON without escaping HTML characters.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFactsCSV writes lesson facts as CSV with a header row.
func WriteFactsCSV(w io.Writer, facts []models.LessonFact) error {
	if facts == nil {
		facts = []models.LessonFact{}
	}
	if err := gocsv.Marshal(&facts, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
