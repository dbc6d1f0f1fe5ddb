package typst

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FromJSON decodes a single JSON document and re-encodes it as a Typst value
// literal, mirroring Typst's json() loader. Numbers keep their exact digits;
// data after the first document is an error.
func FromJSON(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("json input: %w", err)
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return "", errors.New("json input: data after top-level document")
	}
	return MarshalValue(v)
}

// FromYAML decodes a YAML document and re-encodes it as a Typst value
// literal, mirroring Typst's yaml() loader.
func FromYAML(data []byte) (string, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return "", fmt.Errorf("yaml input: %w", err)
	}
	return MarshalValue(v)
}

// RowsFromCSV reads CSV records from r into rows of [Text] cells ready for
// [TableContent]. Records may differ in length; quoted fields are honored.
// Every cell is text, the same convention Typst's csv() loader uses.
func RowsFromCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv input: %w", err)
	}
	rows := make([]Row, len(records))
	for i, record := range records {
		row := make(Row, len(record))
		for j, field := range record {
			row[j] = Text(field)
		}
		rows[i] = row
	}
	return rows, nil
}
