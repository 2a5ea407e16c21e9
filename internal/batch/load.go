// Package batch loads soil samples from files and classifies them in bulk.
package batch

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Veraticus/aashto-classifier/internal/common"
	"github.com/Veraticus/aashto-classifier/internal/model"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// column identifies a sample field in a CSV header.
type column int

const (
	colID column = iota
	colLabel
	colLL
	colPL
	colNP
	colPass10
	colPass40
	colPass200
)

var headerAliases = map[string]column{
	"id":            colID,
	"sample":        colID,
	"label":         colLabel,
	"description":   colLabel,
	"ll":            colLL,
	"liquid_limit":  colLL,
	"pl":            colPL,
	"plastic_limit": colPL,
	"np":            colNP,
	"non_plastic":   colNP,
	"pass10":        colPass10,
	"no10":          colPass10,
	"passing_no10":  colPass10,
	"pass40":        colPass40,
	"no40":          colPass40,
	"passing_no40":  colPass40,
	"pass200":       colPass200,
	"no200":         colPass200,
	"passing_no200": colPass200,
}

var requiredColumns = []struct {
	name string
	col  column
}{
	{"pass10", colPass10},
	{"pass40", colPass40},
	{"pass200", colPass200},
}

// document is the envelope accepted by JSON and YAML inputs in addition to a bare list.
type document struct {
	Samples []model.Sample `json:"samples" yaml:"samples"`
}

// Load reads samples from path, choosing the decoder by file extension.
func Load(path string) ([]model.Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	source := filepath.Base(path)
	var samples []model.Sample
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		samples, err = ParseCSV(bytes.NewReader(data), source)
	case ".json":
		samples, err = ParseJSON(data, source)
	case ".yaml", ".yml":
		samples, err = ParseYAML(data, source)
	default:
		return nil, fmt.Errorf("%w: %s (want .csv, .json, .yaml)", common.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: %w", source, common.ErrNoSamples)
	}
	return samples, nil
}

// ParseCSV reads samples from CSV with a header row. Column names are matched
// case-insensitively; liquid limit, plastic limit and the non-plastic flag
// may be omitted and default to zero and false.
func ParseCSV(r io.Reader, source string) ([]model.Sample, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read header: %w", source, err)
	}

	index := make(map[column]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		key = strings.NewReplacer(".", "", " ", "_", "-", "_").Replace(key)
		if col, ok := headerAliases[key]; ok {
			index[col] = i
		}
	}
	for _, req := range requiredColumns {
		if _, ok := index[req.col]; !ok {
			return nil, fmt.Errorf("%w: %s: missing column %s", common.ErrInvalidInput, source, req.name)
		}
	}

	var samples []model.Sample
	row := 1
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		row++
		if readErr != nil {
			return nil, fmt.Errorf("%s row %d: %w", source, row, readErr)
		}
		if blank(record) {
			continue
		}

		s, parseErr := parseRecord(record, index, source, row)
		if parseErr != nil {
			return nil, parseErr
		}
		samples = append(samples, s)
	}

	return withIDs(samples), nil
}

// ParseJSON reads samples from a JSON list or a {"samples": [...]} document.
func ParseJSON(data []byte, source string) ([]model.Sample, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var samples []model.Sample
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &samples); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidInput, source, err)
		}
		return withIDs(samples), nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidInput, source, err)
	}
	return withIDs(doc.Samples), nil
}

// ParseYAML reads samples from a YAML sequence or a mapping with a samples key.
func ParseYAML(data []byte, source string) ([]model.Sample, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidInput, source, err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	var samples []model.Sample
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&samples); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidInput, source, err)
		}
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", common.ErrInvalidInput, source, err)
		}
		samples = doc.Samples
	default:
		return nil, fmt.Errorf("%w: %s: expected a list of samples", common.ErrInvalidInput, source)
	}

	return withIDs(samples), nil
}

func parseRecord(record []string, index map[column]int, source string, row int) (model.Sample, error) {
	field := func(col column) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	s := model.Sample{
		ID:    field(colID),
		Label: field(colLabel),
	}

	numbers := []struct {
		dst  *float64
		name string
		col  column
	}{
		{&s.LiquidLimit, "ll", colLL},
		{&s.PlasticLimit, "pl", colPL},
		{&s.PassingNo10, "pass10", colPass10},
		{&s.PassingNo40, "pass40", colPass40},
		{&s.PassingNo200, "pass200", colPass200},
	}
	for _, n := range numbers {
		raw := field(n.col)
		if raw == "" {
			continue
		}
		// Laboratory sheets often record "N.P." in the limit columns.
		if (n.col == colLL || n.col == colPL) && isNonPlasticMark(raw) {
			s.NonPlastic = true
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return model.Sample{}, &common.InputError{Source: source, Row: row, Field: n.name, Value: raw}
		}
		*n.dst = v
	}

	if raw := field(colNP); raw != "" {
		np, err := parseFlag(raw)
		if err != nil {
			return model.Sample{}, &common.InputError{Source: source, Row: row, Field: "np", Value: raw}
		}
		s.NonPlastic = s.NonPlastic || np
	}

	return s, nil
}

func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "t", "yes", "y", "1", "x":
		return true, nil
	case "false", "f", "no", "n", "0", "-":
		return false, nil
	}
	if isNonPlasticMark(raw) {
		return true, nil
	}
	return false, fmt.Errorf("not a boolean: %q", raw)
}

func isNonPlasticMark(raw string) bool {
	switch strings.ToLower(strings.ReplaceAll(raw, " ", "")) {
	case "np", "n.p", "n.p.":
		return true
	}
	return false
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func withIDs(samples []model.Sample) []model.Sample {
	for i := range samples {
		if samples[i].ID == "" {
			samples[i].ID = uuid.NewString()
		}
	}
	return samples
}
