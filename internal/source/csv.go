package source

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"studentsignal/pkg/models"
)

// CSVFile loads records from a CSV export with a header row.
//
// Recognised columns (case-insensitive): id, name, amount, deadline, type,
// category, description, eligibility (";"-separated), renewable,
// application_required, image_url. Rows without a name are skipped.
type CSVFile struct {
	Path string
}

func NewCSVFile(path string) *CSVFile {
	return &CSVFile{Path: path}
}

func (c *CSVFile) Name() string { return "csv:" + c.Path }

func (c *CSVFile) Load(ctx context.Context) ([]models.SourceRecord, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "open %s", c.Path)
	}
	defer f.Close()

	records, err := readCSV(ctx, f)
	if err != nil {
		return nil, eris.Wrapf(err, "read %s", c.Path)
	}
	return records, nil
}

func readCSV(ctx context.Context, r io.Reader) ([]models.SourceRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := readHeader(cr)
	if err != nil {
		return nil, eris.Wrap(err, "header")
	}

	var out []models.SourceRecord
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, eris.Wrapf(err, "line %d", line)
		}
		if len(row) == 0 {
			continue
		}

		name := valueAt(header, row, "name")
		if name == "" {
			continue
		}

		renewable, err := parseBool(valueAt(header, row, "renewable"))
		if err != nil {
			return nil, eris.Wrapf(err, "line %d: renewable", line)
		}
		appRequired, err := parseBool(valueAt(header, row, "application_required"))
		if err != nil {
			return nil, eris.Wrapf(err, "line %d: application_required", line)
		}

		out = append(out, models.SourceRecord{
			ID:                  valueAt(header, row, "id"),
			Name:                name,
			Amount:              valueAt(header, row, "amount"),
			Deadline:            valueAt(header, row, "deadline"),
			Type:                valueAt(header, row, "type"),
			Category:            valueAt(header, row, "category"),
			Description:         valueAt(header, row, "description"),
			Eligibility:         splitList(valueAt(header, row, "eligibility")),
			Renewable:           renewable,
			ApplicationRequired: appRequired,
			ImageURL:            valueAt(header, row, "image_url"),
		})
	}
	return out, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseBool treats an empty cell as false.
func parseBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	switch strings.ToLower(raw) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
