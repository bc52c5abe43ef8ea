package source

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"studentsignal/pkg/models"
)

// JSONFile loads a JSON array of records shaped like models.SourceRecord.
type JSONFile struct {
	Path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{Path: path}
}

func (j *JSONFile) Name() string { return "json:" + j.Path }

func (j *JSONFile) Load(ctx context.Context) ([]models.SourceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(j.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "read %s", j.Path)
	}

	var records []models.SourceRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, eris.Wrapf(err, "decode %s", j.Path)
	}
	for i := range records {
		if records[i].Eligibility == nil {
			records[i].Eligibility = []string{}
		}
	}
	return records, nil
}
