package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/avvvet/dsbuddy/internal/models"
)

// Loader reads tabular files from disk. Only CSV is recognized today.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the file at path into a Dataset. Any failure returns a
// *models.LoadError and no Dataset; callers must not contact the model
// gateway for intents that required one.
func (l *Loader) Load(path string) (*Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" {
		return nil, &models.LoadError{Path: path, Reason: fmt.Sprintf("unsupported file type: %s", ext)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &models.LoadError{Path: path, Reason: "cannot open file", Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &models.LoadError{Path: path, Reason: "file is empty"}
	}
	if err != nil {
		return nil, &models.LoadError{Path: path, Reason: "cannot read header", Err: err}
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.Reader enforces the header field count, so ragged
			// rows surface here as ErrFieldCount.
			return nil, &models.LoadError{Path: path, Reason: "malformed csv", Err: err}
		}
		rows = append(rows, record)
	}

	return &Dataset{Path: path, Columns: header, Rows: rows}, nil
}
