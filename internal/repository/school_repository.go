package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/saar-edu/aulas-dadas/internal/model"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// Catalog column names.
const (
	ColumnID               = "id"
	ColumnName             = "nome"
	ColumnMunicipality     = "municipio"
	ColumnRegion           = "regional"
	ColumnPrimaryEducation = "ensino_fundamental"
)

var requiredColumns = []string{ColumnID, ColumnName, ColumnMunicipality, ColumnRegion, ColumnPrimaryEducation}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SchoolRepository loads the schools catalog from a .csv or .xlsx file.
type SchoolRepository struct {
	fs   afero.Fs
	path string
}

// NewSchoolRepository creates a new SchoolRepository reading path from fsys.
func NewSchoolRepository(fsys afero.Fs, path string) *SchoolRepository {
	return &SchoolRepository{fs: fsys, path: path}
}

// Path returns the catalog source location.
func (r *SchoolRepository) Path() string {
	return r.path
}

// Load reads the catalog and returns, in source order, every school flagged
// as offering primary education. Any malformed row fails the whole load.
func (r *SchoolRepository) Load(ctx context.Context) ([]model.School, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, r.path)
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(r.path)) {
	case ".xlsx":
		rows, err = readXLSX(data)
	default:
		rows, err = readCSV(data)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return parseSchools(r.path, rows)
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// readXLSX returns the rows of the workbook's first sheet.
func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	return f.GetRows(sheets[0])
}

func parseSchools(path string, rows [][]string) ([]model.School, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, path)
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &MissingColumnError{Path: path, Column: col}
		}
	}

	field := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	schools := make([]model.School, 0, len(rows)-1)
	for n, row := range rows[1:] {
		var classes []model.ClassLabel
		if strings.EqualFold(strings.TrimSpace(field(row, ColumnPrimaryEducation)), "true") {
			classes = model.PrimaryGrades()
		}
		if len(classes) == 0 {
			continue
		}

		rawID := field(row, ColumnID)
		id, err := strconv.Atoi(strings.TrimSpace(rawID))
		if err != nil {
			return nil, &ParseError{Path: path, Row: n + 2, Column: ColumnID, Value: rawID, Err: err}
		}

		schools = append(schools, model.School{
			ID:           id,
			Name:         field(row, ColumnName),
			Municipality: field(row, ColumnMunicipality),
			Region:       field(row, ColumnRegion),
			Classes:      classes,
		})
	}
	return schools, nil
}
