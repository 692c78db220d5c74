// Package workbook reads and writes the xlsx workbooks at the system
// boundary: the uploaded input holding the source and target sheets, and
// the exported validation report.
package workbook

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/crosscheck-io/crosscheck/pkg/dataset"
	"github.com/crosscheck-io/crosscheck/pkg/errors"
)

// Read opens an xlsx workbook and converts every sheet into a dataset. The
// first row of each sheet is its header; every cell below is coerced to
// text, number, or missing, then leading-zero normalized.
func Read(path string) (map[string]*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	defer f.Close()

	sheets := make(map[string]*dataset.Dataset)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, errors.WrapParse("xlsx", path, err)
		}
		d, err := fromRows(name, rows)
		if err != nil {
			return nil, err
		}
		sheets[name] = d.Normalize()
	}
	return sheets, nil
}

// ReadFrom stages the stream to a temporary file, parses it, and removes
// the staging file unconditionally - parse success or failure.
func ReadFrom(r io.Reader) (map[string]*dataset.Dataset, error) {
	tmp, err := os.CreateTemp("", "crosscheck-*.xlsx")
	if err != nil {
		return nil, errors.WrapIO("create", "", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	_, copyErr := io.Copy(tmp, r)
	if err := tmp.Close(); copyErr == nil {
		copyErr = err
	}
	if copyErr != nil {
		return nil, errors.WrapIO("write", path, copyErr)
	}

	return Read(path)
}

// Pair extracts the source and target datasets from a parsed workbook.
// Missing sheets are fatal and reported together.
func Pair(sheets map[string]*dataset.Dataset, workbook, sourceSheet, targetSheet string) (*dataset.Dataset, *dataset.Dataset, error) {
	var missing []string
	source, ok := sheets[sourceSheet]
	if !ok {
		missing = append(missing, sourceSheet)
	}
	target, ok := sheets[targetSheet]
	if !ok {
		missing = append(missing, targetSheet)
	}
	if len(missing) > 0 {
		return nil, nil, errors.NewMissingSheetError(workbook, missing...)
	}
	return source, target, nil
}

// fromRows builds a dataset from raw sheet rows. Rows shorter than the
// header are padded with missing cells; extra trailing cells are dropped.
func fromRows(name string, rows [][]string) (*dataset.Dataset, error) {
	if len(rows) == 0 {
		return dataset.New(name, nil), nil
	}

	d := dataset.New(name, rows[0])
	width := len(rows[0])
	for _, raw := range rows[1:] {
		values := make([]dataset.Value, width)
		for i := 0; i < width; i++ {
			if i < len(raw) {
				values[i] = coerce(raw[i])
			} else {
				values[i] = dataset.Missing
			}
		}
		if err := d.AppendRow(values...); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// coerce converts one raw cell. Digit strings with leading zeros stay
// textual here; dataset.Normalize decides their numeric value.
func coerce(s string) dataset.Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return dataset.Missing
	}
	if hasLeadingZero(trimmed) {
		return dataset.Text(s)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return dataset.Number(f)
	}
	return dataset.Text(s)
}

func hasLeadingZero(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
