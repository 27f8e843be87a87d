// Package harness replays golden (input, expected) pairs through a converter
// and reports which rows disagree.
package harness

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SscSPs/cheque_amount_app/internal/apperrors"
)

// Case is one golden row.
type Case struct {
	Line     int    // 1-based line in the fixture file
	Input    string // Raw text fed to the converter, whitespace preserved
	Expected string
}

var header = []string{"input", "expected"}

// LoadFixtureFile opens path and parses it with LoadFixture.
func LoadFixtureFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("fixture %s: %w", path, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open fixture %s: %w", path, err)
	}
	defer f.Close()

	cases, err := LoadFixture(f)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return cases, nil
}

// LoadFixture reads CSV rows of the form input,expected. The first record must
// be the header "input,expected"; lines starting with # are comments. Quote an
// input that contains commas or leading spaces.
func LoadFixture(r io.Reader) ([]Case, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1

	var cases []Case
	sawHeader := false
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFixture, err)
		}
		line, _ := reader.FieldPos(0)

		if !sawHeader {
			if len(record) != len(header) || strings.TrimSpace(record[0]) != header[0] || strings.TrimSpace(record[1]) != header[1] {
				return nil, fmt.Errorf("%w: line %d: expected header %q", apperrors.ErrFixture, line, strings.Join(header, ","))
			}
			sawHeader = true
			continue
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("%w: line %d: expected %d fields, got %d", apperrors.ErrFixture, line, len(header), len(record))
		}
		cases = append(cases, Case{Line: line, Input: record[0], Expected: record[1]})
	}

	if !sawHeader {
		return nil, fmt.Errorf("%w: empty fixture", apperrors.ErrFixture)
	}
	return cases, nil
}
