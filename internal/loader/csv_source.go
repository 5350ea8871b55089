package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const utf8BOM = "\ufeff"

type CSVSource struct {
	Path   string
	Column string
}

func NewCSVSource(path, column string) *CSVSource {
	return &CSVSource{Path: path, Column: column}
}

func (s *CSVSource) Name() string {
	return filepath.Base(s.Path)
}

func (s *CSVSource) Comments(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingSourceError{Name: s.Name(), Err: err}
		}
		return nil, fmt.Errorf("[CSVSource] failed to open %s: %w", s.Path, err)
	}
	defer f.Close()

	return s.read(ctx, f)
}

func (s *CSVSource) read(ctx context.Context, r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	// A short row has an empty comment; a row wider than the header is an error.
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("no columns to parse from file")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read headers: %w", err)
	}

	idx := columnIndex(headers, s.Column)
	if idx < 0 {
		return nil, &MissingColumnError{Name: s.Name(), Column: s.Column}
	}

	comments := make([]string, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(record) > len(headers) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("error tokenizing data: expected %d fields in line %d, saw %d",
				len(headers), line, len(record))
		}

		if idx < len(record) {
			comments = append(comments, record[idx])
		} else {
			comments = append(comments, "")
		}
	}

	return comments, nil
}

func columnIndex(headers []string, column string) int {
	for i, h := range headers {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		if h == column {
			return i
		}
	}
	return -1
}
