package out

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"symptrack/internal/modules/journal/domain"
	journalout "symptrack/internal/modules/journal/port/out"
	apperrors "symptrack/internal/platform/errors"
)

type CSVRecordStore struct {
	path string
}

func NewCSVRecordStore(path string) journalout.RecordStore {
	return &CSVRecordStore{path: path}
}

func (s *CSVRecordStore) Initialize(_ context.Context) error {
	info, err := os.Stat(s.path)
	switch {
	case err == nil && info.Size() > 0:
		return nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return apperrors.WrapIO("stat", s.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperrors.WrapIO("create directory for", s.path, err)
	}
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return apperrors.WrapIO("create", s.path, err)
	}
	writer := csv.NewWriter(file)
	if err := writer.Write(domain.Columns); err != nil {
		_ = file.Close()
		return apperrors.WrapIO("write header to", s.path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return apperrors.WrapIO("write header to", s.path, err)
	}
	return apperrors.WrapIO("close", s.path, file.Close())
}

func (s *CSVRecordStore) Append(ctx context.Context, record domain.Record) (int, error) {
	if err := s.Initialize(ctx); err != nil {
		return 0, err
	}
	existing, err := s.countRows()
	if err != nil {
		return 0, err
	}
	newline, err := s.missingTrailingNewline()
	if err != nil {
		return 0, err
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, apperrors.WrapIO("open", s.path, err)
	}
	if newline {
		if _, err := io.WriteString(file, "\n"); err != nil {
			_ = file.Close()
			return 0, apperrors.WrapIO("append to", s.path, err)
		}
	}
	writer := csv.NewWriter(file)
	if err := writer.Write(record.Values()); err != nil {
		_ = file.Close()
		return 0, apperrors.WrapIO("append to", s.path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return 0, apperrors.WrapIO("append to", s.path, err)
	}
	if err := file.Close(); err != nil {
		return 0, apperrors.WrapIO("close", s.path, err)
	}
	return existing + 1, nil
}

func (s *CSVRecordStore) LoadAll(_ context.Context) ([]domain.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Record{}, nil
		}
		return nil, apperrors.WrapIO("open", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Record{}, nil
	}
	if err != nil {
		return nil, s.corrupt(0, err)
	}
	if err := checkHeader(header); err != nil {
		return nil, &apperrors.CorruptDataError{Path: s.path, Row: 0, Line: 1, Reason: err.Error()}
	}

	records := []domain.Record{}
	for row := 1; ; row++ {
		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, s.corrupt(row, err)
		}
		line, _ := reader.FieldPos(0)
		if len(values) != len(domain.Columns) {
			return nil, &apperrors.CorruptDataError{
				Path:   s.path,
				Row:    row,
				Line:   line,
				Reason: fmt.Sprintf("expected %d columns, found %d", len(domain.Columns), len(values)),
			}
		}
		record, err := domain.RecordFromValues(values)
		if err != nil {
			return nil, &apperrors.CorruptDataError{Path: s.path, Row: row, Line: line, Reason: err.Error()}
		}
		records = append(records, record)
	}
}

// countRows counts data rows without decoding them, so a damaged earlier row
// does not block new entries.
func (s *CSVRecordStore) countRows() (int, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return 0, apperrors.WrapIO("open", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows := 0
	for {
		_, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if err != nil && !errors.As(err, &parseErr) {
			return 0, apperrors.WrapIO("read", s.path, err)
		}
		rows++
	}
	if rows == 0 {
		return 0, nil
	}
	return rows - 1, nil
}

func (s *CSVRecordStore) corrupt(row int, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &apperrors.CorruptDataError{Path: s.path, Row: row, Line: parseErr.Line, Reason: parseErr.Err.Error()}
	}
	return apperrors.WrapIO("read", s.path, err)
}

func (s *CSVRecordStore) missingTrailingNewline() (bool, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return false, apperrors.WrapIO("open", s.path, err)
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return false, apperrors.WrapIO("stat", s.path, err)
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil {
		return false, apperrors.WrapIO("read", s.path, err)
	}
	return last[0] != '\n', nil
}

func checkHeader(header []string) error {
	if len(header) != len(domain.Columns) {
		return fmt.Errorf("expected %d header columns, found %d", len(domain.Columns), len(header))
	}
	for i, name := range header {
		if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) != domain.Columns[i] {
			return fmt.Errorf("header column %d is %q, expected %q", i+1, name, domain.Columns[i])
		}
	}
	return nil
}
