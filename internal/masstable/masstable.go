// Package masstable parses belief-function fusion results into mass tables.
//
// A result file holds one row per line in the form
//
//	<time_index>;<category_label>;<mass_value>
//
// where time indices start at 1. A Table maps every category label to its
// mass value at each time step, with absent pairs left at zero.
package masstable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const fieldSeparator = ";"

// MaxTime is the largest accepted time index. Tables are allocated up to the
// largest index, so rows past it are rejected as syntax errors.
const MaxTime = 1_000_000

var (
	// ErrEmpty is returned when a table would have no rows.
	ErrEmpty = errors.New("no mass rows found")
	// ErrUnknownLabel is returned when projected rows mention a category the
	// base table does not have.
	ErrUnknownLabel = errors.New("unknown category label")
	// ErrTimeOutOfRange is returned when projected rows fall past the end of
	// the base table.
	ErrTimeOutOfRange = errors.New("time index out of range")
	// ErrWindow is returned when a window starts past the last time step.
	ErrWindow = errors.New("window starts past the last time step")
)

// SyntaxError reports a malformed row together with its 1-based line number.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Record is a single parsed row.
type Record struct {
	Time  int
	Label string
	Mass  float64
}

// ReadRecords parses every non-blank line of r. Fields after the third are
// ignored.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		rec, err := parseRecord(text)
		if err != nil {
			return nil, &SyntaxError{Line: line, Err: err}
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mass rows: %w", err)
	}
	return records, nil
}

func parseRecord(text string) (Record, error) {
	fields := strings.Split(text, fieldSeparator)
	if len(fields) < 3 {
		return Record{}, fmt.Errorf("expected 3 fields separated by %q, got %d", fieldSeparator, len(fields))
	}

	t, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Record{}, fmt.Errorf("invalid time index %q", fields[0])
	}
	if t < 1 {
		return Record{}, fmt.Errorf("time index must be at least 1, got %d", t)
	}
	if t > MaxTime {
		return Record{}, fmt.Errorf("time index %d exceeds the limit of %d", t, MaxTime)
	}

	label := strings.TrimSpace(fields[1])
	if label == "" {
		return Record{}, errors.New("empty category label")
	}

	massText := strings.TrimSpace(fields[2])
	mass, err := strconv.ParseFloat(massText, 64)
	if err != nil || math.IsNaN(mass) || math.IsInf(mass, 0) || isHexFloat(massText) {
		return Record{}, fmt.Errorf("invalid mass value %q", fields[2])
	}

	return Record{Time: t, Label: label, Mass: mass}, nil
}

func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// Table holds one mass sequence per category label.
type Table struct {
	labels []string
	values map[string][]float64
	length int
}

// New builds a table whose categories are the labels of records in order of
// first appearance and whose length is the largest time index.
func New(records []Record) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	var labels []string
	seen := make(map[string]struct{})
	length := 0
	for _, rec := range records {
		if _, ok := seen[rec.Label]; !ok {
			seen[rec.Label] = struct{}{}
			labels = append(labels, rec.Label)
		}
		if rec.Time > length {
			length = rec.Time
		}
	}

	t := newEmpty(labels, length)
	for _, rec := range records {
		t.values[rec.Label][rec.Time-1] = rec.Mass
	}
	return t, nil
}

func newEmpty(labels []string, length int) *Table {
	values := make(map[string][]float64, len(labels))
	for _, l := range labels {
		values[l] = make([]float64, length)
	}
	return &Table{labels: labels, values: values, length: length}
}

// Project builds a second table with the same categories and length as t and
// fills it from records.
func (t *Table) Project(records []Record) (*Table, error) {
	out := newEmpty(t.labels, t.length)
	for _, rec := range records {
		series, ok := out.values[rec.Label]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownLabel, rec.Label)
		}
		if rec.Time > t.length {
			return nil, fmt.Errorf("%w: %d > %d", ErrTimeOutOfRange, rec.Time, t.length)
		}
		series[rec.Time-1] = rec.Mass
	}
	return out, nil
}

// Labels returns the category labels in plotting order.
func (t *Table) Labels() []string {
	return append([]string(nil), t.labels...)
}

// Len returns the number of time steps.
func (t *Table) Len() int {
	return t.length
}

// Values returns the mass sequence of label, or nil when label is unknown.
func (t *Table) Values(label string) []float64 {
	return t.values[label]
}

// Window returns a view of t starting at the 0-based time step begin.
func (t *Table) Window(begin int) (*Table, error) {
	if begin < 0 || begin >= t.length {
		return nil, fmt.Errorf("%w: begin %d, length %d", ErrWindow, begin, t.length)
	}
	if begin == 0 {
		return t, nil
	}
	out := &Table{labels: t.labels, values: make(map[string][]float64, len(t.labels)), length: t.length - begin}
	for _, l := range t.labels {
		out.values[l] = t.values[l][begin:]
	}
	return out, nil
}
