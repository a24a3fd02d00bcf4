// Copyright 2022-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package loader ingests delimited text into a dated, typed series.
// Tokenizing, per-column type handling and nil-value masking are
// delegated to the dataframe-go CSV importer; this package owns what is
// calendar-specific: resolving which columns carry date information,
// building a Date per row, sorting the result chronologically, and
// assembling the remaining columns into a series payload.
package loader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
	"github.com/rs/zerolog/log"

	"github.com/temporalib/tempora/calendar"
	"github.com/temporalib/tempora/series"
)

// FieldConverter converts the raw text of one field to a number. It can
// double as a default supplier for empty fields.
type FieldConverter func(field string) (float64, error)

// Options configures LoadFromText. The zero value reads
// comma-separated text with '#' comments, a header row, and dates in a
// column named "date" or "dates".
type Options struct {
	// Freq is the frequency the date column is parsed at.
	Freq calendar.Frequency

	// Delimiter separates fields. ',' when unset.
	Delimiter rune

	// Comment starts a line comment. '#' when unset.
	Comment rune

	// SkipRows drops this many lines from the top of the source
	// before any parsing.
	SkipRows int

	// Names gives explicit field names. When set the source must not
	// contain a header row.
	Names []string

	// Converters maps a field name to a custom numeric conversion for
	// that column.
	Converters map[string]FieldConverter

	// DateConverter builds the row date from the date fields, in
	// DateColumns order. Mandatory when more than one date column is
	// used; the default parses a single field at Freq.
	DateConverter func(fields ...string) (calendar.Date, error)

	// MissingMarkers lists strings that mark a missing value in any
	// column (e.g. "NA", "missing").
	MissingMarkers []string

	// UseColumns restricts the payload to the named columns. Date
	// columns are resolved independently of this subset.
	UseColumns []string

	// DateColumns names the columns holding date information. When
	// empty, any column matching "date"/"dates" (case-insensitive,
	// optional quotes or leading underscore) is used.
	DateColumns []string

	// ExcludeList extends the default reserved-name list; matching
	// field names get an underscore appended.
	ExcludeList []string

	// DeleteChars is a set of characters removed from field names.
	DeleteChars string

	// FoldCase upper-cases field names so they compare
	// case-insensitively.
	FoldCase bool

	// ColumnTypes dictates the kind of named payload columns. Requires
	// explicit DateColumns.
	ColumnTypes map[string]series.ColumnKind
}

func (o *Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

func (o *Options) comment() rune {
	if o.Comment == 0 {
		return '#'
	}
	return o.Comment
}

func (o *Options) isMarker(s string) bool {
	s = strings.TrimSpace(s)
	for _, m := range o.MissingMarkers {
		if s == m {
			return true
		}
	}
	return false
}

// LoadFromText parses delimited text into a 2-D TimeSeries holding the
// numeric payload columns, sorted chronologically.
func LoadFromText(r io.Reader, opts Options) (*series.TimeSeries, error) {
	rs, err := LoadRecordsFromText(r, opts)
	if err != nil {
		return nil, err
	}
	return rs.Numeric()
}

// LoadFromFile is LoadFromText on a file path, transparently
// decompressing .gz, .bz2 and .lz4 sources.
func LoadFromFile(path string, opts Options) (*series.TimeSeries, error) {
	raw, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return LoadFromText(bytes.NewReader(raw), opts)
}

// LoadRecordsFromFile is LoadRecordsFromText on a file path,
// transparently decompressing .gz, .bz2 and .lz4 sources.
func LoadRecordsFromFile(path string, opts Options) (*series.RecordSeries, error) {
	raw, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return LoadRecordsFromText(bytes.NewReader(raw), opts)
}

// LoadRecordsFromText parses delimited text into a RecordSeries,
// keeping every non-date column in its own type. Rows are re-ordered
// chronologically; the identical permutation is applied to all columns.
func LoadRecordsFromText(r io.Reader, opts Options) (*series.RecordSeries, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	body := skipLines(raw, opts.SkipRows)

	rawNames := opts.Names
	if rawNames == nil {
		rawNames = peekHeader(body, &opts)
		if rawNames == nil {
			return nil, ErrEmptySource
		}
	}
	names := normalizeNames(rawNames, &opts)

	if opts.ColumnTypes != nil && len(opts.DateColumns) == 0 {
		return nil, ErrTypesWithoutDateColumns
	}
	dateIdx, err := resolveDateColumns(names, &opts)
	if err != nil {
		return nil, err
	}
	if len(dateIdx) > 1 && opts.DateConverter == nil {
		return nil, ErrDateConverterRequired
	}

	df, err := parseTable(body, rawNames, names, dateIdx, &opts)
	if err != nil {
		// parser-level failures surface unchanged
		return nil, err
	}
	nRows := df.NRows()
	if nRows == 0 {
		return nil, ErrEmptySource
	}

	dates, err := buildDates(df, dateIdx, &opts)
	if err != nil {
		return nil, err
	}

	perm := dates.ArgSort()
	sortedDates := make(calendar.DateSequence, nRows)
	for i, p := range perm {
		sortedDates[i] = dates[p]
	}

	isDate := make(map[int]bool, len(dateIdx))
	for _, c := range dateIdx {
		isDate[c] = true
	}

	columns := make([]series.Column, 0, len(names))
	for idx, name := range names {
		if idx >= len(df.Series) || isDate[idx] || !useColumn(name, &opts) {
			continue
		}
		columns = append(columns, extractColumn(df.Series[idx], name, perm, &opts))
	}

	log.Debug().
		Int("Rows", nRows).
		Int("Cols", len(columns)).
		Str("Freq", opts.Freq.String()).
		Msg("loaded dated records from text")

	return &series.RecordSeries{Dates: sortedDates, Columns: columns}, nil
}

func useColumn(name string, opts *Options) bool {
	if len(opts.UseColumns) == 0 {
		return true
	}
	for _, want := range opts.UseColumns {
		if strings.EqualFold(name, want) {
			return true
		}
	}
	return false
}

// skipLines drops the first n lines of raw.
func skipLines(raw []byte, n int) []byte {
	for ; n > 0; n-- {
		idx := bytes.IndexByte(raw, '\n')
		if idx < 0 {
			return nil
		}
		raw = raw[idx+1:]
	}
	return raw
}

// peekHeader reads the first non-blank, non-comment line to learn the
// raw field names ahead of the real parse.
func peekHeader(body []byte, opts *Options) []string {
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimRight(line, "\r")
		if idx := strings.IndexRune(line, opts.comment()); idx >= 0 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, string(opts.delimiter()))
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		return fields
	}
	return nil
}

// parseTable hands the body to the dataframe-go CSV importer with a
// type dictation assembled from the date columns, the user converters
// and any dictated column kinds.
func parseTable(body []byte, rawNames, names []string, dateIdx []int, opts *Options) (*dataframe.DataFrame, error) {
	dict := map[string]interface{}{}

	// date fields stay strings; the date converter owns them
	for _, c := range dateIdx {
		dict[rawNames[c]] = imports.Converter{
			ConcreteType: "",
			ConverterFunc: func(in interface{}) (interface{}, error) {
				return in, nil
			},
		}
	}

	for colName, fn := range opts.Converters {
		dict[rawNameFor(colName, rawNames, names)] = floatConverter(fn, opts)
	}

	for colName, kind := range opts.ColumnTypes {
		key := rawNameFor(colName, rawNames, names)
		if _, taken := dict[key]; taken {
			continue
		}
		dict[key] = kindConverter(kind, opts)
	}

	loadOpts := imports.CSVLoadOptions{
		Comma:            opts.delimiter(),
		Comment:          opts.comment(),
		TrimLeadingSpace: true,
		InferDataTypes:   true,
		DictateDataType:  dict,
	}
	if opts.Names != nil {
		loadOpts.Headers = names
	}
	if len(opts.MissingMarkers) > 0 {
		marker := opts.MissingMarkers[0]
		loadOpts.NilValue = &marker
	}

	return imports.LoadFromCSV(context.Background(), bytes.NewReader(body), loadOpts)
}

// rawNameFor maps a user-facing (normalized) column name back to the
// raw header key the parser sees.
func rawNameFor(want string, rawNames, names []string) string {
	for i, name := range names {
		if strings.EqualFold(name, want) && i < len(rawNames) {
			return rawNames[i]
		}
	}
	return want
}

func floatConverter(fn FieldConverter, opts *Options) imports.Converter {
	return imports.Converter{
		ConcreteType: float64(0),
		ConverterFunc: func(in interface{}) (interface{}, error) {
			s, _ := in.(string)
			if opts.isMarker(s) {
				return math.NaN(), nil
			}
			return fn(s)
		},
	}
}

func kindConverter(kind series.ColumnKind, opts *Options) imports.Converter {
	switch kind {
	case series.Int:
		return imports.Converter{
			ConcreteType: int64(0),
			ConverterFunc: func(in interface{}) (interface{}, error) {
				s, _ := in.(string)
				if opts.isMarker(s) {
					return nil, nil
				}
				return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			},
		}
	case series.String:
		return imports.Converter{
			ConcreteType: "",
			ConverterFunc: func(in interface{}) (interface{}, error) {
				return in, nil
			},
		}
	case series.Time:
		return imports.Converter{
			ConcreteType: time.Time{},
			ConverterFunc: func(in interface{}) (interface{}, error) {
				s, _ := in.(string)
				d, err := calendar.ParseDate(calendar.Secondly, s)
				if err != nil {
					return nil, err
				}
				return d.Time(), nil
			},
		}
	default:
		return imports.Converter{
			ConcreteType: float64(0),
			ConverterFunc: func(in interface{}) (interface{}, error) {
				s, _ := in.(string)
				if opts.isMarker(s) {
					return math.NaN(), nil
				}
				v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				if err != nil {
					return math.NaN(), nil
				}
				return v, nil
			},
		}
	}
}

// buildDates assembles one Date per row from the date columns.
func buildDates(df *dataframe.DataFrame, dateIdx []int, opts *Options) (calendar.DateSequence, error) {
	nRows := df.NRows()
	dates := make(calendar.DateSequence, nRows)
	for row := 0; row < nRows; row++ {
		fields := make([]string, len(dateIdx))
		for k, c := range dateIdx {
			fields[k] = fieldString(df.Series[c].Value(row))
		}

		var d calendar.Date
		var err error
		if opts.DateConverter != nil {
			d, err = opts.DateConverter(fields...)
		} else {
			d, err = calendar.ParseDate(opts.Freq, fields[0])
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		dates[row] = d
	}
	return dates, nil
}

func fieldString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	}
	return fmt.Sprint(v)
}

// extractColumn pulls one parsed column into a typed series.Column,
// applying the chronological permutation and the missing markers. A
// string column whose every present value parses as a number is
// promoted to Float, covering sources the importer left untyped.
func extractColumn(s dataframe.Series, name string, perm []int, opts *Options) series.Column {
	n := len(perm)
	vals := make([]interface{}, n)
	for i, p := range perm {
		vals[i] = s.Value(p)
	}

	col := series.Column{Name: name, Missing: make([]bool, n)}
	switch kind := sniffKind(vals, opts); kind {
	case series.Float:
		col.Kind = series.Float
		col.Floats = make([]float64, n)
		for i, v := range vals {
			f, ok := asFloat(v, opts)
			if !ok {
				col.Missing[i] = true
				col.Floats[i] = math.NaN()
				continue
			}
			col.Floats[i] = f
		}
	case series.Int:
		col.Kind = series.Int
		col.Ints = make([]int64, n)
		for i, v := range vals {
			iv, ok := v.(int64)
			if !ok {
				col.Missing[i] = true
				continue
			}
			col.Ints[i] = iv
		}
	case series.Time:
		col.Kind = series.Time
		col.Times = make([]time.Time, n)
		for i, v := range vals {
			tv, ok := v.(time.Time)
			if !ok {
				col.Missing[i] = true
				continue
			}
			col.Times[i] = tv
		}
	default:
		col.Kind = series.String
		col.Strings = make([]string, n)
		for i, v := range vals {
			sv, ok := v.(string)
			if !ok || opts.isMarker(sv) {
				col.Missing[i] = true
				continue
			}
			col.Strings[i] = sv
		}
	}
	return col
}

// sniffKind decides the column kind from parsed values.
func sniffKind(vals []interface{}, opts *Options) series.ColumnKind {
	allNumericText := true
	sawText := false
	for _, v := range vals {
		switch val := v.(type) {
		case float64:
			return series.Float
		case int64:
			return series.Int
		case time.Time:
			return series.Time
		case string:
			if opts.isMarker(val) || strings.TrimSpace(val) == "" {
				continue
			}
			sawText = true
			if _, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err != nil {
				allNumericText = false
			}
		}
	}
	if sawText && allNumericText {
		return series.Float
	}
	return series.String
}

func asFloat(v interface{}, opts *Options) (float64, bool) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) {
			return 0, false
		}
		return val, true
	case int64:
		return float64(val), true
	case string:
		if opts.isMarker(val) {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
