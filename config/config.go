// SPDX-License-Identifier: MIT

// Package config loads grid plans: YAML files describing which columns of a
// data file to vary, which to restrict to observed values, and where to read
// and write the data.
//
//	input:  data.csv
//	output: grid.parquet
//	range:  [dose, age]
//	obs_by: [age]
//	length_out: 10
//	row_order: first_fastest
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/basegrid/grid"
)

var (
	// ErrInvalidPlan indicates a plan that fails validation.
	ErrInvalidPlan = errors.New("config: invalid plan")

	// ErrUnknownFormat indicates a file whose format cannot be determined.
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// Format is a supported data file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// Row order spellings accepted in plans.
const (
	RowOrderFirstFastest = "first_fastest"
	RowOrderLastFastest  = "last_fastest"
)

// Plan is the root configuration structure.
type Plan struct {
	Input        string   `yaml:"input"`
	InputFormat  Format   `yaml:"input_format,omitempty"` // default: from extension
	Output       string   `yaml:"output"`
	OutputFormat Format   `yaml:"output_format,omitempty"` // default: from extension
	Range        []string `yaml:"range,omitempty"`
	ObsBy        []string `yaml:"obs_by,omitempty"`
	LengthOut    int      `yaml:"length_out"`
	RowOrder     string   `yaml:"row_order,omitempty"`
	MaxRows      int      `yaml:"max_rows,omitempty"`
}

// Default returns a plan with default settings and no files.
func Default() Plan {
	return Plan{
		LengthOut: grid.DefaultLengthOut,
		RowOrder:  RowOrderFirstFastest,
	}
}

// Load reads and parses a plan file.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read plan: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default(). Unknown keys are rejected.
func Parse(data []byte) (Plan, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Plan{}, fmt.Errorf("parse plan: %w", err)
	}

	return p, nil
}

// Validate checks the settings that do not depend on the data.
func (p Plan) Validate() error {
	if p.LengthOut < 1 {
		return fmt.Errorf("%w: length_out must be >= 1, got %d", ErrInvalidPlan, p.LengthOut)
	}
	if p.MaxRows < 0 {
		return fmt.Errorf("%w: max_rows must be >= 0, got %d", ErrInvalidPlan, p.MaxRows)
	}
	if _, err := parseRowOrder(p.RowOrder); err != nil {
		return err
	}
	for _, f := range []Format{p.InputFormat, p.OutputFormat} {
		if f != "" && f != FormatCSV && f != FormatParquet {
			return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}

	return nil
}

// Options maps the plan onto grid options. The plan must be valid.
func (p Plan) Options() ([]grid.Option, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	order, _ := parseRowOrder(p.RowOrder)

	return []grid.Option{
		grid.WithRange(p.Range...),
		grid.WithObservedOnly(p.ObsBy...),
		grid.WithLengthOut(p.LengthOut),
		grid.WithRowOrder(order),
		grid.WithMaxRows(p.MaxRows),
	}, nil
}

// ResolveFormat returns explicit when set, otherwise the format implied by
// the extension of path.
func ResolveFormat(path string, explicit Format) (Format, error) {
	if explicit != "" {
		return explicit, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".parquet", ".pq":
		return FormatParquet, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func parseRowOrder(s string) (grid.RowOrder, error) {
	switch s {
	case "", RowOrderFirstFastest, "first":
		return grid.FirstFastest, nil
	case RowOrderLastFastest, "last":
		return grid.LastFastest, nil
	default:
		return 0, fmt.Errorf("%w: row_order %q", ErrInvalidPlan, s)
	}
}
