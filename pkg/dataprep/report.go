package dataprep

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ColumnAction records what a stage did to one column.
type ColumnAction struct {
	Column string `yaml:"column"`
	Action string `yaml:"action"`
	// Count is cells filled for imputations and rows removed otherwise.
	Count int `yaml:"count"`
}

// StageReport summarises one call of a cleaning operation.
type StageReport struct {
	Stage      string         `yaml:"stage"`
	RowsBefore int            `yaml:"rows_before"`
	RowsAfter  int            `yaml:"rows_after"`
	Columns    []ColumnAction `yaml:"columns,omitempty"`
}

// RowsRemoved returns how many rows the stage dropped.
func (s StageReport) RowsRemoved() int { return s.RowsBefore - s.RowsAfter }

// Report accumulates stage reports in execution order.
type Report struct {
	Stages []StageReport `yaml:"stages"`
}

// RowsRemoved sums rows dropped over all stages.
func (r Report) RowsRemoved() int {
	n := 0
	for _, s := range r.Stages {
		n += s.RowsRemoved()
	}
	return n
}

// Last returns the most recent stage report.
func (r Report) Last() (StageReport, bool) {
	if len(r.Stages) == 0 {
		return StageReport{}, false
	}
	return r.Stages[len(r.Stages)-1], true
}

// WriteYAML encodes the report as YAML.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
