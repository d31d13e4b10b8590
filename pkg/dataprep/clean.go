// Package dataprep cleans a table: missing value imputation, duplicate row
// removal and IQR outlier removal, alone or as one fixed pipeline.
package dataprep

import (
	"log/slog"
	"time"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/internal/logger"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/pipeline"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/stats"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/table"
)

// Preprocessor owns a private copy of a table and mutates it in place.
// It is not safe for concurrent use.
type Preprocessor struct {
	t      *table.Table
	log    *slog.Logger
	report Report
}

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithLogger overrides the logger used for progress lines.
func WithLogger(l *slog.Logger) Option {
	return func(p *Preprocessor) {
		if l != nil {
			p.log = l
		}
	}
}

// New copies t; later operations never touch the caller's table.
func New(t *table.Table, opts ...Option) *Preprocessor {
	if t == nil {
		t = table.New()
	}
	p := &Preprocessor{
		t:   t.Clone(),
		log: logger.Logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Table returns the table in its current state.
func (p *Preprocessor) Table() *table.Table { return p.t }

// Report returns what every operation so far has done.
func (p *Preprocessor) Report() Report { return p.report }

// RemoveDuplicates drops rows whose values all equal an earlier row's,
// keeping the first occurrence.
func (p *Preprocessor) RemoveDuplicates() *table.Table {
	const stage = "duplicates"
	start := time.Now()
	l := p.log.With(slog.String("stage", stage))
	rep := StageReport{Stage: stage, RowsBefore: p.t.Len()}

	removed := DropDuplicates(p.t)
	l.Info("removed duplicate rows", slog.Int("count", removed))

	rep.RowsAfter = p.t.Len()
	p.report.Stages = append(p.report.Stages, rep)
	logger.LogStageEnd(l, rep.RowsBefore, rep.RowsAfter, time.Since(start))
	return p.t
}

// DropDuplicates removes duplicate rows from t in place and returns how many
// were removed.
func DropDuplicates(t *table.Table) int {
	seen := make(map[string]struct{}, t.Len())
	return t.Filter(func(r table.Row) bool {
		key := r.Key()
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
		return true
	})
}

// RemoveOutliers filters each numeric column in turn, keeping rows whose value
// lies within [Q1-1.5*IQR, Q3+1.5*IQR]. Quartiles are taken over the rows that
// survived the previous columns. Categorical columns are ignored.
func (p *Preprocessor) RemoveOutliers() *table.Table {
	const stage = "outliers"
	start := time.Now()
	l := p.log.With(slog.String("stage", stage))
	rep := StageReport{Stage: stage, RowsBefore: p.t.Len()}

	for j, col := range p.t.Columns {
		if col.Kind != table.Numeric {
			continue
		}
		nums := p.t.Floats(j)
		if len(nums) == 0 {
			continue
		}
		b := stats.IQRBounds(nums)
		removed := FilterBounds(p.t, j, b)
		l.Info("removed outliers",
			slog.String("column", col.Name),
			slog.Float64("lower", b.Lower),
			slog.Float64("upper", b.Upper),
			slog.Int("count", removed),
		)
		rep.Columns = append(rep.Columns, ColumnAction{Column: col.Name, Action: "iqr", Count: removed})
	}

	rep.RowsAfter = p.t.Len()
	p.report.Stages = append(p.report.Stages, rep)
	logger.LogStageEnd(l, rep.RowsBefore, rep.RowsAfter, time.Since(start))
	return p.t
}

// FilterBounds keeps the rows whose column j value lies within b and returns
// how many rows were removed. Missing cells are outside every bound.
func FilterBounds(t *table.Table, j int, b stats.Bounds) int {
	return t.Filter(func(r table.Row) bool {
		f, ok := r[j].Float()
		return ok && b.Contains(f)
	})
}

// CleanData runs imputation, duplicate removal and outlier removal, in that
// order, and returns the final table.
func (p *Preprocessor) CleanData(strategy Strategy) *table.Table {
	start := time.Now()
	rowsBefore := p.t.Len()

	steps := pipeline.NewPipeline(
		pipeline.StepFunc{StepName: "missing_values", Fn: func(*table.Table) *table.Table {
			return p.HandleMissingValues(strategy)
		}},
		pipeline.StepFunc{StepName: "duplicates", Fn: func(*table.Table) *table.Table {
			return p.RemoveDuplicates()
		}},
		pipeline.StepFunc{StepName: "outliers", Fn: func(*table.Table) *table.Table {
			return p.RemoveOutliers()
		}},
	)
	p.log.Debug("running pipeline", slog.Any("steps", steps.Names()))
	out := steps.Run(p.t)

	logger.LogStageEnd(p.log.With(slog.String("stage", "clean")), rowsBefore, out.Len(), time.Since(start))
	return out
}
