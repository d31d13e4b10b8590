package dataprep

import (
	"log/slog"
	"sort"
	"time"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/internal/logger"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/stats"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/table"
)

// HandleMissingValues walks the columns in order and, for every column with at
// least one missing cell, applies the strategy:
//
//   - Mean / Median: numeric columns only, fill with the statistic of the
//     column's present values.
//   - Mode: any column, fill with the smallest of the most frequent values.
//     A column with no present value is left as is.
//   - anything else, including Mean / Median on a categorical column: drop the
//     rows missing in this column right away.
//
// Drops take effect before the next column is looked at, so results depend on
// column order.
func (p *Preprocessor) HandleMissingValues(strategy Strategy) *table.Table {
	const stage = "missing_values"
	start := time.Now()
	l := p.log.With(slog.String("stage", stage), slog.String("strategy", strategy.String()))
	rep := StageReport{Stage: stage, RowsBefore: p.t.Len()}

	for j, col := range p.t.Columns {
		missing := p.t.MissingCount(j)
		if missing == 0 {
			continue
		}

		action := imputeColumn(p.t, j, strategy)
		l.Info("handled missing values",
			slog.String("column", col.Name),
			slog.Int("missing", missing),
			slog.String("action", action.Action),
			slog.Int("count", action.Count),
		)
		rep.Columns = append(rep.Columns, action)
	}

	rep.RowsAfter = p.t.Len()
	p.report.Stages = append(p.report.Stages, rep)
	logger.LogStageEnd(l, rep.RowsBefore, rep.RowsAfter, time.Since(start))
	return p.t
}

func imputeColumn(t *table.Table, j int, strategy Strategy) ColumnAction {
	col := t.Columns[j]
	switch {
	case strategy == Mean && col.Kind == table.Numeric:
		return ImputeMean(t, j)
	case strategy == Median && col.Kind == table.Numeric:
		return ImputeMedian(t, j)
	case strategy == Mode:
		return ImputeMode(t, j)
	default:
		return DropMissing(t, j)
	}
}

// fillStatistic fills column j with f applied to its present values. Columns
// with no present value, or whose statistic is NaN, are left unchanged.
func fillStatistic(t *table.Table, j int, strategy Strategy, f func([]float64) float64) ColumnAction {
	action := ColumnAction{Column: t.Columns[j].Name, Action: strategy.String()}
	nums := t.Floats(j)
	if len(nums) == 0 {
		action.Action = "unchanged"
		return action
	}
	v := table.Num(f(nums))
	if v.IsMissing() {
		action.Action = "unchanged"
		return action
	}
	action.Count = t.Fill(j, v)
	return action
}

// ImputeMean replaces missing cells of numeric column j with the column mean.
func ImputeMean(t *table.Table, j int) ColumnAction {
	return fillStatistic(t, j, Mean, stats.Mean)
}

// ImputeMedian replaces missing cells of numeric column j with the column median.
func ImputeMedian(t *table.Table, j int) ColumnAction {
	return fillStatistic(t, j, Median, stats.Median)
}

// ImputeMode replaces missing cells of column j with its mode. When several
// values tie, the smallest one in Value order wins.
func ImputeMode(t *table.Table, j int) ColumnAction {
	action := ColumnAction{Column: t.Columns[j].Name, Action: Mode.String()}
	var present []table.Value
	for _, v := range t.Column(j) {
		if !v.IsMissing() {
			present = append(present, v)
		}
	}
	modes := stats.Modes(present)
	if len(modes) == 0 {
		// TODO: an all-missing column keeps its gaps; consider a constant fill.
		action.Action = "unchanged"
		return action
	}
	sort.Slice(modes, func(a, b int) bool { return modes[a].Less(modes[b]) })
	action.Count = t.Fill(j, modes[0])
	return action
}

// DropMissing removes every row whose cell in column j is missing.
func DropMissing(t *table.Table, j int) ColumnAction {
	removed := t.Filter(func(r table.Row) bool { return !r[j].IsMissing() })
	return ColumnAction{Column: t.Columns[j].Name, Action: Drop.String(), Count: removed}
}
