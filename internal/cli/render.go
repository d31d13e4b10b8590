package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/dataprep"
	tbl "github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/table"
)

// missingText is how missing cells show up in previews.
const missingText = "NaN"

// renderTable prints up to limit rows of t; limit 0 prints every row.
func renderTable(w io.Writer, title string, t *tbl.Table, limit int) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(title)

	header := make(table.Row, len(t.Columns))
	for i, name := range t.Names() {
		header[i] = name
	}
	tw.AppendHeader(header)

	n := t.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	for _, r := range t.Rows[:n] {
		row := make(table.Row, len(r))
		for j, v := range r {
			if v.IsMissing() {
				row[j] = missingText
				continue
			}
			row[j] = v.String()
		}
		tw.AppendRow(row)
	}
	tw.Render()
	if n < t.Len() {
		_, _ = fmt.Fprintf(w, "(%d of %d rows)\n", n, t.Len())
	} else {
		_, _ = fmt.Fprintf(w, "(%d rows)\n", t.Len())
	}
}

// renderReport prints one line per stage and column action.
func renderReport(w io.Writer, rep dataprep.Report) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("Cleaning summary")
	tw.AppendHeader(table.Row{"Stage", "Column", "Action", "Count", "Rows"})
	for _, s := range rep.Stages {
		rows := fmt.Sprintf("%d -> %d", s.RowsBefore, s.RowsAfter)
		if len(s.Columns) == 0 {
			tw.AppendRow(table.Row{s.Stage, "", "", s.RowsRemoved(), rows})
			continue
		}
		for _, c := range s.Columns {
			tw.AppendRow(table.Row{s.Stage, c.Column, c.Action, c.Count, rows})
		}
	}
	tw.Render()
}
