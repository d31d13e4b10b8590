package data

import "github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/table"

// SampleTable returns a small employee table with gaps, duplicates and an
// outlier, used by the examples and the sample command.
func SampleTable() *table.Table {
	t := table.New(
		table.Column{Name: "Age", Kind: table.Numeric},
		table.Column{Name: "Salary", Kind: table.Numeric},
		table.Column{Name: "City", Kind: table.Categorical},
	)
	na := table.Missing()
	t.Append(table.Num(25), table.Num(50000), table.Str("Kolkata"))
	t.Append(table.Num(27), table.Num(54000), table.Str("Delhi"))
	t.Append(table.Num(29), na, table.Str("Mumbai"))
	t.Append(na, table.Num(58000), na)
	t.Append(table.Num(22), table.Num(62000), table.Str("Delhi"))
	t.Append(table.Num(120), table.Num(300000), table.Str("Kolkata"))
	t.Append(table.Num(25), table.Num(50000), table.Str("Kolkata"))
	t.Append(table.Num(25), table.Num(50000), table.Str("Kolkata"))
	return t
}
