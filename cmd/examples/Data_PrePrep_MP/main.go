package main

import (
	"fmt"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/data"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/dataprep"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/table"
)

//
// Runs the full cleaning pipeline on the built-in employee table:
//
//   go run ./cmd/examples/Data_PrePrep_MP
//
// The same flow over a CSV file is available as `tabprep clean`.
//

// previewData prints every row of t under its headers
func previewData(t *table.Table) {
	for _, h := range t.Names() {
		fmt.Printf("%-15s", h)
	}
	fmt.Println()

	for _, row := range t.Rows {
		for _, v := range row {
			s := v.String()
			if v.IsMissing() {
				s = "NaN"
			}
			fmt.Printf("%-15s", s)
		}
		fmt.Println()
	}
}

func main() {
	raw := data.SampleTable()
	fmt.Printf("Loaded raw data: %d rows, %d columns\n", raw.Len(), len(raw.Columns))
	fmt.Println("\nOriginal data:")
	previewData(raw)

	p := dataprep.New(raw)
	cleaned := p.CleanData(dataprep.Median)

	fmt.Println("\nCleaned data:")
	previewData(cleaned)

	fmt.Printf("\nRows removed: %d (original table still has %d rows)\n", p.Report().RowsRemoved(), raw.Len())
}
