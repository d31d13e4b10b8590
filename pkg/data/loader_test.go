package data

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/table"
)

const employees = `Age,Salary,City
25,50000,Kolkata
27,54000,Delhi
29,,Mumbai
NA,58000,null
22,62000,Delhi
120,300000,Kolkata
25,50000,Kolkata
25,50000,Kolkata
`

func TestReadCSV(t *testing.T) {
	tb, err := ReadCSV(strings.NewReader(employees), CSVOptions{})
	require.NoError(t, err)

	assert.Equal(t, []table.Column{
		{Name: "Age", Kind: table.Numeric},
		{Name: "Salary", Kind: table.Numeric},
		{Name: "City", Kind: table.Categorical},
	}, tb.Columns)
	assert.True(t, tb.Equal(SampleTable()))
}

func TestReadCSVOptions(t *testing.T) {
	in := "id;code\n1;007\n2;-\n"
	tb, err := ReadCSV(strings.NewReader(in), CSVOptions{Comma: ';', Missing: []string{"-"}})
	require.NoError(t, err)
	assert.Equal(t, table.Numeric, tb.Columns[1].Kind)
	assert.Equal(t, 1, tb.MissingCount(1))
	assert.Equal(t, []float64{7}, tb.Floats(1))
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), CSVOptions{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ReadCSV(strings.NewReader("a,b\n1\n"), CSVOptions{})
	assert.ErrorIs(t, err, ErrRaggedRow)
	assert.Contains(t, err.Error(), "line 2")
}

func TestHeaderOnly(t *testing.T) {
	tb, err := ReadCSV(strings.NewReader("a,b\n"), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, tb.Len())
	assert.Equal(t, []string{"a", "b"}, tb.Names())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, SampleTable()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Age,Salary,City", lines[0])
	assert.Equal(t, "29,,Mumbai", lines[3])
	assert.Equal(t, ",58000,", lines[4])
}

func TestSaveAndLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, SaveCSV(path, SampleTable()))

	tb, err := LoadCSV(path, CSVOptions{})
	require.NoError(t, err)
	assert.True(t, tb.Equal(SampleTable()))

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), CSVOptions{})
	assert.Error(t, err)
}
