package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/internal/logger"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/data"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/dataprep"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.csv")
	require.NoError(t, data.SaveCSV(path, data.SampleTable()))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tabprep "+Version)
}

func TestSample(t *testing.T) {
	out, err := run(t, "sample")
	require.NoError(t, err)
	assert.Contains(t, out, "Before")
	assert.Contains(t, out, "After (median)")
	assert.Contains(t, out, "(8 rows)")
	assert.Contains(t, out, "(3 rows)")
	assert.Contains(t, out, "Cleaning summary")
	assert.Contains(t, out, "NaN")
}

func TestSampleDebugLogging(t *testing.T) {
	chdir(t, t.TempDir())
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetFormat(logger.FormatText)
		logger.SetLevel(slog.LevelInfo)
	})

	cmd := NewRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"sample", "--log-level", "debug", "--log-format", "json"})
	require.NoError(t, cmd.Execute())

	out := logs.String()
	assert.Contains(t, out, `"msg":"config loaded"`)
	assert.Contains(t, out, `"msg":"running pipeline"`)
	assert.Contains(t, out, `"steps":["missing_values","duplicates","outliers"]`)
	assert.Contains(t, out, `"msg":"pipeline finished","rows":3,"removed":5`)
}

func TestCleanWritesOutputs(t *testing.T) {
	in := writeSample(t)
	dir := t.TempDir()
	outCSV := filepath.Join(dir, "clean.csv")
	report := filepath.Join(dir, "report.yaml")
	plotPath := filepath.Join(dir, "box.png")

	stdout, err := run(t, "clean", "-i", in, "-o", outCSV, "-s", "median",
		"-n", "2", "--report", report, "--plot", plotPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "(2 of 8 rows)")

	cleaned, err := data.LoadCSV(outCSV, data.CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, cleaned.Len())

	raw, err := os.ReadFile(report)
	require.NoError(t, err)
	var rep dataprep.Report
	require.NoError(t, yaml.Unmarshal(raw, &rep))
	require.Len(t, rep.Stages, 3)
	assert.Equal(t, "missing_values", rep.Stages[0].Stage)

	_, err = os.Stat(plotPath)
	assert.NoError(t, err)
}

func TestCleanDropStrategy(t *testing.T) {
	in := writeSample(t)
	out, err := run(t, "clean", "-i", in, "-s", "drop")
	require.NoError(t, err)
	assert.Contains(t, out, "After (drop)")
}

func TestCleanErrors(t *testing.T) {
	_, err := run(t, "clean")
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = run(t, "clean", "-i", "does-not-exist.csv")
	assert.Error(t, err)

	_, err = run(t, "clean", "-i", "x.csv", "-s", "ffill")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown strategy"))

	_, err = run(t, "sample", "-o", "out.txt")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
