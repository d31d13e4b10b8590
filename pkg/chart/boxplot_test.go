package chart

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/data"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/table"
)

func TestBoxPlots(t *testing.T) {
	before := data.SampleTable()
	after := before.Clone()
	after.Filter(func(r table.Row) bool { return !r[0].IsMissing() && !r[1].IsMissing() })

	p, err := BoxPlots(before, after)
	require.NoError(t, err)

	var labels []string
	for _, tick := range p.X.Tick.Marker.Ticks(0, 1) {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"Age", "Salary"}, labels)
}

func TestBoxPlotsNoNumeric(t *testing.T) {
	tb := table.New(table.Column{Name: "City", Kind: table.Categorical}).Append(table.Str("Delhi"))
	_, err := BoxPlots(tb, tb)
	assert.ErrorIs(t, err, ErrNoNumericColumns)
}

func TestBoxPlotsEmptyAfter(t *testing.T) {
	before := data.SampleTable()
	after := table.New(before.Columns...)
	p, err := BoxPlots(before, after)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestSaveBoxPlots(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"box.png", "box.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, SaveBoxPlots(data.SampleTable(), data.SampleTable(), path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestSwatchThumbnailFillsCanvas(t *testing.T) {
	img := vgimg.New(vg.Points(20), vg.Points(20))
	dc := draw.New(img)

	swatch{beforeColor}.Thumbnail(&dc)

	got := color.RGBAModel.Convert(img.Image().At(10, 10))
	assert.Equal(t, beforeColor, got)
}
