// Package chart renders column distributions before and after cleaning.
package chart

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/table"
)

// ErrNoNumericColumns is returned when there is nothing to draw.
var ErrNoNumericColumns = errors.New("no numeric column to plot")

var (
	beforeColor = color.RGBA{R: 200, G: 80, B: 80, A: 255}
	afterColor  = color.RGBA{R: 60, G: 120, B: 200, A: 255}
)

// BoxPlots builds one pair of box plots per numeric column of before: the
// left box is the column before cleaning, the right one after. Columns with
// no values in a state get no box for that state.
func BoxPlots(before, after *table.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Numeric columns before and after cleaning"
	p.Y.Label.Text = "Value"

	var names []string
	legend := false
	for j, col := range before.Columns {
		if col.Kind != table.Numeric {
			continue
		}
		x := float64(len(names))
		names = append(names, col.Name)

		b, err := box(before.Floats(j), x-0.2, beforeColor)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col.Name, err)
		}
		var a *plotter.BoxPlot
		if k := after.Index(col.Name); k >= 0 {
			a, err = box(after.Floats(k), x+0.2, afterColor)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col.Name, err)
			}
		}
		for _, bp := range []*plotter.BoxPlot{b, a} {
			if bp != nil {
				p.Add(bp)
			}
		}
		if !legend && b != nil && a != nil {
			p.Legend.Add("before", swatch{beforeColor})
			p.Legend.Add("after", swatch{afterColor})
			legend = true
		}
	}
	if len(names) == 0 {
		return nil, ErrNoNumericColumns
	}
	p.NominalX(names...)
	p.Legend.Top = true
	return p, nil
}

// swatch is a legend entry filled with a single colour.
type swatch struct {
	color color.Color
}

// Thumbnail implements plot.Thumbnailer.
func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, c.ClipPolygonY(pts))
}

func box(vals []float64, x float64, c color.Color) (*plotter.BoxPlot, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	b, err := plotter.NewBoxPlot(vg.Points(18), x, plotter.Values(vals))
	if err != nil {
		return nil, err
	}
	b.FillColor = c
	b.GlyphStyle.Shape = draw.CircleGlyph{}
	b.GlyphStyle.Color = c
	return b, nil
}

// SaveBoxPlots renders BoxPlots to path. The format follows the file
// extension (png, svg, pdf, ...).
func SaveBoxPlots(before, after *table.Table, path string) error {
	p, err := BoxPlots(before, after)
	if err != nil {
		return err
	}
	n := 0
	for _, col := range before.Columns {
		if col.Kind == table.Numeric {
			n++
		}
	}
	width := vg.Length(2+n) * 1.5 * vg.Inch
	if err := p.Save(width, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
