package output

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	lineColors = []color.Color{
		color.RGBA{B: 255, A: 255},
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 160, A: 255},
	}
	bandColors = []color.Color{
		color.RGBA{B: 255, A: 25},
		color.RGBA{R: 255, A: 25},
		color.RGBA{G: 160, A: 25},
	}
)

// FileRenderer renders figures to PNG files in a directory using gonum/plot.
// Files are numbered in the order they are rendered so repeated titles do not
// overwrite each other.
type FileRenderer struct {
	Dir string

	n int
}

// NewFileRenderer creates a renderer writing PNG files into dir.
func NewFileRenderer(dir string) *FileRenderer {
	return &FileRenderer{Dir: dir}
}

// Render writes the figure to the next numbered file in the directory.
func (r *FileRenderer) Render(f Figure) error {
	p, err := plot.New()
	if err != nil {
		return errors.Wrap(err, "creating plot")
	}
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Legend.Top = true

	for i, b := range f.Bands {
		xys := make(plotter.XYs, 0, len(b.X)*2)
		for j := range b.X {
			xys = append(xys, plotter.XY{X: b.X[j], Y: b.Lower[j]})
		}
		for j := len(b.X) - 1; j >= 0; j-- {
			xys = append(xys, plotter.XY{X: b.X[j], Y: b.Upper[j]})
		}
		poly, err := plotter.NewPolygon(xys)
		if err != nil {
			return errors.Wrap(err, "creating band")
		}
		poly.Color = bandColors[i%len(bandColors)]
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	for i, s := range f.Series {
		xys := make(plotter.XYs, len(s.X))
		for j := range s.X {
			xys[j] = plotter.XY{X: s.X[j], Y: s.Y[j]}
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return errors.Wrap(err, "creating line")
		}
		line.Color = lineColors[i%len(lineColors)]
		points.Color = lineColors[i%len(lineColors)]
		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}

	if err := os.MkdirAll(r.Dir, 0777); err != nil {
		return errors.Wrap(err, "creating plot directory")
	}
	r.n++
	name := fmt.Sprintf("%02d_%s.png", r.n, slug(f.Title))
	if err := p.Save(16*vg.Inch, 10*vg.Inch, filepath.Join(r.Dir, name)); err != nil {
		return errors.Wrapf(err, "saving plot %s", name)
	}
	return nil
}

func slug(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}
