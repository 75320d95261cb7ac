package plotting

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/notargets/gofoil/airfoil"
	"github.com/notargets/gofoil/geometry2D"
	"github.com/notargets/gofoil/panels"
)

const (
	DPI         = 96
	WidthPixels = 1000
)

// Default drawing window, a unit chord section with some margin
var (
	XRange = [2]float64{-0.2, 1.2}
	YRange = [2]float64{-0.2, 0.2}
)

type Options struct {
	Title     string
	ChordLine bool // draw the mean camber line when the section has one
	AutoScale bool // fit the axes to the data instead of XRange, YRange; data outside them is always fitted
}

// Size of the image keeping one unit of x the same length as one unit of y in the default window
func Size() (width, height vg.Length) {
	width = pixels(WidthPixels)
	height = pixels(WidthPixels) * vg.Length((YRange[1]-YRange[0])/(XRange[1]-XRange[0]))
	return
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / DPI
}

func toXYs(pts []geometry2D.Point) (xys plotter.XYs) {
	xys = make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X, xys[i].Y = pt.X[0], pt.X[1]
	}
	return
}

func newPlot(title string, opts Options) (p *plot.Plot) {
	p = plot.New()
	p.Title.Text = title
	if len(opts.Title) != 0 {
		p.Title.Text = opts.Title
	}
	p.X.Label.Text = "x/c"
	p.Y.Label.Text = "y/c"
	p.Add(plotter.NewGrid())
	return
}

// Margin applied around the data when the axes are fitted to it
const AutoScaleMargin = 1.1

/*
Window returns the axes limits for data. The default window is kept unless AutoScale is set or
part of the data falls outside it, otherwise the data box is grown by AutoScaleMargin about its center.
*/
func Window(data *geometry2D.BoundingBox, opts Options) (window *geometry2D.BoundingBox) {
	window = &geometry2D.BoundingBox{
		XMin: [2]float64{XRange[0], YRange[0]},
		XMax: [2]float64{XRange[1], YRange[1]},
	}
	if data == nil {
		return
	}
	if !opts.AutoScale && window.PointInside(geometry2D.Point{X: data.XMin}) &&
		window.PointInside(geometry2D.Point{X: data.XMax}) {
		return
	}
	return data.Scale(AutoScaleMargin)
}

func save(p *plot.Plot, path string, data *geometry2D.BoundingBox, opts Options) (err error) {
	window := Window(data, opts)
	p.X.Min, p.X.Max = window.XMin[0], window.XMax[0]
	p.Y.Min, p.Y.Max = window.XMin[1], window.XMax[1]
	w, h := Size()
	if err = p.Save(w, h, path); err != nil {
		err = errors.Wrapf(err, "unable to save plot to %s", path)
	}
	return
}

func addLine(p *plot.Plot, pts []geometry2D.Point, name string, c ColorName, dashed bool) (err error) {
	var (
		line *plotter.Line
	)
	if len(pts) == 0 {
		return
	}
	if line, err = plotter.NewLine(toXYs(pts)); err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	line.Color = GetColor(c)
	line.Width = vg.Points(1)
	if dashed {
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	}
	p.Add(line)
	p.Legend.Add(name, line)
	return
}

func addPoints(p *plot.Plot, pts []geometry2D.Point, name string, c ColorName, shape draw.GlyphDrawer) (err error) {
	var (
		scatter *plotter.Scatter
	)
	if len(pts) == 0 {
		return
	}
	if scatter, err = plotter.NewScatter(toXYs(pts)); err != nil {
		return errors.Wrapf(err, "%s", name)
	}
	scatter.GlyphStyle.Color = GetColor(c)
	scatter.GlyphStyle.Radius = vg.Points(2)
	scatter.GlyphStyle.Shape = shape
	p.Add(scatter)
	p.Legend.Add(name, scatter)
	return
}

// PlotAirfoil renders both surfaces of the section as a PNG (or any format gonum/plot infers from path)
func PlotAirfoil(af *airfoil.Airfoil, path string, opts Options) (err error) {
	if af == nil || len(af.Boundary) == 0 {
		return fmt.Errorf("nothing to plot, airfoil has no boundary")
	}
	var (
		p            = newPlot(af.Name, opts)
		upper, lower = af.Surfaces()
	)
	if err = addLine(p, upper, "Upper", Blue, false); err != nil {
		return
	}
	if err = addLine(p, lower, "Lower", Red, false); err != nil {
		return
	}
	if opts.ChordLine {
		if err = addLine(p, af.ChordLine, "Camber", Gray, true); err != nil {
			return
		}
	}
	return save(p, path, geometry2D.NewBoundingBox(af.Boundary), opts)
}

// PlotPanels overlays the panel chain on the section boundary, panel ends as rings and centers as
// crosses, upper and lower panels in separate colors
func PlotPanels(af *airfoil.Airfoil, set panels.Set, path string, opts Options) (err error) {
	if af == nil || len(af.Boundary) == 0 {
		return fmt.Errorf("nothing to plot, airfoil has no boundary")
	}
	if len(set) == 0 {
		return fmt.Errorf("nothing to plot, empty panel set")
	}
	var (
		p        = newPlot(fmt.Sprintf("%s, %d panels", af.Name, len(set)), opts)
		boundary = append(append([]geometry2D.Point{}, af.Boundary...), af.Boundary[0])
		chain    = make([]geometry2D.Point, 0, len(set)+1)
		centers  [2][]geometry2D.Point
	)
	for _, pn := range set {
		chain = append(chain, pn.PointA)
		if pn.Upper {
			centers[0] = append(centers[0], pn.Center)
		} else {
			centers[1] = append(centers[1], pn.Center)
		}
	}
	chain = append(chain, set[len(set)-1].PointB)
	if err = addLine(p, boundary, "Boundary", Gray, true); err != nil {
		return
	}
	if err = addLine(p, chain, "Panels", Black, false); err != nil {
		return
	}
	if err = addPoints(p, chain[:len(set)], "Ends", Green, draw.RingGlyph{}); err != nil {
		return
	}
	if err = addPoints(p, centers[0], "Upper", Blue, draw.CrossGlyph{}); err != nil {
		return
	}
	if err = addPoints(p, centers[1], "Lower", Red, draw.CrossGlyph{}); err != nil {
		return
	}
	data := geometry2D.NewBoundingBox(boundary)
	data.Grow(geometry2D.NewBoundingBox(chain))
	return save(p, path, data, opts)
}
