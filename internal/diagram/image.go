package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gohydro/internal/geometry"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/alexiusacademia/gohydro/internal/stability"
)

// ExportCurveDiagram exports a righting-arm curve to an image file, with
// the maximum-GZ point and the vanishing-stability angle marked.
func ExportCurveDiagram(curve *stability.Curve, metrics *stability.Metrics, filename string) error {
	p := plot.New()
	p.Title.Text = "Righting Arm Curve"
	p.X.Label.Text = "Heel angle (deg)"
	p.Y.Label.Text = "GZ (m)"

	pts := make(plotter.XYs, len(curve.Angles))
	for i := range curve.Angles {
		pts[i] = plotter.XY{X: curve.Angles[i], Y: curve.GZ[i]}
	}

	gzLine, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	gzLine.LineStyle.Width = vg.Points(2)
	gzLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(gzLine)

	// Zero reference line
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: curve.Angles[0], Y: 0},
		{X: curve.Angles[len(curve.Angles)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	if metrics != nil {
		// Mark the maximum righting arm.
		maxPoint, err := plotter.NewScatter(plotter.XYs{
			{X: metrics.AngleOfMaxGZ, Y: metrics.MaxGZ},
		})
		if err != nil {
			return err
		}
		maxPoint.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		maxPoint.GlyphStyle.Radius = vg.Points(4)
		maxPoint.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(maxPoint)

		maxLabel, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: metrics.AngleOfMaxGZ, Y: metrics.MaxGZ}},
			Labels: []string{fmt.Sprintf("max GZ %.3f m @ %.1f°", metrics.MaxGZ, metrics.AngleOfMaxGZ)},
		})
		if err != nil {
			return err
		}
		p.Add(maxLabel)

		// Vertical marker at the vanishing-stability angle.
		if !math.IsNaN(metrics.AngleOfVanishingStability) {
			span := math.Max(metrics.MaxGZ, 0.1)
			vanishLine, err := plotter.NewLine(plotter.XYs{
				{X: metrics.AngleOfVanishingStability, Y: -span * 0.25},
				{X: metrics.AngleOfVanishingStability, Y: span},
			})
			if err != nil {
				return err
			}
			vanishLine.LineStyle.Width = vg.Points(1.5)
			vanishLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
			vanishLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
			p.Add(vanishLine)

			vanishLabel, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{{X: metrics.AngleOfVanishingStability, Y: span}},
				Labels: []string{fmt.Sprintf("vanishing %.1f°", metrics.AngleOfVanishingStability)},
			})
			if err != nil {
				return err
			}
			p.Add(vanishLabel)
		}
	}

	return savePlot(p, filename, 8*vg.Inch, 6*vg.Inch)
}

// ExportProfileDiagram exports a transverse section with its submerged
// polygon shaded and the waterline drawn across the beam.
func ExportProfileDiagram(profile *geometry.Profile, wl *geometry.Waterline, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Section at station %.2f m", profile.Station)
	p.X.Label.Text = "Transverse (m)"
	p.Y.Label.Text = "Vertical (m)"

	// Section outline, closed back to the first point.
	outline := make(plotter.XYs, len(profile.Points)+1)
	for i, pt := range profile.Points {
		outline[i] = plotter.XY{X: pt.Y, Y: pt.Z}
	}
	outline[len(profile.Points)] = outline[0]

	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Submerged polygon fill.
	submerged := hydro.SubmergedPolygon(profile, wl)
	if len(submerged) >= 3 {
		subPts := make(plotter.XYs, len(submerged))
		for i, pt := range submerged {
			subPts[i] = plotter.XY{X: pt.Y, Y: pt.Z}
		}
		subPoly, err := plotter.NewPolygon(subPts)
		if err == nil {
			subPoly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
			subPoly.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
			p.Add(subPoly)
		}
	}

	// Waterline across the beam.
	minY, maxY, _, _ := profile.Bounds()
	margin := (maxY - minY) * 0.15
	wlLine, err := plotter.NewLine(plotter.XYs{
		{X: minY - margin, Y: wl.ZAt(profile.Station, minY-margin)},
		{X: maxY + margin, Y: wl.ZAt(profile.Station, maxY+margin)},
	})
	if err != nil {
		return err
	}
	wlLine.LineStyle.Width = vg.Points(1.5)
	wlLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 200, A: 255}
	wlLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(wlLine)

	// Mark the submerged centroid when defined.
	props := hydro.SectionProperties(profile, wl)
	if props.IsValid() {
		centroid, err := plotter.NewScatter(plotter.XYs{
			{X: props.CentroidY, Y: props.CentroidZ},
		})
		if err != nil {
			return err
		}
		centroid.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		centroid.GlyphStyle.Radius = vg.Points(4)
		centroid.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(centroid)
	}

	return savePlot(p, filename, 6*vg.Inch, 6*vg.Inch)
}

// savePlot writes the plot in the format implied by the file extension,
// defaulting to PNG.
func savePlot(p *plot.Plot, filename string, width, height vg.Length) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
