package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gohydro/internal/geometry"
	"github.com/alexiusacademia/gohydro/internal/hydro"
)

// ProfileDiagramData holds data for drawing one hull section under a
// waterline.
type ProfileDiagramData struct {
	Profile   *geometry.Profile
	Waterline *geometry.Waterline
	Props     hydro.CrossSectionProperties
}

// DrawASCIIProfileDiagram renders a transverse section with its submerged
// zone shaded and the waterline marked.
func DrawASCIIProfileDiagram(data ProfileDiagramData) string {
	var sb strings.Builder

	widthChars := 48
	heightChars := 20

	minY, maxY, minZ, maxZ := data.Profile.Bounds()
	// Extend the vertical range so the waterline stays visible when it
	// sits above the section.
	wlZ := data.Waterline.ZAt(data.Profile.Station, (minY+maxY)/2)
	if !math.IsNaN(wlZ) {
		minZ = math.Min(minZ, wlZ)
		maxZ = math.Max(maxZ, wlZ)
	}
	spanY := maxY - minY
	spanZ := maxZ - minZ
	if spanY <= 0 || spanZ <= 0 {
		return ""
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  SECTION AT STATION %.2f m\n", data.Profile.Station))
	sb.WriteString("  ─────────────────────────\n")

	for row := 0; row <= heightChars; row++ {
		// Rows run top-down.
		z := maxZ - float64(row)/float64(heightChars)*spanZ

		line := make([]rune, widthChars+1)
		for i := range line {
			line[i] = ' '
		}

		crossings := sectionCrossingsAtZ(data.Profile, z)
		for k := 0; k+1 < len(crossings); k += 2 {
			c0 := int((crossings[k] - minY) / spanY * float64(widthChars))
			c1 := int((crossings[k+1] - minY) / spanY * float64(widthChars))
			for col := c0; col <= c1 && col <= widthChars; col++ {
				if col < 0 {
					continue
				}
				y := minY + float64(col)/float64(widthChars)*spanY
				if data.Waterline.IsSubmerged(geometry.Point{X: data.Profile.Station, Y: y, Z: z}) {
					line[col] = '░'
				} else {
					line[col] = '·'
				}
			}
			if c0 >= 0 && c0 <= widthChars {
				line[c0] = '│'
			}
			if c1 >= 0 && c1 <= widthChars {
				line[c1] = '│'
			}
		}

		sb.WriteString("  ")
		sb.WriteString(string(line))

		// Waterline marker on the row closest to the surface height.
		if !math.IsNaN(wlZ) {
			rowZTop := maxZ - (float64(row)-0.5)/float64(heightChars)*spanZ
			rowZBot := maxZ - (float64(row)+0.5)/float64(heightChars)*spanZ
			if wlZ <= rowZTop && wlZ > rowZBot {
				sb.WriteString(" ◄─ W.L.")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = submerged   ··· = above water\n")
	if data.Props.IsValid() {
		sb.WriteString(fmt.Sprintf("  Submerged area = %.4f m², centroid at y=%.3f z=%.3f m\n",
			data.Props.Area, data.Props.CentroidY, data.Props.CentroidZ))
	} else {
		sb.WriteString("  Section entirely above the waterline\n")
	}

	return sb.String()
}

// sectionCrossingsAtZ returns the sorted transverse positions where the
// section boundary crosses a horizontal level. Only these scalar scanline
// crossings are sorted; the profile's own point order is never touched.
func sectionCrossingsAtZ(p *geometry.Profile, z float64) []float64 {
	var crossings []float64
	n := len(p.Points)
	for i := 0; i < n; i++ {
		v1 := p.Points[i]
		v2 := p.Points[(i+1)%n]
		if (v1.Z <= z && v2.Z > z) || (v2.Z <= z && v1.Z > z) {
			t := (z - v1.Z) / (v2.Z - v1.Z)
			crossings = append(crossings, v1.Y+t*(v2.Y-v1.Y))
		}
	}
	sort.Float64s(crossings)
	return crossings
}

// DrawGZCurve renders the righting-arm curve as an ASCII line graph.
func DrawGZCurve(angles, gz []float64) string {
	if len(gz) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  RIGHTING ARM CURVE\n")
	sb.WriteString("  ──────────────────\n\n")

	graph := asciigraph.Plot(gz,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("GZ (m) over heel %.0f°–%.0f°", angles[0], angles[len(angles)-1])),
	)
	sb.WriteString(graph)
	sb.WriteString("\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
