package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/mkuchta/orbit/pkg/menu"
)

// Default geometry for the SVG preview.
const (
	defaultSatelliteRadius = 20.0
	defaultAnchorRadius    = 25.0
	defaultMargin          = 40.0
)

// SVGOption configures SVG rendering via [SVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	satelliteRadius float64
	anchorRadius    float64
	margin          float64
	spokes          bool
	labels          bool
}

// WithSatelliteRadius sets the radius used to draw satellite circles.
func WithSatelliteRadius(r float64) SVGOption {
	return func(sr *svgRenderer) { sr.satelliteRadius = r }
}

// WithAnchorRadius sets the radius used to draw the anchor circle.
func WithAnchorRadius(r float64) SVGOption {
	return func(sr *svgRenderer) { sr.anchorRadius = r }
}

// WithSpokes draws a line from the anchor to each satellite.
func WithSpokes() SVGOption {
	return func(sr *svgRenderer) { sr.spokes = true }
}

// WithLabels draws each placement's label inside its circle.
func WithLabels() SVGOption {
	return func(sr *svgRenderer) { sr.labels = true }
}

// SVG renders a plan as a standalone SVG preview: the anchor circle, one
// circle per satellite in placement order, and optionally spokes and labels.
// The viewBox is fitted to the plan's extent plus a margin, so any layout
// (including ones with negative coordinates) lands inside the frame.
func SVG(p menu.Plan, opts ...SVGOption) []byte {
	r := svgRenderer{
		satelliteRadius: defaultSatelliteRadius,
		anchorRadius:    defaultAnchorRadius,
		margin:          defaultMargin,
	}
	for _, opt := range opts {
		opt(&r)
	}

	minX, minY, maxX, maxY := extent(p, math.Max(r.satelliteRadius, r.anchorRadius))
	width := maxX - minX + 2*r.margin
	height := maxY - minY + 2*r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		minX-r.margin, minY-r.margin, width, height, width, height)

	if r.spokes {
		for _, pl := range p.Placements {
			fmt.Fprintf(&buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#bbb" stroke-width="1.5" stroke-dasharray="4 3"/>`+"\n",
				p.Center.X, p.Center.Y, pl.Point.X, pl.Point.Y)
		}
	}

	fmt.Fprintf(&buf, `  <circle class="anchor" cx="%.2f" cy="%.2f" r="%.1f" fill="#3b6ea5" stroke="#28517d" stroke-width="2"/>`+"\n",
		p.Center.X, p.Center.Y, r.anchorRadius)

	for i, pl := range p.Placements {
		fmt.Fprintf(&buf, `  <circle class="satellite" id="sat-%s" cx="%.2f" cy="%.2f" r="%.1f" fill="#f0f4f8" stroke="#3b6ea5" stroke-width="2"/>`+"\n",
			pl.ItemID, pl.Point.X, pl.Point.Y, r.satelliteRadius)
		if r.labels {
			label := pl.Label
			if label == "" {
				label = fmt.Sprintf("%d", i+1)
			}
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-size="%.0f" fill="#28517d">%s</text>`+"\n",
				pl.Point.X, pl.Point.Y, r.satelliteRadius*0.7, escapeText(label))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// extent returns the bounding box of the anchor and all placements, padded
// by the circle radius.
func extent(p menu.Plan, pad float64) (minX, minY, maxX, maxY float64) {
	minX, maxX = p.Center.X, p.Center.X
	minY, maxY = p.Center.Y, p.Center.Y
	for _, pl := range p.Placements {
		minX = math.Min(minX, pl.Point.X)
		maxX = math.Max(maxX, pl.Point.X)
		minY = math.Min(minY, pl.Point.Y)
		maxY = math.Max(maxY, pl.Point.Y)
	}
	return minX - pad, minY - pad, maxX + pad, maxY + pad
}

// escapeText escapes the XML special characters in label text.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
