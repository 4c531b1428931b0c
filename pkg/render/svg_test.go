package render

import (
	"strings"
	"testing"

	"github.com/mkuchta/orbit/pkg/geom"
	"github.com/mkuchta/orbit/pkg/menu"
)

func previewPlan() menu.Plan {
	return menu.Plan{
		ID:     "p1",
		Mode:   menu.ModeStraight,
		Center: geom.Pt(100, 100),
		Placements: []menu.Placement{
			{ItemID: "a", Label: "copy", Point: geom.Pt(155, 100)},
			{ItemID: "b", Label: "a<b", Point: geom.Pt(210, 100)},
		},
	}
}

func TestSVG(t *testing.T) {
	out := string(SVG(previewPlan()))

	if !strings.HasPrefix(out, "<svg xmlns=") {
		t.Errorf("output should start with an svg element, got %q", out[:40])
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output should be a closed svg document")
	}
	if !strings.Contains(out, `class="anchor"`) {
		t.Error("output should contain the anchor circle")
	}
	if got := strings.Count(out, `class="satellite"`); got != 2 {
		t.Errorf("output contains %d satellite circles, want 2", got)
	}
	if !strings.Contains(out, `id="sat-a"`) || !strings.Contains(out, `id="sat-b"`) {
		t.Error("satellite circles should carry item IDs")
	}

	// Spokes and labels are off by default.
	if strings.Contains(out, "<line") {
		t.Error("spokes should be off by default")
	}
	if strings.Contains(out, "<text") {
		t.Error("labels should be off by default")
	}
}

func TestSVGOptions(t *testing.T) {
	out := string(SVG(previewPlan(), WithSpokes(), WithLabels(), WithSatelliteRadius(30)))

	if got := strings.Count(out, "<line"); got != 2 {
		t.Errorf("output contains %d spokes, want 2", got)
	}
	if got := strings.Count(out, "<text"); got != 2 {
		t.Errorf("output contains %d labels, want 2", got)
	}
	if !strings.Contains(out, `r="30.0"`) {
		t.Error("satellite radius option should be honored")
	}
	// Label text must be XML-escaped.
	if !strings.Contains(out, "a&lt;b") {
		t.Error("label text should be XML-escaped")
	}
}

func TestSVGEmptyPlan(t *testing.T) {
	out := string(SVG(menu.Plan{ID: "empty", Center: geom.Pt(0, 0)}))

	if !strings.Contains(out, `class="anchor"`) {
		t.Error("empty plan should still render the anchor")
	}
	if strings.Contains(out, `class="satellite"`) {
		t.Error("empty plan should render no satellites")
	}
}
