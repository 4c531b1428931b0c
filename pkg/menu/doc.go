// Package menu models a satellite-button menu and binds the layout
// calculator's output to concrete menu items.
//
// # Core Types
//
//   - [Config]: a full menu description (mode, geometry parameters, anchor)
//   - [Item]: one satellite button (ID, label, optional size override)
//   - [Plan]: the computed result, binding each item to its position
//
// # Usage
//
//	cfg := menu.Config{
//	    Mode:          menu.ModeArc,
//	    StartAngle:    0,
//	    EndAngle:      math.Pi,
//	    Radius:        120,
//	    Winding:       layout.Clockwise,
//	    Center:        geom.Pt(200, 200),
//	}
//	plan, err := menu.Build(cfg, []menu.Item{
//	    menu.NewItem("copy"),
//	    menu.NewItem("paste"),
//	    menu.NewItem("share"),
//	})
//
// Plans serialize to a stable JSON format via [MarshalPlan]/[UnmarshalPlan]
// and [ReadPlanFile]/[WritePlanFile]; the same structs carry bson tags for
// the Mongo-backed plan store (pkg/store).
package menu
